package lights

import (
	"log/slog"
	"time"

	"github.com/smazurov/lightsd/internal/events"
)

// Battery indicator colors. Red while charging or low, green when full.
const (
	batteryChargeColor RGB = 0xFF0000
	batteryFullColor   RGB = 0x00FF00
)

// Low-battery pulse timing.
const (
	batteryLowOnMS  = 500
	batteryLowOffMS = 3000
)

// Manager bridges platform events to the arbiter: battery state drives the
// charging LED, notification and attention events drive their slots, and
// device hotplug triggers a reapply of stored intent.
type Manager struct {
	arbiter *Arbiter
	bus     *events.Bus
	logger  *slog.Logger
	unsubs  []func()

	setNotifications SetLightFunc
	setAttention     SetLightFunc
	setBattery       SetLightFunc
}

// NewManager creates a lights manager. The setters are resolved through the
// registration boundary so the attention cancel convention applies.
func NewManager(arbiter *Arbiter, bus *events.Bus, logger *slog.Logger) *Manager {
	m := &Manager{
		arbiter: arbiter,
		bus:     bus,
		logger:  logger,
	}
	m.setNotifications, _ = arbiter.Open(LightNotifications)
	m.setAttention, _ = arbiter.Open(LightAttention)
	m.setBattery, _ = arbiter.Open(LightBattery)

	arbiter.SetOnApply(func(winner Kind, cmd Command) {
		bus.Publish(events.LightAppliedEvent{
			Winner:    winner.String(),
			Color:     uint32(cmd.Color),
			Mode:      cmd.Mode.String(),
			Timestamp: time.Now().Format(time.RFC3339),
		})
	})
	return m
}

// Start begins listening for platform events.
func (m *Manager) Start() {
	m.unsubs = append(m.unsubs,
		m.bus.Subscribe(func(e events.BatteryStateChangedEvent) {
			m.handleBattery(e)
		}),
		m.bus.Subscribe(func(e events.NotificationEvent) {
			m.handleNotification(e)
		}),
		m.bus.Subscribe(func(e events.AttentionEvent) {
			m.handleAttention(e)
		}),
		m.bus.Subscribe(func(e events.LEDDeviceChangedEvent) {
			m.handleDeviceChanged(e)
		}),
	)
	m.logger.Info("Lights manager started")
}

// Stop unsubscribes from all platform events.
func (m *Manager) Stop() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
	m.logger.Info("Lights manager stopped")
}

// handleBattery maps the battery status onto the charging slot.
func (m *Manager) handleBattery(e events.BatteryStateChangedEvent) {
	var s State
	switch e.Status {
	case "charging":
		s = State{Color: batteryChargeColor}
	case "full":
		s = State{Color: batteryFullColor}
	case "low":
		s = State{
			Color:      batteryChargeColor,
			Flash:      FlashTimed,
			FlashOnMS:  batteryLowOnMS,
			FlashOffMS: batteryLowOffMS,
		}
	default:
		// discharging and anything unrecognized turn the indicator off
	}

	m.logger.Debug("Battery state changed", "status", e.Status, "level", e.Level)
	if err := m.setBattery(s); err != nil {
		m.logger.Warn("Failed to set battery light", "status", e.Status, "error", err)
	}
}

func (m *Manager) handleNotification(e events.NotificationEvent) {
	s, err := stateFromEvent(e.Color, e.Flash, e.FlashOnMS, e.FlashOffMS)
	if err != nil {
		m.logger.Warn("Invalid notification event", "flash", e.Flash, "error", err)
		return
	}
	if err := m.setNotifications(s); err != nil {
		m.logger.Warn("Failed to set notification light", "error", err)
	}
}

func (m *Manager) handleAttention(e events.AttentionEvent) {
	s, err := stateFromEvent(e.Color, e.Flash, e.FlashOnMS, e.FlashOffMS)
	if err != nil {
		m.logger.Warn("Invalid attention event", "flash", e.Flash, "error", err)
		return
	}
	if err := m.setAttention(s); err != nil {
		m.logger.Warn("Failed to set attention light", "error", err)
	}
}

// handleDeviceChanged reapplies stored intent when the LED node appears, so
// the controller ends up showing the latest state instead of whatever it
// kept across the driver reload.
func (m *Manager) handleDeviceChanged(e events.LEDDeviceChangedEvent) {
	if e.Action != "added" {
		m.logger.Debug("LED device removed", "path", e.Path)
		return
	}

	m.logger.Info("LED device appeared, reapplying light state", "path", e.Path)
	if err := m.arbiter.Reapply(); err != nil {
		m.logger.Warn("Failed to reapply light state", "error", err)
	}
}

func stateFromEvent(color uint32, flash string, onMS, offMS int) (State, error) {
	mode, err := ParseFlashMode(flash)
	if err != nil {
		return State{}, err
	}
	return State{
		Color:      RGB(color),
		Flash:      mode,
		FlashOnMS:  onMS,
		FlashOffMS: offMS,
	}, nil
}
