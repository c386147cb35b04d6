package lights

import (
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/smazurov/lightsd/internal/events"
)

// syncLED is a thread-safe LED sink for tests that drive the arbiter
// through the async event bus.
type syncLED struct {
	mu   sync.Mutex
	cmds []Command
}

func (m *syncLED) Program(cmd Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cmds = append(m.cmds, cmd)
	return nil
}

func (m *syncLED) last(t *testing.T) Command {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.cmds) == 0 {
		t.Fatal("No LED commands programmed")
	}
	return m.cmds[len(m.cmds)-1]
}

func testManager(t *testing.T) (*Manager, *events.Bus, *syncLED) {
	t.Helper()
	leds := &syncLED{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	arbiter := NewArbiter(&mockBacklight{}, leds, logger, nil)
	bus := events.New()
	manager := NewManager(arbiter, bus, logger)
	manager.Start()
	t.Cleanup(manager.Stop)
	return manager, bus, leds
}

func TestManager_BatteryCharging(t *testing.T) {
	_, bus, leds := testManager(t)

	bus.Publish(events.BatteryStateChangedEvent{
		Status:    "charging",
		Level:     42,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	time.Sleep(50 * time.Millisecond)

	cmd := leds.last(t)
	if cmd.Color != 0xFF0000 || cmd.Mode != LEDOn {
		t.Errorf("Charging programmed %+v, want solid red", cmd)
	}
}

func TestManager_BatteryFullThenDischarging(t *testing.T) {
	_, bus, leds := testManager(t)

	bus.Publish(events.BatteryStateChangedEvent{Status: "full", Level: 100})
	time.Sleep(50 * time.Millisecond)
	if cmd := leds.last(t); cmd.Color != 0x00FF00 {
		t.Errorf("Full programmed %+v, want solid green", cmd)
	}

	bus.Publish(events.BatteryStateChangedEvent{Status: "discharging", Level: 90})
	time.Sleep(50 * time.Millisecond)
	if cmd := leds.last(t); cmd.Mode != LEDOff {
		t.Errorf("Discharging programmed %+v, want off", cmd)
	}
}

func TestManager_BatteryLowPulses(t *testing.T) {
	_, bus, leds := testManager(t)

	bus.Publish(events.BatteryStateChangedEvent{Status: "low", Level: 5})
	time.Sleep(50 * time.Millisecond)

	cmd := leds.last(t)
	if cmd.Color != 0xFF0000 || cmd.Mode != LEDSlope {
		t.Errorf("Low battery programmed %+v, want red slope", cmd)
	}
	if cmd.TimeOffMS != batteryLowOffMS {
		t.Errorf("TimeOffMS = %d, want %d", cmd.TimeOffMS, batteryLowOffMS)
	}
}

func TestManager_NotificationEvent(t *testing.T) {
	_, bus, leds := testManager(t)

	bus.Publish(events.NotificationEvent{
		Color:      0x0000FF,
		Flash:      "timed",
		FlashOnMS:  250,
		FlashOffMS: 1000,
	})
	time.Sleep(50 * time.Millisecond)

	cmd := leds.last(t)
	if cmd.Color != 0x0000FF || cmd.Mode != LEDSlope {
		t.Errorf("Notification programmed %+v, want blue slope", cmd)
	}
}

func TestManager_AttentionCancelThroughEvents(t *testing.T) {
	_, bus, leds := testManager(t)

	bus.Publish(events.AttentionEvent{Color: 0xFF0000, Flash: "hardware", FlashOnMS: 500, FlashOffMS: 500})
	time.Sleep(50 * time.Millisecond)
	if cmd := leds.last(t); cmd.Mode != LEDSlope {
		t.Errorf("Attention programmed %+v, want slope", cmd)
	}

	// Cancel keeps a color but drops the flash mode
	bus.Publish(events.AttentionEvent{Color: 0xFF0000, Flash: "none"})
	time.Sleep(50 * time.Millisecond)
	if cmd := leds.last(t); cmd.Mode != LEDOff {
		t.Errorf("Attention cancel programmed %+v, want off", cmd)
	}
}

func TestManager_DeviceAddedReapplies(t *testing.T) {
	_, bus, leds := testManager(t)

	bus.Publish(events.BatteryStateChangedEvent{Status: "charging", Level: 50})
	time.Sleep(50 * time.Millisecond)

	leds.mu.Lock()
	programsBefore := len(leds.cmds)
	leds.mu.Unlock()

	bus.Publish(events.LEDDeviceChangedEvent{Path: "/dev/an30259a_leds", Action: "added"})
	time.Sleep(50 * time.Millisecond)

	leds.mu.Lock()
	programsAfter := len(leds.cmds)
	leds.mu.Unlock()
	if programsAfter != programsBefore+1 {
		t.Fatalf("Device added produced %d programs, want %d", programsAfter, programsBefore+1)
	}
	if cmd := leds.last(t); cmd.Color != 0xFF0000 {
		t.Errorf("Reapply programmed %+v, want the charging red intent", cmd)
	}
}

func TestManager_DeviceRemovedIgnored(t *testing.T) {
	_, bus, leds := testManager(t)

	bus.Publish(events.LEDDeviceChangedEvent{Path: "/dev/an30259a_leds", Action: "removed"})
	time.Sleep(50 * time.Millisecond)

	leds.mu.Lock()
	defer leds.mu.Unlock()
	if len(leds.cmds) != 0 {
		t.Errorf("Device removal triggered %d programs, want none", len(leds.cmds))
	}
}

func TestManager_PublishesLightApplied(t *testing.T) {
	_, bus, _ := testManager(t)

	var mu sync.Mutex
	var applied []events.LightAppliedEvent
	unsub := bus.Subscribe(func(e events.LightAppliedEvent) {
		mu.Lock()
		applied = append(applied, e)
		mu.Unlock()
	})
	defer unsub()

	bus.Publish(events.BatteryStateChangedEvent{Status: "charging", Level: 10})
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(applied) == 0 {
		t.Fatal("No LightAppliedEvent published")
	}
	got := applied[len(applied)-1]
	if got.Winner != "charging" || got.Color != 0xFF0000 {
		t.Errorf("LightAppliedEvent = %+v, want charging red", got)
	}
}
