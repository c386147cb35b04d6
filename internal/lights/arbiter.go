package lights

import (
	"log/slog"
	"sync"

	"github.com/smazurov/lightsd/internal/metrics"
)

// BacklightSink writes a brightness level to the panel backlight device.
type BacklightSink interface {
	WriteBrightness(level int) error
}

// LEDSink programs the indicator LED controller with a command.
type LEDSink interface {
	Program(cmd Command) error
}

// State is a caller's desired state for one light. The backlight path only
// looks at Color; flash fields matter only for the LED slots.
type State struct {
	Color      RGB
	Flash      FlashMode
	FlashOnMS  int
	FlashOffMS int
}

// Arbiter owns the virtual LED table and decides which slot reaches the
// physical controller. One lock serializes slot mutation and all hardware
// writes, backlight included: the device processes a single command at a
// time, and the priority scan must observe a consistent table.
type Arbiter struct {
	mu    sync.Mutex
	slots [numKinds]Command

	backlight BacklightSink
	leds      LEDSink
	logger    *slog.Logger
	metrics   *metrics.Lights
	onApply   func(winner Kind, cmd Command)
}

// NewArbiter creates an arbiter with all slots off. Metrics may be nil.
func NewArbiter(backlight BacklightSink, leds LEDSink, logger *slog.Logger, m *metrics.Lights) *Arbiter {
	return &Arbiter{
		backlight: backlight,
		leds:      leds,
		logger:    logger,
		metrics:   m,
	}
}

// SetOnApply installs a callback invoked after every successful hardware
// program, with the winning slot and the command it produced. Must be set
// before the arbiter is shared between goroutines.
func (a *Arbiter) SetOnApply(f func(winner Kind, cmd Command)) {
	a.onApply = f
}

// SetBacklight converts the color to a brightness level and writes it to the
// backlight device. The LED table is not involved.
func (a *Arbiter) SetBacklight(c RGB) error {
	level := Brightness(c)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.backlight.WriteBrightness(level); err != nil {
		a.metrics.WriteError("backlight")
		a.logger.Warn("Backlight write failed", "level", level, "error", err)
		return ioError("backlight write failed", err)
	}
	a.metrics.BacklightWrite()
	a.logger.Debug("Backlight set", "level", level)
	return nil
}

// SetLED replaces one virtual LED slot and reprograms the controller with
// whichever slot wins arbitration. The slot keeps its new value even when
// the hardware write fails, so a later pass applies the latest intent.
func (a *Arbiter) SetLED(kind Kind, s State) error {
	if !kind.valid() {
		return invalidArgument("unknown LED kind %d", int(kind))
	}

	slot, err := buildSlot(s)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.slots[kind] = slot
	return a.applyLocked()
}

// Reapply reprograms the controller from the current table without touching
// any slot. Used after the device node reappears, so the stored intent wins
// over whatever state the hardware kept.
func (a *Arbiter) Reapply() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applyLocked()
}

// buildSlot translates a request into slot form. The slot is built from
// scratch; the previous value is never patched.
func buildSlot(s State) (Command, error) {
	var slot Command

	if s.Color&colorMask == 0 {
		slot.Mode = LEDOff
		return slot, nil
	}

	slot.Color = Normalize(s.Color)

	switch s.Flash {
	case FlashNone:
		slot.Mode = LEDOn
	case FlashTimed, FlashHardware:
		slot.Mode = LEDSlope
		slot.SlopeUp1MS = slopeUp1MS * s.FlashOnMS / 1000
		slot.SlopeUp2MS = slopeUp2MS * s.FlashOnMS / 1000
		slot.SlopeDown1MS = slopeDown1MS * s.FlashOnMS / 1000
		slot.SlopeDown2MS = slopeDown2MS * s.FlashOnMS / 1000
		slot.MidBrightness = midBrightness
		slot.TimeOffMS = s.FlashOffMS
	default:
		return Command{}, invalidArgument("unknown flash mode %d", int(s.Flash))
	}

	return slot, nil
}

// applyLocked scans the slots in priority order and programs the first one
// that is not off. When every slot is off the charging slot is written
// anyway, so the hardware gets an explicit off command instead of keeping
// stale state. Callers must hold a.mu.
func (a *Arbiter) applyLocked() error {
	winner := KindCharging
	for k := KindAttention; k < numKinds; k++ {
		if a.slots[k].Mode != LEDOff {
			winner = k
			break
		}
	}

	cmd := a.slots[winner]
	if err := a.leds.Program(cmd); err != nil {
		a.metrics.WriteError("led")
		a.logger.Warn("LED program failed", "winner", winner.String(), "error", err)
		return ioError("led program failed", err)
	}

	a.metrics.LEDProgram(winner.String())
	a.logger.Debug("LED programmed",
		"winner", winner.String(),
		"color", cmd.Color.String(),
		"mode", cmd.Mode.String())

	if a.onApply != nil {
		a.onApply(winner, cmd)
	}
	return nil
}
