package lights

// LEDMode is the physical state programmed into the controller.
type LEDMode int

// Physical LED modes.
const (
	LEDOff LEDMode = iota
	LEDOn
	LEDSlope
)

// String returns the mode name for logging and events.
func (m LEDMode) String() string {
	switch m {
	case LEDOff:
		return "off"
	case LEDOn:
		return "on"
	case LEDSlope:
		return "slope"
	default:
		return "unknown"
	}
}

// Slope durations for one nominal 1000ms pulse cycle. The up phase is split
// 450:50 and mirrored on the way down; SetLED scales these by the requested
// on-time.
const (
	slopeUp1MS   = 450
	slopeUp2MS   = 500 - slopeUp1MS
	slopeDown1MS = slopeUp2MS
	slopeDown2MS = slopeUp1MS
)

// midBrightness is the level held between slopes, on the controller's 0-127
// scale.
const midBrightness = 31

// Command is the flattened programming request handed to the LED sink. It
// has no lifecycle of its own: it is recomputed from the winning slot on
// every arbitration pass. The zero value is an explicit off command.
type Command struct {
	Color RGB
	Mode  LEDMode

	// Pulse timing, set only for LEDSlope.
	SlopeUp1MS    int
	SlopeUp2MS    int
	SlopeDown1MS  int
	SlopeDown2MS  int
	MidBrightness int
	TimeOffMS     int
}
