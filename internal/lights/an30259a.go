package lights

import (
	"log/slog"

	"github.com/smazurov/lightsd/pkg/an30259a"
)

// an30259aSink implements LEDSink against the AN30259A character device.
// The device is opened per write: programming is two quick ioctls, and the
// arbiter already serializes writers, so there is nothing to gain from
// pinning the fd.
type an30259aSink struct {
	path   string
	logger *slog.Logger
}

func newAN30259ASink(path string, logger *slog.Logger) *an30259aSink {
	return &an30259aSink{path: path, logger: logger}
}

// Program issues the current-limit ioctl followed by the LED state ioctl.
// A failed current-limit write is logged but does not stop the state write;
// the driver keeps its previous limit.
func (s *an30259aSink) Program(cmd Command) error {
	dev, err := an30259a.Open(s.path)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.SetIMax(an30259a.IMaxDefault); err != nil {
		s.logger.Warn("Failed to set LED current limit", "error", err)
	}

	ctl := an30259a.Control{
		Color:          uint32(cmd.Color),
		State:          controlState(cmd.Mode),
		TimeSlopeUp1:   uint16(cmd.SlopeUp1MS),
		TimeSlopeUp2:   uint16(cmd.SlopeUp2MS),
		TimeSlopeDown1: uint16(cmd.SlopeDown1MS),
		TimeSlopeDown2: uint16(cmd.SlopeDown2MS),
		MidBrightness:  uint8(cmd.MidBrightness),
		TimeOff:        uint16(cmd.TimeOffMS),
	}
	if err := dev.SetLED(&ctl); err != nil {
		return err
	}
	return nil
}

// controlState maps the arbiter's mode onto the driver's state values.
func controlState(m LEDMode) uint32 {
	switch m {
	case LEDOn:
		return an30259a.StateOn
	case LEDSlope:
		return an30259a.StateSlope
	default:
		return an30259a.StateOff
	}
}
