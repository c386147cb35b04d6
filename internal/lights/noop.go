package lights

import "log/slog"

// noopBacklight implements BacklightSink as a no-op for hosts without the
// panel device.
type noopBacklight struct {
	logger *slog.Logger
}

// WriteBrightness logs the request but performs no hardware write.
func (n *noopBacklight) WriteBrightness(level int) error {
	n.logger.Debug("Backlight not available (no-op)", "level", level)
	return nil
}

// noopLED implements LEDSink as a no-op for hosts without the controller.
type noopLED struct {
	logger *slog.Logger
}

// Program logs the command but performs no hardware write.
func (n *noopLED) Program(cmd Command) error {
	n.logger.Debug("LED controller not available (no-op)",
		"color", cmd.Color.String(),
		"mode", cmd.Mode.String())
	return nil
}
