package lights

import (
	"log/slog"
	"os"
	"strings"

	"github.com/smazurov/lightsd/pkg/an30259a"
)

const deviceTreeModelPath = "/proc/device-tree/model"

// SinkConfig selects the device files backing the hardware sinks. Empty
// fields fall back to the board defaults.
type SinkConfig struct {
	BacklightPath string
	LEDPath       string
}

// NewSinks picks hardware sinks for the current board, falling back to
// no-op sinks when the hardware is absent.
func NewSinks(cfg SinkConfig, logger *slog.Logger) (BacklightSink, LEDSink) {
	if cfg.BacklightPath == "" {
		cfg.BacklightPath = DefaultBacklightPath
	}
	if cfg.LEDPath == "" {
		cfg.LEDPath = an30259a.DefaultDevicePath
	}

	boardModel := detectBoard()
	// Boards known to carry the AN30259A controller and the s6e8aa0 panel.
	known := strings.Contains(boardModel, "GT-I9100") ||
		strings.Contains(boardModel, "GT-N7000") ||
		strings.Contains(boardModel, "Exynos4")

	var backlight BacklightSink
	if known || fileExists(cfg.BacklightPath) {
		logger.Info("Using sysfs backlight sink", "path", cfg.BacklightPath)
		backlight = newSysfsBacklight(cfg.BacklightPath)
	} else {
		logger.Info("Backlight device not found, using no-op sink",
			"path", cfg.BacklightPath, "board_model", boardModel)
		backlight = &noopBacklight{logger: logger}
	}

	var leds LEDSink
	// The LED node may appear after boot; keep the real sink whenever the
	// board is known so stored intent can be reapplied once it shows up.
	if known || fileExists(cfg.LEDPath) {
		logger.Info("Using AN30259A LED sink", "path", cfg.LEDPath)
		leds = newAN30259ASink(cfg.LEDPath, logger)
	} else {
		logger.Info("LED controller not found, using no-op sink",
			"path", cfg.LEDPath, "board_model", boardModel)
		leds = &noopLED{logger: logger}
	}

	return backlight, leds
}

// detectBoard reads the device tree model to identify the board.
func detectBoard() string {
	data, err := os.ReadFile(deviceTreeModelPath)
	if err != nil {
		return "unknown"
	}

	// Device tree model contains trailing null bytes, trim them
	return strings.TrimRight(string(data), "\x00")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
