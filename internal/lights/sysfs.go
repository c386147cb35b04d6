package lights

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultBacklightPath is the panel brightness file on the supported board.
const DefaultBacklightPath = "/sys/class/backlight/s6e8aa0/brightness"

// sysfsBacklight implements BacklightSink against a sysfs brightness file.
type sysfsBacklight struct {
	path string
}

func newSysfsBacklight(path string) *sysfsBacklight {
	return &sysfsBacklight{path: path}
}

// WriteBrightness writes the level followed by a newline, which is what the
// kernel's backlight class expects.
func (s *sysfsBacklight) WriteBrightness(level int) error {
	data := []byte(strconv.Itoa(level) + "\n")
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backlight brightness: %w", err)
	}
	return nil
}
