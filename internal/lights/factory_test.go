package lights

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSinks_FallsBackToNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Paths that certainly do not exist on the test host
	backlight, leds := NewSinks(SinkConfig{
		BacklightPath: filepath.Join(t.TempDir(), "missing", "brightness"),
		LEDPath:       filepath.Join(t.TempDir(), "missing", "leds"),
	}, logger)

	if _, ok := backlight.(*noopBacklight); !ok {
		t.Errorf("Backlight sink = %T, want noop for missing hardware", backlight)
	}
	if _, ok := leds.(*noopLED); !ok {
		t.Errorf("LED sink = %T, want noop for missing hardware", leds)
	}

	// No-op sinks accept writes without error
	if err := backlight.WriteBrightness(128); err != nil {
		t.Errorf("noop WriteBrightness returned error: %v", err)
	}
	if err := leds.Program(Command{Color: 0xFF0000, Mode: LEDOn}); err != nil {
		t.Errorf("noop Program returned error: %v", err)
	}
}

func TestNewSinks_UsesRealSinksWhenFilesExist(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	dir := t.TempDir()

	backlightPath := filepath.Join(dir, "brightness")
	if err := os.WriteFile(backlightPath, []byte("0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ledPath := filepath.Join(dir, "an30259a_leds")
	if err := os.WriteFile(ledPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	backlight, leds := NewSinks(SinkConfig{
		BacklightPath: backlightPath,
		LEDPath:       ledPath,
	}, logger)

	if _, ok := backlight.(*sysfsBacklight); !ok {
		t.Errorf("Backlight sink = %T, want sysfs sink", backlight)
	}
	if _, ok := leds.(*an30259aSink); !ok {
		t.Errorf("LED sink = %T, want AN30259A sink", leds)
	}

	// The sysfs sink writes the decimal level with a trailing newline
	if err := backlight.WriteBrightness(200); err != nil {
		t.Fatalf("WriteBrightness returned error: %v", err)
	}
	data, err := os.ReadFile(backlightPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "200\n" {
		t.Errorf("Backlight file contains %q, want \"200\\n\"", data)
	}
}
