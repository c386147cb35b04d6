package config

import (
	"os"
	"path/filepath"
	"testing"
)

// testOptions mirrors the daemon's flat option struct.
type testOptions struct {
	Config string `help:"Config file path"`

	Port          string `toml:"server.port" env:"SERVER_PORT"`
	BacklightPath string `toml:"hardware.backlight_path" env:"HARDWARE_BACKLIGHT_PATH"`
	MetricsOn     bool   `toml:"metrics.enabled" env:"METRICS_ENABLED"`
	FlashOnMS     int    `toml:"defaults.flash_on_ms" env:"DEFAULTS_FLASH_ON_MS"`
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lightsd.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = ":9000"

[hardware]
backlight_path = "/sys/class/backlight/test/brightness"

[metrics]
enabled = true

[defaults]
flash_on_ms = 500
`)

	opts := &testOptions{Config: path}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Port != ":9000" {
		t.Errorf("Port = %q, want :9000", opts.Port)
	}
	if opts.BacklightPath != "/sys/class/backlight/test/brightness" {
		t.Errorf("BacklightPath = %q", opts.BacklightPath)
	}
	if !opts.MetricsOn {
		t.Error("MetricsOn = false, want true")
	}
	if opts.FlashOnMS != 500 {
		t.Errorf("FlashOnMS = %d, want 500", opts.FlashOnMS)
	}
}

func TestLoadConfigEnvOverridesTOML(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = ":9000"
`)

	t.Setenv("LIGHTSD_SERVER_PORT", ":9999")

	opts := &testOptions{Config: path}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Port != ":9999" {
		t.Errorf("Port = %q, want env value :9999", opts.Port)
	}
}

func TestLoadConfigEnvTypes(t *testing.T) {
	t.Setenv("LIGHTSD_METRICS_ENABLED", "true")
	t.Setenv("LIGHTSD_DEFAULTS_FLASH_ON_MS", "250")

	opts := &testOptions{}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !opts.MetricsOn {
		t.Error("MetricsOn = false, want true from env")
	}
	if opts.FlashOnMS != 250 {
		t.Errorf("FlashOnMS = %d, want 250 from env", opts.FlashOnMS)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	opts := &testOptions{Config: filepath.Join(t.TempDir(), "absent.toml"), Port: ":8091"}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig with missing file failed: %v", err)
	}
	if opts.Port != ":8091" {
		t.Errorf("Port = %q, want default preserved", opts.Port)
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := writeConfigFile(t, `this is not toml [[[`)

	opts := &testOptions{Config: path}
	if err := LoadConfig(opts, nil); err == nil {
		t.Fatal("LoadConfig should fail on malformed TOML")
	}
}

func TestLoadLoggingConfig(t *testing.T) {
	path := writeConfigFile(t, `
[logging]
level = "debug"
format = "json"
lights = "warn"
monitoring = "error"
`)

	cfg := LoadLoggingConfig(path)
	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Modules["lights"] != "warn" {
		t.Errorf("Modules[lights] = %q, want warn", cfg.Modules["lights"])
	}
	if cfg.Modules["monitoring"] != "error" {
		t.Errorf("Modules[monitoring] = %q, want error", cfg.Modules["monitoring"])
	}
}

func TestLoadLoggingConfigDefaults(t *testing.T) {
	cfg := LoadLoggingConfig("")
	if cfg.Level != "info" || cfg.Format != "text" {
		t.Errorf("Defaults = %+v, want info/text", cfg)
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Port", "port"},
		{"BacklightPath", "backlight-path"},
		{"LoggingLevel", "logging-level"},
	}

	for _, tt := range tests {
		if got := fieldNameToFlag(tt.in); got != tt.want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
