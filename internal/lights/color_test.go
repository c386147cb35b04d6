package lights

import "testing"

func TestBrightness(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  int
	}{
		{"black", 0x000000, 0},
		{"white", 0xFFFFFF, 255},
		{"red", 0xFF0000, (77 * 255) >> 8},
		{"green", 0x00FF00, (150 * 255) >> 8},
		{"blue", 0x0000FF, (29 * 255) >> 8},
		{"mid gray", 0x808080, (77*128 + 150*128 + 29*128) >> 8},
		{"alpha bits ignored", 0xFF123456, (77*0x12 + 150*0x34 + 29*0x56) >> 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Brightness(tt.color); got != tt.want {
				t.Errorf("Brightness(%#x) = %d, want %d", uint32(tt.color), got, tt.want)
			}
		})
	}
}

func TestBrightness_Range(t *testing.T) {
	// The weighting sums to 256, so every channel combination must land in 0..255
	for _, c := range []RGB{0x000000, 0xFFFFFF, 0xFF00FF, 0x010101, 0xFEFEFE} {
		got := Brightness(c)
		if got < 0 || got > 255 {
			t.Errorf("Brightness(%#x) = %d, out of range", uint32(c), got)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(0xFFFFFF); got != 0x80FF80 {
		t.Errorf("Normalize(white) = %v, want #80FF80", got)
	}

	// Everything else passes through unchanged
	for _, c := range []RGB{0x000000, 0xFF0000, 0x80FF80, 0xFFFFFE, 0x123456} {
		if got := Normalize(c); got != c {
			t.Errorf("Normalize(%#x) = %#x, want unchanged", uint32(c), uint32(got))
		}
	}

	// High bits are masked off before comparison
	if got := Normalize(0xFFFFFFFF); got != 0x80FF80 {
		t.Errorf("Normalize(0xFFFFFFFF) = %#x, want white remap", uint32(got))
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"FF0000", 0xFF0000, false},
		{"#00ff00", 0x00FF00, false},
		{"0x0000ff", 0x0000FF, false},
		{"000000", 0, false},
		{"", 0, true},
		{"zzz", 0, true},
		{"1FFFFFF", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseRGB(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRGB(%q) expected error", tt.in)
			} else if !IsInvalidArgument(err) {
				t.Errorf("ParseRGB(%q) error is not INVALID_ARGUMENT: %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRGB(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRGB(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseFlashMode(t *testing.T) {
	tests := []struct {
		in      string
		want    FlashMode
		wantErr bool
	}{
		{"", FlashNone, false},
		{"none", FlashNone, false},
		{"timed", FlashTimed, false},
		{"hardware", FlashHardware, false},
		{"blink", FlashNone, true},
	}

	for _, tt := range tests {
		got, err := ParseFlashMode(tt.in)
		if tt.wantErr {
			if err == nil || !IsInvalidArgument(err) {
				t.Errorf("ParseFlashMode(%q) expected INVALID_ARGUMENT, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFlashMode(%q) returned error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFlashMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
