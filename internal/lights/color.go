package lights

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a packed 24-bit color, 0x00RRGGBB.
type RGB uint32

const (
	redOffset   = 16
	greenOffset = 8
	blueOffset  = 0

	colorMask RGB = 0x00FFFFFF
)

// Pure white renders with a purple tint on the physical LED; Normalize
// remaps it to a green-weighted white that looks white on the device.
const (
	colorWhite      RGB = 0xFFFFFF
	colorWhiteTuned RGB = 0x80FF80
)

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> redOffset) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> greenOffset) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c >> blueOffset) }

// String formats the color as #RRGGBB.
func (c RGB) String() string {
	return fmt.Sprintf("#%06X", uint32(c&colorMask))
}

// Brightness converts a color to a single backlight level using the panel's
// luminance weighting. The result is always within 0..255.
func Brightness(c RGB) int {
	c &= colorMask
	return (77*int(c.R()) + 150*int(c.G()) + 29*int(c.B())) >> 8
}

// Normalize corrects colors that render poorly on the indicator LED. This is
// a per-device calibration, not a general color transform.
func Normalize(c RGB) RGB {
	c &= colorMask
	if c == colorWhite {
		return colorWhiteTuned
	}
	return c
}

// ParseRGB parses a 24-bit hex color, with or without a leading # or 0x.
func ParseRGB(s string) (RGB, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if trimmed == "" {
		return 0, invalidArgument("empty color %q", s)
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil || v > uint64(colorMask) {
		return 0, invalidArgument("invalid color %q", s)
	}
	return RGB(v), nil
}
