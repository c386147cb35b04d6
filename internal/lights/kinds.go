package lights

import "fmt"

// Well-known light names exposed at the registration boundary. These match
// the identifiers used by the platform's power and notification layers.
const (
	LightBacklight     = "backlight"
	LightNotifications = "notifications"
	LightAttention     = "attention"
	LightBattery       = "battery"
)

// Kind identifies a virtual LED slot. The declaration order is the fixed
// arbitration priority: attention beats notification beats charging.
type Kind int

// Virtual LED kinds, highest priority first.
const (
	KindAttention Kind = iota
	KindNotification
	KindCharging
	numKinds
)

// String returns the slot name for logging and metrics labels.
func (k Kind) String() string {
	switch k {
	case KindAttention:
		return "attention"
	case KindNotification:
		return "notification"
	case KindCharging:
		return "charging"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// FlashMode selects how a virtual LED should be lit.
type FlashMode int

// Flash modes accepted by SetLED. FlashTimed and FlashHardware both map to
// the controller's slope mode; the controller does all the timing, so there
// is no difference between them on this hardware.
const (
	FlashNone FlashMode = iota
	FlashTimed
	FlashHardware
)

// String returns the flash mode name used on the wire and in the CLI.
func (m FlashMode) String() string {
	switch m {
	case FlashNone:
		return "none"
	case FlashTimed:
		return "timed"
	case FlashHardware:
		return "hardware"
	default:
		return fmt.Sprintf("flash(%d)", int(m))
	}
}

// ParseFlashMode parses a flash mode name. The empty string means no flash.
func ParseFlashMode(s string) (FlashMode, error) {
	switch s {
	case "", "none":
		return FlashNone, nil
	case "timed":
		return FlashTimed, nil
	case "hardware":
		return FlashHardware, nil
	default:
		return FlashNone, invalidArgument("unknown flash mode %q", s)
	}
}

// FlashModes returns the flash mode names accepted by the API and CLI.
func FlashModes() []string {
	return []string{"none", "timed", "hardware"}
}

// Names returns the well-known light names in registration order.
func Names() []string {
	return []string{LightBacklight, LightNotifications, LightAttention, LightBattery}
}
