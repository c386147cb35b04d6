package lights

// SetLightFunc applies a caller's desired state to one light.
type SetLightFunc func(State) error

// Open returns the setter bound to a well-known light name. Unknown names
// are rejected so a misconfigured platform layer fails loudly instead of
// silently dropping a light source.
func (a *Arbiter) Open(name string) (SetLightFunc, error) {
	switch name {
	case LightBacklight:
		return func(s State) error {
			return a.SetBacklight(s.Color)
		}, nil
	case LightNotifications:
		return func(s State) error {
			return a.SetLED(KindNotification, s)
		}, nil
	case LightAttention:
		return func(s State) error {
			// The notification layer cancels the attention light by asking
			// for solid/no-flash, not by sending black.
			if s.Flash == FlashNone {
				s.Color = 0
			}
			return a.SetLED(KindAttention, s)
		}, nil
	case LightBattery:
		return func(s State) error {
			return a.SetLED(KindCharging, s)
		}, nil
	default:
		return nil, invalidArgument("unknown light %q", name)
	}
}
