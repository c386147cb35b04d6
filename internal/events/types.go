package events

// Event type constants for kelindar/event.
const (
	TypeBatteryStateChanged uint32 = iota + 1
	TypeNotification
	TypeAttention
	TypeLEDDeviceChanged
	TypeLightApplied
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// BatteryStateChangedEvent is published by the power layer when the charge
// state changes. The lights manager maps it onto the charging LED.
type BatteryStateChangedEvent struct {
	Status    string `json:"status" example:"charging" doc:"Battery status: charging, full, low, discharging"`
	Level     int    `json:"level" example:"80" doc:"Charge percentage"`
	Timestamp string `json:"timestamp" example:"2026-08-25T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for BatteryStateChangedEvent.
func (e BatteryStateChangedEvent) Type() uint32 { return TypeBatteryStateChanged }

// NotificationEvent is published when the notification LED should change.
// A zero color clears the notification light.
type NotificationEvent struct {
	Color      uint32 `json:"color" example:"255" doc:"24-bit RGB color; 0 clears the light"`
	Flash      string `json:"flash" example:"timed" doc:"Flash mode: none, timed, hardware"`
	FlashOnMS  int    `json:"flash_on_ms" example:"500" doc:"Flash on duration in milliseconds"`
	FlashOffMS int    `json:"flash_off_ms" example:"2000" doc:"Flash off duration in milliseconds"`
	Timestamp  string `json:"timestamp" example:"2026-08-25T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for NotificationEvent.
func (e NotificationEvent) Type() uint32 { return TypeNotification }

// AttentionEvent is published when the attention light should change. By the
// platform convention, flash mode "none" cancels the attention light no
// matter which color is carried.
type AttentionEvent struct {
	Color      uint32 `json:"color" example:"16711680" doc:"24-bit RGB color"`
	Flash      string `json:"flash" example:"timed" doc:"Flash mode: none cancels, timed/hardware pulse"`
	FlashOnMS  int    `json:"flash_on_ms" example:"500" doc:"Flash on duration in milliseconds"`
	FlashOffMS int    `json:"flash_off_ms" example:"2000" doc:"Flash off duration in milliseconds"`
	Timestamp  string `json:"timestamp" example:"2026-08-25T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for AttentionEvent.
func (e AttentionEvent) Type() uint32 { return TypeAttention }

// LEDDeviceChangedEvent reports the LED controller device node appearing or
// disappearing. Used to reapply stored light intent after the driver loads.
type LEDDeviceChangedEvent struct {
	Path      string `json:"path" example:"/dev/an30259a_leds" doc:"Device node path"`
	Action    string `json:"action" example:"added" doc:"Action type: added, removed"`
	Timestamp string `json:"timestamp" example:"2026-08-25T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LEDDeviceChangedEvent.
func (e LEDDeviceChangedEvent) Type() uint32 { return TypeLEDDeviceChanged }

// LightAppliedEvent reports the result of an arbitration pass: which slot
// won and what was programmed into the controller.
type LightAppliedEvent struct {
	Winner    string `json:"winner" example:"notification" doc:"Winning slot: attention, notification, charging"`
	Color     uint32 `json:"color" example:"255" doc:"Programmed 24-bit RGB color"`
	Mode      string `json:"mode" example:"on" doc:"Programmed mode: off, on, slope"`
	Timestamp string `json:"timestamp" example:"2026-08-25T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LightAppliedEvent.
func (e LightAppliedEvent) Type() uint32 { return TypeLightApplied }
