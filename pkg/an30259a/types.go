// Package an30259a drives the Panasonic AN30259A three-channel LED
// controller through the ioctl interface exposed by the leds-an30259a
// kernel driver.
package an30259a

import "unsafe"

// DefaultDevicePath is the character device registered by the driver.
const DefaultDevicePath = "/dev/an30259a_leds"

// IMaxDefault selects the lowest maximum current limit, 12.75mA.
const IMaxDefault uint8 = 0

// LED states accepted by the driver.
const (
	StateOff uint32 = iota
	StateOn
	StateSlope
)

// Control mirrors struct an30259a_pr_control from the kernel driver. Slope
// times are in milliseconds; mid brightness is on the controller's 0-127
// scale.
type Control struct {
	Color          uint32
	State          uint32
	TimeSlopeUp1   uint16
	TimeSlopeUp2   uint16
	TimeSlopeDown1 uint16
	TimeSlopeDown2 uint16
	MidBrightness  uint8
	_              uint8
	TimeOff        uint16
}

// ioctl request numbers, _IOW('S', nr, type) as defined by the driver.
const (
	iocWrite     = 1
	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

func iow(typ, nr, size uintptr) uintptr {
	return iocWrite<<iocDirShift | size<<iocSizeShift | typ<<iocTypeShift | nr<<iocNrShift
}

var (
	reqSetLED  = iow('S', 42, unsafe.Sizeof(Control{}))
	reqSetIMax = iow('S', 44, unsafe.Sizeof(uint8(0)))
)
