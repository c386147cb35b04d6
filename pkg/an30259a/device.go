package an30259a

import (
	"fmt"
	"unsafe"
)

// Device is an open handle to the controller's character device.
type Device struct {
	fd   int
	path string
}

// Open opens the LED controller device node.
func Open(path string) (*Device, error) {
	fd, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return &Device{fd: fd, path: path}, nil
}

// Close releases the device handle.
func (d *Device) Close() error {
	return closeFd(d.fd)
}

// SetIMax programs the controller's maximum current limit.
func (d *Device) SetIMax(imax uint8) error {
	if err := ioctl(d.fd, reqSetIMax, unsafe.Pointer(&imax)); err != nil {
		return fmt.Errorf("failed to set imax on %s: %w", d.path, err)
	}
	return nil
}

// SetLED programs color, state and slope timing in a single call.
func (d *Device) SetLED(ctl *Control) error {
	if err := ioctl(d.fd, reqSetLED, unsafe.Pointer(ctl)); err != nil {
		return fmt.Errorf("failed to set led on %s: %w", d.path, err)
	}
	return nil
}
