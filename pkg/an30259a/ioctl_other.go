//go:build !linux

package an30259a

import (
	"errors"
	"unsafe"
)

var errUnsupported = errors.New("an30259a: not supported on this platform")

func ioctl(_ int, _ uintptr, _ unsafe.Pointer) error {
	return errUnsupported
}

func open(_ string) (int, error) {
	return -1, errUnsupported
}

func closeFd(_ int) error {
	return nil
}
