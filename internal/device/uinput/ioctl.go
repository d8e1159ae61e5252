package uinput

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctl request encoding (Linux _IOC macro)
const (
	iocNRBits   = 8
	iocTypeBits = 8
	iocSizeBits = 14

	iocNRShift   = 0
	iocTypeShift = iocNRShift + iocNRBits
	iocSizeShift = iocTypeShift + iocTypeBits
	iocDirShift  = iocSizeShift + iocSizeBits

	iocNone  = 0
	iocWrite = 1
)

func ioc(dir, typ, nr, size uint32) uint {
	return uint((dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift))
}

const (
	uinputIoctlBase = 'U'
	maxNameSize     = 80

	busUSB = 0x03

	evSyn     = 0x00
	evKey     = 0x01
	synReport = 0x00
)

// inputID mirrors struct input_id.
type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// setup mirrors struct uinput_setup.
type setup struct {
	ID           inputID
	Name         [maxNameSize]byte
	FFEffectsMax uint32
}

var (
	uiDevCreate  = ioc(iocNone, uinputIoctlBase, 1, 0)
	uiDevDestroy = ioc(iocNone, uinputIoctlBase, 2, 0)
	uiDevSetup   = ioc(iocWrite, uinputIoctlBase, 3, uint32(unsafe.Sizeof(setup{})))
	uiSetEvBit   = ioc(iocWrite, uinputIoctlBase, 100, uint32(unsafe.Sizeof(int32(0))))
	uiSetKeyBit  = ioc(iocWrite, uinputIoctlBase, 101, uint32(unsafe.Sizeof(int32(0))))
)

func ioctlPtr(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
