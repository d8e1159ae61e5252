package uinput

import (
	"bytes"
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"
)

// inputEvent mirrors struct input_event.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// encodeKey renders a key transition followed by a SYN_REPORT.
func encodeKey(code uint16, pressed bool, now time.Time) []byte {
	value := int32(0)
	if pressed {
		value = 1
	}
	tv := unix.NsecToTimeval(now.UnixNano())

	var buf bytes.Buffer
	// Writes to a bytes.Buffer of fixed-size structs cannot fail.
	_ = binary.Write(&buf, binary.NativeEndian, inputEvent{Time: tv, Type: evKey, Code: code, Value: value})
	_ = binary.Write(&buf, binary.NativeEndian, inputEvent{Time: tv, Type: evSyn, Code: synReport})
	return buf.Bytes()
}
