// Package evdev reads key presses from a Linux input event device.
package evdev

import (
	"encoding/binary"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

// DefaultPath is the built-in keyboard of most PCs.
const DefaultPath = "/dev/input/by-path/platform-i8042-serio-0-event-kbd"

const (
	evKey = 0x01

	keyRelease = 0
	keyPress   = 1
	keyRepeat  = 2
)

// lastKeyDown scans a buffer of input_event records of recSize bytes and returns
// the code of the last key press or repeat, or prev if there is none. A trailing
// partial record is ignored.
func lastKeyDown(buf []byte, recSize int, prev core.KeyCode) core.KeyCode {
	latest := prev
	// type, code and value follow the timestamp
	ts := recSize - 8
	for off := 0; off+recSize <= len(buf); off += recSize {
		rec := buf[off : off+recSize]
		typ := binary.NativeEndian.Uint16(rec[ts:])
		code := binary.NativeEndian.Uint16(rec[ts+2:])
		value := int32(binary.NativeEndian.Uint32(rec[ts+4:])) //#nosec G115 -- reinterpreting the kernel's s32
		if typ != evKey {
			continue
		}
		if value == keyPress || value == keyRepeat {
			latest = core.KeyCode(code)
		}
	}
	return latest
}
