package evdev

import (
	"encoding/binary"
	"testing"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

const testRecSize = 24

type event struct {
	typ   uint16
	code  uint16
	value int32
}

func encode(events ...event) []byte {
	buf := make([]byte, 0, len(events)*testRecSize)
	for _, ev := range events {
		rec := make([]byte, testRecSize)
		binary.NativeEndian.PutUint16(rec[16:], ev.typ)
		binary.NativeEndian.PutUint16(rec[18:], ev.code)
		binary.NativeEndian.PutUint32(rec[20:], uint32(ev.value)) //#nosec G115 -- test data
		buf = append(buf, rec...)
	}
	return buf
}

func TestLastKeyDown(t *testing.T) {
	const evSyn, evMsc = 0x00, 0x04

	tests := []struct {
		name   string
		events []event
		want   core.KeyCode
	}{
		{"empty", nil, core.KeyNone},
		{"press", []event{{evKey, 30, keyPress}, {evSyn, 0, 0}}, core.KeyA},
		{"repeat", []event{{evKey, 106, keyRepeat}}, core.KeyRight},
		{"release only", []event{{evKey, 32, keyRelease}}, core.KeyNone},
		{"last press wins", []event{{evKey, 30, keyPress}, {evKey, 30, keyRelease}, {evKey, 32, keyPress}}, core.KeyD},
		{"press then release keeps press", []event{{evKey, 105, keyPress}, {evKey, 105, keyRelease}}, core.KeyLeft},
		{"non key events ignored", []event{{evMsc, 4, 30}, {evSyn, 0, 0}}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lastKeyDown(encode(tt.events...), testRecSize, core.KeyNone)
			if got != tt.want {
				t.Errorf("lastKeyDown() = %d, expected %d", got, tt.want)
			}
		})
	}
}

func TestLastKeyDownPartialRecord(t *testing.T) {
	buf := encode(event{evKey, 16, keyPress}, event{evKey, 1, keyPress})
	got := lastKeyDown(buf[:testRecSize+10], testRecSize, core.KeyNone)
	if got != core.KeyQ {
		t.Errorf("lastKeyDown() = %d, expected %d", got, core.KeyQ)
	}
}

func TestLastKeyDownKeepsPrevious(t *testing.T) {
	got := lastKeyDown(encode(event{0, 0, 0}), testRecSize, core.KeyEsc)
	if got != core.KeyEsc {
		t.Errorf("lastKeyDown() = %d, expected %d", got, core.KeyEsc)
	}
}
