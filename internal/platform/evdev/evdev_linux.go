//go:build linux

package evdev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/platform"
)

// eventSize is sizeof(struct input_event): a timeval followed by 8 bytes.
var eventSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

// Keyboard is a non-blocking reader over an event device.
type Keyboard struct {
	fd  int
	buf []byte
}

// Open opens the event device at path for non-blocking reads.
func Open(path string) (*Keyboard, error) {
	if path == "" {
		path = DefaultPath
	}
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("evdev: open %s: %w: %w", path, platform.ErrResourceUnavailable, err)
	}
	return &Keyboard{
		fd:  fd,
		buf: make([]byte, 64*eventSize),
	}, nil
}

// LatestKey drains all pending events and returns the most recent key press or
// repeat. It returns core.KeyNone when nothing was pressed since the last call.
func (k *Keyboard) LatestKey() core.KeyCode {
	latest := core.KeyNone
	for {
		n, err := unix.Read(k.fd, k.buf)
		if err != nil || n <= 0 {
			// EAGAIN: nothing pending
			return latest
		}
		latest = lastKeyDown(k.buf[:n], eventSize, latest)
		if n < len(k.buf) {
			return latest
		}
	}
}

// Close closes the device.
func (k *Keyboard) Close() error {
	return unix.Close(k.fd)
}
