//go:build !linux

package evdev

import (
	"fmt"

	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/platform"
)

// Keyboard is unavailable outside Linux.
type Keyboard struct{}

// Open always fails outside Linux.
func Open(path string) (*Keyboard, error) {
	return nil, fmt.Errorf("evdev: %s: %w: event devices need linux", path, platform.ErrResourceUnavailable)
}

// LatestKey returns core.KeyNone.
func (k *Keyboard) LatestKey() core.KeyCode { return core.KeyNone }

// Close does nothing.
func (k *Keyboard) Close() error { return nil }
