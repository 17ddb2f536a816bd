//go:build !linux

package fbdev

import (
	"fmt"

	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/platform"
)

// Display is unavailable outside Linux.
type Display struct{}

// Open always fails outside Linux.
func Open(path string) (*Display, error) {
	return nil, fmt.Errorf("fbdev: %s: %w: framebuffer devices need linux", path, platform.ErrResourceUnavailable)
}

// Size returns zero.
func (d *Display) Size() (width, height int) { return 0, 0 }

// Present does nothing.
func (d *Display) Present(*core.Surface) error { return nil }

// Close does nothing.
func (d *Display) Close() error { return nil }
