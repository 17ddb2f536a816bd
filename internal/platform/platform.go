// Package platform defines the collaborators the game runs against (a display that
// presents the pixel surface and an input device that reports the latest key) and
// the frame loop that drives a game through them.
package platform

import (
	"errors"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

// ErrResourceUnavailable is returned when a display or input device cannot be
// acquired. It is fatal: the loop never starts.
var ErrResourceUnavailable = errors.New("platform: resource unavailable")

// Display presents a rendered surface. Present is called once per frame after the
// render pass.
type Display interface {
	Present(s *core.Surface) error
	Close() error
}

// VSyncer is implemented by displays that can wait for the next vertical blank.
// Failures are tolerated; the frame is simply shown with possible tearing.
type VSyncer interface {
	WaitVSync() error
}

// Sizer is implemented by displays with a fixed native resolution.
type Sizer interface {
	Size() (width, height int)
}

// Input reports the most recent key code, or core.KeyNone when nothing is
// pending. It must never block.
type Input interface {
	LatestKey() core.KeyCode
}

// NullInput never reports a key.
type NullInput struct{}

// LatestKey always returns core.KeyNone.
func (NullInput) LatestKey() core.KeyCode {
	return core.KeyNone
}
