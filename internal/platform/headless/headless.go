// Package headless provides an in-memory display. It counts presented frames and
// can write the last one to a PNG file when closed.
package headless

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

// Display keeps the most recently presented frame.
type Display struct {
	path   string
	frames int
	last   *image.RGBA
}

// New creates a headless display. A non-empty path receives the final frame as a
// PNG on Close.
func New(path string) *Display {
	return &Display{path: path}
}

// Present records the frame into a buffer reused between calls; it is
// reallocated only when the surface size changes.
func (d *Display) Present(s *core.Surface) error {
	d.frames++
	if d.last == nil || d.last.Bounds().Dx() != s.Width() || d.last.Bounds().Dy() != s.Height() {
		d.last = image.NewRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	}
	s.CopyRGBA(d.last)
	return nil
}

// Frames returns how many frames were presented.
func (d *Display) Frames() int {
	return d.frames
}

// Last returns the last presented frame, or nil. The image is overwritten by the
// next Present.
func (d *Display) Last() *image.RGBA {
	return d.last
}

// Close writes the final frame when a path was given.
func (d *Display) Close() error {
	if d.path == "" || d.last == nil {
		return nil
	}

	f, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("headless: create %s: %w", d.path, err)
	}
	if err := png.Encode(f, d.last); err != nil {
		//nolint:errcheck // already failing
		f.Close()
		return fmt.Errorf("headless: encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("headless: close %s: %w", d.path, err)
	}
	return nil
}
