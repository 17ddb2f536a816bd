package headless

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/registry"
)

func TestDisplayCountsFrames(t *testing.T) {
	d := New("")
	s := core.NewSurface(4, 3, 1)

	for range 3 {
		if err := d.Present(s); err != nil {
			t.Fatalf("Present() error = %v", err)
		}
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", d.Frames())
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDisplayWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	d := New(path)

	s := core.NewSurface(4, 3, 1)
	s.FillAll(core.RGBA(30, 35, 30, 0))
	s.Set(1, 2, core.RGBA(230, 230, 255, 0))
	if err := d.Present(s); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, expected 4x3", b)
	}
	r, g, b, a := img.At(1, 2).RGBA()
	if r>>8 != 230 || g>>8 != 230 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel (1,2) = %d,%d,%d,%d, expected 230,230,255,255", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestPresentReusesBuffer(t *testing.T) {
	d := New("")
	s := core.NewSurface(1920, 1080, 1)
	if err := d.Present(s); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	first := d.Last()

	allocs := testing.AllocsPerRun(5, func() {
		//nolint:errcheck // never fails
		d.Present(s)
	})
	if allocs != 0 {
		t.Errorf("Present() allocs = %v, expected 0", allocs)
	}
	if d.Last() != first {
		t.Error("Last() changed between frames of the same size")
	}

	if err := d.Present(core.NewSurface(4, 3, 1)); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if b := d.Last().Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds after resize = %v, expected 4x3", b)
	}
}

func TestDisplayCloseWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.png")
	if err := New(path).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Stat() error = %v, expected not exist", err)
	}
}

func TestRegistered(t *testing.T) {
	d, err := registry.Create("headless", registry.Options{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, ok := d.(*Display); !ok {
		t.Errorf("Create() = %T, expected *Display", d)
	}
}
