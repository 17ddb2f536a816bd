//go:build linux

package fbdev

import (
	"errors"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/vovakirdan/fb-breakout/internal/platform"
)

func TestStructSizes(t *testing.T) {
	if got := unsafe.Sizeof(varScreenInfo{}); got != 160 {
		t.Errorf("sizeof(varScreenInfo) = %d, expected 160", got)
	}
	want := uintptr(68)
	if unsafe.Sizeof(uintptr(0)) == 8 {
		want = 80
	}
	if got := unsafe.Sizeof(fixScreenInfo{}); got != want {
		t.Errorf("sizeof(fixScreenInfo) = %d, expected %d", got, want)
	}
}

func TestCheckFormat(t *testing.T) {
	bgra := varScreenInfo{
		BitsPerPixel: 32,
		Blue:         bitfield{Offset: 0, Length: 8},
		Green:        bitfield{Offset: 8, Length: 8},
		Red:          bitfield{Offset: 16, Length: 8},
	}
	rgb565 := bgra
	rgb565.BitsPerPixel = 16
	rgba := bgra
	rgba.Red.Offset, rgba.Blue.Offset = 0, 16

	tests := []struct {
		name    string
		info    varScreenInfo
		wantErr bool
	}{
		{"bgra32", bgra, false},
		{"16bpp", rgb565, true},
		{"rgba order", rgba, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkFormat(tt.info)
			if (err != nil) != tt.wantErr {
				t.Fatalf("checkFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, platform.ErrResourceUnavailable) {
				t.Errorf("checkFormat() error = %v, expected ErrResourceUnavailable", err)
			}
		})
	}
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "fb9"))
	if !errors.Is(err, platform.ErrResourceUnavailable) {
		t.Errorf("Open() error = %v, expected ErrResourceUnavailable", err)
	}
}

func TestTrimNUL(t *testing.T) {
	id := [16]byte{'v', 'e', 's', 'a', 'f', 'b'}
	if got := string(trimNUL(id[:])); got != "vesafb" {
		t.Errorf("trimNUL() = %q, expected %q", got, "vesafb")
	}
}
