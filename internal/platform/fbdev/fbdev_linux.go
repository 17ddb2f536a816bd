//go:build linux

package fbdev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/vovakirdan/fb-breakout/internal/core"
	"github.com/vovakirdan/fb-breakout/internal/platform"
)

// ioctl requests from linux/fb.h.
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
	fbioPanDisplay     = 0x4606
	fbioWaitForVSync   = 0x40044620
)

type bitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync                     uint32
	VMode                    uint32
	Rotate                   uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// fixScreenInfo mirrors struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	_            uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// Display is a memory-mapped framebuffer.
type Display struct {
	fd     int
	mem    []byte
	vinfo  varScreenInfo
	stride int
	name   string
}

// Open opens and maps the framebuffer at path. Only 32 bits per pixel in B-G-R-A
// order is supported.
func Open(path string) (*Display, error) {
	if path == "" {
		path = DefaultPath
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("fbdev: open %s: %w: %w", path, platform.ErrResourceUnavailable, err)
	}

	d := &Display{fd: fd}
	if err := d.init(); err != nil {
		//nolint:errcheck // already failing
		unix.Close(fd)
		return nil, fmt.Errorf("fbdev: %s: %w", path, err)
	}
	return d, nil
}

func (d *Display) init() error {
	var finfo fixScreenInfo
	if err := ioctl(d.fd, fbioGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		return fmt.Errorf("get fixed screen info: %w: %w", platform.ErrResourceUnavailable, err)
	}
	if err := ioctl(d.fd, fbioGetVScreenInfo, unsafe.Pointer(&d.vinfo)); err != nil {
		return fmt.Errorf("get variable screen info: %w: %w", platform.ErrResourceUnavailable, err)
	}
	if err := checkFormat(d.vinfo); err != nil {
		return err
	}

	d.stride = int(finfo.LineLength)
	if d.stride == 0 {
		d.stride = int(d.vinfo.XRes) * 4
	}
	d.name = string(trimNUL(finfo.ID[:]))

	size := int(finfo.SmemLen)
	if size == 0 {
		size = d.stride * int(d.vinfo.YResVirtual)
	}
	mem, err := unix.Mmap(d.fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmap: %w: %w", platform.ErrResourceUnavailable, err)
	}
	d.mem = mem
	return nil
}

// checkFormat accepts 32-bit pixels laid out as B, G, R, A in memory.
func checkFormat(v varScreenInfo) error {
	if v.BitsPerPixel != 32 {
		return fmt.Errorf("%w: %d bits per pixel, need 32", platform.ErrResourceUnavailable, v.BitsPerPixel)
	}
	if v.Blue.Offset != 0 || v.Green.Offset != 8 || v.Red.Offset != 16 {
		return fmt.Errorf("%w: channel offsets r=%d g=%d b=%d, need BGRA",
			platform.ErrResourceUnavailable, v.Red.Offset, v.Green.Offset, v.Blue.Offset)
	}
	return nil
}

func trimNUL(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// Name returns the driver identification string.
func (d *Display) Name() string {
	return d.name
}

// Size returns the visible resolution.
func (d *Display) Size() (width, height int) {
	return int(d.vinfo.XRes), int(d.vinfo.YRes)
}

// Present copies the surface into the visible page and pans to it.
func (d *Display) Present(s *core.Surface) error {
	off := int(d.vinfo.YOffset)*d.stride + int(d.vinfo.XOffset)*4
	if off < 0 || off >= len(d.mem) {
		off = 0
	}
	s.CopyBGRA(d.mem[off:], d.stride)

	// Panning is optional; many drivers reject it for a single page.
	//nolint:errcheck // tolerated
	ioctl(d.fd, fbioPanDisplay, unsafe.Pointer(&d.vinfo))
	return nil
}

// WaitVSync blocks until the next vertical blank.
func (d *Display) WaitVSync() error {
	var crtc uint32
	if err := ioctl(d.fd, fbioWaitForVSync, unsafe.Pointer(&crtc)); err != nil {
		return fmt.Errorf("fbdev: wait for vsync: %w", err)
	}
	return nil
}

// Close unmaps and closes the device. The last frame stays on screen.
func (d *Display) Close() error {
	var err error
	if d.mem != nil {
		err = unix.Munmap(d.mem)
		d.mem = nil
	}
	if cerr := unix.Close(d.fd); err == nil {
		err = cerr
	}
	return err
}

func ioctl(fd int, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
