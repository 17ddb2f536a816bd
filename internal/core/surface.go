package core

import (
	"hash/fnv"
	"image"
	"math"
	"math/rand/v2"
)

// Surface is an in-memory rectangular array of colors that the game renders into.
// (0, 0) is the top-left pixel. It is agnostic to how the pixels reach a display:
// display backends copy them out with CopyBGRA or Image.
//
// Every write is bounds-checked; shapes that cross an edge are clipped.
type Surface struct {
	width  int
	height int
	pix    []Color // row-major, width*height
	noise  *rand.Rand
}

// NewSurface creates a surface of the given size. The seed drives the noise used by
// FillRect so that textured fills are reproducible.
func NewSurface(width, height int, seed uint64) *Surface {
	width = Max(width, 0)
	height = Max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
		noise:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //#nosec G404 -- texture noise, not security
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Set writes a single pixel. Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
}

// At returns the pixel at (x, y), or the zero Color out of bounds.
func (s *Surface) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}
	}
	return s.pix[y*s.width+x]
}

// FillAll sets every pixel to c.
func (s *Surface) FillAll(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// FillRect fills the pixels strictly inside the rectangle, skipping a one pixel
// inset on every side. With noiseAmplitude > 0 each channel of each pixel is
// offset by a random value in [-noiseAmplitude/2, noiseAmplitude/2), clamped to
// the channel range. Alpha is never perturbed.
func (s *Surface) FillRect(r Corners, c Color, noiseAmplitude int) {
	y0 := Max(int(math.Floor(r.TopLeft.Y))+1, 0)
	x0 := Max(int(math.Floor(r.TopLeft.X))+1, 0)
	for y := y0; y < s.height && float64(y) < r.BottomRight.Y; y++ {
		row := s.pix[y*s.width : (y+1)*s.width]
		for x := x0; x < s.width && float64(x) < r.BottomRight.X; x++ {
			if noiseAmplitude > 0 {
				row[x] = s.jitter(c, noiseAmplitude)
			} else {
				row[x] = c
			}
		}
	}
}

func (s *Surface) jitter(c Color, amplitude int) Color {
	half := amplitude / 2
	return Color{
		R: offsetChannel(c.R, s.noise.IntN(amplitude)-half),
		G: offsetChannel(c.G, s.noise.IntN(amplitude)-half),
		B: offsetChannel(c.B, s.noise.IntN(amplitude)-half),
		A: c.A,
	}
}

// FillCircle draws a solid disc using a two-phase scanline walk.
//
// For rows above the center (i < 0) the half-width grows while w*w+i*i < r*r.
// From the center row down (i >= 0) it shrinks while w*w+i*i >= r*r. Each row
// fills the inclusive span [cx-w, cx+w]. Rows where no half-width remains are
// skipped.
func (s *Surface) FillCircle(center Point, radius float64, c Color) {
	r := int(radius)
	if r <= 0 {
		return
	}
	cx, cy := center.Pixel()
	rr := r * r

	w := 0
	for i := -r; i < 0; i++ {
		for w*w+i*i < rr {
			w++
		}
		s.hline(cy+i, cx-w, cx+w, c)
	}
	for i := 0; i <= r; i++ {
		for w >= 0 && w*w+i*i >= rr {
			w--
		}
		if w < 0 {
			break
		}
		s.hline(cy+i, cx-w, cx+w, c)
	}
}

// EraseAnnulus clears the pixels of the previous circle's bounding box that the
// circle at next will not cover (dx*dx+dy*dy >= r*r). Pixels inside the new disc
// are left for the next FillCircle to overdraw.
func (s *Surface) EraseAnnulus(prev, next Point, radius float64, bg Color) {
	r := int(radius)
	if r <= 0 {
		return
	}
	pcx, pcy := prev.Pixel()
	ncx, ncy := next.Pixel()
	rr := r * r

	y0, y1 := Max(pcy-r, 0), Min(pcy+r, s.height-1)
	x0, x1 := Max(pcx-r, 0), Min(pcx+r, s.width-1)
	for y := y0; y <= y1; y++ {
		dy := y - ncy
		row := s.pix[y*s.width : (y+1)*s.width]
		for x := x0; x <= x1; x++ {
			dx := x - ncx
			if dx*dx+dy*dy >= rr {
				row[x] = bg
			}
		}
	}
}

// hline fills the inclusive span [x0, x1] on row y, clipped to the surface.
func (s *Surface) hline(y, x0, x1 int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	x0 = Max(x0, 0)
	x1 = Min(x1, s.width-1)
	row := s.pix[y*s.width : (y+1)*s.width]
	for x := x0; x <= x1; x++ {
		row[x] = c
	}
}

// CopyBGRA writes the surface into dst as 4 bytes per pixel in B-G-R-A order.
// stride is the byte length of one destination row; pass 0 for a tightly packed
// buffer. Rows or columns that do not fit in dst are dropped.
func (s *Surface) CopyBGRA(dst []byte, stride int) {
	if stride <= 0 {
		stride = s.width * 4
	}
	for y := 0; y < s.height; y++ {
		off := y * stride
		if off >= len(dst) {
			return
		}
		line := dst[off:Min(off+stride, len(dst))]
		n := Min(s.width, len(line)/4)
		for x, c := range s.pix[y*s.width : y*s.width+n] {
			line[x*4] = c.B
			line[x*4+1] = c.G
			line[x*4+2] = c.R
			line[x*4+3] = c.A
		}
	}
}

// Image returns a copy of the surface as an opaque image.RGBA.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	s.CopyRGBA(img)
	return img
}

// CopyRGBA writes the surface into dst in place as opaque pixels. Pixels outside
// dst's bounds are dropped.
func (s *Surface) CopyRGBA(dst *image.RGBA) {
	b := dst.Bounds()
	w := Min(s.width, b.Dx())
	h := Min(s.height, b.Dy())
	for y := 0; y < h; y++ {
		off := dst.PixOffset(b.Min.X, b.Min.Y+y)
		line := dst.Pix[off : off+w*4]
		for x, c := range s.pix[y*s.width : y*s.width+w] {
			line[x*4] = c.R
			line[x*4+1] = c.G
			line[x*4+2] = c.B
			line[x*4+3] = 0xff
		}
	}
}

// Hash returns an FNV-1a hash of every pixel, for comparing frames in tests.
func (s *Surface) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 4*s.width)
	for y := 0; y < s.height; y++ {
		buf = buf[:0]
		for _, c := range s.pix[y*s.width : (y+1)*s.width] {
			buf = append(buf, c.R, c.G, c.B, c.A)
		}
		//nolint:errcheck // hash.Hash never returns an error
		h.Write(buf)
	}
	return h.Sum64()
}
