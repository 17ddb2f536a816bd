// Package core provides the geometry, color and pixel-surface primitives the game
// renders with. It has no dependency on any display or input device so that the
// simulation and rasterization stay pure and testable.
package core

import "math"

// Point is a 2D coordinate in either screen space or grid space.
// The space is determined by context; convert explicitly with GridMapper.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Pixel rounds the point to the nearest pixel.
func (p Point) Pixel() (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Corners describes an axis-aligned rectangle by its top-left and bottom-right corners.
type Corners struct {
	TopLeft     Point
	BottomRight Point
}

// RectCorners creates Corners from two points.
func RectCorners(topLeft, bottomRight Point) Corners {
	return Corners{TopLeft: topLeft, BottomRight: bottomRight}
}

// Width returns the horizontal extent.
func (c Corners) Width() float64 {
	return c.BottomRight.X - c.TopLeft.X
}

// Height returns the vertical extent.
func (c Corners) Height() float64 {
	return c.BottomRight.Y - c.TopLeft.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
