package breakout

import "github.com/vovakirdan/fb-breakout/internal/core"

// Ball is the ball state in screen space. The center is continuous; rendering
// rounds it to pixels. Velocity is in pixels per second.
type Ball struct {
	Center   core.Point
	Radius   float64
	Velocity core.Point
}

// Top returns the top edge point of the ball.
func (b Ball) Top() core.Point {
	return core.Pt(b.Center.X, b.Center.Y-b.Radius)
}

// Bottom returns the y-coordinate of the ball's lowest point.
func (b Ball) Bottom() float64 {
	return b.Center.Y + b.Radius
}

// Paddle is the player's paddle. LevelY and the dimensions are fixed; X is the
// left edge and SpeedX its velocity in pixels per second.
type Paddle struct {
	LevelY int
	Width  int // vertical thickness
	Length int // horizontal extent
	X      float64
	SpeedX float64
}

// Corners returns the paddle rectangle at left edge x.
func (p Paddle) Corners(x float64) core.Corners {
	return core.RectCorners(
		core.Pt(x, float64(p.LevelY)),
		core.Pt(x+float64(p.Length), float64(p.LevelY+p.Width)),
	)
}

// Spans reports whether x lies within the paddle's horizontal extent.
func (p Paddle) Spans(x float64) bool {
	return x >= p.X && x <= p.X+float64(p.Length)
}

// Update integrates ball and paddle positions over dt seconds with a single
// explicit Euler step. The positions before the step are kept for the render
// pass. Nothing moves once the outcome is terminal.
func (g *Game) Update(dt float64) {
	if g.outcome != InProgress {
		return
	}
	g.ticks++

	g.prev = Previous{BallCenter: g.ball.Center, PaddleX: g.paddle.X}

	g.ball.Center = g.ball.Center.Add(g.ball.Velocity.Scale(dt))
	g.paddle.X += g.paddle.SpeedX * dt
}

// FrameTimer turns clock samples into per-frame deltas. The first sample yields 0.
type FrameTimer struct {
	last    float64
	started bool
}

// Delta returns the seconds elapsed since the previous call.
func (t *FrameTimer) Delta(now float64) float64 {
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}
	dt := now - t.last
	t.last = now
	return dt
}
