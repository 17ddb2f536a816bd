package breakout

import (
	"math"

	"github.com/vovakirdan/fb-breakout/internal/core"
)

// Snapshot contains the complete simulation state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	Outcome         int
	BallX, BallY    float64
	BallVX, BallVY  float64
	PaddleX         float64
	PaddleSpeedX    float64
	Destroyed       int
	BlocksRemaining int

	// Block states (flattened: row*cols + col = index), 1 when present
	BlockData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]int, g.blocks.Rows*g.blocks.Cols)
	for row := range g.blocks.Rows {
		for col := range g.blocks.Cols {
			if g.blocks.Has(row, col) {
				blockData[row*g.blocks.Cols+col] = 1
			}
		}
	}

	return Snapshot{
		Tick:            uint64(g.ticks), //#nosec G115 -- tick count is always positive
		Outcome:         int(g.outcome),
		BallX:           g.ball.Center.X,
		BallY:           g.ball.Center.Y,
		BallVX:          g.ball.Velocity.X,
		BallVY:          g.ball.Velocity.Y,
		PaddleX:         g.paddle.X,
		PaddleSpeedX:    g.paddle.SpeedX,
		Destroyed:       g.destroyed,
		BlocksRemaining: g.blocks.CountAlive(),
		BlockData:       blockData,
	}
}

// ApplySnapshot restores simulation state from a snapshot. The previous positions
// are reset to the restored ones, so the next render draws nothing stale.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.ticks = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.outcome = Outcome(snap.Outcome)
	g.ball.Center = core.Pt(snap.BallX, snap.BallY)
	g.ball.Velocity = core.Pt(snap.BallVX, snap.BallVY)
	g.paddle.X = snap.PaddleX
	g.paddle.SpeedX = snap.PaddleSpeedX
	g.destroyed = snap.Destroyed

	if len(snap.BlockData) == g.blocks.Rows*g.blocks.Cols {
		for row := range g.blocks.Rows {
			for col := range g.blocks.Cols {
				g.blocks.Set(row, col, snap.BlockData[row*g.blocks.Cols+col] == 1)
			}
		}
	}

	g.prev = Previous{BallCenter: g.ball.Center, PaddleX: g.paddle.X}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Outcome) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleSpeedX)
	h = h*31 + uint64(snap.Destroyed)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
