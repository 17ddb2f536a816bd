package breakout

import "github.com/vovakirdan/fb-breakout/internal/core"

// Collision describes what the collision pass did during one frame.
type Collision struct {
	Paddle   bool // ball reflected off the paddle
	Block    bool // a block was destroyed
	Row, Col int  // destroyed block cell, valid when Block is set
}

// Collide resolves collisions for the ball's current position.
//
// The paddle reflects the ball vertically whenever its center is over the paddle
// and its bottom is below the paddle's top; there is no positional correction.
// Then the cell under the ball's top edge is tested: a block there is destroyed,
// repainted with the background on dst, and the ball is reflected vertically.
// Only that single cell is tested and no swept collision is done.
//
// dst may be nil when only the simulation is of interest.
func (g *Game) Collide(dst *core.Surface) Collision {
	var res Collision
	if g.outcome != InProgress {
		return res
	}

	if g.paddle.Spans(g.ball.Center.X) && g.ball.Bottom() > float64(g.paddle.LevelY) {
		g.ball.Velocity.Y = -g.ball.Velocity.Y
		res.Paddle = true
	}

	row, col := g.grid.ToGrid(g.ball.Top())
	if g.blocks.Destroy(row, col) {
		g.destroyed++
		if dst != nil {
			dst.FillRect(g.grid.Cell(row, col), g.background, 0)
		}
		g.ball.Velocity.Y = -g.ball.Velocity.Y
		res.Block = true
		res.Row, res.Col = row, col
	}

	return res
}
