package maze3d

import (
	"math"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d/maze"
)

// Player is the camera pose in grid units. Angle is in radians, [0, 2π).
type Player struct {
	X, Y  float64
	Angle float64
}

// Collider resolves player movement against a wall grid, modeling the
// player as a circle.
type Collider struct {
	Radius float64
}

// MoveResult is the outcome of one resolved movement step.
type MoveResult struct {
	Player      Player
	Moved       bool // Position changed at all
	ReachedExit bool // Floor of the new position is the exit cell
}

// Overlaps reports whether a circle at (x, y) intersects any wall cell.
// Cells outside the grid count as walls.
func (c Collider) Overlaps(g *maze.Grid, x, y float64) bool {
	r := c.Radius
	minX, maxX := int(math.Floor(x-r)), int(math.Floor(x+r))
	minY, maxY := int(math.Floor(y-r)), int(math.Floor(y+r))

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			if !g.IsWall(cx, cy) {
				continue
			}
			closestX := core.ClampF(x, float64(cx), float64(cx+1))
			closestY := core.ClampF(y, float64(cy), float64(cy+1))
			dx, dy := x-closestX, y-closestY
			if dx*dx+dy*dy < r*r {
				return true
			}
		}
	}
	return false
}

// ResolveMove applies (dx, dy) with axis-separated sliding: the full move,
// then X alone, then Y alone, else no movement.
func (c Collider) ResolveMove(p Player, dx, dy float64, g *maze.Grid) MoveResult {
	next := p
	nx, ny := p.X+dx, p.Y+dy

	switch {
	case !c.Overlaps(g, nx, ny):
		next.X, next.Y = nx, ny
	case !c.Overlaps(g, nx, p.Y):
		next.X = nx
	case !c.Overlaps(g, p.X, ny):
		next.Y = ny
	}

	return MoveResult{
		Player:      next,
		Moved:       next.X != p.X || next.Y != p.Y,
		ReachedExit: g.IsExit(int(math.Floor(next.X)), int(math.Floor(next.Y))),
	}
}

// Tuning holds per-tick movement constants.
type Tuning struct {
	MoveSpeed float64 // Grid units per tick
	RotSpeed  float64 // Radians per tick
	DeadZone  float64 // Analog stick magnitude ignored below this
}

// DefaultTuning returns the reference movement constants.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed: 0.08,
		RotSpeed:  0.04,
		DeadZone:  0.2,
	}
}

// MoveIntent turns one input snapshot into a new heading and a movement
// delta. Rotation from the d-pad is applied before the stick so the stick's
// forward axis follows the updated heading.
func MoveIntent(in core.InputState, p Player, t Tuning) (angle, dx, dy float64) {
	angle = p.Angle
	forward := func(a, scale float64) {
		dx += math.Cos(a) * scale
		dy += math.Sin(a) * scale
	}

	if in.Up {
		forward(angle, t.MoveSpeed)
	}
	if in.Down {
		forward(angle, -t.MoveSpeed)
	}
	if in.Left {
		angle -= t.RotSpeed
	}
	if in.Right {
		angle += t.RotSpeed
	}
	if in.LTrigger {
		forward(angle-math.Pi/2, t.MoveSpeed)
	}
	if in.RTrigger {
		forward(angle+math.Pi/2, t.MoveSpeed)
	}

	if ax := core.DeadZone(in.StickX, t.DeadZone); ax != 0 {
		angle += ax * t.RotSpeed
	}
	if ay := core.DeadZone(in.StickY, t.DeadZone); ay != 0 {
		forward(angle, -ay*t.MoveSpeed)
	}

	return core.NormalizeAngle(angle), dx, dy
}
