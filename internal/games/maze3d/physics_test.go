package maze3d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/maze3d/internal/core"
	"github.com/vovakirdan/maze3d/internal/games/maze3d/maze"
)

// openGrid returns a walled grid with the listed cells opened.
func openGrid(w, h int, open ...[2]int) *maze.Grid {
	g := maze.NewGrid(w, h)
	for _, p := range open {
		g.Set(p[0], p[1], maze.Empty)
	}
	return g
}

func TestOverlaps(t *testing.T) {
	g := openGrid(3, 3, [2]int{1, 1})
	c := Collider{Radius: 0.25}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"room center", 1.5, 1.5, false},
		{"touching west wall", 1.2, 1.5, true},
		{"exactly radius away", 1.25, 1.5, false},
		{"corner", 1.15, 1.15, true},
		{"outside grid", -3, -3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Overlaps(g, tc.x, tc.y); got != tc.expected {
				t.Errorf("Overlaps(%f, %f) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestResolveMoveSlides(t *testing.T) {
	// Wall directly east, corridor open to the south.
	g := openGrid(5, 5, [2]int{1, 1}, [2]int{1, 2}, [2]int{1, 3})
	c := Collider{Radius: 0.25}
	p := Player{X: 1.5, Y: 1.5}

	res := c.ResolveMove(p, 0.3, 0.3, g)
	if res.Player.X != 1.5 {
		t.Errorf("X = %f, expected no movement along the blocked axis", res.Player.X)
	}
	if math.Abs(res.Player.Y-1.8) > 1e-9 {
		t.Errorf("Y = %f, expected slide to 1.8", res.Player.Y)
	}
	if !res.Moved {
		t.Error("Moved should be true after a slide")
	}
	if c.Overlaps(g, res.Player.X, res.Player.Y) {
		t.Error("resolved position overlaps a wall")
	}
}

func TestResolveMoveSlidesAlongX(t *testing.T) {
	g := openGrid(5, 5, [2]int{1, 1}, [2]int{2, 1}, [2]int{3, 1})
	c := Collider{Radius: 0.25}

	res := c.ResolveMove(Player{X: 1.5, Y: 1.5}, 0.3, 0.3, g)
	if math.Abs(res.Player.X-1.8) > 1e-9 || res.Player.Y != 1.5 {
		t.Errorf("position = (%f, %f), expected (1.8, 1.5)", res.Player.X, res.Player.Y)
	}
}

func TestResolveMoveDiagonalAndBlocked(t *testing.T) {
	c := Collider{Radius: 0.25}

	open := openGrid(5, 5, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
	res := c.ResolveMove(Player{X: 1.5, Y: 1.5}, 0.2, 0.2, open)
	if math.Abs(res.Player.X-1.7) > 1e-9 || math.Abs(res.Player.Y-1.7) > 1e-9 {
		t.Errorf("diagonal move = (%f, %f), expected (1.7, 1.7)", res.Player.X, res.Player.Y)
	}

	closed := openGrid(3, 3, [2]int{1, 1})
	p := Player{X: 1.5, Y: 1.5, Angle: 1}
	res = c.ResolveMove(p, 0.3, 0.3, closed)
	if res.Player != p || res.Moved {
		t.Errorf("boxed-in move = %+v, expected unchanged", res.Player)
	}
}

func TestResolveMoveReachesExit(t *testing.T) {
	m, err := maze.Generate(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	c := Collider{Radius: 0.25}
	res := c.ResolveMove(Player{X: 1.5, Y: 1.5}, 0, 0, m.Grid)
	if !res.ReachedExit {
		t.Error("standing on the exit cell should report ReachedExit")
	}
}

func TestResolveMoveNeverOverlaps(t *testing.T) {
	m, err := maze.Generate(8, 8, 77)
	if err != nil {
		t.Fatal(err)
	}
	c := Collider{Radius: 0.25}
	rng := rand.New(rand.NewSource(1))
	p := DefaultStart

	for i := range 5000 {
		dx := (rng.Float64()*2 - 1) * 0.08
		dy := (rng.Float64()*2 - 1) * 0.08
		p = c.ResolveMove(p, dx, dy, m.Grid).Player
		if c.Overlaps(m.Grid, p.X, p.Y) {
			t.Fatalf("step %d: player at (%f, %f) overlaps a wall", i, p.X, p.Y)
		}
	}
}

func TestMoveIntent(t *testing.T) {
	tune := DefaultTuning()

	tests := []struct {
		name      string
		in        core.InputState
		angle     float64
		wantAngle float64
		wantDX    float64
		wantDY    float64
	}{
		{"idle", core.InputState{}, 0, 0, 0, 0},
		{"forward", core.InputState{Up: true}, 0, 0, 0.08, 0},
		{"back", core.InputState{Down: true}, 0, 0, -0.08, 0},
		{"turn left wraps", core.InputState{Left: true}, 0, 2*math.Pi - 0.04, 0, 0},
		{"turn right", core.InputState{Right: true}, 1, 1.04, 0, 0},
		{"strafe left", core.InputState{LTrigger: true}, 0, 0, 0, -0.08},
		{"strafe right", core.InputState{RTrigger: true}, 0, 0, 0, 0.08},
		{"stick in dead zone", core.InputState{StickX: 0.15, StickY: -0.2}, 1, 1, 0, 0},
		{"stick forward", core.InputState{StickY: -1}, 0, 0, 0.08, 0},
		{"stick turn", core.InputState{StickX: 0.5}, 1, 1.02, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			angle, dx, dy := MoveIntent(tc.in, Player{Angle: tc.angle}, tune)
			if math.Abs(angle-tc.wantAngle) > 1e-9 {
				t.Errorf("angle = %f, expected %f", angle, tc.wantAngle)
			}
			if math.Abs(dx-tc.wantDX) > 1e-9 || math.Abs(dy-tc.wantDY) > 1e-9 {
				t.Errorf("delta = (%f, %f), expected (%f, %f)", dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}
