package maze

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

var sizes = []struct {
	w, h int
}{
	{1, 1}, {1, 5}, {5, 1}, {2, 2}, {5, 5}, {8, 8}, {12, 10}, {31, 17},
}

// reachable counts logical cells reachable from (1, 1) over non-wall grid cells.
func reachable(g *Grid) int {
	seen := make(map[[2]int]bool)
	queue := [][2]int{{1, 1}}
	seen[[2]int{1, 1}] = true
	rooms := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p[0]%2 == 1 && p[1]%2 == 1 {
			rooms++
		}
		for _, d := range directions {
			n := [2]int{p[0] + d.dx, p[1] + d.dy}
			if seen[n] || g.IsWall(n[0], n[1]) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return rooms
}

func TestGeneratePerfect(t *testing.T) {
	for _, sz := range sizes {
		for seed := int64(0); seed < 20; seed++ {
			m, err := Generate(sz.w, sz.h, seed)
			if err != nil {
				t.Fatalf("Generate(%d, %d, %d) error: %v", sz.w, sz.h, seed, err)
			}
			g := m.Grid
			if g.Width() != 2*sz.w+1 || g.Height() != 2*sz.h+1 {
				t.Fatalf("grid size = %dx%d, expected %dx%d", g.Width(), g.Height(), 2*sz.w+1, 2*sz.h+1)
			}
			if got := g.Passages(); got != sz.w*sz.h-1 {
				t.Errorf("%dx%d seed %d: Passages() = %d, expected %d", sz.w, sz.h, seed, got, sz.w*sz.h-1)
			}
			// n-1 edges plus full connectivity means the passage graph is a tree.
			if got := reachable(g); got != sz.w*sz.h {
				t.Errorf("%dx%d seed %d: reachable rooms = %d, expected %d\n%s", sz.w, sz.h, seed, got, sz.w*sz.h, g)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(12, 10, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(12, 10, 42)
	if err != nil {
		t.Fatal(err)
	}
	if a.Grid.String() != b.Grid.String() {
		t.Error("same seed produced different mazes")
	}
	if len(a.Segments) != len(b.Segments) {
		t.Errorf("same seed produced %d and %d segments", len(a.Segments), len(b.Segments))
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"zero width", 0, 5, ErrInvalidSize},
		{"negative height", 5, -1, ErrInvalidSize},
		{"too wide", MaxDimension + 1, 5, ErrTooLarge},
		{"too tall", 5, MaxDimension + 1, ErrTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Generate(tc.w, tc.h, 1)
			if !errors.Is(err, tc.want) {
				t.Errorf("Generate() error = %v, expected %v", err, tc.want)
			}
			if m != nil {
				t.Error("Generate() should not return a maze on error")
			}
		})
	}
}

func TestGridSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	w, h := 9, 7
	cells, err := Carve(w, h, rng)
	if err != nil {
		t.Fatal(err)
	}
	g, err := ToGrid(cells, w, h)
	if err != nil {
		t.Fatal(err)
	}

	for y := range h {
		for x := range w {
			c := cells[y*w+x]
			if !c.Visited() {
				t.Errorf("cell (%d, %d) never visited", x, y)
			}
			if x+1 < w {
				carved := !c.HasWall(East) && !cells[y*w+x+1].HasWall(West)
				half := c.HasWall(East) != cells[y*w+x+1].HasWall(West)
				if half {
					t.Errorf("half-carved wall between (%d,%d) and (%d,%d)", x, y, x+1, y)
				}
				if open := !g.IsWall(2*x+2, 2*y+1); open != carved {
					t.Errorf("boundary east of (%d,%d) open = %v, carved = %v", x, y, open, carved)
				}
			}
			if y+1 < h {
				carved := !c.HasWall(South) && !cells[(y+1)*w+x].HasWall(North)
				if open := !g.IsWall(2*x+1, 2*y+2); open != carved {
					t.Errorf("boundary south of (%d,%d) open = %v, carved = %v", x, y, open, carved)
				}
			}
		}
	}
}

func TestToGridIgnoresHalfCarvedWall(t *testing.T) {
	cells := []Cell{allWalls &^ East, allWalls}
	g, err := ToGrid(cells, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsWall(2, 1) {
		t.Errorf("boundary opened by a one-sided carve:\n%s", g)
	}

	if _, err := ToGrid(cells, 3, 1); err == nil {
		t.Error("ToGrid should reject a cell count that does not match the size")
	}
}

func TestExitUnique(t *testing.T) {
	for _, sz := range sizes {
		m, err := Generate(sz.w, sz.h, 3)
		if err != nil {
			t.Fatal(err)
		}
		if got := m.Grid.Count(Exit); got != 1 {
			t.Errorf("%dx%d: exit count = %d, expected 1", sz.w, sz.h, got)
		}
		if !m.Grid.IsExit(2*sz.w-1, 2*sz.h-1) {
			t.Errorf("%dx%d: exit not at last logical cell", sz.w, sz.h)
		}
	}
}

func TestOneByOne(t *testing.T) {
	m, err := Generate(1, 1, 99)
	if err != nil {
		t.Fatal(err)
	}
	expected := "###\n#E#\n###"
	if got := m.Grid.String(); got != expected {
		t.Errorf("1x1 grid = %q, expected %q", got, expected)
	}
	if len(m.Segments) != 8 {
		t.Fatalf("1x1 segments = %d, expected 8", len(m.Segments))
	}
	tagged := 0
	for _, s := range m.Segments {
		if s.IsExit {
			tagged++
		}
	}
	if tagged != 4 {
		t.Errorf("1x1 exit segments = %d, expected 4", tagged)
	}
}

func TestExitFaces(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		seed     int64
		untagged int
		expected []WallSegment
	}{
		{
			name:     "enclosed 1x1",
			w:        1,
			h:        1,
			seed:     99,
			untagged: 4,
			expected: []WallSegment{
				{X1: 1, Z1: 1, X2: 2, Z2: 1, IsExit: true},
				{X1: 2, Z1: 1, X2: 2, Z2: 2, IsExit: true},
				{X1: 2, Z1: 2, X2: 1, Z2: 2, IsExit: true},
				{X1: 1, Z1: 2, X2: 1, Z2: 1, IsExit: true},
			},
		},
		{
			name:     "3x3 open to the west",
			w:        3,
			h:        3,
			seed:     7,
			untagged: 3,
			expected: []WallSegment{
				{X1: 5, Z1: 5, X2: 6, Z2: 5, IsExit: true},
				{X1: 6, Z1: 5, X2: 6, Z2: 6, IsExit: true},
				{X1: 6, Z1: 6, X2: 5, Z2: 6, IsExit: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Generate(tt.w, tt.h, tt.seed)
			if err != nil {
				t.Fatal(err)
			}
			ex, ez := float64(2*tt.w-1), float64(2*tt.h-1)
			onExit := func(s WallSegment) bool {
				in := func(x, z float64) bool {
					return x >= ex && x <= ex+1 && z >= ez && z <= ez+1
				}
				return in(s.X1, s.Z1) && in(s.X2, s.Z2)
			}

			var tagged []WallSegment
			untagged := 0
			for _, s := range m.Segments {
				switch {
				case s.IsExit:
					tagged = append(tagged, s)
				case onExit(s):
					untagged++
				}
			}
			if untagged != tt.untagged {
				t.Errorf("untagged faces around the exit = %d, expected %d", untagged, tt.untagged)
			}
			if len(tagged) != len(tt.expected) {
				t.Fatalf("exit faces = %+v, expected %+v", tagged, tt.expected)
			}
			for i := range tagged {
				if tagged[i] != tt.expected[i] {
					t.Errorf("exit face %d = %+v, expected %+v", i, tagged[i], tt.expected[i])
				}
			}
		})
	}
}

func TestGridFailClosed(t *testing.T) {
	m, err := Generate(3, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	g := m.Grid
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {g.Width(), 1}, {1, g.Height()}, {-100, -100}, {1 << 20, 3}} {
		if !g.IsWall(p[0], p[1]) {
			t.Errorf("IsWall(%d, %d) = false outside the grid", p[0], p[1])
		}
		if g.IsExit(p[0], p[1]) {
			t.Errorf("IsExit(%d, %d) = true outside the grid", p[0], p[1])
		}
	}
}

func TestSegmentCulling(t *testing.T) {
	for _, sz := range sizes {
		m, err := Generate(sz.w, sz.h, 11)
		if err != nil {
			t.Fatal(err)
		}
		g := m.Grid
		seen := make(map[WallSegment]bool)

		for _, s := range m.Segments {
			if seen[s] {
				t.Errorf("duplicate segment %+v", s)
			}
			seen[s] = true

			// Locate the two grid cells the face separates.
			var a, b [2]int
			switch {
			case s.Z1 == s.Z2:
				x := int(math.Floor(math.Min(s.X1, s.X2)))
				z := int(s.Z1)
				a, b = [2]int{x, z - 1}, [2]int{x, z}
			case s.X1 == s.X2:
				z := int(math.Floor(math.Min(s.Z1, s.Z2)))
				x := int(s.X1)
				a, b = [2]int{x - 1, z}, [2]int{x, z}
			default:
				t.Fatalf("segment %+v is not axis aligned", s)
			}

			wa, wb := g.IsWall(a[0], a[1]), g.IsWall(b[0], b[1])
			if wa == wb {
				t.Errorf("segment %+v separates %v and %v with wall = %v on both sides", s, a, b, wa)
			}
			if s.IsExit && !g.IsExit(a[0], a[1]) && !g.IsExit(b[0], b[1]) {
				t.Errorf("segment %+v is tagged but does not border the exit", s)
			}
		}
	}
}
