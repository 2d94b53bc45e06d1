package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// MaxDimension bounds the logical width and height of a maze.
const MaxDimension = 512

var (
	// ErrInvalidSize is returned for a width or height below 1.
	ErrInvalidSize = errors.New("maze: width and height must be at least 1")
	// ErrTooLarge is returned when a dimension exceeds MaxDimension.
	ErrTooLarge = errors.New("maze: dimensions exceed maximum")
)

// WallSegment is one exposed face of a wall-grid cell, in grid units.
// X runs along grid columns and Z along grid rows.
type WallSegment struct {
	X1, Z1 float64
	X2, Z2 float64
	IsExit bool
}

// Maze is a generated level: the collision grid plus its render geometry.
type Maze struct {
	Width    int
	Height   int
	Seed     int64
	Grid     *Grid
	Segments []WallSegment
}

func checkSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: got %dx%d, max %d", ErrTooLarge, width, height, MaxDimension)
	}
	return nil
}

// Generate builds a perfect maze of width x height logical cells from seed.
// The same seed always yields the same maze.
func Generate(width, height int, seed int64) (*Maze, error) {
	rng := rand.New(rand.NewSource(seed))

	cells, err := Carve(width, height, rng)
	if err != nil {
		return nil, err
	}
	grid, err := ToGrid(cells, width, height)
	if err != nil {
		return nil, err
	}

	return &Maze{
		Width:    width,
		Height:   height,
		Seed:     seed,
		Grid:     grid,
		Segments: ExtractSegments(grid),
	}, nil
}

// Carve runs a randomized depth-first backtracker from cell (0, 0) and
// returns the cells in row-major order. Every wall removal is applied to
// both cells it separates.
func Carve(width, height int, rng *rand.Rand) ([]Cell, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	total := width * height
	cells := make([]Cell, total)
	for i := range cells {
		cells[i] = allWalls
	}

	cx, cy := 0, 0
	cells[0] |= visited
	count := 1
	stack := make([]int, 0, total)
	candidates := make([]int, 0, len(directions))

	for count < total {
		candidates = candidates[:0]
		for i, d := range directions {
			nx, ny := cx+d.dx, cy+d.dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if !cells[ny*width+nx].Visited() {
				candidates = append(candidates, i)
			}
		}

		if len(candidates) > 0 {
			d := directions[candidates[rng.Intn(len(candidates))]]
			nx, ny := cx+d.dx, cy+d.dy
			cells[cy*width+cx] &^= d.wall
			cells[ny*width+nx] &^= d.opposite

			stack = append(stack, cy*width+cx)
			cx, cy = nx, ny
			cells[cy*width+cx] |= visited
			count++
			continue
		}

		if len(stack) == 0 {
			// Unreachable for a rectangular grid.
			break
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cx, cy = top%width, top/width
	}

	return cells, nil
}

// ToGrid converts carved cells into a (2W+1) x (2H+1) wall grid. The last
// logical cell becomes the exit. A boundary opens only when both adjacent
// cells had their shared wall removed.
func ToGrid(cells []Cell, width, height int) (*Grid, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("maze: got %d cells for a %dx%d maze", len(cells), width, height)
	}

	g := NewGrid(2*width+1, 2*height+1)
	for y := range height {
		for x := range width {
			c := cells[y*width+x]
			gx, gy := 2*x+1, 2*y+1
			g.Set(gx, gy, Empty)

			// East and South cover every shared boundary exactly once.
			if x+1 < width && !c.HasWall(East) && !cells[y*width+x+1].HasWall(West) {
				g.Set(gx+1, gy, Empty)
			}
			if y+1 < height && !c.HasWall(South) && !cells[(y+1)*width+x].HasWall(North) {
				g.Set(gx, gy+1, Empty)
			}
		}
	}
	g.Set(2*width-1, 2*height-1, Exit)

	return g, nil
}

// ExtractSegments emits one untagged segment per wall face that borders a
// non-wall cell, then one IsExit segment per exit face that borders a wall.
// Faces between two wall cells and faces on the grid border are never
// emitted. A wall and the exit both emit their shared boundary, each with
// its own cell's winding.
func ExtractSegments(g *Grid) []WallSegment {
	var segs []WallSegment
	for y := range g.height {
		for x := range g.width {
			switch g.At(x, y) {
			case Wall:
				for _, f := range cellFaces(x, y) {
					if g.InBounds(f.nx, f.ny) && g.At(f.nx, f.ny) != Wall {
						segs = append(segs, f.seg)
					}
				}
			case Exit:
				for _, f := range cellFaces(x, y) {
					if g.InBounds(f.nx, f.ny) && g.At(f.nx, f.ny) == Wall {
						f.seg.IsExit = true
						segs = append(segs, f.seg)
					}
				}
			}
		}
	}
	return segs
}

type face struct {
	nx, ny int
	seg    WallSegment
}

// cellFaces returns the north, east, south and west faces of grid cell
// (x, y) with the neighbour each one looks onto.
func cellFaces(x, y int) [4]face {
	fx, fz := float64(x), float64(y)
	return [4]face{
		{x, y - 1, WallSegment{X1: fx, Z1: fz, X2: fx + 1, Z2: fz}},
		{x + 1, y, WallSegment{X1: fx + 1, Z1: fz, X2: fx + 1, Z2: fz + 1}},
		{x, y + 1, WallSegment{X1: fx + 1, Z1: fz + 1, X2: fx, Z2: fz + 1}},
		{x - 1, y, WallSegment{X1: fx, Z1: fz + 1, X2: fx, Z2: fz}},
	}
}
