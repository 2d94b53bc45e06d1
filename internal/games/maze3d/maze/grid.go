package maze

import "strings"

// Code is the content of one wall-grid cell.
type Code uint8

// Grid cell codes.
const (
	Empty Code = 0
	Wall  Code = 1
	Exit  Code = 2
)

// Grid is the double-resolution collision grid of a maze. A maze of W x H
// logical cells yields a (2W+1) x (2H+1) grid where logical cell (x, y) sits
// at (2x+1, 2y+1) and even coordinates hold the boundaries between cells.
type Grid struct {
	width  int
	height int
	codes  []Code
}

// NewGrid returns a grid of the given size filled with walls.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height, codes: make([]Code, width*height)}
	for i := range g.codes {
		g.codes[i] = Wall
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the code at (x, y). Out-of-bounds queries return Wall.
func (g *Grid) At(x, y int) Code {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.codes[y*g.width+x]
}

// Set stores a code at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Code) {
	if !g.InBounds(x, y) {
		return
	}
	g.codes[y*g.width+x] = c
}

// IsWall reports whether (x, y) is solid. Anything outside the grid is solid.
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == Wall
}

// IsExit reports whether (x, y) is the exit cell. Always false out of bounds.
func (g *Grid) IsExit(x, y int) bool {
	return g.InBounds(x, y) && g.codes[y*g.width+x] == Exit
}

// Count returns how many cells hold the given code.
func (g *Grid) Count(c Code) int {
	n := 0
	for _, v := range g.codes {
		if v == c {
			n++
		}
	}
	return n
}

// Passages returns the number of open boundary cells, i.e. carved walls
// between two logical cells.
func (g *Grid) Passages() int {
	n := 0
	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			if (x+y)%2 == 1 && g.At(x, y) != Wall {
				n++
			}
		}
	}
	return n
}

// String renders the grid as ASCII: '#' wall, '.' floor, 'E' exit.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := range g.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.width {
			switch g.At(x, y) {
			case Wall:
				sb.WriteByte('#')
			case Exit:
				sb.WriteByte('E')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
