// Package maze generates perfect mazes with a recursive backtracker and
// converts them into a double-resolution wall grid plus the list of wall
// faces visible from inside the maze.
package maze

// Cell is a logical maze cell during generation: a wall bitmask plus a
// visited flag. Cells are discarded once the grid is built.
type Cell uint8

// Wall bits.
const (
	North Cell = 1 << iota
	East
	South
	West

	visited Cell = 1 << 4

	allWalls = North | East | South | West
)

// direction couples a wall bit with its grid step and the opposite wall.
type direction struct {
	wall     Cell
	opposite Cell
	dx, dy   int
}

// N, E, S, W order.
var directions = [4]direction{
	{North, South, 0, -1},
	{East, West, 1, 0},
	{South, North, 0, 1},
	{West, East, -1, 0},
}

// HasWall reports whether the given wall bit is still standing.
func (c Cell) HasWall(w Cell) bool {
	return c&w != 0
}

// Visited reports whether the generator has reached this cell.
func (c Cell) Visited() bool {
	return c&visited != 0
}
