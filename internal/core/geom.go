// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is a single grid position addressed by column and row.
type Cell struct {
	Col, Row int
}

// NoCell is the off-grid sentinel used when no valid cell exists.
var NoCell = Cell{Col: -1, Row: -1}

// Add returns the neighbouring cell one step in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Direction is one of the four unit movement vectors.
type Direction int

// Ordered clockwise so that the opposite of d is (d+2)%4.
const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the (dx, dy) grid offset for the direction.
// Rows grow downwards, so Up is (0, -1).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// IsOpposite reports whether d and other point in exactly opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// GridSize describes the playfield dimensions in cells.
type GridSize struct {
	Cols, Rows int
}

// Contains returns true if the cell lies inside the grid.
func (g GridSize) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

// Area returns the total number of cells.
func (g GridSize) Area() int {
	return g.Cols * g.Rows
}

// Center returns the middle cell (rounded down).
func (g GridSize) Center() Cell {
	return Cell{Col: g.Cols / 2, Row: g.Rows / 2}
}

// Rect represents an axis-aligned character-space rectangle.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}
