package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Occupancy is a read-only view of the cells food must avoid.
// *Snake satisfies it.
type Occupancy interface {
	Contains(c core.Cell) bool
	Len() int
}

// Food is the single pickup on the board.
type Food struct {
	grid     core.GridSize
	rng      *rand.Rand
	position core.Cell
}

// NewFood creates food that has not been placed yet.
// Call Respawn to put it on the board.
func NewFood(grid core.GridSize, rng *rand.Rand) *Food {
	return &Food{
		grid:     grid,
		rng:      rng,
		position: core.NoCell,
	}
}

// Position returns the food cell, or core.NoCell when the board is full.
func (f *Food) Position() core.Cell {
	return f.position
}

// Placed reports whether the food sits on a real grid cell.
func (f *Food) Placed() bool {
	return f.grid.Contains(f.position)
}

// Respawn moves the food to a uniformly random cell not in occupied.
//
// While free cells are plentiful it samples the whole grid until it hits a
// free one. Once more than half the board is taken it lists the free cells
// and picks among them instead. With no free cell left the position becomes
// core.NoCell.
func (f *Food) Respawn(occupied Occupancy) {
	total := f.grid.Area()

	if occupied.Len() > total/2 {
		free := f.freeCells(occupied)
		if len(free) == 0 {
			f.position = core.NoCell
			return
		}
		f.position = free[f.rng.Intn(len(free))]
		return
	}

	for {
		c := core.Cell{
			Col: f.rng.Intn(f.grid.Cols),
			Row: f.rng.Intn(f.grid.Rows),
		}
		if !occupied.Contains(c) {
			f.position = c
			return
		}
	}
}

// freeCells collects unoccupied cells in row-major order.
func (f *Food) freeCells(occupied Occupancy) []core.Cell {
	free := make([]core.Cell, 0, max(f.grid.Area()-occupied.Len(), 0))
	for row, rowEnd := 0, f.grid.Rows; row < rowEnd; row++ {
		for col, colEnd := 0, f.grid.Cols; col < colEnd; col++ {
			c := core.Cell{Col: col, Row: row}
			if !occupied.Contains(c) {
				free = append(free, c)
			}
		}
	}
	return free
}
