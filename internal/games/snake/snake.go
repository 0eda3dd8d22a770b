package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// initialLength is the number of segments a new snake starts with.
const initialLength = 3

// Snake is the player-controlled body on the grid.
//
// The body is kept twice: as an ordered slice (head at index 0) for
// traversal and tail eviction, and as a set for O(1) collision lookup.
// Both are unexported and only mutated by Step, so they never disagree.
type Snake struct {
	grid     core.GridSize
	body     []core.Cell // Head at index 0
	occupied map[core.Cell]struct{}

	direction core.Direction
	nextDir   core.Direction // Buffered direction for next step
	growth    int            // Ticks left during which the tail stays put
	alive     bool
}

// NewSnake creates a 3-segment snake centered on the grid, heading right.
func NewSnake(grid core.GridSize) *Snake {
	center := grid.Center()
	s := &Snake{
		grid:      grid,
		body:      make([]core.Cell, 0, initialLength),
		occupied:  make(map[core.Cell]struct{}, initialLength),
		direction: core.DirRight,
		nextDir:   core.DirRight,
		alive:     true,
	}
	for i, iEnd := 0, initialLength; i < iEnd; i++ {
		c := core.Cell{Col: center.Col - i, Row: center.Row}
		s.body = append(s.body, c)
		s.occupied[c] = struct{}{}
	}
	return s
}

// Head returns the first segment.
func (s *Snake) Head() core.Cell {
	if len(s.body) == 0 {
		panic("snake: empty body")
	}
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() core.Cell {
	return s.body[len(s.body)-1]
}

// SetDirection queues d for the next step.
// A request for the exact opposite of the applied direction is ignored:
// the head would turn straight into the neck.
func (s *Snake) SetDirection(d core.Direction) {
	if d.IsOpposite(s.direction) {
		return
	}
	s.nextDir = d
}

// Step moves the snake one cell and reports whether it progressed.
// On a wall or self collision the snake dies and the body is left untouched.
func (s *Snake) Step() bool {
	if !s.alive {
		return false
	}

	s.direction = s.nextDir
	newHead := s.Head().Add(s.direction)

	if !s.grid.Contains(newHead) {
		s.alive = false
		return false
	}

	// Without pending growth the tail vacates its cell this tick,
	// so moving onto it is legal.
	tail := s.Tail()
	willRemoveTail := s.growth == 0
	if s.Contains(newHead) && (!willRemoveTail || newHead != tail) {
		s.alive = false
		return false
	}

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	s.occupied[newHead] = struct{}{}

	if s.growth > 0 {
		s.growth--
	} else {
		s.body = s.body[:len(s.body)-1]
		// The tail cell may be the new head when following the tail.
		if tail != newHead {
			delete(s.occupied, tail)
		}
	}

	return true
}

// Grow schedules n extra segments, added one per subsequent step.
func (s *Snake) Grow(n int) {
	if n <= 0 {
		return
	}
	s.growth += n
}

// Contains reports whether a segment occupies c.
func (s *Snake) Contains(c core.Cell) bool {
	_, ok := s.occupied[c]
	return ok
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Cell {
	return append([]core.Cell(nil), s.body...)
}

// Direction returns the direction applied on the last step.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// NextDirection returns the direction queued for the next step.
func (s *Snake) NextDirection() core.Direction {
	return s.nextDir
}

// PendingGrowth returns how many more steps will lengthen the snake.
func (s *Snake) PendingGrowth() int {
	return s.growth
}

// Alive reports whether the snake has not collided yet.
func (s *Snake) Alive() bool {
	return s.alive
}
