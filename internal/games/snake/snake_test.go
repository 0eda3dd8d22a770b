package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var testGrid = core.GridSize{Cols: 30, Rows: 20}

// snakeFrom builds a snake with the given body (head first) that has just
// moved in direction dir.
func snakeFrom(grid core.GridSize, dir core.Direction, body ...core.Cell) *Snake {
	s := &Snake{
		grid:      grid,
		body:      append([]core.Cell(nil), body...),
		occupied:  make(map[core.Cell]struct{}, len(body)),
		direction: dir,
		nextDir:   dir,
		alive:     true,
	}
	for _, c := range body {
		s.occupied[c] = struct{}{}
	}
	return s
}

// checkInvariants verifies that body and membership set agree.
func checkInvariants(t *testing.T, s *Snake) {
	t.Helper()

	if len(s.body) != len(s.occupied) {
		t.Fatalf("len(body) = %d, len(occupied) = %d", len(s.body), len(s.occupied))
	}
	for _, c := range s.body {
		if !s.Contains(c) {
			t.Fatalf("segment %v missing from occupied set", c)
		}
		if s.alive && !s.grid.Contains(c) {
			t.Fatalf("segment %v out of bounds while alive", c)
		}
	}
}

func TestNewSnake(t *testing.T) {
	s := NewSnake(testGrid)

	expected := []core.Cell{{Col: 15, Row: 10}, {Col: 14, Row: 10}, {Col: 13, Row: 10}}
	body := s.Body()
	if len(body) != len(expected) {
		t.Fatalf("Len() = %d, expected %d", len(body), len(expected))
	}
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}

	if s.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if !s.Alive() {
		t.Error("New snake should be alive")
	}
	if s.PendingGrowth() != 0 {
		t.Errorf("PendingGrowth() = %d, expected 0", s.PendingGrowth())
	}
	checkInvariants(t, s)
}

func TestFirstStep(t *testing.T) {
	s := NewSnake(testGrid)

	if !s.Step() {
		t.Fatal("Step() = false, expected true")
	}

	if s.Head() != (core.Cell{Col: 16, Row: 10}) {
		t.Errorf("Head() = %v, expected (16, 10)", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
	if s.Contains(core.Cell{Col: 13, Row: 10}) {
		t.Error("Old tail should have been removed")
	}
	checkInvariants(t, s)
}

func TestGrowthLaw(t *testing.T) {
	s := NewSnake(testGrid)

	s.Grow(1)
	s.Step()

	if s.Len() != 4 {
		t.Errorf("Len() after Grow(1)+Step() = %d, expected 4", s.Len())
	}
	if s.PendingGrowth() != 0 {
		t.Errorf("PendingGrowth() = %d, expected 0", s.PendingGrowth())
	}

	s.Step()
	if s.Len() != 4 {
		t.Errorf("Len() after Step() without growth = %d, expected 4", s.Len())
	}
	checkInvariants(t, s)
}

func TestGrowIsIncremental(t *testing.T) {
	s := NewSnake(testGrid)
	s.Grow(3)
	s.Grow(0)  // ignored
	s.Grow(-2) // ignored

	for i, expectedLen := range []int{4, 5, 6, 6, 6} {
		s.Step()
		if s.Len() != expectedLen {
			t.Errorf("step %d: Len() = %d, expected %d", i+1, s.Len(), expectedLen)
		}
	}
	checkInvariants(t, s)
}

func TestTailFollowing(t *testing.T) {
	// 2x2 loop: head at (0,0) having moved up, tail at (1,0).
	body := []core.Cell{{Col: 0, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 1, Row: 0}}

	t.Run("moving onto the vacating tail is legal", func(t *testing.T) {
		s := snakeFrom(testGrid, core.DirUp, body...)
		s.SetDirection(core.DirRight)

		if !s.Step() {
			t.Fatal("Step() onto tail = false, expected true")
		}
		if !s.Alive() {
			t.Error("Snake should still be alive")
		}
		if s.Head() != (core.Cell{Col: 1, Row: 0}) {
			t.Errorf("Head() = %v, expected (1, 0)", s.Head())
		}
		if s.Len() != 4 {
			t.Errorf("Len() = %d, expected 4", s.Len())
		}
		checkInvariants(t, s)
	})

	t.Run("tail does not vacate while growing", func(t *testing.T) {
		s := snakeFrom(testGrid, core.DirUp, body...)
		s.Grow(1)
		s.SetDirection(core.DirRight)

		if s.Step() {
			t.Fatal("Step() onto non-vacating tail = true, expected false")
		}
		if s.Alive() {
			t.Error("Snake should be dead")
		}
	})
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Direction
		body []core.Cell
	}{
		{"left wall", core.DirLeft, []core.Cell{{Col: 0, Row: 5}, {Col: 1, Row: 5}, {Col: 2, Row: 5}}},
		{"right wall", core.DirRight, []core.Cell{{Col: 29, Row: 5}, {Col: 28, Row: 5}, {Col: 27, Row: 5}}},
		{"top wall", core.DirUp, []core.Cell{{Col: 4, Row: 0}, {Col: 4, Row: 1}, {Col: 4, Row: 2}}},
		{"bottom wall", core.DirDown, []core.Cell{{Col: 4, Row: 19}, {Col: 4, Row: 18}, {Col: 4, Row: 17}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := snakeFrom(testGrid, tc.dir, tc.body...)

			if s.Step() {
				t.Fatal("Step() into wall = true, expected false")
			}
			if s.Alive() {
				t.Error("Snake should be dead after hitting wall")
			}

			got := s.Body()
			for i := range tc.body {
				if got[i] != tc.body[i] {
					t.Errorf("body[%d] = %v, expected unchanged %v", i, got[i], tc.body[i])
				}
			}
			checkInvariants(t, s)
		})
	}
}

func TestSelfCollision(t *testing.T) {
	// Head at (5,5) came up from (5,6); turning right hits (6,5).
	s := snakeFrom(testGrid, core.DirUp,
		core.Cell{Col: 5, Row: 5},
		core.Cell{Col: 5, Row: 6},
		core.Cell{Col: 6, Row: 6},
		core.Cell{Col: 6, Row: 5},
		core.Cell{Col: 6, Row: 4},
	)
	s.SetDirection(core.DirRight)

	if s.Step() {
		t.Fatal("Step() into own body = true, expected false")
	}
	if s.Alive() {
		t.Error("Snake should be dead after self collision")
	}
	if s.Len() != 5 || s.Head() != (core.Cell{Col: 5, Row: 5}) {
		t.Errorf("Body should be unchanged, got %v", s.Body())
	}
}

func TestStepAfterDeath(t *testing.T) {
	s := snakeFrom(testGrid, core.DirLeft, core.Cell{Col: 0, Row: 0}, core.Cell{Col: 1, Row: 0})
	s.Step()

	s.SetDirection(core.DirDown)
	if s.Step() {
		t.Error("Step() on a dead snake = true, expected false")
	}
	if s.Head() != (core.Cell{Col: 0, Row: 0}) {
		t.Errorf("Dead snake moved to %v", s.Head())
	}
}

func TestSetDirectionIgnoresReversal(t *testing.T) {
	s := NewSnake(testGrid)

	s.SetDirection(core.DirLeft)
	if s.NextDirection() != core.DirRight {
		t.Errorf("NextDirection() = %v, reversal should be ignored", s.NextDirection())
	}

	s.SetDirection(core.DirUp)
	if s.NextDirection() != core.DirUp {
		t.Errorf("NextDirection() = %v, expected up", s.NextDirection())
	}

	// Still compared against the applied direction (right), not the queued one.
	s.SetDirection(core.DirLeft)
	if s.NextDirection() != core.DirUp {
		t.Errorf("NextDirection() = %v, expected up to survive a reversal request", s.NextDirection())
	}

	if s.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, queued turns must not apply before Step", s.Direction())
	}

	s.Step()
	if s.Head() != (core.Cell{Col: 15, Row: 9}) {
		t.Errorf("Head() = %v, expected (15, 9)", s.Head())
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := core.GridSize{Cols: 8, Rows: 6}

	for game := 0; game < 200; game++ {
		s := NewSnake(grid)
		for step := 0; step < 200 && s.Alive(); step++ {
			prev := s.Direction()
			s.SetDirection(core.Direction(rng.Intn(4)))
			if s.NextDirection().IsOpposite(prev) {
				t.Fatalf("queued direction %v reverses %v", s.NextDirection(), prev)
			}
			if rng.Intn(4) == 0 {
				s.Grow(1)
			}
			s.Step()
			checkInvariants(t, s)
		}
	}
}
