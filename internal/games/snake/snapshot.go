package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and debugging.
type Snapshot struct {
	Ticks         uint64
	Score         int
	SnakeLen      int
	Head          core.Cell
	Dir           core.Direction
	PendingGrowth int
	Food          core.Cell
	Accumulator   int
	State         State
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Ticks:         g.ticks,
		Score:         g.score,
		SnakeLen:      g.snake.Len(),
		Head:          g.snake.Head(),
		Dir:           g.snake.Direction(),
		PendingGrowth: g.snake.PendingGrowth(),
		Food:          g.food.Position(),
		Accumulator:   g.accumulator,
		State:         g.state,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s\n", s.Ticks, s.Score, s.State)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Growth: %d\n", s.SnakeLen, s.Dir, s.PendingGrowth)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.Head.Col, s.Head.Row, s.Food.Col, s.Food.Row)
	return b.String()
}
