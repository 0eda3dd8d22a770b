// Package snake implements the classic single-player Snake simulation:
// movement and collision rules, food placement and the fixed-timestep loop
// that drives them independently of the render rate.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the game's top-level state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Game owns the snake, the food, the score and the tick accumulator.
type Game struct {
	grid   core.GridSize
	tickMs int
	rng    *rand.Rand

	snake       *Snake
	food        *Food
	score       int
	state       State
	accumulator int    // Unconsumed elapsed milliseconds
	ticks       uint64 // Ticks run since the current game started
}

// New creates a game and starts the first round.
func New(cfg core.RuntimeConfig) *Game {
	tickMs := cfg.TickMs
	if tickMs <= 0 {
		tickMs = core.DefaultConfig().TickMs
	}

	g := &Game{
		grid:   cfg.Grid,
		tickMs: tickMs,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	g.newGame()
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// newGame puts snake, food, score and accumulator back to their initial state.
func (g *Game) newGame() {
	g.snake = NewSnake(g.grid)
	g.food = NewFood(g.grid, g.rng)
	g.food.Respawn(g.snake)
	g.score = 0
	g.state = StatePlaying
	g.accumulator = 0
	g.ticks = 0
}

// Restart begins a new game. It only has an effect after game over.
func (g *Game) Restart() bool {
	if g.state != StateGameOver {
		return false
	}
	g.newGame()
	return true
}

// Frame advances the game by one rendered frame.
//
// Input is applied first, in arrival order. Then the elapsed time is spent
// on fixed-length ticks: several when the renderer lagged behind, none when
// it is running ahead of the simulation.
func (g *Game) Frame(elapsedMs int, in core.InputFrame) core.FrameResult {
	var result core.FrameResult

	if elapsedMs > 0 {
		g.accumulator += elapsedMs
	}

	for _, action := range in.Actions {
		if dir, ok := action.Direction(); ok {
			g.snake.SetDirection(dir)
			continue
		}
		if action == core.ActionRestart && g.Restart() {
			result.Events = append(result.Events, core.EventRestart)
		}
	}

	for g.accumulator >= g.tickMs && g.state == StatePlaying {
		g.accumulator -= g.tickMs
		result.Ticks++
		g.ticks++

		if !g.snake.Step() {
			g.state = StateGameOver
			result.Events = append(result.Events, core.EventGameOver)
			break
		}

		if g.snake.Head() == g.food.Position() {
			g.snake.Grow(1)
			g.score++
			g.food.Respawn(g.snake)
			result.Events = append(result.Events, core.EventFoodEaten)
			if !g.food.Placed() {
				result.Events = append(result.Events, core.EventBoardFull)
			}
		}
	}

	result.State = g.GameState()
	return result
}

// GameState returns the externally visible status.
func (g *Game) GameState() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
	}
}

// State returns the current state machine state.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of food items eaten this game.
func (g *Game) Score() int {
	return g.score
}

// Snake returns the current snake. Callers must treat it as read-only.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food. Callers must treat it as read-only.
func (g *Game) Food() *Food {
	return g.food
}

// Grid returns the playfield size.
func (g *Game) Grid() core.GridSize {
	return g.grid
}

// TickMs returns the fixed tick duration in milliseconds.
func (g *Game) TickMs() int {
	return g.tickMs
}

// Accumulator returns the elapsed milliseconds not yet spent on ticks.
func (g *Game) Accumulator() int {
	return g.accumulator
}

// Ticks returns the number of ticks run since the current game started.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
