package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Grid   GridSize // Playfield size in cells
	TickMs int      // Simulation tick duration in milliseconds
	FPS    int      // Render frames per second
	Seed   int64    // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults:
// a 600x400 surface with 20px cells, moving every 120ms at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:   GridSize{Cols: 30, Rows: 20},
		TickMs: 120,
		FPS:    60,
		Seed:   0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible status of the game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the snake has died
}

// Event is something notable that happened during a frame.
// Events are informational; the simulation never reports errors.
type Event int

const (
	EventFoodEaten Event = iota
	EventBoardFull
	EventGameOver
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventFoodEaten:
		return "food_eaten"
	case EventBoardFull:
		return "board_full"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// FrameResult is returned by Game.Frame after each rendered frame.
type FrameResult struct {
	State  GameState
	Ticks  int     // Simulation ticks run during this frame
	Events []Event // In the order they happened
}
