// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Minimum grid size: the starting snake occupies Cols/2-2 .. Cols/2.
const (
	MinCols = 4
	MinRows = 1
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Window WindowConfig `yaml:"window"`
	Timing TimingConfig `yaml:"timing"`
}

// WindowConfig defines the drawing surface. The grid is the surface
// divided into square cells.
type WindowConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// TimingConfig defines the simulation and render rates.
type TimingConfig struct {
	TickMs int `yaml:"tick_ms"` // Milliseconds per simulation tick
	FPS    int `yaml:"fps"`     // Rendered frames per second
}

// Grid returns the playfield size in cells (integer division).
func (c SnakeConfig) Grid() core.GridSize {
	if c.Window.CellSize <= 0 {
		return core.GridSize{}
	}
	return core.GridSize{
		Cols: c.Window.Width / c.Window.CellSize,
		Rows: c.Window.Height / c.Window.CellSize,
	}
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Window.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.Window.CellSize)
	}

	grid := c.Grid()
	if grid.Cols < MinCols || grid.Rows < MinRows {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalid, grid.Cols, grid.Rows, MinCols, MinRows)
	}
	if c.Timing.TickMs <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.Timing.TickMs)
	}
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Timing.FPS)
	}
	return nil
}

// Runtime converts the config into the game's runtime configuration.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:   c.Grid(),
		TickMs: c.Timing.TickMs,
		FPS:    c.Timing.FPS,
		Seed:   seed,
	}
}
