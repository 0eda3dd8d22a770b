package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration:
// a 600x400 surface of 20px cells (30x20 grid), moving every 120ms at 60 FPS.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Window: WindowConfig{
			Width:    600,
			Height:   400,
			CellSize: 20,
		},
		Timing: TimingConfig{
			TickMs: 120,
			FPS:    60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
