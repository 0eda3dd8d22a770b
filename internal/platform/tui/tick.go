// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, frame timing and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame and carries the frame time.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// frame interval at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// elapsedMs returns the milliseconds between two frames, never negative.
func elapsedMs(prev, now time.Time) int {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return int(now.Sub(prev) / time.Millisecond)
}
