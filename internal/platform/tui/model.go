package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of lines reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model running the game.
//
// Every FrameMsg is one rendered frame: the input collected since the
// previous frame and the elapsed wall-clock time are handed to the game,
// which decides how many fixed ticks to run.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	fps       int
	input     core.InputFrame
	lastFrame time.Time
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, fps int, logger *log.Logger) Model {
	w, h := snake.RequiredSize(game.Grid())
	return Model{
		game:   game,
		screen: core.NewScreen(w, h),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		fps:    fps,
		input:  core.NewInputFrame(),
		width:  w,
		height: h + helpHeight,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("starting game",
		"grid", m.game.Grid(),
		"tick_ms", m.game.TickMs(),
		"fps", m.fps,
	)
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next frame, or quits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.logger.Info("quit", "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Set(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// MinTerminalSize returns the terminal size needed to show the whole board
// and the help line.
func MinTerminalSize(grid core.GridSize) (w, h int) {
	w, h = snake.RequiredSize(grid)
	return w, h + helpHeight
}

// fits reports whether the whole board is visible.
func (m Model) fits() bool {
	w, h := MinTerminalSize(m.game.Grid())
	return m.width >= w && m.height >= h
}

// handleFrame advances the game by the time since the previous frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := elapsedMs(m.lastFrame, now)
	m.lastFrame = now

	// Time spent with a partly hidden board is dropped, not caught up on.
	if !m.fits() {
		m.input.Clear()
		return m, frameCmd(m.fps)
	}

	result := m.game.Frame(elapsed, m.input)
	m.input.Clear()
	m.logEvents(result)
	m.keys.Restart.SetEnabled(result.State.GameOver)

	return m, frameCmd(m.fps)
}

// logEvents records what happened during a frame.
func (m Model) logEvents(result core.FrameResult) {
	for _, ev := range result.Events {
		switch ev {
		case core.EventFoodEaten:
			m.logger.Debug("food eaten",
				"score", result.State.Score,
				"length", m.game.Snake().Len(),
				"next_food", m.game.Food().Position(),
			)
		case core.EventBoardFull:
			m.logger.Info("board full", "score", result.State.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", result.State.Score, "ticks", m.game.Ticks())
			m.logger.Debug("final state", "state", m.game.DebugState())
		case core.EventRestart:
			m.logger.Info("new game")
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game.
func Run(game *snake.Game, fps int, logger *log.Logger) error {
	model := NewModel(game, fps, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
