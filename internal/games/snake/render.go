package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants. Terminal cells are roughly twice as tall as they are
// wide, so every grid cell is drawn two characters wide.
const (
	cellWidth = 2
	hudHeight = 1
)

// Overlay texts.
const (
	gameOverTitle = "Game Over"
	restartHint   = "Press Enter to Restart or Esc to Quit"
)

// RequiredSize returns the terminal size needed to draw a grid of this size:
// the HUD line plus the bordered board.
func RequiredSize(grid core.GridSize) (w, h int) {
	return grid.Cols*cellWidth + 2, grid.Rows + 2 + hudHeight
}

// Render draws the game to the screen. It never mutates game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	reqW, reqH := RequiredSize(g.grid)
	if dst.Width() < reqW || dst.Height() < reqH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	board := core.NewRect((dst.Width()-reqW)/2, hudHeight, reqW, g.grid.Rows+2)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderFood(dst, board)
	g.renderSnake(dst, board)

	if g.state == StateGameOver {
		dst.Dim()
		renderOverlay(dst, gameOverTitle, fmt.Sprintf("Final Score: %d", g.score), restartHint)
	}
}

// renderHUD draws the score readout above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawText(board.X, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	length := fmt.Sprintf("Length: %d", g.snake.Len())
	dst.DrawText(board.Right()-len(length), 0, length, core.ColorGray)
}

// renderBoard draws the border and the cosmetic grid dots.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, core.ColorGray)
	for row, rowEnd := 0, g.grid.Rows; row < rowEnd; row++ {
		for col, colEnd := 0, g.grid.Cols; col < colEnd; col++ {
			x, y := cellOrigin(board, core.Cell{Col: col, Row: row})
			dst.SetColored(x, y, '·', core.ColorGray)
		}
	}
}

func (g *Game) renderFood(dst *core.Screen, board core.Rect) {
	if !g.food.Placed() {
		return
	}
	fillCell(dst, board, g.food.Position(), core.ColorRed)
}

// renderSnake draws the body first so the head always wins.
func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	for i := len(g.snake.body) - 1; i > 0; i-- {
		fillCell(dst, board, g.snake.body[i], core.ColorGreen)
	}
	fillCell(dst, board, g.snake.Head(), core.ColorDarkGreen)
}

// cellOrigin maps a grid cell to the top-left character inside the border.
func cellOrigin(board core.Rect, c core.Cell) (x, y int) {
	return board.X + 1 + c.Col*cellWidth, board.Y + 1 + c.Row
}

func fillCell(dst *core.Screen, board core.Rect, c core.Cell, color core.Color) {
	x, y := cellOrigin(board, c)
	for i, iEnd := 0, cellWidth; i < iEnd; i++ {
		dst.SetColored(x+i, y, '█', color)
	}
}

// renderOverlay draws a centered box with one line of text per entry,
// separated by blank lines.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(maxLen+4, len(lines)*2+1)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, line, core.ColorWhite)
	}
}
