package blockfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Layout constants, in terminal cells.
const (
	cellW    = 2  // Each board cell is two characters wide to look square
	panelW   = 16 // Side panel with score and preview
	panelGap = 2
)

const (
	blockRune = '█'
	ghostRune = '░'
)

// keyGlyphs shortens key names for the controls line.
var keyGlyphs = map[string]string{
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
}

// layoutSize returns the screen size needed to draw the whole game.
func (g *Game) layoutSize() (int, int) {
	boardW := g.props.Board.Cols*cellW + 2
	boardH := g.props.Board.Rows + 2
	return boardW + panelGap + panelW, boardH + 1
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	totalW, totalH := g.layoutSize()
	ox := core.Max(0, (dst.Width()-totalW)/2)
	oy := core.Max(0, (dst.Height()-totalH)/2)

	boardRect := core.NewRect(ox, oy, g.board.Cols()*cellW+2, g.board.Rows()+2)
	dst.DrawBox(boardRect)
	g.renderBoard(dst, boardRect)
	g.renderPanel(dst, boardRect.Right()+panelGap, oy)
	dst.DrawTextCentered(boardRect.Bottom(), ControlsLine(g.props.Controls))

	switch {
	case g.gameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d - Press R to restart", g.score))
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBoard draws locked cells, the ghost and the falling piece inside the box.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	put := func(row, col int, r rune, c core.Color) {
		x := inner.X + col*cellW
		y := inner.Y + row
		if !inner.Contains(x, y) {
			return
		}
		for i := range cellW {
			dst.SetColored(x+i, y, r, c)
		}
	}

	for row := range g.board.Rows() {
		for col := range g.board.Cols() {
			if kind, ok := g.board.At(row, col); ok {
				put(row, col, blockRune, g.colors[kind])
			}
		}
	}

	if g.gameOver {
		return
	}

	color := g.colors[g.current.Kind]
	ghost := g.current
	ghost.Row = g.ghostRow()
	ghost.each(func(row, col int) { put(row, col, ghostRune, color) })
	g.current.each(func(row, col int) { put(row, col, blockRune, color) })
}

// renderPanel draws score, lines, level and the next-piece preview.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "BLOCKFALL", core.ColorBrightWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score %8d", g.score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines %8d", g.lines))
	dst.DrawText(x, y+4, fmt.Sprintf("Level %8d", g.level))

	if !g.props.Gameplay.ShowNextPiece {
		return
	}

	dst.DrawText(x, y+6, "Next")
	next := g.Next()
	m, err := g.catalog.Shape(next)
	if err != nil {
		return
	}
	drawMatrix(dst, m, x, y+8, g.colors[next])
}

// drawMatrix draws a shape matrix with its top-left at (x, y).
func drawMatrix(dst *core.Screen, m shapes.Matrix, x, y int, c core.Color) {
	for r := 0; r < m.Rows(); r++ {
		for col := 0; col < m.Cols(); col++ {
			if !m.Filled(r, col) {
				continue
			}
			for i := range cellW {
				dst.SetColored(x+col*cellW+i, y+r, blockRune, c)
			}
		}
	}
}

// ControlsLine builds the one-line key legend from the control bindings.
func ControlsLine(controls config.Controls) string {
	parts := make([]string, 0, len(controls)+3)
	for _, b := range controls {
		parts = append(parts, keyHint(b)+" "+b.Label)
	}
	parts = append(parts, "Space Drop", "P Pause", "Q Quit")
	return strings.Join(parts, "  ")
}

// keyHint returns the display form of a binding's first key.
func keyHint(b config.ControlBinding) string {
	if len(b.Keys) == 0 {
		return "?"
	}
	if glyph, ok := keyGlyphs[b.Keys[0]]; ok {
		return glyph
	}
	return strings.ToUpper(b.Keys[0])
}

// renderOverlay draws a centered boxed message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
