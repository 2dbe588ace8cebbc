package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// colorCodes are the ANSI palette indexes for each screen color.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorPurple:        "129",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(colorCodes)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range colorCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

var (
	controlKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	controlLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginRight(2)
)

// RenderScreen converts a Screen buffer to a styled string, one line per row.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles each run of same-colored cells once, so a row costs one
// escape sequence per color change rather than per cell.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	runColor := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}

// ControlsBar renders the control bindings as a row of key badges and labels,
// in binding order.
func ControlsBar(controls config.Controls) string {
	parts := make([]string, 0, len(controls)*2)
	for _, b := range controls {
		key := "?"
		if len(b.Keys) > 0 {
			key = b.Keys[0]
		}
		parts = append(parts, controlKeyStyle.Render(key), controlLabelStyle.Render(" "+b.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
