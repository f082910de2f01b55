package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
	"github.com/vovakirdan/tui-bridge/internal/config"
	"github.com/vovakirdan/tui-bridge/internal/console"
)

// Theme holds the lipgloss styles used to draw the bridge.
type Theme struct {
	Marks   console.Marks
	Up      lipgloss.Style
	Down    lipgloss.Style
	Fail    lipgloss.Style
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewTheme builds a theme from display settings.
func NewTheme(d config.DisplayConfig) Theme {
	return Theme{
		Marks:   console.Marks{Success: d.SuccessMark, Failure: d.FailureMark},
		Up:      lipgloss.NewStyle().Foreground(lipgloss.Color(d.UpColor)).Bold(true),
		Down:    lipgloss.NewStyle().Foreground(lipgloss.Color(d.DownColor)).Bold(true),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color(d.FailColor)).Bold(true),
		Frame:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}

// RenderMap draws the move history as two colored rows, upper plank first.
// Cells ahead of the player are drawn as unvisited planks up to length.
func RenderMap(moves []bridge.Move, length int, t Theme) string {
	return renderRow(moves, length, bridge.Up, t) + "\n" + renderRow(moves, length, bridge.Down, t)
}

func renderRow(moves []bridge.Move, length int, side bridge.Direction, t Theme) string {
	rowStyle := t.Up
	if side == bridge.Down {
		rowStyle = t.Down
	}

	cells := make([]string, 0, length)
	for i := 0; i < length; i++ {
		if i >= len(moves) {
			cells = append(cells, t.Frame.Render("·"))
			continue
		}
		m := moves[i]
		mark := console.Cell(m, side, t.Marks)
		switch {
		case m.Direction != side:
			cells = append(cells, mark)
		case m.Correct:
			cells = append(cells, rowStyle.Render(mark))
		default:
			cells = append(cells, t.Fail.Render(mark))
		}
	}

	sep := t.Frame.Render(" | ")
	return t.Frame.Render("[ ") + strings.Join(cells, sep) + t.Frame.Render(" ]")
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
