package console

import (
	"strings"

	"github.com/vovakirdan/tui-bridge/internal/bridge"
)

// Marks are the symbols drawn in map cells.
type Marks struct {
	Success string
	Failure string
}

// DefaultMarks returns the classic O/X marks.
func DefaultMarks() Marks {
	return Marks{Success: "O", Failure: "X"}
}

// RenderMap draws the move history as two rows, upper plank first:
//
//	[ O |   | O ]
//	[   | O |   ]
//
// A cell holds a mark when the move at that position chose the row's side.
func RenderMap(moves []bridge.Move, marks Marks) string {
	return RenderRow(moves, bridge.Up, marks) + "\n" + RenderRow(moves, bridge.Down, marks)
}

// RenderRow draws the row for one side of the bridge.
func RenderRow(moves []bridge.Move, side bridge.Direction, marks Marks) string {
	cells := make([]string, len(moves))
	for i, m := range moves {
		cells[i] = Cell(m, side, marks)
	}
	if len(cells) == 0 {
		return "[ ]"
	}
	return "[ " + strings.Join(cells, " | ") + " ]"
}

// Cell returns the mark for move m in the row for side, or a blank.
func Cell(m bridge.Move, side bridge.Direction, marks Marks) string {
	if m.Direction != side {
		return " "
	}
	if m.Correct {
		return marks.Success
	}
	return marks.Failure
}
