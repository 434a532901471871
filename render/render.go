package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/they4kman/minefield/game"
)

// Cell returns the single-character representation of a cell
func Cell(cell game.CellView) string {
	switch cell.State {
	case game.Open:
		switch {
		case cell.Exploded:
			return "*"
		case cell.NumMines == 0:
			return "."
		default:
			return strconv.Itoa(cell.NumMines)
		}
	case game.Flagged:
		switch {
		case cell.WrongFlag:
			return "x"
		case cell.Mine:
			return "F"
		default:
			return "f"
		}
	default:
		if cell.Mine {
			return "O"
		}
		return "#"
	}
}

// Board writes the session's board, one line per row, followed by a status line
func Board(w io.Writer, session *game.Session) error {
	out := bufio.NewWriter(w)

	for _, row := range session.View() {
		for _, cell := range row {
			out.WriteString(Cell(cell))
		}
		out.WriteByte('\n')
	}

	fmt.Fprintf(out, "mines: %03d  time: %ds  state: %s\n",
		session.FlagsRemaining(), session.Timer().Seconds(), session.State())

	return out.Flush()
}
