package game

import (
	"fmt"
)

// Coord addresses a cell by column (X) and row (Y)
type Coord struct {
	X, Y int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.X, coord.Y)
}

type Cell struct {
	board *Board

	x, y     int
	numMines int

	isMine     bool
	isExploded bool

	state CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Coord() Coord {
	return Coord{cell.x, cell.y}
}

func (cell *Cell) State() CellState {
	return cell.state
}

func (cell *Cell) IsOpen() bool {
	return cell.state == Open
}

func (cell *Cell) IsFlagged() bool {
	return cell.state == Flagged
}

func (cell *Cell) IsClosed() bool {
	return cell.state == Closed
}

// NumMines returns the number of mines in the cell's neighborhood
func (cell *Cell) NumMines() int {
	return cell.numMines
}

// Neighbors returns the up to 8 cells surrounding this one
func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, maxNeighbors)
	cell.SendNeighbors(func(neighbor *Cell) {
		neighbors = append(neighbors, neighbor)
	})
	return neighbors
}

// SendNeighbors calls visit with each in-bounds neighbor of the cell
func (cell *Cell) SendNeighbors(visit func(*Cell)) {
	board := cell.board

	isAtTopBorder := cell.y < 1
	isAtBottomBorder := cell.y >= board.rows-1

	if cell.x >= 1 {
		visit(board.cellAt(cell.x-1, cell.y))

		if !isAtTopBorder {
			visit(board.cellAt(cell.x-1, cell.y-1))
		}
		if !isAtBottomBorder {
			visit(board.cellAt(cell.x-1, cell.y+1))
		}
	}

	if cell.x < board.cols-1 {
		visit(board.cellAt(cell.x+1, cell.y))

		if !isAtTopBorder {
			visit(board.cellAt(cell.x+1, cell.y-1))
		}
		if !isAtBottomBorder {
			visit(board.cellAt(cell.x+1, cell.y+1))
		}
	}

	if !isAtTopBorder {
		visit(board.cellAt(cell.x, cell.y-1))
	}
	if !isAtBottomBorder {
		visit(board.cellAt(cell.x, cell.y+1))
	}
}

func (cell *Cell) numFlaggedNeighbors() int {
	numFlagged := 0
	cell.SendNeighbors(func(neighbor *Cell) {
		if neighbor.IsFlagged() {
			numFlagged++
		}
	})
	return numFlagged
}
