package game

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/they4kman/minefield/util/collections"
)

type Board struct {
	rows, cols int // in number of cells
	numMines   int
	cells      [][]Cell

	mines collections.Set[Coord]

	// Non-mine cells not yet opened; the game is won when this reaches zero
	numSafeClosed int
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

// NumSafeClosed returns how many non-mine cells remain unopened
func (board *Board) NumSafeClosed() int {
	return board.numSafeClosed
}

func (board *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.cols && y < board.rows
}

// CellAt returns the cell at (x, y), or nil if the coordinate lies outside the board
func (board *Board) CellAt(x, y int) *Cell {
	if board.InBounds(x, y) {
		return board.cellAt(x, y)
	}
	return nil
}

func (board *Board) cellAt(x, y int) *Cell {
	return &board.cells[y][x]
}

func (board *Board) checkedCellAt(x, y int) (*Cell, error) {
	if !board.InBounds(x, y) {
		return nil, errors.Wrapf(ErrOutOfBounds, "(%d, %d) on %dx%d board", x, y, board.cols, board.rows)
	}
	return board.cellAt(x, y), nil
}

// Cells returns every cell of the board, row by row
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for y := range board.cells {
		for x := range board.cells[y] {
			cells = append(cells, &board.cells[y][x])
		}
	}
	return cells
}

// Mines returns a copy of the board's mine layout
func (board *Board) Mines() collections.Set[Coord] {
	return board.mines.Clone()
}

func (board *Board) IsMine(x, y int) bool {
	return board.mines.Contains(Coord{x, y})
}

// CountAdjacentMines counts the mines surrounding (x, y) directly from the
// mine layout, without consulting any cached counts
func (board *Board) CountAdjacentMines(x, y int) (int, error) {
	if !board.InBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "(%d, %d) on %dx%d board", x, y, board.cols, board.rows)
	}
	return countAdjacentMines(board, x, y), nil
}

func countAdjacentMines(board *Board, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if board.InBounds(nx, ny) && board.mines.Contains(Coord{nx, ny}) {
				count++
			}
		}
	}
	return count
}

// NewBoard creates a rows x cols board with numMines randomly placed mines
func NewBoard(rows, cols, numMines int, rng *rand.Rand) (*Board, error) {
	if err := validateDimensions(rows, cols, numMines); err != nil {
		return nil, err
	}
	return createBoard(rows, cols, generateMines(rows, cols, numMines, rng)), nil
}

// NewBoardWithMines creates a rows x cols board with mines at exactly the
// given coordinates. Duplicates are collapsed.
func NewBoardWithMines(rows, cols int, mines []Coord) (*Board, error) {
	if err := validateDimensions(rows, cols, 0); err != nil {
		return nil, err
	}

	mineSet := collections.NewSet(mines...)
	for mine := range mineSet {
		if mine.X < 0 || mine.Y < 0 || mine.X >= cols || mine.Y >= rows {
			return nil, errors.Wrapf(ErrInvalidConfiguration,
				"mine %v lies outside the %dx%d board", mine, cols, rows)
		}
	}

	return createBoard(rows, cols, mineSet), nil
}

func createBoard(rows, cols int, mines collections.Set[Coord]) *Board {
	board := &Board{
		rows:          rows,
		cols:          cols,
		numMines:      mines.Len(),
		cells:         make([][]Cell, rows),
		mines:         mines,
		numSafeClosed: rows*cols - mines.Len(),
	}

	for y := 0; y < rows; y++ {
		row := make([]Cell, cols)
		board.cells[y] = row

		for x := 0; x < cols; x++ {
			cell := &row[x]
			cell.board = board
			cell.x, cell.y = x, y
			cell.state = Closed
		}
	}

	board.fillMines()
	return board
}

func (board *Board) fillMines() {
	for mine := range board.mines {
		cell := board.cellAt(mine.X, mine.Y)
		cell.isMine = true

		cell.SendNeighbors(func(neighbor *Cell) {
			neighbor.numMines++
		})
	}
}
