package game

// CellView is what a presentation layer may know about a cell. Mine
// positions are only disclosed once the game is over.
type CellView struct {
	State    CellState
	NumMines int

	Exploded  bool
	Mine      bool
	WrongFlag bool
}

// View returns a snapshot of the board for rendering, indexed [y][x]
func (session *Session) View() [][]CellView {
	board := session.board
	isOver := !session.CanPlay()

	view := make([][]CellView, board.rows)
	for y := range view {
		view[y] = make([]CellView, board.cols)
		for x := range view[y] {
			cell := board.cellAt(x, y)
			cellView := CellView{
				State:    cell.state,
				Exploded: cell.isExploded,
			}
			if cell.IsOpen() {
				cellView.NumMines = cell.numMines
			}
			if isOver {
				cellView.Mine = cell.isMine
				cellView.WrongFlag = cell.IsFlagged() && !cell.isMine
			}
			view[y][x] = cellView
		}
	}
	return view
}
