package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/minefield/util/collections"
)

type NeighborGetter func(*Cell) []*Cell

// Visitor handles a cell taken off the worklist, returning whether the
// flood should continue into its neighbors
type Visitor func(*Cell) bool

// flood visits start and then, breadth first, every cell reachable through
// cells whose visit returned true. Each cell is visited at most once.
func flood(start *Cell, visit Visitor, getNeighbors NeighborGetter) {
	var visitQueue deque.Deque[*Cell]
	queued := collections.NewSet(start)
	visitQueue.PushBack(start)

	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront()
		if !visit(cell) {
			continue
		}

		for _, neighbor := range getNeighbors(cell) {
			if queued.Contains(neighbor) {
				continue
			}
			queued.Add(neighbor)
			visitQueue.PushBack(neighbor)
		}
	}
}

func closedNeighbors(cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, maxNeighbors)
	cell.SendNeighbors(func(neighbor *Cell) {
		if neighbor.IsClosed() {
			neighbors = append(neighbors, neighbor)
		}
	})
	return neighbors
}

// reveal opens cell, cascading through zero-count cells. Flagged and already
// open cells are left alone. The coordinates opened are returned in the
// order they were opened.
func (board *Board) reveal(cell *Cell) (RevealOutcome, []Coord) {
	if !cell.IsClosed() {
		return NoOp, nil
	}

	if cell.isMine {
		cell.state = Open
		cell.isExploded = true
		return Detonated, []Coord{cell.Coord()}
	}

	var opened []Coord
	flood(
		cell,
		func(cell *Cell) bool {
			if !cell.IsClosed() {
				return false
			}
			board.open(cell)
			opened = append(opened, cell.Coord())
			return cell.numMines == 0
		},
		closedNeighbors,
	)

	return Opened, opened
}

func (board *Board) open(cell *Cell) {
	cell.state = Open
	if !cell.isMine {
		board.numSafeClosed--
	}
}
