package game

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReveal_CascadeStopsAtFlags(t *testing.T) {
	session := newTestSession(t, 3, 3, Coord{2, 2})

	_, err := session.ToggleFlag(1, 0)
	require.NoError(t, err)

	result, err := session.Reveal(0, 0)
	require.NoError(t, err)

	assert.Equal(t, Opened, result.Outcome)
	assert.ElementsMatch(t, []Coord{{0, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}, result.Opened)
	assert.Equal(t, InProgress, result.State)

	board := session.Board()
	assert.Equal(t, Flagged, board.CellAt(1, 0).State())
	assert.Equal(t, Closed, board.CellAt(2, 0).State())
	assert.Equal(t, Closed, board.CellAt(2, 1).State())
}

func TestReveal_CascadeProperties(t *testing.T) {
	logger, _ := test.NewNullLogger()

	for seed := int64(1); seed <= 25; seed++ {
		session, err := NewSession(GameConfig{Rows: 12, Cols: 15, NumMines: 20, Seed: seed, Logger: logger})
		require.NoError(t, err)
		board := session.Board()

		// Pick the first zero cell, so that every seed exercises the cascade
		var start *Cell
		for _, cell := range board.Cells() {
			if !board.IsMine(cell.X(), cell.Y()) && cell.NumMines() == 0 {
				start = cell
				break
			}
		}
		require.NotNil(t, start, "seed %d", seed)

		result, err := session.Reveal(start.X(), start.Y())
		require.NoError(t, err)
		require.Equal(t, Opened, result.Outcome)

		seen := make(map[Coord]bool)
		for _, coord := range result.Opened {
			assert.False(t, seen[coord], "%v opened twice (seed %d)", coord, seed)
			seen[coord] = true
			assert.False(t, board.IsMine(coord.X, coord.Y))
			assert.Equal(t, Open, board.CellAt(coord.X, coord.Y).State())
		}

		openCount := 0
		for _, cell := range board.Cells() {
			if cell.IsOpen() {
				openCount++
				assert.True(t, seen[cell.Coord()], "%v open but not reported (seed %d)", cell, seed)
			}
			if !cell.IsOpen() || cell.NumMines() > 0 {
				continue
			}
			for _, neighbor := range cell.Neighbors() {
				assert.True(t, neighbor.IsOpen(), "%v borders open zero %v but is closed (seed %d)", neighbor, cell, seed)
			}
		}
		assert.Equal(t, len(result.Opened), openCount)
		assert.Equal(t, board.NumCells()-board.NumMines()-openCount, board.NumSafeClosed())
	}
}

func TestReveal_LargeEmptyBoard(t *testing.T) {
	session := newTestSession(t, 300, 300)

	result, err := session.Reveal(150, 150)
	require.NoError(t, err)
	assert.Len(t, result.Opened, 300*300)
	assert.Equal(t, Won, result.State)
}

func TestFlood_VisitsEachCellOnce(t *testing.T) {
	board, err := NewBoardWithMines(4, 4, nil)
	require.NoError(t, err)

	visits := make(map[*Cell]int)
	flood(
		board.CellAt(0, 0),
		func(cell *Cell) bool {
			visits[cell]++
			return true
		},
		func(cell *Cell) []*Cell {
			return cell.Neighbors()
		},
	)

	assert.Len(t, visits, 16)
	for cell, count := range visits {
		assert.Equal(t, 1, count, "cell %v", cell)
	}
}
