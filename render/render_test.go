package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/minefield/game"
)

// 4 columns, 3 rows:
//
//	. . 1 M
//	1 1 1 1
//	M 1 . .
func newSession(t *testing.T) *game.Session {
	t.Helper()

	logger, _ := test.NewNullLogger()
	frozen := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	session, err := game.NewSession(game.GameConfig{
		Rows:   3,
		Cols:   4,
		Mines:  []game.Coord{{X: 3, Y: 0}, {X: 0, Y: 2}},
		Logger: logger,
		Clock:  func() time.Time { return frozen },
	})
	require.NoError(t, err)
	return session
}

func assertGolden(t *testing.T, name string, session *game.Session) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Board(&buf, session))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func TestBoard_InProgress(t *testing.T) {
	session := newSession(t)

	_, err := session.Reveal(0, 0)
	require.NoError(t, err)
	_, err = session.ToggleFlag(3, 0)
	require.NoError(t, err)

	assertGolden(t, "in_progress", session)
}

func TestBoard_Lost(t *testing.T) {
	session := newSession(t)

	_, err := session.Reveal(0, 0)
	require.NoError(t, err)
	_, err = session.ToggleFlag(3, 0)
	require.NoError(t, err)
	_, err = session.ToggleFlag(3, 1)
	require.NoError(t, err)
	_, err = session.Reveal(0, 2)
	require.NoError(t, err)
	require.Equal(t, game.Lost, session.State())

	assertGolden(t, "lost", session)
}

func TestBoard_Won(t *testing.T) {
	session := newSession(t)

	_, err := session.Reveal(0, 0)
	require.NoError(t, err)
	_, err = session.ToggleFlag(3, 0)
	require.NoError(t, err)
	_, err = session.Reveal(3, 2)
	require.NoError(t, err)
	require.Equal(t, game.Won, session.State())

	assertGolden(t, "won", session)
}

func TestCell(t *testing.T) {
	tests := []struct {
		cell game.CellView
		want string
	}{
		{game.CellView{State: game.Closed}, "#"},
		{game.CellView{State: game.Closed, Mine: true}, "O"},
		{game.CellView{State: game.Flagged}, "f"},
		{game.CellView{State: game.Flagged, Mine: true}, "F"},
		{game.CellView{State: game.Flagged, WrongFlag: true}, "x"},
		{game.CellView{State: game.Open}, "."},
		{game.CellView{State: game.Open, NumMines: 8}, "8"},
		{game.CellView{State: game.Open, Exploded: true, Mine: true}, "*"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Cell(tt.cell))
	}
}
