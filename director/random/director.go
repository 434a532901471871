package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/minefield/game"
)

// Director reveals closed, unflagged cells at random
type Director struct {
	Rand *rand.Rand

	session *game.Session
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	if director.Rand == nil {
		director.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

func (director *Director) Act() (bool, error) {
	if !director.session.CanPlay() {
		return false, nil
	}

	var candidates []*game.Cell
	for _, cell := range director.session.Board().Cells() {
		if cell.IsClosed() {
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return false, nil
	}

	cell := candidates[director.Rand.Intn(len(candidates))]
	if _, err := director.session.Reveal(cell.X(), cell.Y()); err != nil {
		return false, err
	}
	return true, nil
}
