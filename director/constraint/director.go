package constraint

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/util/collections"
)

// Director makes safe single-cell deductions from the open numbers, and
// guesses at random when none are available
type Director struct {
	Rand *rand.Rand
	Log  logrus.FieldLogger

	session *game.Session
	guesser *random.Director
}

// Observation records that exactly numMines of cells are mines
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	return fmt.Sprintf("Obs[(%d, %d), %d of %d]",
		observation.origin.X(), observation.origin.Y(), observation.numMines, observation.cells.Len())
}

func (director *Director) Init(session *game.Session) {
	director.session = session
	director.guesser = &random.Director{Rand: director.Rand}
	director.guesser.Init(session)
	if director.Log == nil {
		director.Log = logrus.StandardLogger()
	}
}

func (director *Director) Act() (bool, error) {
	if !director.session.CanPlay() {
		return false, nil
	}

	for _, observation := range director.observe() {
		acted, err := director.actDeliberate(observation)
		if err != nil || acted {
			return acted, err
		}
	}

	director.Log.Debug("no deliberate move available, guessing")
	return director.guesser.Act()
}

// observe builds an observation for every open number that still borders
// closed cells
func (director *Director) observe() []Observation {
	var observations []Observation

	for _, cell := range director.session.Board().Cells() {
		if !cell.IsOpen() || cell.NumMines() == 0 {
			continue
		}

		observation := Observation{
			origin:   cell,
			numMines: cell.NumMines(),
			cells:    make(collections.Set[*game.Cell]),
		}
		for _, neighbor := range cell.Neighbors() {
			switch neighbor.State() {
			case game.Closed:
				observation.cells.Add(neighbor)
			case game.Flagged:
				observation.numMines--
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, observation)
		}
	}
	return observations
}

func (director *Director) actDeliberate(observation Observation) (bool, error) {
	session := director.session

	switch {
	case observation.numMines == 0:
		director.Log.WithField("observation", observation).Debug("chording satisfied number")
		result, err := session.Chord(observation.origin.X(), observation.origin.Y())
		return result.Outcome != game.NoOp, err

	case observation.numMines == observation.cells.Len():
		director.Log.WithField("observation", observation).Debug("flagging certain mines")
		acted := false
		for cell := range observation.cells {
			outcome, err := session.ToggleFlag(cell.X(), cell.Y())
			if err != nil {
				return acted, err
			}
			if outcome == game.Placed {
				acted = true
			}
		}
		return acted, nil
	}

	return false, nil
}
