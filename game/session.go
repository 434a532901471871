package game

import (
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/minefield/util/collections"
)

// Session is a single game: a board, its flag budget, win/loss state and
// timer. It is not safe for concurrent use; see package lobby.
type Session struct {
	board *Board
	flags *FlagLedger
	timer *Timer
	state GameState

	detonated *Cell

	log          logrus.FieldLogger
	onTimerStart func(*Session)
	onTimerStop  func(*Session)
}

// RevealResult describes the effect of a Reveal or Chord
type RevealResult struct {
	Outcome RevealOutcome
	// Cells opened by the move, in the order they were opened
	Opened []Coord
	State  GameState
}

// LossReport describes a lost game, for presentation
type LossReport struct {
	Detonated      Coord
	Mines          []Coord
	IncorrectFlags []Coord
}

func NewSession(config GameConfig) (*Session, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	board, err := config.createBoard()
	if err != nil {
		return nil, err
	}

	session := &Session{
		board:        board,
		flags:        newFlagLedger(board.numMines),
		timer:        NewTimer(config.Clock),
		state:        InProgress,
		onTimerStart: config.OnTimerStart,
		onTimerStop:  config.OnTimerStop,
	}
	session.log = config.logger().WithFields(logrus.Fields{
		"rows":  board.rows,
		"cols":  board.cols,
		"mines": board.numMines,
	})
	session.log.Info("created game")

	return session, nil
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Flags() *FlagLedger {
	return session.flags
}

func (session *Session) FlagsRemaining() int {
	return session.flags.Remaining()
}

func (session *Session) Timer() *Timer {
	return session.timer
}

func (session *Session) Elapsed() time.Duration {
	return session.timer.Elapsed()
}

func (session *Session) State() GameState {
	return session.state
}

func (session *Session) CanPlay() bool {
	return session.state == InProgress
}

// Reveal opens the cell at (x, y), cascading through empty regions
func (session *Session) Reveal(x, y int) (RevealResult, error) {
	cell, err := session.acceptMove(x, y)
	if err != nil {
		return RevealResult{State: session.state}, err
	}

	outcome, opened := session.board.reveal(cell)
	session.afterReveal(outcome)

	session.log.WithFields(logrus.Fields{
		"x":       x,
		"y":       y,
		"outcome": outcome,
		"opened":  len(opened),
	}).Debug("reveal")

	return RevealResult{Outcome: outcome, Opened: opened, State: session.state}, nil
}

// ToggleFlag places or removes a flag on the closed cell at (x, y)
func (session *Session) ToggleFlag(x, y int) (FlagOutcome, error) {
	cell, err := session.acceptMove(x, y)
	if err != nil {
		return FlagNoOp, err
	}

	outcome := session.flags.toggle(cell)

	session.log.WithFields(logrus.Fields{
		"x":         x,
		"y":         y,
		"outcome":   outcome,
		"remaining": session.flags.Remaining(),
	}).Debug("toggle flag")

	return outcome, nil
}

// Chord reveals every closed neighbor of the open cell at (x, y), provided
// the number of flags around it matches its mine count
func (session *Session) Chord(x, y int) (RevealResult, error) {
	cell, err := session.acceptMove(x, y)
	if err != nil {
		return RevealResult{State: session.state}, err
	}

	result := RevealResult{Outcome: NoOp}
	if cell.IsOpen() && cell.numMines > 0 && cell.numFlaggedNeighbors() == cell.numMines {
		for _, neighbor := range cell.Neighbors() {
			outcome, opened := session.board.reveal(neighbor)
			if outcome == NoOp {
				continue
			}
			result.Outcome = outcome
			result.Opened = append(result.Opened, opened...)

			if outcome == Detonated {
				break
			}
		}
	}
	session.afterReveal(result.Outcome)
	result.State = session.state

	session.log.WithFields(logrus.Fields{
		"x":       x,
		"y":       y,
		"outcome": result.Outcome,
		"opened":  len(result.Opened),
	}).Debug("chord")

	return result, nil
}

// acceptMove validates a move and starts the timer on the first one. Nothing
// is mutated when an error is returned.
func (session *Session) acceptMove(x, y int) (*Cell, error) {
	if !session.CanPlay() {
		return nil, ErrGameAlreadyTerminal
	}

	cell, err := session.board.checkedCellAt(x, y)
	if err != nil {
		return nil, err
	}

	if session.timer.Start() {
		session.log.Info("started game")
		if session.onTimerStart != nil {
			session.onTimerStart(session)
		}
	}
	return cell, nil
}

func (session *Session) afterReveal(outcome RevealOutcome) {
	switch outcome {
	case Detonated:
		session.lose()
	case Opened:
		if session.board.numSafeClosed == 0 {
			session.win()
		}
	}
}

func (session *Session) win() {
	session.state = Won
	session.endGame()
}

func (session *Session) lose() {
	session.state = Lost
	for _, cell := range session.board.Cells() {
		if cell.isExploded {
			session.detonated = cell
			break
		}
	}
	session.endGame()
}

func (session *Session) endGame() {
	if session.timer.Stop() && session.onTimerStop != nil {
		session.onTimerStop(session)
	}

	session.log.WithFields(logrus.Fields{
		"state":   session.state,
		"elapsed": session.timer.Elapsed(),
	}).Info("game over")
}

// LossReport returns details of a lost game; ok is false unless the game was lost
func (session *Session) LossReport() (report LossReport, ok bool) {
	if session.state != Lost || session.detonated == nil {
		return LossReport{}, false
	}

	flagged := make(collections.Set[Coord])
	for _, cell := range session.board.Cells() {
		if cell.IsFlagged() {
			flagged.Add(cell.Coord())
		}
	}

	return LossReport{
		Detonated:      session.detonated.Coord(),
		Mines:          sortedCoords(session.board.mines),
		IncorrectFlags: sortedCoords(flagged.Difference(session.board.mines)),
	}, true
}

func sortedCoords(set collections.Set[Coord]) []Coord {
	coords := set.Values()
	slices.SortFunc(coords, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return coords
}
