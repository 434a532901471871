package game

type CellState int
type GameState int

const (
	Closed CellState = iota
	Open
	Flagged
)

func (state CellState) String() string {
	switch state {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

const (
	InProgress GameState = iota
	Won
	Lost
)

func (state GameState) String() string {
	switch state {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// RevealOutcome is the result of revealing (or chording on) a cell
type RevealOutcome int

const (
	NoOp RevealOutcome = iota
	Opened
	Detonated
)

func (outcome RevealOutcome) String() string {
	switch outcome {
	case Opened:
		return "opened"
	case Detonated:
		return "detonated"
	default:
		return "no-op"
	}
}

// FlagOutcome is the result of toggling a flag
type FlagOutcome int

const (
	FlagNoOp FlagOutcome = iota
	Placed
	Removed
	Refused
)

func (outcome FlagOutcome) String() string {
	switch outcome {
	case Placed:
		return "placed"
	case Removed:
		return "removed"
	case Refused:
		return "refused"
	default:
		return "no-op"
	}
}

const maxNeighbors = 8
