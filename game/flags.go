package game

// FlagLedger tracks how many flags are still available to place
type FlagLedger struct {
	budget    int
	remaining int
}

func newFlagLedger(budget int) *FlagLedger {
	return &FlagLedger{
		budget:    budget,
		remaining: budget,
	}
}

func (ledger *FlagLedger) Remaining() int {
	return ledger.remaining
}

func (ledger *FlagLedger) Budget() int {
	return ledger.budget
}

func (ledger *FlagLedger) Placed() int {
	return ledger.budget - ledger.remaining
}

func (ledger *FlagLedger) toggle(cell *Cell) FlagOutcome {
	switch cell.state {
	case Closed:
		if ledger.remaining == 0 {
			return Refused
		}
		cell.state = Flagged
		ledger.remaining--
		return Placed
	case Flagged:
		cell.state = Closed
		ledger.remaining++
		return Removed
	default:
		return FlagNoOp
	}
}
