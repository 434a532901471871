package game

// Director plays a game on behalf of a human
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Session)

	/**
	 * Perform a single move. Returns false once there is nothing left to do.
	 */
	Act() (bool, error)
}

// RunDirector lets director play until it gives up, the game ends or
// maxMoves moves have been made. afterMove, if non-nil, is called after
// every move.
func RunDirector(director Director, session *Session, maxMoves int, afterMove func()) error {
	director.Init(session)

	for moves := 0; moves < maxMoves && session.CanPlay(); moves++ {
		acted, err := director.Act()
		if err != nil {
			return err
		}
		if !acted {
			break
		}
		if afterMove != nil {
			afterMove()
		}
	}
	return nil
}
