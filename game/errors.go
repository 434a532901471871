package game

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration is returned when a board cannot be built from
	// the requested dimensions and mine count
	ErrInvalidConfiguration = errors.New("invalid board configuration")

	// ErrOutOfBounds is returned for coordinates outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrGameAlreadyTerminal is returned for moves made after the game was won or lost
	ErrGameAlreadyTerminal = errors.New("game already over")
)

func invalidConfiguration(rows, cols, numMines int) error {
	switch {
	case cols <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "cannot create a board with width %d", cols)
	case rows <= 0:
		return errors.Wrapf(ErrInvalidConfiguration, "cannot create a board with height %d", rows)
	case numMines < 0:
		return errors.Wrapf(ErrInvalidConfiguration, "cannot create a board with %d mines", numMines)
	default:
		return errors.Wrapf(ErrInvalidConfiguration,
			"not enough space for %d mines (%d > %d * %d)", numMines, numMines, cols, rows)
	}
}

func validateDimensions(rows, cols, numMines int) error {
	if rows <= 0 || cols <= 0 || numMines < 0 || numMines > rows*cols {
		return invalidConfiguration(rows, cols, numMines)
	}
	return nil
}
