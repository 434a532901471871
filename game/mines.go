package game

import (
	"math/rand"

	"github.com/they4kman/minefield/util/collections"
)

// generateMines draws random linear indexes until enough distinct cells have
// been picked. Index i maps to (i % cols, i / cols).
func generateMines(rows, cols, numMines int, rng *rand.Rand) collections.Set[Coord] {
	numCells := rows * cols
	if numMines > numCells {
		numMines = numCells
	}

	mines := make(collections.Set[Coord], numMines)
	for mines.Len() < numMines {
		idx := rng.Intn(numCells)
		mines.Add(Coord{idx % cols, idx / cols})
	}
	return mines
}
