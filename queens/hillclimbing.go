package queens

import (
	"fmt"
	"math/rand"
)

// HillClimbingSolver performs steepest-descent local search with random
// restarts. Each restart draws a fresh random board and repeatedly
// adopts the best single-queen move until no move strictly reduces the
// conflict count (a local optimum).
type HillClimbingSolver struct {
	n           int
	maxRestarts int
	rng         *rand.Rand
}

// NewHillClimbingSolver creates a solver for an n x n board that gives
// up after maxRestarts restarts. All random decisions draw from rng.
func NewHillClimbingSolver(n, maxRestarts int, rng *rand.Rand) (*HillClimbingSolver, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", n)
	}
	if maxRestarts < 1 {
		return nil, fmt.Errorf("max restarts must be positive, got %d", maxRestarts)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source must not be nil")
	}
	return &HillClimbingSolver{n: n, maxRestarts: maxRestarts, rng: rng}, nil
}

// Solve returns a zero-conflict board and true, or (nil, false) if no
// restart reached a solution.
func (s *HillClimbingSolver) Solve() (Board, bool) {
	for restart := 0; restart < s.maxRestarts; restart++ {
		board := RandomBoard(s.n, s.rng)
		conflicts := CountConflicts(board)

		for {
			neighbor, attacks := s.bestNeighbor(board)
			if attacks >= conflicts {
				break // local optimum
			}
			board = neighbor
			conflicts = attacks
		}

		if conflicts == 0 {
			return board, true
		}
	}
	return nil, false
}

// bestNeighbor scans every single-queen move (each row, each alternative
// column) and returns the lowest-conflict candidate found, or a copy of
// b itself when no move improves on it. Ties resolve to the first
// strictly better candidate in row-major, ascending-column order; a
// later candidate only replaces it on a strictly lower count. The input
// board is restored before returning.
func (s *HillClimbingSolver) bestNeighbor(b Board) (Board, int) {
	best := b.Clone()
	minAttacks := CountConflicts(b)

	for row := 0; row < s.n; row++ {
		originalCol := b[row]
		for col := 0; col < s.n; col++ {
			if col == originalCol {
				continue
			}
			b[row] = col
			if attacks := CountConflicts(b); attacks < minAttacks {
				minAttacks = attacks
				best = b.Clone()
			}
		}
		b[row] = originalCol
	}
	return best, minAttacks
}
