package queens

import (
	"errors"
	"fmt"
)

// MaxBacktrackingSize is the largest board the exhaustive search will
// attempt. Beyond it the search space is large enough that a full
// enumeration is computationally infeasible.
const MaxBacktrackingSize = 15

// ErrInfeasible is returned by BacktrackingSolver.Solve when the board
// size exceeds MaxBacktrackingSize. It signals "skipped", which is
// distinct from "searched and found nothing" (an empty Solutions set
// with a nil error).
var ErrInfeasible = errors.New("exhaustive search skipped: board size computationally infeasible")

// BacktrackingSolver enumerates every N-Queens solution with a
// depth-first search. Placed queens are mirrored into three occupancy
// sets so that safety at a candidate square is an O(1) check.
type BacktrackingSolver struct {
	n        int
	board    Board
	colUsed  []bool // occupied columns
	diagUsed []bool // occupied r-c diagonals, offset by n-1
	antiUsed []bool // occupied r+c anti-diagonals

	// Solutions accumulates a copy of every completed board, in the
	// deterministic order the search visits them.
	Solutions []Board
}

// NewBacktrackingSolver creates a solver for an n x n board.
func NewBacktrackingSolver(n int) (*BacktrackingSolver, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", n)
	}
	s := &BacktrackingSolver{
		n:        n,
		board:    make(Board, n),
		colUsed:  make([]bool, n),
		diagUsed: make([]bool, 2*n-1),
		antiUsed: make([]bool, 2*n-1),
	}
	for i := range s.board {
		s.board[i] = -1 // unassigned
	}
	return s, nil
}

// Solve runs the exhaustive search from row 0, appending every complete
// solution to s.Solutions. For n > MaxBacktrackingSize it returns
// ErrInfeasible before attempting any placement.
func (s *BacktrackingSolver) Solve() error {
	if s.n > MaxBacktrackingSize {
		return ErrInfeasible
	}
	s.placeFrom(0)
	return nil
}

// safe reports whether a queen at (row, col) attacks no placed queen.
func (s *BacktrackingSolver) safe(row, col int) bool {
	return !s.colUsed[col] &&
		!s.diagUsed[row-col+s.n-1] &&
		!s.antiUsed[row+col]
}

func (s *BacktrackingSolver) placeFrom(row int) {
	if row == s.n {
		// Every row is filled and the prefix invariant guarantees zero
		// conflicts, so this is a solution.
		s.Solutions = append(s.Solutions, s.board.Clone())
		return
	}

	for col := 0; col < s.n; col++ {
		if !s.safe(row, col) {
			continue
		}
		s.board[row] = col
		s.colUsed[col] = true
		s.diagUsed[row-col+s.n-1] = true
		s.antiUsed[row+col] = true

		s.placeFrom(row + 1)

		// Backtrack unconditionally so the remaining columns of this
		// row are explored too.
		s.board[row] = -1
		s.colUsed[col] = false
		s.diagUsed[row-col+s.n-1] = false
		s.antiUsed[row+col] = false
	}
}
