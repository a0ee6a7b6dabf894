package queens

import "math/rand"

// Board is the problem state: index = row, value = column of the queen
// placed in that row. The backtracking solver keeps the prefix of
// placed rows mutually non-attacking by construction; the metaheuristic
// solvers allow any value sequence (duplicates included) and define
// "solved" purely as a conflict count of zero.
type Board []int

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// RandomBoard draws a board of n independent uniformly random column
// values in [0, n). Values are not required to be distinct.
func RandomBoard(n int, rng *rand.Rand) Board {
	b := make(Board, n)
	for i := range b {
		b[i] = rng.Intn(n)
	}
	return b
}

// MaxPairs returns the maximum number of attacking pairs on an n-sized
// board, n*(n-1)/2. It is the genetic algorithm's fitness ceiling.
func MaxPairs(n int) int {
	return n * (n - 1) / 2
}

// CountConflicts returns the number of unordered row pairs whose queens
// attack each other (shared column, r-c diagonal, or r+c anti-diagonal).
//
// It runs in O(n) time and O(n) space: one pass fills three frequency
// tables (columns, diagonals offset by n-1, anti-diagonals), a second
// pass sums k*(k-1)/2 over every bucket holding k queens. Pure
// function; the board is never modified.
func CountConflicts(b Board) int {
	n := len(b)
	if n < 2 {
		return 0
	}

	colCounts := make([]int, n)
	diagCounts := make([]int, 2*n-1) // r - c + n - 1
	antiCounts := make([]int, 2*n-1) // r + c
	for r, c := range b {
		colCounts[c]++
		diagCounts[r-c+n-1]++
		antiCounts[r+c]++
	}

	conflicts := 0
	for _, k := range colCounts {
		conflicts += k * (k - 1) / 2
	}
	for i := 0; i < 2*n-1; i++ {
		conflicts += diagCounts[i] * (diagCounts[i] - 1) / 2
		conflicts += antiCounts[i] * (antiCounts[i] - 1) / 2
	}
	return conflicts
}
