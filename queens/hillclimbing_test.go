package queens

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHillClimbingValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewHillClimbingSolver(0, 10, rng)
	require.Error(t, err)
	_, err = NewHillClimbingSolver(8, 0, rng)
	require.Error(t, err)
	_, err = NewHillClimbingSolver(8, 10, nil)
	require.Error(t, err)
}

func TestHillClimbingSolvesEightQueens(t *testing.T) {
	solver, err := NewHillClimbingSolver(8, 200, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	board, ok := solver.Solve()
	require.True(t, ok, "expected a solution within 200 restarts")
	require.Len(t, board, 8)
	assert.Zero(t, CountConflicts(board))
}

func TestHillClimbingNoSolutionForThreeQueens(t *testing.T) {
	// 3-queens has no solution, so every restart ends in a nonzero
	// local optimum.
	solver, err := NewHillClimbingSolver(3, 5, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	board, ok := solver.Solve()
	assert.False(t, ok)
	assert.Nil(t, board)
}

func TestBestNeighborNeverWorse(t *testing.T) {
	solver, err := NewHillClimbingSolver(8, 1, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 25; trial++ {
		board := RandomBoard(8, rng)
		snapshot := board.Clone()

		neighbor, attacks := solver.bestNeighbor(board)

		assert.LessOrEqual(t, attacks, CountConflicts(board))
		assert.Equal(t, CountConflicts(neighbor), attacks)
		assert.Equal(t, snapshot, board, "scan must restore the input board")
	}
}

func TestHillClimbingDescentIsMonotonic(t *testing.T) {
	const n = 8
	solver, err := NewHillClimbingSolver(n, 1, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(6))
	for trial := 0; trial < 10; trial++ {
		board := RandomBoard(n, rng)
		conflicts := CountConflicts(board)

		steps := 0
		for {
			neighbor, attacks := solver.bestNeighbor(board)
			if attacks >= conflicts {
				break
			}
			require.Less(t, attacks, conflicts, "accepted move must strictly improve")
			board = neighbor
			conflicts = attacks
			steps++
			require.LessOrEqual(t, steps, n*(n-1), "descent must terminate within the neighborhood bound")
		}
	}
}

func TestHillClimbingDeterministicUnderSeed(t *testing.T) {
	run := func() (Board, bool) {
		solver, err := NewHillClimbingSolver(6, 50, rand.New(rand.NewSource(9)))
		require.NoError(t, err)
		return solver.Solve()
	}

	first, okFirst := run()
	second, okSecond := run()
	assert.Equal(t, okFirst, okSecond)
	assert.Equal(t, first, second)
}
