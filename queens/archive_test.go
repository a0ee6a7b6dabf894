package queens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions_n4.gz")
	original := &SolutionArchive{
		N:         4,
		Solver:    "backtracking",
		Solutions: []Board{{1, 3, 0, 2}, {2, 0, 3, 1}},
	}

	require.NoError(t, SaveArchive(path, original))

	loaded, err := LoadArchive(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestArchiveFromSolverOutput(t *testing.T) {
	solver, err := NewBacktrackingSolver(6)
	require.NoError(t, err)
	require.NoError(t, solver.Solve())

	path := filepath.Join(t.TempDir(), "solutions_n6.gz")
	archive := &SolutionArchive{N: 6, Solver: "backtracking", Solutions: solver.Solutions}
	require.NoError(t, SaveArchive(path, archive))

	loaded, err := LoadArchive(path)
	require.NoError(t, err)
	require.Len(t, loaded.Solutions, len(solver.Solutions))
	for _, sol := range loaded.Solutions {
		assert.Zero(t, CountConflicts(sol))
	}
}

func TestLoadArchiveMissingFile(t *testing.T) {
	_, err := LoadArchive(filepath.Join(t.TempDir(), "missing.gz"))
	require.Error(t, err)
}

func TestLoadArchiveCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.gz")
	require.NoError(t, SaveArchive(path, &SolutionArchive{N: 1, Solutions: []Board{{0}}}))

	// Truncate inside the gzip header so decoding fails.
	require.NoError(t, os.Truncate(path, 4))
	_, err := LoadArchive(path)
	require.Error(t, err)
}
