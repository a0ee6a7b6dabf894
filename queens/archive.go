package queens

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// SolutionArchive bundles the outcome of a completed solve for
// persistence: the board size, the solver that produced it, and the
// boards found (every enumerated solution for backtracking, a single
// board for the metaheuristics).
type SolutionArchive struct {
	N         int
	Solver    string
	Solutions []Board
}

// SaveArchive writes a solution archive to a file, gzip-compressed for
// smaller size (the full 14-queens set is hundreds of thousands of
// boards).
func SaveArchive(filePath string, archive *SolutionArchive) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create archive file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	encoder := gob.NewEncoder(gzWriter)
	if err := encoder.Encode(archive); err != nil {
		return fmt.Errorf("failed to encode solution archive: %w", err)
	}
	return nil
}

// LoadArchive reads a solution archive previously written by
// SaveArchive.
func LoadArchive(filePath string) (*SolutionArchive, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for archive: %w", err)
	}
	defer gzReader.Close()

	archive := &SolutionArchive{}
	decoder := gob.NewDecoder(gzReader)
	if err := decoder.Decode(archive); err != nil {
		return nil, fmt.Errorf("failed to decode solution archive: %w", err)
	}
	return archive, nil
}
