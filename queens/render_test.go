package queens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTwoByTwo(t *testing.T) {
	expected := "" +
		"+---+---+\n" +
		"|   | Q |\n" +
		"+---+---+\n" +
		"| Q |   |\n" +
		"+---+---+\n"
	assert.Equal(t, expected, Render(Board{1, 0}))
}

func TestRenderSingleQueen(t *testing.T) {
	expected := "" +
		"+---+\n" +
		"| Q |\n" +
		"+---+\n"
	assert.Equal(t, expected, Render(Board{0}))
}

func TestRenderOneQueenPerRow(t *testing.T) {
	out := Render(Board{1, 3, 0, 2})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9) // 4 rows + 5 borders

	queens := strings.Count(out, "Q")
	assert.Equal(t, 4, queens)
}
