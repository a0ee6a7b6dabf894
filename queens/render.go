package queens

import "strings"

// Render draws a board as an ASCII grid:
//
//	+---+---+
//	|   | Q |
//	+---+---+
//	| Q |   |
//	+---+---+
//
// Rendering is presentation glue only; it never participates in
// solving.
func Render(b Board) string {
	n := len(b)
	border := "+" + strings.Repeat("---+", n) + "\n"

	var sb strings.Builder
	sb.WriteString(border)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b[r] == c {
				sb.WriteString("| Q ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString("|\n")
		sb.WriteString(border)
	}
	return sb.String()
}
