package t2048

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

// FormatGrid renders a grid as plain text: the score centered over a
// bordered block with one glyph per tile.
//
//	  12
//	 ----
//	|B   |
//	|C   |
//	|    |
//	|    |
//	 ----
func FormatGrid(g grid.Grid) string {
	size := g.Size()
	width := size + 2
	rule := " " + strings.Repeat("-", size) + " \n"

	var sb strings.Builder
	sb.WriteString(center(strconv.Itoa(g.Score()), width))
	sb.WriteByte('\n')
	sb.WriteString(rule)
	for row := range size {
		sb.WriteByte('|')
		for col := range size {
			sb.WriteRune(Glyph(g.At(row, col)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)
	return sb.String()
}

// center pads s to width with the extra space on the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
