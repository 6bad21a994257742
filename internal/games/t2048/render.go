package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/grid"
)

const (
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// maxGlyphRank is the highest rank with a letter; rank 1 is 'A'.
const maxGlyphRank = 27

// rankColors is indexed by rank. Higher ranks are white.
var rankColors = [...]core.Color{
	1:  core.ColorBlue,
	2:  core.ColorRed,
	3:  core.ColorGreen,
	4:  core.ColorCyan,
	5:  core.ColorMagenta,
	6:  core.ColorYellow,
	7:  core.ColorBrightBlue,
	8:  core.ColorBrightRed,
	9:  core.ColorBrightGreen,
	10: core.ColorBrightCyan,
	11: core.ColorBrightMagenta,
	12: core.ColorBrightYellow,
}

// Glyph returns the single-letter label for a tile: ' ' when empty, 'A' for
// rank 1 through 'Z' and '[' for rank 27, '?' beyond that.
func Glyph(t grid.Tile) rune {
	if t.IsEmpty() {
		return ' '
	}
	r := t.Rank()
	if r < 1 || r > maxGlyphRank {
		return '?'
	}
	return rune('A' + r - 1)
}

// TileColor returns the display color for a tile.
func TileColor(t grid.Tile) core.Color {
	r := t.Rank()
	if r >= 1 && r < len(rankColors) {
		return rankColors[r]
	}
	if t.IsEmpty() {
		return core.ColorDefault
	}
	return core.ColorWhite
}

// tileLabel formats a tile for a cell of the given inner width.
func tileLabel(t grid.Tile, style config.GlyphStyle, inner int) string {
	if t.IsEmpty() {
		return ""
	}
	if style != config.GlyphNumbers {
		return string(Glyph(t))
	}

	v := t.Value()
	s := strconv.Itoa(v)
	if len(s) <= inner {
		return s
	}
	if s = strconv.Itoa(v>>10) + "k"; len(s) <= inner {
		return s
	}
	return strconv.Itoa(v>>20) + "M"
}

// cellWidth is the width of each cell including its left border.
func (g *Game) cellWidth() int {
	if g.cfg.Display.Glyphs == config.GlyphNumbers {
		return 7
	}
	return 5
}

func (g *Game) minScreenSize() (w, h int) {
	size := grid.DefaultSize
	boardW := size*g.cellWidth() + 1
	boardH := size*cellHeight + 1
	return boardW + 4, hudHeight + 1 + boardH + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.grid.Size()
	boardW := size*g.cellWidth() + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws the title, score line and level info, each centered on
// the screen so long numbers do not collide.
func (g *Game) renderHUD(dst *core.Screen) {
	modeStr := "Campaign"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	dst.DrawTextCentered(0, "2048 - "+modeStr)

	dst.DrawTextCentered(1, fmt.Sprintf("Score: %d  Moves: %d  Undo: %d", g.grid.Score(), g.moves, g.UndoDepth()))

	var info string
	if g.mode == ModeCampaign {
		target := grid.Occupied(g.targetRank)
		info = fmt.Sprintf("Lv %d/%d  Goal: %c %d", g.levelIndex+1, LevelCount(), Glyph(target), target.Value())
	} else {
		info = fmt.Sprintf("Max: %d", g.MaxTile())
	}
	dst.DrawTextCentered(2, info)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.grid.Size()
	cw := g.cellWidth()

	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cw
			py := boardY + y*cellHeight

			dst.Set(px, py, junction(x, y, size))

			if x < size {
				for i := 1; i < cw; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range size {
		for col := range size {
			t := g.grid.At(row, col)
			label := tileLabel(t, g.cfg.Display.Glyphs, cw-1)
			if label == "" {
				continue
			}

			color := core.ColorDefault
			if g.cfg.Display.Colors {
				color = TileColor(t)
			}

			cellX := boardX + col*cw + 1
			cellY := boardY + row*cellHeight + 1
			padLeft := core.Max((cw-1-len(label))/2, 0)
			dst.DrawTextColor(cellX+padLeft, cellY, label, color)
		}
	}
}

// junction picks the box-drawing rune for a grid line crossing.
func junction(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.levelCleared:
		target := grid.Occupied(g.targetRank)
		reached := fmt.Sprintf("Tile %c (%d) reached!", Glyph(target), target.Value())
		if g.levelIndex >= LevelCount()-1 {
			drawOverlay(dst, cx, cy, reached, "Final level complete!")
		} else {
			drawOverlay(dst, cx, cy, reached, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won:
		drawOverlay(dst, cx, cy, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.gameOver:
		hint := "R: restart"
		if g.UndoDepth() > 0 {
			hint = "B: undo  R: restart"
		}
		drawOverlay(dst, cx, cy, "GAME OVER", fmt.Sprintf("Max tile: %d", g.MaxTile()), hint)
	}
}

// drawOverlay draws a boxed message centered on (cx, cy).
func drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(cx, cy, 0, 0).CenteredIn(maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "hjkl/WASD/Arrows: Move | B: Undo | P: Pause | R: Restart | Q: Quit"
}
