package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 4

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 3 // banner + controls + margin
)

// TileColor returns the foreground color for a tile value. Colors darken
// monotonically as values grow.
func TileColor(v int) core.Color {
	switch {
	case v <= 0:
		return core.ColorGray
	case v <= 4:
		return core.ColorSand
	case v <= 8:
		return core.ColorPeach
	case v <= 16:
		return core.ColorApricot
	case v <= 32:
		return core.ColorOrange
	case v <= 64:
		return core.ColorDarkOrange
	case v <= 128:
		return core.ColorRust
	case v <= 256:
		return core.ColorBrick
	case v <= 512:
		return core.ColorMaroon
	default:
		return core.ColorEmber
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	footerY := boardY + boardH + 1
	if g.state.Won && !g.state.Over {
		msg := fmt.Sprintf("You reached %d! Keep going.", g.engine.Rules().WinTile)
		dst.DrawTextColored(boardX+(boardW-len(msg))/2, footerY, msg, core.ColorBrightGreen)
	}
	dst.DrawTextCentered(min(footerY+1, g.screenH-1), g.Controls())

	if g.state.Over {
		g.renderGameOver(dst, boardX+boardW/2, boardY+boardH/2)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and best tile.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.state.Score))

	best := fmt.Sprintf("Best: %d", MaxTile(g.state.Board))
	dst.DrawTextColored(max(boardX, boardX+boardW-len(best)), 1, best, TileColor(MaxTile(g.state.Board)))

	moves := fmt.Sprintf("Moves: %d", g.state.Moves)
	dst.DrawTextColored(boardX+(boardW-len(moves))/2, 2, moves, core.ColorGray)
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < BoardSize {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			val := g.state.Board[r][c]
			if val == 0 {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// renderGameOver draws the final overlay with the share message.
func (g *Game) renderGameOver(dst *core.Screen, centerX, centerY int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d  Best tile: %d", g.state.Score, MaxTile(g.state.Board)),
	}
	if g.shareText != "" {
		lines = append(lines, "", g.shareText)
	}
	lines = append(lines, "", "R: new game  C: copy  B: menu")
	g.drawOverlay(dst, centerX, centerY, lines...)
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.CenteredRect(centerX, centerY, min(maxLen+4, g.screenW), len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := max(centerX-len([]rune(line))/2, box.X+1)
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightRed
		}
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Slide | B: Menu | Q: Quit"
}
