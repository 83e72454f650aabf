package t2048

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents a 4x4 game board indexed as board[row][col].
// A zero cell is empty; any other value is a tile.
type Board [BoardSize][BoardSize]int

// Position is a (row, column) pair on the board.
type Position struct {
	Row, Col int
}

// Tile is a value placed at a position.
type Tile struct {
	Pos   Position
	Value int
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// delta returns the row/column step for one cell of travel.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// ParseDirection accepts full names ("up") or their first letter ("u"),
// case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// SlideResult describes what a slide did to the board.
type SlideResult struct {
	Score  int   // Sum of all merged tile values
	Moved  bool  // Whether any tile changed position or merged
	Merges []int // Values produced by merges, in processing order
}

// traversal returns the order in which rows and columns are visited so that
// tiles closest to the destination edge settle first.
func traversal(dir Direction) [BoardSize]int {
	var order [BoardSize]int
	for i := range BoardSize {
		if dir == DirDown || dir == DirRight {
			order[i] = BoardSize - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Slide moves every tile as far as it can travel in dir, merging equal
// neighbours. A cell produced by a merge cannot take part in another merge
// during the same slide. The input board is not modified.
func Slide(board Board, dir Direction) (Board, SlideResult) {
	var res SlideResult
	if !dir.Valid() {
		return board, res
	}

	dr, dc := dir.delta()
	order := traversal(dir)
	var merged [BoardSize][BoardSize]bool

	for _, r := range order {
		for _, c := range order {
			val := board[r][c]
			if val == 0 {
				continue
			}

			nr, nc := r, c
			absorbed := false
			for {
				tr, tc := nr+dr, nc+dc
				if !inBounds(tr, tc) {
					break
				}
				next := board[tr][tc]
				if next == 0 {
					nr, nc = tr, tc
					continue
				}
				if next == val && !merged[tr][tc] {
					board[tr][tc] = val * 2
					board[r][c] = 0
					merged[tr][tc] = true
					res.Score += val * 2
					res.Merges = append(res.Merges, val*2)
					res.Moved = true
					absorbed = true
				}
				break
			}

			if !absorbed && (nr != r || nc != c) {
				board[nr][nc] = val
				board[r][c] = 0
				res.Moved = true
			}
		}
	}

	return board, res
}

// EmptyCells returns the positions of all empty cells in row-major order.
func EmptyCells(board Board) []Position {
	var cells []Position
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any tile equals its right or bottom neighbour.
func HasPossibleMerge(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			val := board[r][c]
			if c < BoardSize-1 && board[r][c+1] == val {
				return true
			}
			if r < BoardSize-1 && board[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if an empty cell or an equal adjacent pair exists.
// It inspects adjacency only and does not simulate slides.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] > maxVal {
				maxVal = board[r][c]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func TileCount(board Board) int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// ValidTiles reports whether every non-empty cell holds a power of two >= 2.
func ValidTiles(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			v := board[r][c]
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return false
			}
		}
	}
	return true
}

// FormatBoard renders the board as right-aligned text rows, using "." for
// empty cells.
func FormatBoard(board Board) string {
	width := len(fmt.Sprint(MaxTile(board)))
	if width < 4 {
		width = 4
	}

	var sb strings.Builder
	for r := range BoardSize {
		for c := range BoardSize {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if board[r][c] != 0 {
				cell = fmt.Sprint(board[r][c])
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
