package game

import (
	"fmt"
	"io"
	"math/rand"
)

// GameState represents the current phase of a game
type GameState int

const (
	StateInProgress GameState = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the game state
func (s GameState) String() string {
	switch s {
	case StateInProgress:
		return "InProgress"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Cell is a single square of the minefield
type Cell struct {
	// Mine reports whether this cell contains a mine
	Mine bool

	// Revealed reports whether the player has uncovered this cell
	Revealed bool

	// Flagged reports whether the player has marked this cell as a
	// suspected mine; flags never affect the game outcome
	Flagged bool

	// Adjacent is the number of mines among the up-to-8 neighboring cells.
	// It is only meaningful for non-mine cells.
	Adjacent int
}

// Board owns the minefield state and answers reveal/flag queries
type Board struct {
	// Rows and Cols are the fixed board dimensions
	Rows, Cols int

	// MineCount is the number of mines on the board
	MineCount int

	// Cells is the grid, indexed [row][col]
	Cells [][]Cell

	// State is the current game state; terminal states reject mutations
	State GameState

	// revealed counts revealed non-mine cells for win detection
	revealed int
}

// NewBoard creates a board with mineCount mines placed uniformly at random.
// The mine count is clamped so at least one cell stays safe.
func NewBoard(rows, cols, mineCount int) *Board {
	if mineCount < 1 {
		mineCount = 1
	}
	if mineCount > rows*cols-1 {
		mineCount = rows*cols - 1
	}

	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	b := &Board{
		Rows:      rows,
		Cols:      cols,
		MineCount: mineCount,
		Cells:     cells,
		State:     StateInProgress,
	}
	b.placeMines()
	b.computeAdjacency()
	return b
}

// placeMines shuffles the full coordinate list and mines the first
// MineCount entries, so placement is unbiased by construction
func (b *Board) placeMines() {
	coords := make([][2]int, 0, b.Rows*b.Cols)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			coords = append(coords, [2]int{r, c})
		}
	}
	rand.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})
	for _, p := range coords[:b.MineCount] {
		b.Cells[p[0]][p[1]].Mine = true
	}
}

// computeAdjacency fills Adjacent for every non-mine cell
func (b *Board) computeAdjacency() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[r][c].Mine {
				continue
			}
			count := 0
			b.forEachNeighbor(r, c, func(nr, nc int) {
				if b.Cells[nr][nc].Mine {
					count++
				}
			})
			b.Cells[r][c].Adjacent = count
		}
	}
}

// In reports whether the given coordinates are on the board
func (b *Board) In(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// forEachNeighbor calls fn for each of the up-to-8 in-bounds neighbors
func (b *Board) forEachNeighbor(row, col int, fn func(nr, nc int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if b.In(nr, nc) {
				fn(nr, nc)
			}
		}
	}
}

// Reveal uncovers the cell at (row, col). Revealing a mine loses the game;
// revealing a zero-adjacency cell cascades to its neighbors. Reveal reports
// whether any cell changed. Out-of-bounds coordinates, already revealed or
// flagged cells, and terminal game states are all silent no-ops.
func (b *Board) Reveal(row, col int) bool {
	if b.State != StateInProgress || !b.In(row, col) {
		return false
	}
	cell := &b.Cells[row][col]
	if cell.Revealed || cell.Flagged {
		return false
	}

	if cell.Mine {
		cell.Revealed = true
		b.State = StateLost
		return true
	}

	// Flood fill with an explicit queue so large cascades cannot
	// exhaust the stack
	queue := [][2]int{{row, col}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		c := &b.Cells[p[0]][p[1]]
		if c.Revealed || c.Flagged {
			continue
		}
		c.Revealed = true
		b.revealed++

		if c.Adjacent == 0 {
			b.forEachNeighbor(p[0], p[1], func(nr, nc int) {
				n := &b.Cells[nr][nc]
				if !n.Revealed && !n.Flagged && !n.Mine {
					queue = append(queue, [2]int{nr, nc})
				}
			})
		}
	}

	if b.revealed == b.Rows*b.Cols-b.MineCount {
		b.State = StateWon
	}
	return true
}

// ToggleFlag flips the flag marker on an unrevealed cell. It reports whether
// the flag changed; revealed cells, out-of-bounds coordinates, and terminal
// game states are silent no-ops.
func (b *Board) ToggleFlag(row, col int) bool {
	if b.State != StateInProgress || !b.In(row, col) {
		return false
	}
	cell := &b.Cells[row][col]
	if cell.Revealed {
		return false
	}
	cell.Flagged = !cell.Flagged
	return true
}

// RevealAll uncovers every cell, mines included, exposing the solution.
// The game state is left untouched; the caller decides what ending the
// reveal represents.
func (b *Board) RevealAll() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			b.Cells[r][c].Revealed = true
		}
	}
}

// RevealMines uncovers only the mine cells, as shown after a loss
func (b *Board) RevealMines() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[r][c].Mine {
				b.Cells[r][c].Revealed = true
			}
		}
	}
}

// FlagCount returns the number of flagged cells
func (b *Board) FlagCount() int {
	count := 0
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[r][c].Flagged {
				count++
			}
		}
	}
	return count
}

// RemainingMines returns the mine count minus placed flags; it can go
// negative when the player over-flags
func (b *Board) RemainingMines() int {
	return b.MineCount - b.FlagCount()
}

// Print writes an ASCII dump of the board to w. Unrevealed cells print as
// "-", flags as "F", revealed mines as "*", and revealed zero cells as "."
func (b *Board) Print(w io.Writer) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.Cells[r][c]
			switch {
			case cell.Flagged:
				fmt.Fprint(w, "F ")
			case !cell.Revealed:
				fmt.Fprint(w, "- ")
			case cell.Mine:
				fmt.Fprint(w, "* ")
			case cell.Adjacent == 0:
				fmt.Fprint(w, ". ")
			default:
				fmt.Fprintf(w, "%d ", cell.Adjacent)
			}
		}
		fmt.Fprintln(w)
	}
}
