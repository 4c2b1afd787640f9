package game

import (
	"strings"
	"testing"
)

// buildBoard constructs a board with mines at fixed coordinates so tests
// are deterministic
func buildBoard(rows, cols int, mines [][2]int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	b := &Board{
		Rows:      rows,
		Cols:      cols,
		MineCount: len(mines),
		Cells:     cells,
		State:     StateInProgress,
	}
	for _, m := range mines {
		b.Cells[m[0]][m[1]].Mine = true
	}
	b.computeAdjacency()
	return b
}

func countMines(b *Board) int {
	count := 0
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[r][c].Mine {
				count++
			}
		}
	}
	return count
}

func TestNewBoardMineCount(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		mines      int
		want       int
	}{
		{name: "small board default ratio", rows: 10, cols: 10, mines: 10, want: 10},
		{name: "medium board", rows: 15, cols: 15, mines: 22, want: 22},
		{name: "large board", rows: 20, cols: 20, mines: 40, want: 40},
		{name: "zero mines clamped up", rows: 5, cols: 5, mines: 0, want: 1},
		{name: "too many mines clamped down", rows: 3, cols: 3, mines: 100, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.rows, tt.cols, tt.mines)
			if b.MineCount != tt.want {
				t.Errorf("expected MineCount %d, got %d", tt.want, b.MineCount)
			}
			if got := countMines(b); got != tt.want {
				t.Errorf("expected %d placed mines, got %d", tt.want, got)
			}
			if b.State != StateInProgress {
				t.Errorf("expected state %v, got %v", StateInProgress, b.State)
			}
		})
	}
}

func TestAdjacencyCounts(t *testing.T) {
	// Mine in the center of a 3x3 board: every other cell touches it
	b := buildBoard(3, 3, [][2]int{{1, 1}})
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				continue
			}
			if got := b.Cells[r][c].Adjacent; got != 1 {
				t.Errorf("cell (%d,%d): expected adjacency 1, got %d", r, c, got)
			}
		}
	}

	// Random boards must satisfy the adjacency invariant too
	b = NewBoard(10, 10, 10)
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[r][c].Mine {
				continue
			}
			want := 0
			b.forEachNeighbor(r, c, func(nr, nc int) {
				if b.Cells[nr][nc].Mine {
					want++
				}
			})
			if got := b.Cells[r][c].Adjacent; got != want {
				t.Errorf("cell (%d,%d): expected adjacency %d, got %d", r, c, want, got)
			}
		}
	}
}

func TestRevealMineLoses(t *testing.T) {
	b := buildBoard(3, 3, [][2]int{{0, 0}})

	if changed := b.Reveal(0, 0); !changed {
		t.Error("expected revealing a mine to report a change")
	}
	if !b.Cells[0][0].Revealed {
		t.Error("expected the mine cell to be revealed")
	}
	if b.State != StateLost {
		t.Errorf("expected state %v, got %v", StateLost, b.State)
	}
}

func TestRevealAllNonMinesWins(t *testing.T) {
	// Corner mine on a 2x2 board; the three safe cells each touch it
	b := buildBoard(2, 2, [][2]int{{0, 0}})

	b.Reveal(0, 1)
	b.Reveal(1, 0)
	if b.State != StateInProgress {
		t.Fatalf("expected state %v before the last reveal, got %v", StateInProgress, b.State)
	}
	b.Reveal(1, 1)
	if b.State != StateWon {
		t.Errorf("expected state %v, got %v", StateWon, b.State)
	}
	if b.Cells[0][0].Revealed {
		t.Error("expected the mine cell to stay hidden after a win")
	}
}

func TestRevealSingleNumberedCell(t *testing.T) {
	// Every safe cell on a 2x2 board borders the mine, so no flood fill
	b := buildBoard(2, 2, [][2]int{{0, 0}})

	b.Reveal(1, 1)
	if !b.Cells[1][1].Revealed {
		t.Error("expected (1,1) to be revealed")
	}
	for _, p := range [][2]int{{0, 0}, {0, 1}, {1, 0}} {
		if b.Cells[p[0]][p[1]].Revealed {
			t.Errorf("expected cell (%d,%d) to stay hidden", p[0], p[1])
		}
	}
}

func TestFloodFillStaysInRegion(t *testing.T) {
	// A full column of mines splits the board into two disconnected
	// zero regions; revealing in one must never leak into the other
	mines := [][2]int{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}
	b := buildBoard(5, 5, mines)

	b.Reveal(0, 0)

	if b.State != StateInProgress {
		t.Fatalf("expected state %v, got %v", StateInProgress, b.State)
	}
	for r := 0; r < 5; r++ {
		// Zero region and its numbered border
		for _, c := range []int{0, 1} {
			if !b.Cells[r][c].Revealed {
				t.Errorf("expected cell (%d,%d) to be revealed", r, c)
			}
		}
		// Mines and the far side of the wall
		for _, c := range []int{2, 3, 4} {
			if b.Cells[r][c].Revealed {
				t.Errorf("expected cell (%d,%d) to stay hidden", r, c)
			}
		}
	}
}

func TestFloodFillSkipsFlaggedCells(t *testing.T) {
	b := buildBoard(5, 5, [][2]int{{0, 4}})

	b.ToggleFlag(2, 2)
	b.Reveal(4, 0)

	if b.Cells[2][2].Revealed {
		t.Error("expected the flagged cell to stay hidden through the cascade")
	}
	if !b.Cells[2][1].Revealed || !b.Cells[2][3].Revealed {
		t.Error("expected the cascade to continue around the flagged cell")
	}
}

func TestRevealRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
		row   int
		col   int
	}{
		{
			name:  "row out of bounds",
			setup: func(b *Board) {},
			row:   -1, col: 0,
		},
		{
			name:  "col out of bounds",
			setup: func(b *Board) {},
			row:   0, col: 3,
		},
		{
			name:  "already revealed",
			setup: func(b *Board) { b.Reveal(2, 2) },
			row:   2, col: 2,
		},
		{
			name:  "flagged cell",
			setup: func(b *Board) { b.ToggleFlag(1, 1) },
			row:   1, col: 1,
		},
		{
			name:  "after loss",
			setup: func(b *Board) { b.Reveal(0, 0) },
			row:   2, col: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildBoard(3, 3, [][2]int{{0, 0}})
			tt.setup(b)
			before := snapshot(b)
			if changed := b.Reveal(tt.row, tt.col); changed {
				t.Error("expected the reveal to be rejected")
			}
			if got := snapshot(b); got != before {
				t.Errorf("expected no state change, got:\n%s\nwant:\n%s", got, before)
			}
		})
	}
}

func TestRevealAfterWinRejected(t *testing.T) {
	b := buildBoard(2, 2, [][2]int{{0, 0}})
	b.Reveal(0, 1)
	b.Reveal(1, 0)
	b.Reveal(1, 1)
	if b.State != StateWon {
		t.Fatalf("expected state %v, got %v", StateWon, b.State)
	}

	if changed := b.Reveal(0, 0); changed {
		t.Error("expected reveals after a win to be rejected")
	}
	if b.Cells[0][0].Revealed {
		t.Error("expected the mine to stay hidden after a win")
	}
	if b.State != StateWon {
		t.Errorf("expected state to stay %v, got %v", StateWon, b.State)
	}
}

func TestToggleFlag(t *testing.T) {
	b := buildBoard(3, 3, [][2]int{{0, 0}})

	if changed := b.ToggleFlag(1, 1); !changed {
		t.Error("expected the first toggle to report a change")
	}
	if !b.Cells[1][1].Flagged {
		t.Error("expected the cell to be flagged")
	}

	before := snapshot(b)
	b.ToggleFlag(1, 1)
	if b.Cells[1][1].Flagged {
		t.Error("expected the second toggle to clear the flag")
	}

	// Double toggle restores the exact original state
	b.ToggleFlag(1, 1)
	if got := snapshot(b); got != before {
		t.Errorf("expected double toggle to restore state, got:\n%s\nwant:\n%s", got, before)
	}
}

func TestToggleFlagRejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
		row   int
		col   int
	}{
		{
			name:  "out of bounds",
			setup: func(b *Board) {},
			row:   3, col: 3,
		},
		{
			name:  "revealed cell",
			setup: func(b *Board) { b.Reveal(2, 2) },
			row:   2, col: 2,
		},
		{
			name:  "after loss",
			setup: func(b *Board) { b.Reveal(0, 0) },
			row:   1, col: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buildBoard(3, 3, [][2]int{{0, 0}})
			tt.setup(b)
			if changed := b.ToggleFlag(tt.row, tt.col); changed {
				t.Error("expected the toggle to be rejected")
			}
		})
	}
}

func TestRemainingMines(t *testing.T) {
	b := buildBoard(4, 4, [][2]int{{0, 0}, {3, 3}})

	if got := b.RemainingMines(); got != 2 {
		t.Errorf("expected 2 remaining mines, got %d", got)
	}

	b.ToggleFlag(0, 0)
	b.ToggleFlag(1, 1)
	b.ToggleFlag(2, 2)
	if got := b.FlagCount(); got != 3 {
		t.Errorf("expected 3 flags, got %d", got)
	}
	if got := b.RemainingMines(); got != -1 {
		t.Errorf("expected -1 remaining mines when over-flagged, got %d", got)
	}
}

func TestRevealAllAndRevealMines(t *testing.T) {
	b := buildBoard(3, 3, [][2]int{{0, 0}, {2, 2}})

	b.RevealMines()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell := b.Cells[r][c]
			if cell.Mine && !cell.Revealed {
				t.Errorf("expected mine (%d,%d) to be revealed", r, c)
			}
			if !cell.Mine && cell.Revealed {
				t.Errorf("expected safe cell (%d,%d) to stay hidden", r, c)
			}
		}
	}

	b.RevealAll()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !b.Cells[r][c].Revealed {
				t.Errorf("expected cell (%d,%d) to be revealed", r, c)
			}
		}
	}
}

func TestPrint(t *testing.T) {
	b := buildBoard(2, 2, [][2]int{{0, 0}})
	b.Reveal(1, 1)
	b.ToggleFlag(0, 1)

	var sb strings.Builder
	b.Print(&sb)

	want := "- F \n- 1 \n"
	if got := sb.String(); got != want {
		t.Errorf("expected board dump %q, got %q", want, got)
	}
}

// snapshot serializes the full board state for no-mutation assertions
func snapshot(b *Board) string {
	var sb strings.Builder
	sb.WriteString(b.State.String())
	sb.WriteByte('\n')
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.Cells[r][c]
			if cell.Mine {
				sb.WriteByte('M')
			}
			if cell.Revealed {
				sb.WriteByte('R')
			}
			if cell.Flagged {
				sb.WriteByte('F')
			}
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
