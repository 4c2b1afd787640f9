package game

import "math/rand"

// MoveKind says whether a move opens a cell or flags it
type MoveKind int

const (
	MoveReveal MoveKind = iota
	MoveFlag
)

// Move is a single solver suggestion
type Move struct {
	Row, Col int
	Kind     MoveKind

	// Guess is true when the move was picked at random rather than deduced
	Guess bool
}

// Solver derives moves from the revealed portion of a board. It only reads
// state the player can see, so its deductions are always legal hints.
type Solver struct {
	Board *Board
}

// NewSolver creates a solver for the given board
func NewSolver(b *Board) *Solver {
	return &Solver{Board: b}
}

// NextMove returns the solver's best move, preferring certain deductions
// over guesses. It returns nil when no playable cell remains.
func (s *Solver) NextMove() *Move {
	if move := s.findSafeMove(); move != nil {
		return move
	}
	if move := s.findFlagMove(); move != nil {
		return move
	}
	return s.findRandomMove()
}

// findSafeMove looks for a revealed number whose mines are all flagged;
// any remaining hidden neighbor of such a cell is certainly safe
func (s *Solver) findSafeMove() *Move {
	b := s.Board
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.Cells[r][c]
			if !cell.Revealed || cell.Mine || cell.Adjacent == 0 {
				continue
			}
			flags, hidden := s.neighborInfo(r, c)
			if flags == cell.Adjacent && len(hidden) > 0 {
				p := hidden[0]
				return &Move{Row: p[0], Col: p[1], Kind: MoveReveal}
			}
		}
	}
	return nil
}

// findFlagMove looks for a revealed number whose hidden neighbors must all
// be mines (hidden count equals the number) and flags the first unflagged one
func (s *Solver) findFlagMove() *Move {
	b := s.Board
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.Cells[r][c]
			if !cell.Revealed || cell.Mine || cell.Adjacent == 0 {
				continue
			}
			flags, hidden := s.neighborInfo(r, c)
			if flags+len(hidden) == cell.Adjacent && len(hidden) > 0 {
				p := hidden[0]
				return &Move{Row: p[0], Col: p[1], Kind: MoveFlag}
			}
		}
	}
	return nil
}

// findRandomMove picks a uniformly random hidden, unflagged cell
func (s *Solver) findRandomMove() *Move {
	b := s.Board
	var options [][2]int
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := b.Cells[r][c]
			if !cell.Revealed && !cell.Flagged {
				options = append(options, [2]int{r, c})
			}
		}
	}
	if len(options) == 0 {
		return nil
	}
	p := options[rand.Intn(len(options))]
	return &Move{Row: p[0], Col: p[1], Kind: MoveReveal, Guess: true}
}

// neighborInfo returns the flag count and the hidden unflagged neighbors
// of a cell
func (s *Solver) neighborInfo(row, col int) (flags int, hidden [][2]int) {
	s.Board.forEachNeighbor(row, col, func(nr, nc int) {
		n := s.Board.Cells[nr][nc]
		switch {
		case n.Flagged:
			flags++
		case !n.Revealed:
			hidden = append(hidden, [2]int{nr, nc})
		}
	})
	return flags, hidden
}
