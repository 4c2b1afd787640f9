package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires the board, input, and renderer into the ebiten run loop.
// Every engine call happens inside Update, so board state is only ever
// touched from the event loop.
type Game struct {
	config   Config
	board    *Board
	input    *PlayerInput
	renderer *Renderer
	solver   *Solver

	// size is the current board size preset
	size BoardSize

	// hint is the last solver suggestion, cleared on any board change
	hint *Move

	// solutionShown is set after the solve action reveals the whole board;
	// the session is over but the board reached no regular terminal state
	solutionShown bool
}

// NewGame creates a new game instance
func NewGame(config Config) (*Game, error) {
	if err := initSprites(config.CellSize); err != nil {
		return nil, fmt.Errorf("loading sprites: %w", err)
	}

	g := &Game{
		config:   config,
		input:    NewPlayerInput(config),
		renderer: NewRenderer(config),
		size:     config.Size,
	}
	g.newBoard()
	return g, nil
}

// newBoard replaces the board with a fresh one for the current size
func (g *Game) newBoard() {
	rows, cols := g.size.Dimensions()
	g.board = NewBoard(rows, cols, g.config.MineCount(rows, cols))
	g.solver = NewSolver(g.board)
	g.hint = nil
	g.solutionShown = false
}

// setSize switches the board size preset and starts a new game
func (g *Game) setSize(size BoardSize) {
	g.size = size
	g.newBoard()
	w, h := g.config.ScreenSize(size)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Minesweeper - %s", size))
}

// over reports whether the current session has ended one way or another
func (g *Game) over() bool {
	return g.board.State != StateInProgress || g.solutionShown
}

// Update handles one tick of input
func (g *Game) Update() error {
	if g.input.QuitPressed() {
		return ebiten.Termination
	}
	if g.input.DebugTogglePressed() {
		GetDebugState().ShowMines = !GetDebugState().ShowMines
	}
	if size, ok := g.input.SizeSelected(); ok && size != g.size {
		g.setSize(size)
		return nil
	}
	if g.input.NewGamePressed() {
		g.newBoard()
		return nil
	}

	if g.over() {
		// Any click starts the next game
		if g.input.AnyClick() {
			g.newBoard()
		}
		return nil
	}

	if g.input.SolvePressed() {
		g.board.RevealAll()
		g.hint = nil
		g.solutionShown = true
		return nil
	}
	if g.input.HintPressed() {
		g.hint = g.solver.NextMove()
		return nil
	}

	if row, col, ok := g.input.RevealClick(g.board); ok {
		if g.board.Reveal(row, col) {
			g.hint = nil
		}
		if g.board.State == StateLost {
			// Show the whole field after stepping on a mine
			g.board.RevealAll()
		}
		return nil
	}
	if row, col, ok := g.input.FlagClick(g.board); ok {
		if g.board.ToggleFlag(row, col) {
			g.hint = nil
		}
	}

	return nil
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	message := ""
	switch {
	case g.board.State == StateLost:
		message = "Sorry, you landed on a mine. Click to try again!"
	case g.board.State == StateWon:
		message = "Congratulations, you won! Click to play again."
	case g.solutionShown:
		message = "Solution revealed. Click for a new game."
	}
	g.renderer.Render(screen, g.board, g.hint, message)
}

// Layout returns the fixed window dimensions for the current board size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenSize(g.size)
}
