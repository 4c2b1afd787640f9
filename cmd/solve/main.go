package main

import (
	"flag"
	"fmt"
	"os"

	"minesweeper/game"
)

// Plays boards to completion with the solver and reports win rates,
// a quick sanity check that the engine and the move finder agree.
func main() {
	rows := flag.Int("rows", 10, "number of board rows")
	cols := flag.Int("cols", 10, "number of board columns")
	mines := flag.Int("mines", 0, "number of mines (0 = default ratio)")
	games := flag.Int("games", 100, "number of games to play")
	verbose := flag.Bool("v", false, "print the final board of each game")
	flag.Parse()

	count := *mines
	if count <= 0 {
		count = game.DefaultConfig().MineCount(*rows, *cols)
	}

	wins := 0
	for i := 0; i < *games; i++ {
		b := game.NewBoard(*rows, *cols, count)
		playOut(b)
		if b.State == game.StateWon {
			wins++
		}
		if *verbose {
			fmt.Printf("game %d: %s\n", i+1, b.State)
			b.Print(os.Stdout)
		}
	}

	fmt.Printf("%d/%d won (%.0f%%) on %dx%d with %d mines\n",
		wins, *games, float64(wins)/float64(*games)*100, *rows, *cols, count)
}

// playOut applies solver moves until the game ends or no move remains
func playOut(b *game.Board) {
	solver := game.NewSolver(b)
	for b.State == game.StateInProgress {
		move := solver.NextMove()
		if move == nil {
			return
		}
		switch move.Kind {
		case game.MoveReveal:
			b.Reveal(move.Row, move.Col)
		case game.MoveFlag:
			b.ToggleFlag(move.Row, move.Col)
		}
	}
}
