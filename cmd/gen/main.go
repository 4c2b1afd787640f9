package main

import (
	"flag"
	"fmt"
	"os"

	"minesweeper/game"
)

// Generates a board and dumps it to stdout, useful for eyeballing mine
// placement and adjacency numbers without starting the GUI.
func main() {
	rows := flag.Int("rows", 10, "number of board rows")
	cols := flag.Int("cols", 10, "number of board columns")
	mines := flag.Int("mines", 0, "number of mines (0 = default ratio)")
	flag.Parse()

	if *rows < 1 || *cols < 1 {
		fmt.Fprintln(os.Stderr, "rows and cols must be positive")
		os.Exit(1)
	}

	count := *mines
	if count <= 0 {
		count = game.DefaultConfig().MineCount(*rows, *cols)
	}

	b := game.NewBoard(*rows, *cols, count)
	b.RevealAll()

	fmt.Printf("%dx%d board, %d mines\n", b.Rows, b.Cols, b.MineCount)
	b.Print(os.Stdout)
}
