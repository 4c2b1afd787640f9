package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"minesweeper/game"
)

func main() {
	config := game.DefaultConfig()
	g, err := game.NewGame(config)
	if err != nil {
		log.Fatal(err)
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Minesweeper")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
