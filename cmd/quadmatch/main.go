//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"quadmatch/internal/app"
	"quadmatch/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	board, err := cfg.NewBoard()
	if err != nil {
		log.Fatalf("board setup: %v", err)
	}
	board.Reset(0)

	geom := render.DefaultGeometry()
	if cfg.CellSize > 0 {
		geom.CellSize = cfg.CellSize
		geom.Inset = max(1, cfg.CellSize/15)
	}

	game := app.New(board, geom, 0)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("quadmatch — " + board.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
