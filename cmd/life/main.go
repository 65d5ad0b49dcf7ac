//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	size := game.Session().Size()

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetWindowSize(game.WindowSize())
	log.Printf("board %dx%d, delay %dms", size.W, size.H, game.Session().Delay())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
