//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"quadlife/internal/app"
	"quadlife/internal/audio"
	"quadlife/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sb, err := cfg.NewSandbox()
	if err != nil {
		log.Fatal(err)
	}

	var player *audio.Player
	if cfg.Sound {
		player = audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer player.Close()
	}

	game := app.New(cfg, sb, player)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("quadlife - " + sb.Rule().String())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
