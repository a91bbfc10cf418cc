package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"quadlife/internal/audio"
	"quadlife/internal/config"
	"quadlife/internal/tui"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.New(screen, cfg, sb, player).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
