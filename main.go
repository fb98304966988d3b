package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/screen"
)

func main() {
	log.SetFlags(0)

	config, err := parseConfig(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game, rng := initializeGame(config)
	log.Printf("Grid: %dx%d | Initial living cells: %d", config.Height, config.Width, game.Population())

	if !config.Interactive {
		runHeadless(ctx, config, game, rng, model.NewTerminalRenderer(), true)
		return
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = s.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	if err = screen.New(s, game, config, rng).Run(ctx, config.FrameRate); err != nil {
		log.Fatalf("run: %v", err)
	}
}
