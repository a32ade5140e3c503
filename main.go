package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neon-snake/audio"
	"neon-snake/config"
	"neon-snake/game"
	"neon-snake/game/manager"
	"neon-snake/game/types"
	"neon-snake/logging"
	"neon-snake/store"
	"neon-snake/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	// The terminal front end owns the screen, so it only logs to a file.
	var fallback io.Writer = os.Stderr
	if cfg.Display == "term" {
		fallback = nil
	}
	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}
	defer closeLog()

	if err := run(cfg, logger); err != nil {
		logger.Error("game exited", "err", err)
		fmt.Fprintf(os.Stderr, "neon-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		// Play on without persistence.
		logger.Warn("best score store unavailable", "store", cfg.Store, "err", err)
		st = store.NewMemoryStore(0)
	}
	defer st.Close()

	stats := manager.NewSessionStats()
	g := game.NewGame(ctx, game.Options{
		Grid:      types.Grid{Width: cfg.GridSize, Height: cfg.GridSize},
		Speed:     cfg.Speed,
		Seed:      cfg.Seed,
		GridLines: cfg.GridLines,
		Store:     st,
		Logger:    logger,
	})
	g.Subscribe(func(e game.Event) {
		if e.Kind == game.EventGameOver {
			stats.AddRun(e.Run)
		}
	})

	if cfg.Sound {
		cues := audio.NewCues(logger)
		defer cues.Close()
		g.Subscribe(cues.Listener())
	}

	logger.Info("starting",
		"display", cfg.Display,
		"store", cfg.Store,
		"grid", cfg.GridSize,
		"interval", cfg.TickInterval(),
		"best", g.BestScore())

	switch cfg.Display {
	case "term":
		return runTerminal(ctx, g)
	default:
		return runWindow(ctx, g, stats)
	}
}

// runWindow drives the game from the raylib frame loop: input every
// frame, a tick whenever the clock is due, a redraw every frame.
func runWindow(ctx context.Context, g *game.Game, stats *manager.SessionStats) error {
	f := g.Render()
	renderer := ui.OpenWindow(f.Width, f.Height, "Neon Snake", stats)
	defer renderer.Close()

	clock := game.NewClock(g, time.Now())
	for !renderer.ShouldClose() && ctx.Err() == nil && !g.Stopped() {
		for _, in := range renderer.PollIntents() {
			if g.Apply(in) {
				return nil
			}
		}

		if clock.Due(time.Now()) {
			g.Tick()
		}

		if err := renderer.Draw(g.Render()); err != nil {
			return err
		}
	}
	return nil
}

func runTerminal(ctx context.Context, g *game.Game) error {
	surface, err := ui.NewTermSurface()
	if err != nil {
		return err
	}
	defer surface.Close()

	loop := &game.Loop{
		Game:    g,
		Surface: surface,
		Intents: surface.Intents(),
	}
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
