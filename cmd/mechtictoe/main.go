// mechtictoe plays tic-tac-toe against a rule-based opponent in the terminal.
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

	"go.opentelemetry.io/otel"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/app"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/config"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/logger"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/player"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/telemetry"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/ui"
)

var (
	flagConfig     = flag.String("config", "", "Path to the config file (default: XDG config dir)")
	flagUI         = flag.String("ui", "", "Front end: text, json or tui")
	flagDifficulty = flag.String("difficulty", "", "Opponent difficulty: easy, medium or hard")
	flagSeed       = flag.Uint64("seed", 0, "Seed for the opponent's random choices (0: random)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Println("mechtictoe", telemetry.Version)
		return
	}

	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize telemetry: %v\n", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error shutting down telemetry: %v\n", err)
		}
	}()

	var console io.Writer = os.Stderr
	if cfg.UI == "tui" {
		console = io.Discard
	}
	logger.Init(cfg.LogLevel, console)

	metrics, err := telemetry.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		slog.Error("failed to create metrics", "error", err)
		return 1
	}

	var runErr error
	switch cfg.UI {
	case "tui":
		runErr = runTUI(ctx, cfg, metrics)
	case "json":
		_, runErr = app.New(*cfg, ui.NewJSON(os.Stdin, os.Stdout), metrics).Run(ctx)
	default:
		_, runErr = app.New(*cfg, ui.NewText(os.Stdin, os.Stdout), metrics).Run(ctx)
	}
	return exitCode(runErr)
}

// runTUI keeps the tview loop on the main goroutine and plays in the background.
func runTUI(ctx context.Context, cfg *config.Config, metrics *telemetry.Metrics) error {
	view := ui.NewTUI()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := app.New(*cfg, view, metrics).Run(ctx)
		done <- err
		// A fault stays on screen until the user quits.
		if err == nil {
			view.Stop()
		}
	}()
	go func() {
		<-ctx.Done()
		view.Stop()
	}()

	if err := view.Run(); err != nil {
		return err
	}
	cancel()
	return <-done
}

func applyFlags(cfg *config.Config) {
	if *flagUI != "" {
		cfg.UI = *flagUI
	}
	if *flagDifficulty != "" {
		cfg.Difficulty = *flagDifficulty
	}
	if *flagSeed != 0 {
		cfg.Seed = *flagSeed
	}
}

// exitCode maps the session result to the process status. Leaving the game
// early is not a failure.
func exitCode(err error) int {
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, player.ErrInputClosed),
		errors.Is(err, player.ErrTooManyAttempts):
		return 0
	default:
		slog.Error("game ended with an error", "error", err)
		return 1
	}
}
