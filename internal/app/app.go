package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/bot"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/config"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/events"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/player"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/room"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/telemetry"
)

const rematchQuestion = "Play again? (y/n)"

// View is everything the app needs from a front end.
type View interface {
	room.View
	player.Prompter
	Confirm(ctx context.Context, question string) (bool, error)
	ShowScore(ctx context.Context, s events.Score)
}

// App plays rounds against the bot until the player stops.
type App struct {
	cfg     config.Config
	view    View
	metrics *telemetry.Metrics
	rng     bot.Rand
	score   events.Score
}

func New(cfg config.Config, view View, metrics *telemetry.Metrics) *App {
	return &App{
		cfg:     cfg,
		view:    view,
		metrics: metrics,
		rng:     NewRand(cfg.Seed),
	}
}

// NewRand seeds the bot's tie-breaks. Zero picks a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Run plays one game, then more while rematches are enabled and accepted.
// It returns the final score. Closed input at the rematch question ends the
// session normally.
func (a *App) Run(ctx context.Context) (events.Score, error) {
	human := player.NewHumanPlayer(a.view, a.cfg.MaxInputAttempts, a.metrics)
	opponent := bot.NewBotPlayer(bot.Difficulty(a.cfg.Difficulty), a.rng)

	for {
		r := room.NewRoom(uuid.NewString(), human, opponent, a.view,
			room.WithThinkDelay(a.cfg.ThinkDelay),
			room.WithMetrics(a.metrics),
		)
		outcome, err := r.Run(ctx)
		if err != nil {
			return a.score, err
		}
		a.score.Record(outcome)
		slog.InfoContext(ctx, "round finished", "room.id", r.ID, "game.outcome", outcome,
			"score.wins", a.score.Wins, "score.losses", a.score.Losses, "score.draws", a.score.Draws)

		if !a.cfg.Rematch {
			return a.score, nil
		}
		a.view.ShowScore(ctx, a.score)
		again, err := a.view.Confirm(ctx, rematchQuestion)
		if errors.Is(err, io.EOF) {
			return a.score, nil
		}
		if err != nil {
			return a.score, err
		}
		if !again {
			return a.score, nil
		}
	}
}
