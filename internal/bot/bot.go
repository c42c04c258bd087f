package bot

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/player"
)

var tracer = otel.Tracer("bot")

// Bot is the scripted opponent. It implements player.Mover.
type Bot struct {
	playerID   string
	mark       game.PlayerMark
	difficulty Difficulty
	rng        Rand
}

// NewBot creates a bot playing mark. rng drives the corner and side tie-breaks.
func NewBot(playerID string, mark game.PlayerMark, difficulty Difficulty, rng Rand) *Bot {
	return &Bot{
		playerID:   playerID,
		mark:       mark,
		difficulty: difficulty,
		rng:        rng,
	}
}

// NextMove runs the policy on the current board.
func (b *Bot) NextMove(ctx context.Context, board game.Board) (game.Move, error) {
	ctx, span := tracer.Start(ctx, "bot.NextMove", trace.WithAttributes(
		attribute.String("player.id", b.playerID),
		attribute.String("bot.difficulty", string(b.difficulty)),
	))
	defer span.End()

	mv, err := CalculateNextMove(board, b.mark, b.difficulty, b.rng)
	if err != nil {
		slog.ErrorContext(ctx, "bot could not choose a move", "player.id", b.playerID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "No move available")
		return game.Move{}, err
	}

	span.SetAttributes(attribute.Int("move.index", mv.Index), attribute.String("move.reason", mv.Reason))
	slog.DebugContext(ctx, "bot chose a move", "player.id", b.playerID, "move.index", mv.Index, "move.reason", mv.Reason)
	return mv, nil
}

// NewBotPlayer creates a new player instance that is a bot.
func NewBotPlayer(difficulty Difficulty, rng Rand) *player.Player {
	botID := "bot-" + uuid.New().String()[:8]
	p := player.NewPlayer(botID, "AI", game.BotMark, NewBot(botID, game.BotMark, difficulty, rng))
	p.IsBot = true
	return p
}
