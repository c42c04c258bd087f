package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/telemetry"
)

var tracer = otel.Tracer("player")

var (
	ErrTooManyAttempts = errors.New("too many invalid moves")
	ErrInputClosed     = errors.New("input closed")
)

// Human asks the prompter for a move until a valid one comes back.
type Human struct {
	prompter    Prompter
	maxAttempts int
	metrics     *telemetry.Metrics
}

// NewHuman creates a human mover. maxAttempts <= 0 retries forever.
func NewHuman(prompter Prompter, maxAttempts int, metrics *telemetry.Metrics) *Human {
	return &Human{
		prompter:    prompter,
		maxAttempts: maxAttempts,
		metrics:     metrics,
	}
}

// NewHumanPlayer creates the player seated at the console.
func NewHumanPlayer(prompter Prompter, maxAttempts int, metrics *telemetry.Metrics) *Player {
	return NewPlayer(uuid.New().String(), "You", game.HumanMark, NewHuman(prompter, maxAttempts, metrics))
}

// NextMove prompts, validates and re-prompts. Rejected input never touches the board.
func (h *Human) NextMove(ctx context.Context, board game.Board) (game.Move, error) {
	ctx, span := tracer.Start(ctx, "player.Human.NextMove")
	defer span.End()

	for attempt := 1; h.maxAttempts <= 0 || attempt <= h.maxAttempts; attempt++ {
		raw, err := h.prompter.ReadMove(ctx, board)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrInputClosed
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to read move")
			return game.Move{}, err
		}

		index, err := game.ValidatePlayerMove(board, raw)
		if err != nil {
			slog.DebugContext(ctx, "rejected player input", "input", raw, "attempt", attempt, "error", err)
			span.AddEvent("move.rejected", trace.WithAttributes(attribute.String("error", err.Error())))
			h.metrics.RecordRejectedInput(ctx, err)
			h.prompter.RejectMove(ctx, err)
			continue
		}

		span.SetAttributes(attribute.Int("move.index", index), attribute.Int("move.attempts", attempt))
		return game.Move{Index: index, Mark: game.HumanMark, Reason: game.ReasonInput}, nil
	}

	err := fmt.Errorf("%w: gave up after %d attempts", ErrTooManyAttempts, h.maxAttempts)
	span.RecordError(err)
	span.SetStatus(codes.Error, "Too many invalid moves")
	return game.Move{}, err
}
