package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/events"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/player"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/telemetry"
)

var tracer = otel.Tracer("room")

// ErrInternal wraps failures that break the game's own invariants, such as
// the opponent finding no move. They are reported apart from normal play.
var ErrInternal = errors.New("internal fault")

// View receives every step of the game for presentation.
type View interface {
	Notify(ctx context.Context, ev events.Event)
}

// Room runs one game between the human and the bot. It owns the game and
// its board for the lifetime of the session.
type Room struct {
	ID         string
	Game       *game.Game
	Players    map[game.PlayerMark]*player.Player
	view       View
	thinkDelay time.Duration
	metrics    *telemetry.Metrics
}

// Option configures a Room.
type Option func(*Room)

// WithThinkDelay pauses before each bot move. The pause is presentation only.
func WithThinkDelay(d time.Duration) Option {
	return func(r *Room) { r.thinkDelay = d }
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(r *Room) { r.metrics = m }
}

// NewRoom creates a game room for the two players. Their marks must differ.
func NewRoom(id string, human, opponent *player.Player, view View, opts ...Option) *Room {
	r := &Room{
		ID:   id,
		Game: game.NewGame(),
		Players: map[game.PlayerMark]*player.Player{
			human.Mark:    human,
			opponent.Mark: opponent,
		},
		view: view,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run plays the game to a terminal state and returns its outcome.
// Errors ending the session from the player's side (closed input, too many
// invalid moves, cancellation) are returned as is; anything else is a fault,
// reported to the view and wrapped with ErrInternal.
func (r *Room) Run(ctx context.Context) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	slog.InfoContext(ctx, "game started", "room.id", r.ID)
	r.view.Notify(ctx, events.Started(r.ID))

	for !r.Game.Over() {
		if err := r.playTurn(ctx); err != nil {
			span.RecordError(err)
			if endedByPlayer(err) {
				slog.InfoContext(ctx, "game abandoned", "room.id", r.ID, "error", err)
				span.SetStatus(codes.Error, "Game abandoned")
				return game.InProgress, err
			}

			fault := fmt.Errorf("%w: %w", ErrInternal, err)
			slog.ErrorContext(ctx, "game aborted by internal fault", "room.id", r.ID, "error", err)
			span.SetStatus(codes.Error, "Internal fault")
			r.metrics.RecordFault(ctx)
			r.view.Notify(ctx, events.Faulted(r.ID, r.Game.Board, fault))
			return game.InProgress, fault
		}
	}

	outcome := r.Game.Outcome()
	span.SetAttributes(attribute.String("game.outcome", string(outcome)), attribute.Int("game.moves", r.Game.Moves))
	slog.InfoContext(ctx, "game over", "room.id", r.ID, "game.outcome", outcome)
	r.metrics.RecordGame(ctx, outcome)
	r.view.Notify(ctx, events.Over(r.ID, r.Game.Board, outcome))
	return outcome, nil
}

// playTurn asks the player on turn for a move and applies it.
func (r *Room) playTurn(ctx context.Context) error {
	p, ok := r.Players[r.Game.Turn()]
	if !ok {
		return fmt.Errorf("no player holds mark %q", r.Game.Turn())
	}

	ctx, span := tracer.Start(ctx, "room.playTurn", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", p.ID),
		attribute.String("player.mark", string(p.Mark)),
	))
	defer span.End()

	if p.IsBot {
		r.view.Notify(ctx, events.Event{Type: events.Thinking, RoomID: r.ID, Board: r.Game.Board})
		if err := wait(ctx, r.thinkDelay); err != nil {
			return err
		}
	}

	mv, err := p.Mover.NextMove(ctx, r.Game.Board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to get move")
		return fmt.Errorf("player %s: %w", p.ID, err)
	}

	applied, err := r.Game.Apply(mv.Index)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid move")
		return fmt.Errorf("player %s move %d: %w", p.ID, mv.Index, err)
	}
	applied.Reason = mv.Reason

	span.SetAttributes(attribute.Int("move.index", applied.Index), attribute.String("move.reason", applied.Reason))
	slog.DebugContext(ctx, "move played", "room.id", r.ID, "player.id", p.ID, "move.index", applied.Index, "move.reason", applied.Reason)
	r.metrics.RecordMove(ctx, applied)
	r.view.Notify(ctx, events.Played(r.ID, r.Game.Board, applied))
	return nil
}

func endedByPlayer(err error) bool {
	return errors.Is(err, player.ErrInputClosed) ||
		errors.Is(err, player.ErrTooManyAttempts) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
