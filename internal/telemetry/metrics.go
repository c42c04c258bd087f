package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

const meterName = "github.com/AnshKumarTripathi/Mech-Tic-toe"

// Metrics groups the instruments recorded during play. A nil *Metrics
// records nothing.
type Metrics struct {
	moves    metric.Int64Counter
	rejected metric.Int64Counter
	games    metric.Int64Counter
	faults   metric.Int64Counter
}

// NewMetrics creates the instruments on the given meter provider.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	moves, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Moves applied to the board, by mark and reason."))
	if err != nil {
		return nil, fmt.Errorf("failed to create moves counter: %w", err)
	}
	rejected, err := meter.Int64Counter("tictactoe.input.rejected",
		metric.WithDescription("Player inputs rejected by validation, by kind."))
	if err != nil {
		return nil, fmt.Errorf("failed to create rejected input counter: %w", err)
	}
	games, err := meter.Int64Counter("tictactoe.games",
		metric.WithDescription("Finished games, by outcome."))
	if err != nil {
		return nil, fmt.Errorf("failed to create games counter: %w", err)
	}
	faults, err := meter.Int64Counter("tictactoe.faults",
		metric.WithDescription("Games aborted by an internal fault."))
	if err != nil {
		return nil, fmt.Errorf("failed to create faults counter: %w", err)
	}

	return &Metrics{moves: moves, rejected: rejected, games: games, faults: faults}, nil
}

func (m *Metrics) RecordMove(ctx context.Context, mv game.Move) {
	if m == nil {
		return
	}
	m.moves.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mark", string(mv.Mark)),
		attribute.String("reason", mv.Reason),
	))
}

func (m *Metrics) RecordRejectedInput(ctx context.Context, err error) {
	if m == nil {
		return
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", RejectionKind(err))))
}

func (m *Metrics) RecordGame(ctx context.Context, outcome game.Outcome) {
	if m == nil {
		return
	}
	m.games.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

func (m *Metrics) RecordFault(ctx context.Context) {
	if m == nil {
		return
	}
	m.faults.Add(ctx, 1)
}

// RejectionKind names the validation failure behind err.
func RejectionKind(err error) string {
	switch {
	case errors.Is(err, game.ErrParse):
		return "parse"
	case errors.Is(err, game.ErrRange):
		return "range"
	case errors.Is(err, game.ErrOccupied):
		return "occupied"
	default:
		return "other"
	}
}
