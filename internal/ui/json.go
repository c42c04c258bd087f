package ui

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/events"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/telemetry"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/validator"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/pkg/proto"
)

// JSON speaks JSON lines for scripts and other programs. Moves may arrive
// as bare numbers or as {"type":"move","position":N}.
type JSON struct {
	in  *lineReader
	enc *json.Encoder
}

func NewJSON(in io.Reader, out io.Writer) *JSON {
	return &JSON{in: newLineReader(in), enc: json.NewEncoder(out)}
}

func (j *JSON) Notify(ctx context.Context, ev events.Event) {
	msg := proto.ServerToClientMessage{
		RoomID: ev.RoomID,
		Board:  ev.Board.Rows(),
	}
	switch ev.Type {
	case events.GameStarted:
		j.send(ctx, proto.PlayerAssignmentMessage{Type: proto.TypePlayerAssignment, Mark: game.HumanMark})
		msg.Type = proto.TypeGameStarted
		msg.Next = game.HumanMark
	case events.Thinking:
		msg.Type = proto.TypeThinking
		msg.Next = game.BotMark
	case events.MovePlayed:
		msg.Type = proto.TypeMovePlayed
		if ev.Move != nil {
			pos := ev.Move.Index
			msg.Position = &pos
			msg.Mark = ev.Move.Mark
			msg.Reason = ev.Move.Reason
			msg.Next = game.Opponent(ev.Move.Mark)
		}
	case events.GameOver:
		msg.Type = proto.TypeGameOver
		msg.Outcome = ev.Outcome
		msg.Message = outcomeMessage(ev.Outcome)
		switch ev.Outcome {
		case game.PlayerWin:
			msg.Winner = game.HumanMark
		case game.OpponentWin:
			msg.Winner = game.BotMark
		}
	case events.Fault:
		msg.Type = proto.TypeError
		msg.Message = faultMessage(ev.Err)
	default:
		return
	}
	j.send(ctx, msg)
}

func (j *JSON) ReadMove(ctx context.Context, board game.Board) (string, error) {
	j.send(ctx, proto.ServerToClientMessage{
		Type:    proto.TypeYourTurn,
		Board:   board.Rows(),
		Next:    game.HumanMark,
		Message: movePrompt,
	})
	raw, err := j.in.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return decodeMove(raw), nil
}

// decodeMove returns the position of a well-formed move message as text.
// Anything else is returned unchanged and left to move validation.
func decodeMove(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return raw
	}
	var msg proto.ClientToServerMessage
	if err := json.Unmarshal([]byte(trimmed), &msg); err != nil {
		return raw
	}
	if err := validator.GetValidator().Struct(msg); err != nil {
		return raw
	}
	return strconv.Itoa(*msg.Position)
}

func (j *JSON) RejectMove(ctx context.Context, err error) {
	j.send(ctx, proto.ServerToClientMessage{
		Type:    proto.TypeInvalidMove,
		Reason:  telemetry.RejectionKind(err),
		Message: rejectionMessage(err),
	})
}

func (j *JSON) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		j.send(ctx, proto.ServerToClientMessage{Type: proto.TypeConfirm, Message: question})
		s, err := j.in.ReadLine(ctx)
		if err != nil {
			return false, err
		}
		if answer, ok := parseYesNo(s); ok {
			return answer, nil
		}
	}
}

func (j *JSON) ShowScore(ctx context.Context, s events.Score) {
	j.send(ctx, proto.ScoreMessage{Type: proto.TypeScore, Wins: s.Wins, Losses: s.Losses, Draws: s.Draws})
}

func (j *JSON) send(ctx context.Context, v any) {
	if err := j.enc.Encode(v); err != nil {
		slog.ErrorContext(ctx, "failed to write message", "error", err)
	}
}
