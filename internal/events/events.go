package events

import "github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"

// Type names what happened in a room.
type Type string

const (
	GameStarted Type = "game_started"
	Thinking    Type = "thinking"
	MovePlayed  Type = "move_played"
	GameOver    Type = "game_over"
	Fault       Type = "fault"
)

// Event is published by a room to its view after every step of a game.
// Board is a snapshot taken after the step.
type Event struct {
	Type    Type
	RoomID  string
	Board   game.Board
	Move    *game.Move   // MovePlayed
	Outcome game.Outcome // GameOver
	Err     error        // Fault
}

// Started reports the start of a game on an empty board.
func Started(roomID string) Event {
	return Event{Type: GameStarted, RoomID: roomID, Board: game.NewBoard()}
}

// Played reports a move applied to board.
func Played(roomID string, board game.Board, mv game.Move) Event {
	return Event{Type: MovePlayed, RoomID: roomID, Board: board, Move: &mv}
}

// Over reports the terminal outcome.
func Over(roomID string, board game.Board, outcome game.Outcome) Event {
	return Event{Type: GameOver, RoomID: roomID, Board: board, Outcome: outcome}
}

// Faulted reports an internal error that ended the game.
func Faulted(roomID string, board game.Board, err error) Event {
	return Event{Type: Fault, RoomID: roomID, Board: board, Err: err}
}

// Score tallies finished games from the human's side. It lives only as long
// as the process.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

// Record adds one finished game to the tally.
func (s *Score) Record(outcome game.Outcome) {
	switch outcome {
	case game.PlayerWin:
		s.Wins++
	case game.OpponentWin:
		s.Losses++
	case game.Draw:
		s.Draws++
	}
}
