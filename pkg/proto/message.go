package proto

import "github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"

// Message types exchanged by the JSON lines view.
const (
	TypeMove             = "move"
	TypePlayerAssignment = "player_assignment"
	TypeGameStarted      = "game_started"
	TypeThinking         = "thinking"
	TypeMovePlayed       = "move_played"
	TypeYourTurn         = "your_turn"
	TypeInvalidMove      = "invalid_move"
	TypeGameOver         = "game_over"
	TypeScore            = "score"
	TypeConfirm          = "confirm"
	TypeError            = "error"
)

// ClientToServerMessage represents a move sent by the player.
type ClientToServerMessage struct {
	Type     string `json:"type" validate:"required,eq=move"`
	Position *int   `json:"position" validate:"required"`
}

// ServerToClientMessage represents a message from the game to the player.
type ServerToClientMessage struct {
	Type     string              `json:"type" validate:"required"`
	RoomID   string              `json:"roomId,omitempty"`
	Reason   string              `json:"reason,omitempty"`
	Board    [][]game.PlayerMark `json:"board,omitempty"`
	Next     game.PlayerMark     `json:"next,omitempty"`
	Winner   game.PlayerMark     `json:"winner,omitempty"`
	Mark     game.PlayerMark     `json:"mark,omitempty"`
	Position *int                `json:"position,omitempty"`
	Outcome  game.Outcome        `json:"outcome,omitempty"`
	Message  string              `json:"message,omitempty"`
}

// PlayerAssignmentMessage informs a player of their assigned mark.
type PlayerAssignmentMessage struct {
	Type     string          `json:"type"`
	PlayerID string          `json:"playerId,omitempty"`
	Mark     game.PlayerMark `json:"mark"`
}

// ScoreMessage carries the running tally between rounds.
type ScoreMessage struct {
	Type   string `json:"type"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}
