package player

import (
	"context"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

// Mover is anything that can choose the next cell for a player.
type Mover interface {
	NextMove(ctx context.Context, board game.Board) (game.Move, error)
}

// Prompter abstracts the console (or other view) the human types moves into.
type Prompter interface {
	ReadMove(ctx context.Context, board game.Board) (string, error)
	RejectMove(ctx context.Context, err error)
}

// Player represents one side of a room.
type Player struct {
	ID    string
	Name  string
	Mark  game.PlayerMark
	IsBot bool
	Mover Mover
}

// NewPlayer creates a player with the given mark and move source.
func NewPlayer(id, name string, mark game.PlayerMark, mover Mover) *Player {
	return &Player{
		ID:    id,
		Name:  name,
		Mark:  mark,
		Mover: mover,
	}
}
