package game

import (
	"errors"
	"fmt"
)

// State is a node of the turn state machine.
type State string

const (
	StatePlayerTurn   State = "player_turn"
	StateOpponentTurn State = "opponent_turn"
	StatePlayerWon    State = "player_won"
	StateOpponentWon  State = "opponent_won"
	StateDraw         State = "draw"
)

var ErrGameOver = errors.New("game already finished")

// Game owns the board of one session and the turn state machine around it.
// The human always moves first.
type Game struct {
	Board Board
	State State
	Moves int
}

func NewGame() *Game {
	return &Game{
		Board: NewBoard(),
		State: StatePlayerTurn,
	}
}

// Over reports whether the game reached a terminal state.
func (g *Game) Over() bool {
	switch g.State {
	case StatePlayerWon, StateOpponentWon, StateDraw:
		return true
	}
	return false
}

// Turn returns the mark expected to move next, or None once the game is over.
func (g *Game) Turn() PlayerMark {
	switch g.State {
	case StatePlayerTurn:
		return HumanMark
	case StateOpponentTurn:
		return BotMark
	}
	return None
}

// Outcome maps the state to the game result.
func (g *Game) Outcome() Outcome {
	switch g.State {
	case StatePlayerWon:
		return PlayerWin
	case StateOpponentWon:
		return OpponentWin
	case StateDraw:
		return Draw
	}
	return InProgress
}

// Apply places the current side's mark at index and advances the state.
// Win and fullness are both checked after every move, so a board filled by
// the human's last move ends as a draw before the opponent is asked to play.
func (g *Game) Apply(index int) (Move, error) {
	if g.Over() {
		return Move{}, ErrGameOver
	}
	if err := ValidateIndex(index); err != nil {
		return Move{}, err
	}
	if !g.Board.IsFree(index) {
		return Move{}, fmt.Errorf("%w: %d", ErrOccupied, index)
	}

	mark := g.Turn()
	g.Board.Place(index, mark)
	g.Moves++

	switch {
	case HasWon(g.Board, mark) && mark == HumanMark:
		g.State = StatePlayerWon
	case HasWon(g.Board, mark):
		g.State = StateOpponentWon
	case IsFull(g.Board):
		g.State = StateDraw
	case mark == HumanMark:
		g.State = StateOpponentTurn
	default:
		g.State = StatePlayerTurn
	}

	return Move{Index: index, Mark: mark}, nil
}
