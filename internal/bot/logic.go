package bot

import (
	"errors"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

//go:generate mockgen -source=logic.go -destination=rand_mock_test.go -package=bot

// Rand is the source of the tie-breaks among corners and sides.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Difficulty selects how much of the policy chain the bot follows.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Reasons attached to the moves the bot returns.
const (
	ReasonWin      = "win"
	ReasonBlock    = "block"
	ReasonCenter   = "center"
	ReasonCorner   = "corner"
	ReasonSide     = "side"
	ReasonFallback = "fallback"
	ReasonRandom   = "random"
)

const center = 4

var (
	corners = []int{0, 2, 6, 8}
	sides   = []int{1, 3, 5, 7}
)

// ErrNoMoveAvailable is returned when the policy is asked to play on a full board.
var ErrNoMoveAvailable = errors.New("no move available")

// CalculateNextMove determines the bot's next move based on the specified difficulty.
// Unknown difficulties play as Hard.
func CalculateNextMove(board game.Board, botMark game.PlayerMark, difficulty Difficulty, rng Rand) (game.Move, error) {
	var (
		index  int
		reason string
		err    error
	)
	switch difficulty {
	case Easy:
		index, reason, err = easyMove(board, rng)
	case Medium:
		index, reason, err = mediumMove(board, botMark, rng)
	default:
		index, reason, err = hardMove(board, botMark, rng)
	}
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{Index: index, Mark: botMark, Reason: reason}, nil
}

// easyMove makes a completely random move.
func easyMove(board game.Board, rng Rand) (int, string, error) {
	index, ok := pickRandom(board, board.FreeCells(), rng)
	if !ok {
		return -1, "", ErrNoMoveAvailable
	}
	return index, ReasonRandom, nil
}

// mediumMove will win if it can, block if it must, otherwise move randomly.
func mediumMove(board game.Board, botMark game.PlayerMark, rng Rand) (int, string, error) {
	if len(board.FreeCells()) == 0 {
		return -1, "", ErrNoMoveAvailable
	}
	if index, ok := findWinningMove(board, botMark); ok {
		return index, ReasonWin, nil
	}
	if index, ok := findWinningMove(board, game.Opponent(botMark)); ok {
		return index, ReasonBlock, nil
	}
	return easyMove(board, rng)
}

// hardMove walks the full priority chain: win, block, center, corner, side,
// and finally the lowest free cell.
func hardMove(board game.Board, botMark game.PlayerMark, rng Rand) (int, string, error) {
	free := board.FreeCells()
	if len(free) == 0 {
		return -1, "", ErrNoMoveAvailable
	}

	if index, ok := findWinningMove(board, botMark); ok {
		return index, ReasonWin, nil
	}
	if index, ok := findWinningMove(board, game.Opponent(botMark)); ok {
		return index, ReasonBlock, nil
	}
	if board.IsFree(center) {
		return center, ReasonCenter, nil
	}
	if index, ok := pickRandom(board, corners, rng); ok {
		return index, ReasonCorner, nil
	}
	if index, ok := pickRandom(board, sides, rng); ok {
		return index, ReasonSide, nil
	}

	// Unreachable while center, corners and sides cover the board.
	return free[0], ReasonFallback, nil
}

// findWinningMove returns the lowest free cell that completes a line for mark.
func findWinningMove(board game.Board, mark game.PlayerMark) (int, bool) {
	for _, i := range board.FreeCells() {
		next := board.Copy()
		next.Place(i, mark)
		if game.HasWon(next, mark) {
			return i, true
		}
	}
	return -1, false
}

// pickRandom chooses uniformly among the free cells of candidates.
func pickRandom(board game.Board, candidates []int, rng Rand) (int, bool) {
	available := make([]int, 0, len(candidates))
	for _, i := range candidates {
		if board.IsFree(i) {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return -1, false
	}
	return available[rng.IntN(len(available))], true
}
