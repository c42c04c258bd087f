package game

// Outcome is the result of a game as derived from its board.
type Outcome string

const (
	InProgress  Outcome = "in_progress"
	PlayerWin   Outcome = "player_win"
	OpponentWin Outcome = "opponent_win"
	Draw        Outcome = "draw"
)

// Lines are the index triples whose uniform occupation wins the game.
var Lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// columns
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diagonals
	{0, 4, 8}, {2, 4, 6},
}

// HasWon reports whether any line is held entirely by mark.
func HasWon(b Board, mark PlayerMark) bool {
	for _, ln := range Lines {
		if b[ln[0]] == mark && b[ln[1]] == mark && b[ln[2]] == mark {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is free.
func IsFull(b Board) bool {
	for i := range b {
		if b.IsFree(i) {
			return false
		}
	}
	return true
}

// Evaluate derives the outcome of a board. The human's line is checked first;
// both sides holding a line cannot happen in a legal game.
func Evaluate(b Board) Outcome {
	switch {
	case HasWon(b, HumanMark):
		return PlayerWin
	case HasWon(b, BotMark):
		return OpponentWin
	case IsFull(b):
		return Draw
	default:
		return InProgress
	}
}
