package game

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// HumanMark is played by the person at the console, BotMark by the opponent.
	HumanMark = PlayerO
	BotMark   = PlayerX
)

// Size is the number of cells on the board.
const Size = 9

// Board holds the 3x3 grid in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [Size]PlayerMark

// Opponent returns the mark playing against mark.
func Opponent(mark PlayerMark) PlayerMark {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

// IsFree reports whether the cell at index holds no mark. The index must
// already be known to be in range.
func (b Board) IsFree(index int) bool {
	return b[index] == None
}

// Place sets the cell at index to mark. Callers check IsFree first.
func (b *Board) Place(index int, mark PlayerMark) {
	b[index] = mark
}

// Copy returns an independent snapshot used for what-if evaluation.
func (b Board) Copy() Board {
	var cp Board
	copy(cp[:], b[:])
	return cp
}

// FreeCells lists the empty cells in ascending order.
func (b Board) FreeCells() []int {
	free := make([]int, 0, Size)
	for i := range b {
		if b.IsFree(i) {
			free = append(free, i)
		}
	}
	return free
}

// Count returns how many cells hold mark.
func (b Board) Count(mark PlayerMark) int {
	n := 0
	for _, cell := range b {
		if cell == mark {
			n++
		}
	}
	return n
}

// Rows converts the board to a slice of rows for renderers and wire messages.
func (b Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, 3)
	for r := range [3]int{} {
		rows[r] = make([]PlayerMark, 3)
		for c := range [3]int{} {
			rows[r][c] = b[r*3+c]
		}
	}
	return rows
}
