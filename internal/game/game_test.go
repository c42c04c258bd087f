package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play applies a sequence of moves, alternating from the human.
func play(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for i, c := range cells {
		_, err := g.Apply(c)
		require.NoErrorf(t, err, "move %d (cell %d)", i, c)
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	assert.Equal(t, StatePlayerTurn, g.State)
	assert.Equal(t, HumanMark, g.Turn())
	assert.Equal(t, InProgress, g.Outcome())
	assert.False(t, g.Over())
	assert.Zero(t, g.Moves)
	assert.Equal(t, Board{}, g.Board)
}

func TestGame_Apply(t *testing.T) {
	tests := []struct {
		name      string
		cells     []int
		wantState State
		wantTurn  PlayerMark
	}{
		{
			name:      "human move hands turn to opponent",
			cells:     []int{4},
			wantState: StateOpponentTurn,
			wantTurn:  BotMark,
		},
		{
			name:      "opponent move hands turn back",
			cells:     []int{4, 0},
			wantState: StatePlayerTurn,
			wantTurn:  HumanMark,
		},
		{
			name: "human completes top row",
			// O:0,1,2  X:3,4
			cells:     []int{0, 3, 1, 4, 2},
			wantState: StatePlayerWon,
			wantTurn:  None,
		},
		{
			name: "opponent completes a diagonal",
			// O:1,3,7  X:0,4,8
			cells:     []int{1, 0, 3, 4, 7, 8},
			wantState: StateOpponentWon,
			wantTurn:  None,
		},
		{
			name: "human fills the last cell without a line",
			// final board O X O / O X X / X O O
			cells:     []int{0, 1, 2, 4, 3, 5, 7, 6, 8},
			wantState: StateDraw,
			wantTurn:  None,
		},
		{
			name: "human wins with the last cell",
			// O X O / X O X / X O O : O holds 0,4,8
			cells:     []int{0, 1, 2, 3, 4, 5, 7, 6, 8},
			wantState: StatePlayerWon,
			wantTurn:  None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			play(t, g, tt.cells...)

			assert.Equal(t, tt.wantState, g.State)
			assert.Equal(t, tt.wantTurn, g.Turn())
			assert.Equal(t, len(tt.cells), g.Moves)
		})
	}
}

func TestGame_ApplyErrors(t *testing.T) {
	t.Run("occupied cell leaves state untouched", func(t *testing.T) {
		g := NewGame()
		play(t, g, 4)
		before := *g

		_, err := g.Apply(4)

		require.ErrorIs(t, err, ErrOccupied)
		assert.Equal(t, before, *g)
	})

	t.Run("out of range", func(t *testing.T) {
		g := NewGame()
		for _, idx := range []int{-1, 9, 42} {
			_, err := g.Apply(idx)
			require.ErrorIs(t, err, ErrRange)
		}
		assert.Equal(t, StatePlayerTurn, g.State)
	})

	t.Run("finished game rejects moves", func(t *testing.T) {
		g := NewGame()
		play(t, g, 0, 3, 1, 4, 2)

		_, err := g.Apply(8)

		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestGame_ApplyReturnsMove(t *testing.T) {
	g := NewGame()

	mv, err := g.Apply(4)
	require.NoError(t, err)
	assert.Equal(t, Move{Index: 4, Mark: HumanMark}, mv)

	mv, err = g.Apply(0)
	require.NoError(t, err)
	assert.Equal(t, Move{Index: 0, Mark: BotMark}, mv)
}
