package bot

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

const (
	O = game.PlayerO
	X = game.PlayerX
	E = game.None
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestFindWinningMove(t *testing.T) {
	tests := []struct {
		name      string
		board     game.Board
		mark      game.PlayerMark
		want      int
		wantFound bool
	}{
		{
			name:  "no winning move on empty board",
			board: game.Board{},
			mark:  X,
			want:  -1,
		},
		{
			name:      "completes first row",
			board:     game.Board{X, X, E, O, O, E, E, E, E},
			mark:      X,
			want:      2,
			wantFound: true,
		},
		{
			name:      "completes second column",
			board:     game.Board{X, O, E, X, O, E, E, E, E},
			mark:      O,
			want:      7,
			wantFound: true,
		},
		{
			name:      "fills the middle of the main diagonal",
			board:     game.Board{X, E, E, E, E, E, E, E, X},
			mark:      X,
			want:      4,
			wantFound: true,
		},
		{
			name:      "lowest index wins among several",
			board:     game.Board{E, X, X, E, E, E, E, X, X},
			mark:      X,
			want:      0,
			wantFound: true,
		},
		{
			name:  "full board",
			board: game.Board{X, O, X, O, X, O, O, X, O},
			mark:  X,
			want:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := findWinningMove(tt.board, tt.mark)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHardMove_Priorities(t *testing.T) {
	tests := []struct {
		name       string
		board      game.Board
		want       int
		wantReason string
	}{
		{
			name:       "win now",
			board:      game.Board{X, X, E, O, O, E, E, E, E},
			want:       2,
			wantReason: ReasonWin,
		},
		{
			name:       "win takes precedence over block",
			board:      game.Board{O, O, E, X, X, E, E, E, E},
			want:       5,
			wantReason: ReasonWin,
		},
		{
			name:       "block",
			board:      game.Board{X, E, E, O, O, E, E, E, E},
			want:       5,
			wantReason: ReasonBlock,
		},
		{
			name:       "block picks the lowest threatened cell",
			board:      game.Board{E, O, O, X, E, E, O, E, X},
			want:       0,
			wantReason: ReasonBlock,
		},
		{
			name:       "center on empty board",
			board:      game.Board{},
			want:       4,
			wantReason: ReasonCenter,
		},
		{
			name:       "center after a corner opening",
			board:      game.Board{O, E, E, E, E, E, E, E, E},
			want:       4,
			wantReason: ReasonCenter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mv, err := CalculateNextMove(tt.board, X, Hard, seeded())
			require.NoError(t, err)
			assert.Equal(t, game.Move{Index: tt.want, Mark: X, Reason: tt.wantReason}, mv)
		})
	}
}

func TestHardMove_RandomTieBreaks(t *testing.T) {
	t.Run("corner chosen by the random source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rng := NewMockRand(ctrl)
		// Free corners are 2, 6, 8; index 1 selects 6.
		board := game.Board{O, E, E, E, X, E, E, E, E}
		rng.EXPECT().IntN(3).Return(1)

		mv, err := CalculateNextMove(board, X, Hard, rng)

		require.NoError(t, err)
		assert.Equal(t, 6, mv.Index)
		assert.Equal(t, ReasonCorner, mv.Reason)
	})

	t.Run("side chosen once corners are gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rng := NewMockRand(ctrl)
		// O X O / E O E / X O X : no line threats, only sides 3 and 5 free.
		board := game.Board{O, X, O, E, O, E, X, O, X}
		rng.EXPECT().IntN(2).Return(1)

		mv, err := CalculateNextMove(board, X, Hard, rng)

		require.NoError(t, err)
		assert.Equal(t, 5, mv.Index)
		assert.Equal(t, ReasonSide, mv.Reason)
	})

	t.Run("no random draw when a rule decides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rng := NewMockRand(ctrl)

		mv, err := CalculateNextMove(game.Board{}, X, Hard, rng)

		require.NoError(t, err)
		assert.Equal(t, 4, mv.Index)
	})

	t.Run("corners are all reachable", func(t *testing.T) {
		board := game.Board{E, E, E, E, O, E, E, E, E}
		seen := map[int]bool{}
		rng := seeded()
		for i := 0; i < 200; i++ {
			mv, err := CalculateNextMove(board, X, Hard, rng)
			require.NoError(t, err)
			require.Equal(t, ReasonCorner, mv.Reason)
			seen[mv.Index] = true
		}
		assert.Equal(t, map[int]bool{0: true, 2: true, 6: true, 8: true}, seen)
	})
}

func TestCalculateNextMove_FullBoard(t *testing.T) {
	full := game.Board{O, X, O, O, X, X, X, O, O}

	for _, d := range []Difficulty{Easy, Medium, Hard} {
		t.Run(string(d), func(t *testing.T) {
			_, err := CalculateNextMove(full, X, d, seeded())
			require.ErrorIs(t, err, ErrNoMoveAvailable)
		})
	}
}

func TestEasyMove(t *testing.T) {
	t.Run("only one spot left", func(t *testing.T) {
		board := game.Board{X, O, X, O, X, O, X, E, O}

		mv, err := CalculateNextMove(board, X, Easy, seeded())

		require.NoError(t, err)
		assert.Equal(t, 7, mv.Index)
		assert.Equal(t, ReasonRandom, mv.Reason)
	})

	t.Run("always a free cell", func(t *testing.T) {
		board := game.Board{X, E, E, E, O, E, E, E, E}
		rng := seeded()
		for i := 0; i < 50; i++ {
			mv, err := CalculateNextMove(board, X, Easy, rng)
			require.NoError(t, err)
			assert.True(t, board.IsFree(mv.Index), "cell %d is taken", mv.Index)
		}
	})
}

func TestMediumMove(t *testing.T) {
	t.Run("wins", func(t *testing.T) {
		mv, err := CalculateNextMove(game.Board{X, X, E, O, E, E, E, E, E}, X, Medium, seeded())
		require.NoError(t, err)
		assert.Equal(t, 2, mv.Index)
		assert.Equal(t, ReasonWin, mv.Reason)
	})

	t.Run("blocks", func(t *testing.T) {
		mv, err := CalculateNextMove(game.Board{O, O, E, X, E, E, E, E, E}, X, Medium, seeded())
		require.NoError(t, err)
		assert.Equal(t, 2, mv.Index)
		assert.Equal(t, ReasonBlock, mv.Reason)
	})

	t.Run("otherwise random", func(t *testing.T) {
		board := game.Board{X, E, E, E, O, E, E, E, E}
		mv, err := CalculateNextMove(board, X, Medium, seeded())
		require.NoError(t, err)
		assert.True(t, board.IsFree(mv.Index))
		assert.Equal(t, ReasonRandom, mv.Reason)
	})
}

func TestUnknownDifficultyPlaysHard(t *testing.T) {
	mv, err := CalculateNextMove(game.Board{}, X, Difficulty("impossible"), seeded())

	require.NoError(t, err)
	assert.Equal(t, game.Move{Index: 4, Mark: X, Reason: ReasonCenter}, mv)
}
