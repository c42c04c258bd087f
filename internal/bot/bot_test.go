package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

func TestNewBotPlayer(t *testing.T) {
	p := NewBotPlayer(Hard, seeded())

	assert.True(t, p.IsBot)
	assert.True(t, strings.HasPrefix(p.ID, "bot-"))
	assert.Len(t, p.ID, len("bot-")+8)
	assert.Equal(t, game.BotMark, p.Mark)
	require.NotNil(t, p.Mover)
}

func TestBot_NextMove(t *testing.T) {
	b := NewBot("bot-test", X, Hard, seeded())

	t.Run("plays the policy", func(t *testing.T) {
		mv, err := b.NextMove(context.Background(), game.Board{X, X, E, O, O, E, E, E, E})

		require.NoError(t, err)
		assert.Equal(t, game.Move{Index: 2, Mark: X, Reason: ReasonWin}, mv)
	})

	t.Run("signals a full board", func(t *testing.T) {
		_, err := b.NextMove(context.Background(), game.Board{O, X, O, O, X, X, X, O, O})

		require.ErrorIs(t, err, ErrNoMoveAvailable)
	})
}
