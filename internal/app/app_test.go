package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/config"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/events"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/player"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/room"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/ui"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.ThinkDelay = 0
	cfg.Difficulty = "hard"
	cfg.Seed = 42
	cfg.Rematch = false
	return cfg
}

// The hard bot answers 0 with the center, then blocks 2, then wins on 2-4-6
// after 3 is played; no random tie-break is involved.
const losingScript = "0\n1\n3\n"

func TestApp_Run_SingleGame(t *testing.T) {
	var out bytes.Buffer
	view := ui.NewText(strings.NewReader(losingScript), &out)

	score, err := New(testConfig(), view, nil).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, events.Score{Losses: 1}, score)
	got := out.String()
	assert.Contains(t, got, "AI finds a move to block player.\nAI (X) chooses square 2\n")
	assert.Contains(t, got, "AI finds a winning move.\nAI (X) chooses square 6\n")
	assert.True(t, strings.HasSuffix(got, "AI (X) has won!\n"))
	assert.NotContains(t, got, "Play again?")
}

func TestApp_Run_InvalidInputIsRetried(t *testing.T) {
	var out bytes.Buffer
	view := ui.NewText(strings.NewReader("x\n9\n0\n4\n1\n3\n"), &out)

	score, err := New(testConfig(), view, nil).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, score.Losses)
	got := out.String()
	assert.Contains(t, got, "Invalid input. Please enter a number.")
	assert.Contains(t, got, "Invalid choice. Please enter a number between 0 and 8.")
	assert.Contains(t, got, "That space is already taken. Choose another.")
}

func TestApp_Run_Rematch(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig()
	cfg.Rematch = true
	view := ui.NewText(strings.NewReader(losingScript+"y\n"+losingScript+"n\n"), &out)

	score, err := New(cfg, view, nil).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, events.Score{Losses: 2}, score)
	assert.Equal(t, 2, strings.Count(out.String(), "Play again? (y/n)"))
	assert.Contains(t, out.String(), "Score: You 0 - AI 2 (draws: 0)")
}

func TestApp_Run_InputClosedAtRematch(t *testing.T) {
	cfg := testConfig()
	cfg.Rematch = true
	view := ui.NewText(strings.NewReader(losingScript), &bytes.Buffer{})

	score, err := New(cfg, view, nil).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, score.Losses)
}

func TestApp_Run_InputClosedMidGame(t *testing.T) {
	view := ui.NewText(strings.NewReader("0\n"), &bytes.Buffer{})

	score, err := New(testConfig(), view, nil).Run(context.Background())

	require.ErrorIs(t, err, player.ErrInputClosed)
	assert.NotErrorIs(t, err, room.ErrInternal)
	assert.Equal(t, events.Score{}, score)
}

func TestNewRand_Deterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for range 10 {
		assert.Equal(t, a.IntN(4), b.IntN(4))
	}
}
