package ui

import (
	"errors"
	"fmt"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/bot"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/events"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

const (
	welcomeMessage  = "Welcome to Mechanical Tic-Tac-Toe Simulation!"
	rulesMessage    = "You are 'O', the AI is 'X'. Enter 0-8 to make a move."
	movePrompt      = "Your turn (O). Choose a square (0-8): "
	thinkingMessage = "AI (X) is thinking..."
)

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrParse):
		return "Invalid input. Please enter a number."
	case errors.Is(err, game.ErrRange):
		return "Invalid choice. Please enter a number between 0 and 8."
	case errors.Is(err, game.ErrOccupied):
		return "That space is already taken. Choose another."
	default:
		return fmt.Sprintf("Invalid move: %v", err)
	}
}

// reasonMessage explains a bot move. Empty for reasons with nothing to say.
func reasonMessage(reason string) string {
	switch reason {
	case bot.ReasonWin:
		return "AI finds a winning move."
	case bot.ReasonBlock:
		return "AI finds a move to block player."
	case bot.ReasonCenter, bot.ReasonCorner, bot.ReasonSide, bot.ReasonFallback:
		return "AI follows strategic placement."
	case bot.ReasonRandom:
		return "AI picks a square at random."
	}
	return ""
}

func choiceMessage(index int) string {
	return fmt.Sprintf("AI (X) chooses square %d", index)
}

func outcomeMessage(outcome game.Outcome) string {
	switch outcome {
	case game.PlayerWin:
		return "Congratulations! You (O) have won!"
	case game.OpponentWin:
		return "AI (X) has won!"
	case game.Draw:
		return "It's a draw!"
	}
	return ""
}

func faultMessage(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

func scoreMessage(s events.Score) string {
	return fmt.Sprintf("Score: You %d - AI %d (draws: %d)", s.Wins, s.Losses, s.Draws)
}

// cellLabel is the mark in a cell, or its index while it is free.
func cellLabel(b game.Board, index int) string {
	if b.IsFree(index) {
		return fmt.Sprint(index)
	}
	return string(b[index])
}
