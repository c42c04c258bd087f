package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/validator"
)

// Move is a cell chosen by a player together with the rule that chose it.
type Move struct {
	Index  int        `json:"index"`
	Mark   PlayerMark `json:"mark"`
	Reason string     `json:"reason,omitempty"`
}

// ReasonInput marks a move typed in by the human.
const ReasonInput = "input"

var (
	ErrParse    = errors.New("input is not a number")
	ErrRange    = errors.New("cell index out of range")
	ErrOccupied = errors.New("cell already occupied")
)

var cellRule = fmt.Sprintf("min=0,max=%d", Size-1)

// ValidateIndex checks that index names a cell of the board.
func ValidateIndex(index int) error {
	if err := validator.GetValidator().Var(index, cellRule); err != nil {
		return fmt.Errorf("%w: %d", ErrRange, index)
	}
	return nil
}

// ValidatePlayerMove turns a line of user input into a free cell index.
// Nothing is applied to the board.
func ValidatePlayerMove(b Board, raw string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1, fmt.Errorf("%w: %q", ErrParse, raw)
	}
	if err := ValidateIndex(index); err != nil {
		return -1, err
	}
	if !b.IsFree(index) {
		return -1, fmt.Errorf("%w: %d", ErrOccupied, index)
	}
	return index, nil
}
