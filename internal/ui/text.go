package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/events"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

const rowSeparator = "-------------"

// Text is the console view: the board drawn in ASCII, moves typed as numbers.
type Text struct {
	in       *lineReader
	out      io.Writer
	welcomed bool
}

func NewText(in io.Reader, out io.Writer) *Text {
	return &Text{in: newLineReader(in), out: out}
}

func (t *Text) Notify(_ context.Context, ev events.Event) {
	switch ev.Type {
	case events.GameStarted:
		if !t.welcomed {
			t.println(welcomeMessage)
			t.println(rulesMessage)
			t.welcomed = true
		}
		t.printBoard(ev.Board)
	case events.Thinking:
		t.println(thinkingMessage)
	case events.MovePlayed:
		if ev.Move != nil && ev.Move.Mark == game.BotMark {
			if msg := reasonMessage(ev.Move.Reason); msg != "" {
				t.println(msg)
			}
			t.println(choiceMessage(ev.Move.Index))
		}
		t.printBoard(ev.Board)
	case events.GameOver:
		t.println(outcomeMessage(ev.Outcome))
	case events.Fault:
		t.println(faultMessage(ev.Err))
	}
}

func (t *Text) ReadMove(ctx context.Context, _ game.Board) (string, error) {
	fmt.Fprint(t.out, movePrompt)
	return t.in.ReadLine(ctx)
}

func (t *Text) RejectMove(_ context.Context, err error) {
	t.println(rejectionMessage(err))
}

// Confirm asks a yes/no question until it gets an answer.
func (t *Text) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		fmt.Fprintf(t.out, "%s ", question)
		s, err := t.in.ReadLine(ctx)
		if err != nil {
			return false, err
		}
		if answer, ok := parseYesNo(s); ok {
			return answer, nil
		}
		t.println("Please answer y or n.")
	}
}

func (t *Text) ShowScore(_ context.Context, s events.Score) {
	t.println(scoreMessage(s))
}

func (t *Text) println(s string) {
	fmt.Fprintln(t.out, s)
}

func (t *Text) printBoard(b game.Board) {
	fmt.Fprint(t.out, RenderBoard(b))
}

// RenderBoard draws the board with free cells showing their index.
func RenderBoard(b game.Board) string {
	var sb strings.Builder
	sb.WriteString("\n" + rowSeparator + "\n")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n",
			cellLabel(b, row*3), cellLabel(b, row*3+1), cellLabel(b, row*3+2))
		sb.WriteString(rowSeparator + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
