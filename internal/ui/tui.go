package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/events"
	"github.com/AnshKumarTripathi/Mech-Tic-toe/internal/game"
)

const confirmPage = "confirm"

// TUI is the full-screen terminal view. Run owns the terminal and must be
// called on the main goroutine; the other methods are safe to call from the
// goroutine running the game.
type TUI struct {
	app    *tview.Application
	pages  *tview.Pages
	table  *tview.Table
	status *tview.TextView
	score  *tview.TextView

	moves   chan string
	answers chan bool

	// touched only on the UI goroutine
	awaiting bool
}

func NewTUI() *TUI {
	t := &TUI{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		table:   tview.NewTable(),
		status:  tview.NewTextView(),
		score:   tview.NewTextView(),
		moves:   make(chan string, 1),
		answers: make(chan bool, 1),
	}

	t.table.SetBorders(true).SetSelectable(true, true)
	t.table.SetBorder(true).SetTitle(" Mechanical Tic-Tac-Toe ")
	t.table.SetSelectedFunc(func(row, col int) {
		if !t.awaiting {
			return
		}
		select {
		case t.moves <- strconv.Itoa(row*3 + col):
			t.awaiting = false
		default:
		}
	})
	t.table.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyRune {
			switch r := ev.Rune(); {
			case r >= '0' && r <= '8':
				i := int(r - '0')
				t.table.Select(i/3, i%3)
				return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
			case r == 'q':
				t.app.Stop()
				return nil
			}
		}
		return ev
	})
	t.drawBoard(game.NewBoard())

	t.status.SetDynamicColors(true)
	t.status.SetTextAlign(tview.AlignLeft)
	t.score.SetTextAlign(tview.AlignLeft)

	side := tview.NewFlex().SetDirection(tview.FlexRow)
	side.AddItem(t.status, 0, 1, false)
	side.AddItem(t.score, 1, 0, false)

	layout := tview.NewFlex().SetDirection(tview.FlexColumn)
	layout.AddItem(t.table, 19, 0, true)
	layout.AddItem(side, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	root.AddItem(layout, 9, 0, true)
	root.AddItem(tview.NewTextView().SetText("0-8 or arrows+enter to play, q to quit"), 1, 0, false)

	t.pages.AddPage("game", root, true, true)
	return t
}

// Run blocks until the user quits or Stop is called.
func (t *TUI) Run() error {
	return t.app.SetRoot(t.pages, true).EnableMouse(true).Run()
}

func (t *TUI) Stop() {
	t.app.Stop()
}

func (t *TUI) Notify(_ context.Context, ev events.Event) {
	t.app.QueueUpdateDraw(func() {
		t.drawBoard(ev.Board)
		switch ev.Type {
		case events.GameStarted:
			t.status.SetText(welcomeMessage + "\n" + rulesMessage)
		case events.Thinking:
			t.status.SetText(thinkingMessage)
		case events.MovePlayed:
			if ev.Move != nil && ev.Move.Mark == game.BotMark {
				t.status.SetText(reasonMessage(ev.Move.Reason) + "\n" + choiceMessage(ev.Move.Index))
			}
		case events.GameOver:
			t.status.SetText("[yellow::b]" + outcomeMessage(ev.Outcome) + "[-:-:-]")
		case events.Fault:
			t.status.SetText("[red]" + tview.Escape(faultMessage(ev.Err)) + "[-]")
		}
	})
}

func (t *TUI) ReadMove(ctx context.Context, _ game.Board) (string, error) {
	t.app.QueueUpdateDraw(func() {
		t.awaiting = true
		fmt.Fprintf(t.status, "\n%s", movePrompt)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case m := <-t.moves:
		return m, nil
	}
}

func (t *TUI) RejectMove(_ context.Context, err error) {
	t.app.QueueUpdateDraw(func() {
		t.status.SetText("[red]" + rejectionMessage(err) + "[-]")
	})
}

// Confirm shows a modal with Yes and No buttons.
func (t *TUI) Confirm(ctx context.Context, question string) (bool, error) {
	t.app.QueueUpdateDraw(func() {
		modal := tview.NewModal().
			SetText(question).
			AddButtons([]string{"Yes", "No"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				t.pages.RemovePage(confirmPage)
				t.answers <- buttonLabel == "Yes"
			})
		t.pages.AddPage(confirmPage, modal, true, true)
	})
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case answer := <-t.answers:
		return answer, nil
	}
}

func (t *TUI) ShowScore(_ context.Context, s events.Score) {
	t.app.QueueUpdateDraw(func() {
		t.score.SetText(scoreMessage(s))
	})
}

func (t *TUI) drawBoard(b game.Board) {
	for i := 0; i < game.Size; i++ {
		cell := tview.NewTableCell(" " + cellLabel(b, i) + " ").SetAlign(tview.AlignCenter)
		switch b[i] {
		case game.PlayerX:
			cell.SetTextColor(tcell.ColorRed)
		case game.PlayerO:
			cell.SetTextColor(tcell.ColorGreen)
		default:
			cell.SetTextColor(tcell.ColorGray)
		}
		t.table.SetCell(i/3, i%3, cell)
	}
}
