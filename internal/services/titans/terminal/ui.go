package terminal

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/message"

	errcatalog "github.com/louisbranch/titans/internal/platform/errors/i18n"
	"github.com/louisbranch/titans/internal/platform/i18n/catalog"
	"github.com/louisbranch/titans/internal/services/titans/engine"
)

const (
	pageMain = "main"
	pageEnd  = "end"
)

// Controller is the engine surface the UI drives.
type Controller interface {
	ClickPosition(ctx context.Context, pos int) (engine.Result, error)
	Pause(ctx context.Context) (engine.Result, error)
	Resume(ctx context.Context) (engine.Result, error)
	Reset(ctx context.Context) (engine.Result, error)
	Snapshot() engine.View
	Subscribe(fn func(engine.Result)) func()
}

// UI is the terminal board for one match.
type UI struct {
	app     *tview.Application
	pages   *tview.Pages
	board   *tview.TextView
	status  *tview.TextView
	notices *tview.TextView
	input   *tview.InputField
	modal   *tview.Modal

	ctrl    Controller
	printer *message.Printer
	errs    *errcatalog.Catalog
}

// New builds the UI for ctrl in the given locale.
func New(ctrl Controller, locale string) *UI {
	bundle := catalog.Default()
	u := &UI{
		app:     tview.NewApplication(),
		pages:   tview.NewPages(),
		board:   tview.NewTextView().SetDynamicColors(true),
		status:  tview.NewTextView().SetDynamicColors(true),
		notices: tview.NewTextView().SetDynamicColors(true).SetScrollable(true),
		input:   tview.NewInputField(),
		modal:   tview.NewModal(),
		ctrl:    ctrl,
		printer: bundle.Printer(locale),
		errs:    errcatalog.GetCatalog(locale),
	}
	u.build()
	return u
}

func (u *UI) build() {
	p := u.printer
	u.board.SetBorder(true).SetTitle(" " + p.Sprintf("game.title") + " ")
	u.status.SetBorder(true)
	u.notices.SetBorder(true)
	u.notices.SetMaxLines(200)

	u.input.SetLabel("> ").
		SetPlaceholder(p.Sprintf("game.help")).
		SetFieldBackgroundColor(tcell.ColorDefault)
	u.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			text := u.input.GetText()
			u.input.SetText("")
			u.handle(text)
		case tcell.KeyEscape:
			u.input.SetText("")
		}
	})

	u.modal.AddButtons([]string{p.Sprintf("game.new_game"), p.Sprintf("game.quit")}).
		SetDoneFunc(func(index int, _ string) {
			u.pages.HidePage(pageEnd)
			u.app.SetFocus(u.input)
			if index == 0 {
				u.handle("n")
				return
			}
			u.app.Stop()
		})

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.status, 0, 1, false).
		AddItem(u.notices, 0, 1, false)
	top := tview.NewFlex().
		AddItem(u.board, boardWidth+2, 0, false).
		AddItem(side, 0, 1, false)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, false).
		AddItem(u.input, 1, 0, true)

	u.pages.AddPage(pageMain, layout, true, true)
	u.pages.AddPage(pageEnd, u.modal, false, false)
	u.app.SetRoot(u.pages, true).SetFocus(u.input)
}

// Run shows the UI until the player quits or ctx is cancelled. While it runs
// the standard logger writes into the notice pane.
func (u *UI) Run(ctx context.Context) error {
	unsubscribe := u.ctrl.Subscribe(func(result engine.Result) {
		// Results may arrive on the UI goroutine; queueing from it would block.
		go u.app.QueueUpdateDraw(func() { u.show(result) })
	})
	defer unsubscribe()

	previous := log.Writer()
	log.SetOutput(noticeWriter{u})
	defer log.SetOutput(previous)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			u.app.Stop()
		case <-done:
		}
	}()

	u.refresh(u.ctrl.Snapshot())
	u.notice(u.printer.Sprintf("game.help"))
	return u.app.Run()
}

func (u *UI) handle(text string) {
	in, err := ParseInput(text)
	if err != nil {
		u.notice(u.printer.Sprintf("game.unknown_input", strings.TrimSpace(text)))
		return
	}

	ctx := context.Background()
	switch in.Action {
	case ActionClick:
		_, err = u.ctrl.ClickPosition(ctx, in.Position)
	case ActionPause:
		_, err = u.ctrl.Pause(ctx)
	case ActionResume:
		_, err = u.ctrl.Resume(ctx)
	case ActionReset:
		_, err = u.ctrl.Reset(ctx)
	case ActionQuit:
		u.app.Stop()
	case ActionHelp:
		u.notice(u.printer.Sprintf("game.help"))
	}
	if err != nil {
		log.Printf("terminal %s: %v", strings.TrimSpace(text), err)
	}
}

func (u *UI) show(result engine.Result) {
	u.refresh(result.View)
	for _, line := range Notices(result, u.printer, u.errs) {
		u.notice(line)
	}
	if result.Outcome != nil {
		u.modal.SetText(EndMessage(*result.Outcome, u.printer))
		u.pages.ShowPage(pageEnd)
		u.app.SetFocus(u.modal)
	}
}

func (u *UI) refresh(view engine.View) {
	u.board.SetText(BoardText(view))
	u.status.SetText(StatusText(view, u.printer))
}

func (u *UI) notice(line string) {
	fmt.Fprintln(u.notices, line)
	u.notices.ScrollToEnd()
}

// noticeWriter forwards log output to the notice pane from any goroutine.
type noticeWriter struct {
	u *UI
}

var _ io.Writer = noticeWriter{}

func (w noticeWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	go w.u.app.QueueUpdateDraw(func() { w.u.notice(tview.Escape(line)) })
	return len(p), nil
}
