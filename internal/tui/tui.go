// Package tui renders the board with termbox and runs the event
// loop. All board mutation happens on the loop goroutine; fetches
// run in the background and are delivered back through a channel.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	termbox "github.com/nsf/termbox-go"

	"svw.info/sudoku-tui/internal/controller"
	"svw.info/sudoku-tui/internal/domain"
	"svw.info/sudoku-tui/internal/game"
)

// UI is the interactive surface over one controller.
type UI struct {
	ctrl   *controller.Controller
	logger *slog.Logger

	cursor     int // 0..80, row-major
	difficulty domain.Difficulty
	status     string
	loading    bool

	results chan loadResult
}

type loadResult struct {
	sess *game.Session
	err  error
}

func New(ctrl *controller.Controller, logger *slog.Logger, d domain.Difficulty) *UI {
	return &UI{
		ctrl:       ctrl,
		logger:     logger,
		difficulty: d,
		cursor:     0,
		results:    make(chan loadResult, 4),
	}
}

// Run initializes the terminal, starts the first game, and blocks in
// the event loop until the user quits or ctx is canceled.
func (u *UI) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer termbox.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			termbox.Interrupt()
		case <-stop:
		}
	}()

	u.startNewGame(ctx)

	for {
		u.draw()
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if quit := u.handleKey(ctx, ev); quit {
				return nil
			}
		case termbox.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			u.drainResults()
		case termbox.EventError:
			return ev.Err
		}
	}
}

// startNewGame kicks off a background fetch at the current
// difficulty. The controller drops responses that a later request
// has overtaken, so mashing 'n' is safe.
func (u *UI) startNewGame(ctx context.Context) {
	d := u.difficulty
	u.loading = true
	u.status = "loading " + d.String() + " puzzle..."
	go func() {
		sess, err := u.ctrl.NewGame(ctx, d)
		u.results <- loadResult{sess: sess, err: err}
		termbox.Interrupt()
	}()
}

// drainResults applies finished fetches on the loop goroutine.
func (u *UI) drainResults() {
	for {
		select {
		case res := <-u.results:
			switch {
			case errors.Is(res.err, controller.ErrStale):
				// an overtaken request; the newest one reports for itself
			case res.err != nil:
				u.loading = false
				u.status = res.err.Error()
				u.logger.Warn("new game failed", "err", res.err)
			default:
				u.loading = false
				u.cursor = 0
				u.status = fmt.Sprintf("%s puzzle loaded, %d givens", res.sess.Difficulty(), res.sess.Filled())
			}
		default:
			return
		}
	}
}

func (u *UI) handleKey(ctx context.Context, ev termbox.Event) (quit bool) {
	switch {
	case ev.Key == termbox.KeyEsc, ev.Key == termbox.KeyCtrlC, ev.Ch == 'q':
		return true
	case ev.Key == termbox.KeyArrowUp, ev.Ch == 'k':
		u.moveCursor(0, -1)
	case ev.Key == termbox.KeyArrowDown, ev.Ch == 'j':
		u.moveCursor(0, 1)
	case ev.Key == termbox.KeyArrowLeft, ev.Ch == 'h':
		u.moveCursor(-1, 0)
	case ev.Key == termbox.KeyArrowRight, ev.Ch == 'l':
		u.moveCursor(1, 0)
	case ev.Ch >= '1' && ev.Ch <= '9':
		u.enter(game.Normalize(string(ev.Ch)))
	case ev.Ch == '0', ev.Key == termbox.KeySpace,
		ev.Key == termbox.KeyBackspace, ev.Key == termbox.KeyBackspace2,
		ev.Key == termbox.KeyDelete:
		u.enter(0)
	case ev.Ch == 'n':
		u.startNewGame(ctx)
	case ev.Ch == '+', ev.Ch == 'd':
		u.difficulty = u.difficulty.Next()
		u.status = "difficulty: " + u.difficulty.String() + " (press n for a new game)"
	case ev.Ch == '-':
		u.difficulty = u.difficulty.Prev()
		u.status = "difficulty: " + u.difficulty.String() + " (press n for a new game)"
	}
	return false
}

func (u *UI) moveCursor(dx, dy int) {
	col := u.cursor%9 + dx
	row := u.cursor/9 + dy
	if col < 0 || col > 8 || row < 0 || row > 8 {
		return
	}
	u.cursor = row*9 + col
}

// enter writes v at the cursor; given cells and finished boards
// swallow the keystroke.
func (u *UI) enter(v uint8) {
	sess := u.ctrl.Session()
	if sess == nil {
		return
	}
	if !sess.SetCell(u.cursor, v) {
		return
	}
	if sess.Complete() {
		u.status = "solved! press n for a new game"
	} else {
		u.status = fmt.Sprintf("%d/%d filled", sess.Filled(), domain.GridSize)
	}
}
