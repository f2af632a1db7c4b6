package tui

import (
	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"svw.info/sudoku-tui/internal/domain"
)

const (
	offX = 1
	offY = 1

	border = "+-------+-------+-------+"
	help   = "move h/j/k/l or arrows | 1-9 set | 0/space clear | n new game | +/- difficulty | q quit"
)

// cellPos maps a board index to its screen coordinates inside the
// bordered grid (an extra border row/column every three cells).
func cellPos(i int) (x, y int) {
	row, col := i/9, i%9
	x = offX + 2 + 2*col + 2*(col/3)
	y = offY + 1 + row + row/3
	return x, y
}

func (u *UI) draw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	title := "SUDOKU [" + u.difficulty.String() + "]"
	drawText(offX, 0, termbox.ColorDefault|termbox.AttrBold, termbox.ColorDefault, title)

	sess := u.ctrl.Session()
	solved := sess != nil && sess.Complete()

	borderFG := termbox.ColorDefault
	if solved {
		borderFG = termbox.ColorGreen
	}
	for band := 0; band <= 3; band++ {
		drawText(offX, offY+4*band, borderFG, termbox.ColorDefault, border)
	}
	for row := 0; row < 9; row++ {
		y := offY + 1 + row + row/3
		for _, x := range []int{offX, offX + 8, offX + 16, offX + 24} {
			termbox.SetCell(x, y, '|', borderFG, termbox.ColorDefault)
		}
	}

	for i := 0; i < domain.GridSize; i++ {
		x, y := cellPos(i)
		ch := '.'
		fg := termbox.ColorDefault
		if sess != nil {
			cs := sess.Cell(i)
			switch {
			case cs.Wrong:
				fg = termbox.ColorRed | termbox.AttrBold
			case cs.Given:
				fg = termbox.ColorCyan | termbox.AttrBold
			case solved:
				fg = termbox.ColorGreen
			}
			if cs.Value != 0 {
				ch = rune('0' + cs.Value)
			}
		}
		termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
	}

	statusFG := termbox.ColorDefault
	if solved {
		statusFG = termbox.ColorGreen | termbox.AttrBold
	} else if u.loading {
		statusFG = termbox.ColorYellow
	}
	drawText(offX, offY+14, statusFG, termbox.ColorDefault, u.status)
	drawText(offX, offY+16, termbox.ColorDefault, termbox.ColorDefault, help)

	cx, cy := cellPos(u.cursor)
	termbox.SetCursor(cx, cy)
	termbox.Flush()
}

// drawText writes s starting at (x, y), advancing by display width so
// wide runes stay aligned.
func drawText(x, y int, fg, bg termbox.Attribute, s string) {
	for _, r := range s {
		termbox.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
}
