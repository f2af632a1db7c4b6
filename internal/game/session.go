// Package game holds the board state for one active puzzle and the
// pure evaluation of entries against the known solution.
package game

import "svw.info/sudoku-tui/internal/domain"

// Evaluate scores a full grid of entries against the solution.
// wrong[i] is set iff entries[i] is non-blank and differs from
// solution[i]; complete is true only when every entry is non-blank
// and matches.
func Evaluate(entries, solution [domain.GridSize]uint8) (wrong [domain.GridSize]bool, complete bool) {
	complete = true
	for i := 0; i < domain.GridSize; i++ {
		switch {
		case entries[i] == 0:
			complete = false
		case entries[i] != solution[i]:
			wrong[i] = true
			complete = false
		}
	}
	return wrong, complete
}

// Normalize reduces raw input to at most one digit in 1..9: the first
// such rune wins, everything else is discarded. 0 means "nothing
// usable survived". It never fails.
func Normalize(raw string) uint8 {
	for _, r := range raw {
		if r >= '1' && r <= '9' {
			return uint8(r - '0')
		}
	}
	return 0
}

// Session owns the board for one game. Givens are locked from the
// start; every cell locks once the session completes. A new game
// means a new Session, never a reused one.
type Session struct {
	puzzle  domain.Puzzle
	entries [domain.GridSize]uint8
	wrong   [domain.GridSize]bool
	done    bool
}

// NewSession resets to exactly the served puzzle: givens filled in,
// editable cells blank, no flags carried over from any prior game.
func NewSession(p *domain.Puzzle) *Session {
	return &Session{puzzle: *p, entries: p.Givens}
}

// SetCell writes v (0 clears) into cell i and re-evaluates the board.
// It reports whether the write was accepted: given cells, completed
// sessions, out-of-range indices and out-of-range values are all
// rejected untouched.
func (s *Session) SetCell(i int, v uint8) bool {
	if i < 0 || i >= domain.GridSize || v > 9 {
		return false
	}
	if s.done || s.puzzle.Givens[i] != 0 {
		return false
	}
	s.entries[i] = v
	s.wrong, s.done = Evaluate(s.entries, s.puzzle.Solution)
	return true
}

// Cell returns the render view of cell i.
func (s *Session) Cell(i int) domain.CellState {
	return domain.CellState{
		Value: s.entries[i],
		Given: s.puzzle.Givens[i] != 0,
		Wrong: s.wrong[i],
	}
}

// Complete reports whether the board is fully and correctly filled.
// Once true it stays true for the life of the session.
func (s *Session) Complete() bool { return s.done }

// Difficulty returns the difficulty the puzzle was requested at.
func (s *Session) Difficulty() domain.Difficulty { return s.puzzle.Difficulty }

// Filled counts non-blank cells, givens included.
func (s *Session) Filled() int {
	n := 0
	for _, v := range s.entries {
		if v != 0 {
			n++
		}
	}
	return n
}
