// Package controller drives the game lifecycle: it asks the puzzle
// source for new games and guards the board against stale responses
// from overlapping requests.
package controller

import (
	"context"
	"errors"
	"sync"

	"svw.info/sudoku-tui/internal/domain"
	"svw.info/sudoku-tui/internal/game"
	"svw.info/sudoku-tui/internal/ports"
)

var (
	errNoSource = errors.New("controller: puzzle source not configured")

	// ErrStale marks a fetch that finished after a newer request was
	// issued; its puzzle was discarded and the board untouched.
	ErrStale = errors.New("controller: superseded by a newer request")
)

// Controller holds at most one active session, replaced wholesale on
// each successful new game.
type Controller struct {
	source ports.PuzzleSource

	mu   sync.Mutex
	gen  uint64 // newest request generation
	sess *game.Session
	last ports.Stats
}

func New(src ports.PuzzleSource) *Controller { return &Controller{source: src} }

// NewGame fetches a puzzle and installs a fresh session for it. The
// request is stamped with a generation number; a response is applied
// only while its generation is still the newest, so the latest
// request wins regardless of response ordering. Fetch errors leave
// the prior session intact.
func (c *Controller) NewGame(ctx context.Context, d domain.Difficulty) (*game.Session, error) {
	if c.source == nil {
		return nil, errNoSource
	}
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	p, st, err := c.source.Fetch(ctx, d)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, ErrStale
	}
	c.sess = game.NewSession(p)
	c.last = st
	return c.sess, nil
}

// Session returns the active session, nil before the first
// successful load.
func (c *Controller) Session() *game.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// LastFetch returns stats for the most recently applied fetch.
func (c *Controller) LastFetch() ports.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
