package ports

import (
	"context"
	"time"

	"svw.info/sudoku-tui/internal/domain"
)

// Stats captures transfer characteristics of a fetch.
type Stats struct {
	Bytes    int
	Duration time.Duration
}

// PuzzleSource produces new puzzles at a target difficulty. One
// attempt per call; cancellation comes from ctx, no timeout is
// enforced below it.
type PuzzleSource interface {
	Fetch(ctx context.Context, d domain.Difficulty) (*domain.Puzzle, Stats, error)
}
