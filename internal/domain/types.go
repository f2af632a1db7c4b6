package domain

import "fmt"

// GridSize is the number of cells in a flattened 9x9 grid.
const GridSize = 81

// Puzzle is one game worth of board data as served by the generator
// service: row-major flattened grids, 0 meaning blank.
type Puzzle struct {
	Givens     [GridSize]uint8
	Solution   [GridSize]uint8
	Difficulty Difficulty
}

// CellState is the render-facing view of one board position.
type CellState struct {
	Value uint8 // 0 = blank
	Given bool  // pre-filled, never editable
	Wrong bool  // non-blank entry that contradicts the solution
}

// Check verifies the puzzle honors the service contract: solution
// values in 1..9, givens in 0..9, and every given agreeing with the
// solution at its index.
func (p *Puzzle) Check() error {
	for i := 0; i < GridSize; i++ {
		if p.Solution[i] < 1 || p.Solution[i] > 9 {
			return fmt.Errorf("solution[%d] out of range: %d", i, p.Solution[i])
		}
		if p.Givens[i] > 9 {
			return fmt.Errorf("puzzle[%d] out of range: %d", i, p.Givens[i])
		}
		if p.Givens[i] != 0 && p.Givens[i] != p.Solution[i] {
			return fmt.Errorf("puzzle[%d]=%d contradicts solution %d", i, p.Givens[i], p.Solution[i])
		}
	}
	return nil
}
