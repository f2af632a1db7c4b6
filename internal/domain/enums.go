package domain

import "strings"

// Difficulty selects how many givens the generator service leaves in
// the puzzle. The enumerated set is owned by the service.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the wire form expected by the generator service.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty; unknown labels fall
// back to Medium, matching the service's own default.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Medium
	}
}

// Next cycles to the following difficulty, wrapping from Hard to Easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return Easy
	}
}

// Prev cycles to the preceding difficulty, wrapping from Easy to Hard.
func (d Difficulty) Prev() Difficulty {
	switch d {
	case Hard:
		return Medium
	case Medium:
		return Easy
	default:
		return Hard
	}
}
