package tui

import "testing"

// The border rule: an extra separator row/column before every third
// cell, none before index 0.
func TestCellPos(t *testing.T) {
	cases := []struct {
		idx  int
		x, y int
	}{
		{0, offX + 2, offY + 1},    // top-left cell, inside the first border
		{2, offX + 6, offY + 1},    // last column of the first block
		{3, offX + 10, offY + 1},   // first column after a block border
		{8, offX + 22, offY + 1},   // rightmost cell
		{18, offX + 2, offY + 3},   // row 2, still in the first band
		{27, offX + 2, offY + 5},   // row 3, after a band border
		{80, offX + 22, offY + 11}, // bottom-right cell
	}
	for _, tc := range cases {
		x, y := cellPos(tc.idx)
		if x != tc.x || y != tc.y {
			t.Errorf("cellPos(%d) = (%d,%d), want (%d,%d)", tc.idx, x, y, tc.x, tc.y)
		}
	}
}

func TestCellPosInsideBorder(t *testing.T) {
	// every cell lands strictly between the outer border columns and rows
	for i := 0; i < 81; i++ {
		x, y := cellPos(i)
		if x <= offX || x >= offX+len(border)-1 {
			t.Fatalf("cell %d x=%d outside the frame", i, x)
		}
		if y <= offY || y >= offY+12 {
			t.Fatalf("cell %d y=%d outside the frame", i, y)
		}
	}
}
