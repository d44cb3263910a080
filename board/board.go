// Package board holds the clued Slitherlink grid read from an input file
// (or synthesized blank for the unconstrained case) and the row-oriented
// accessors the search driver needs.
//
// Storage is a flat row-major slice, the same layout idiom lvlath's
// matrix.Dense uses for its dense float64 grid, specialized here to
// core.Clue (one byte per cell — no reason to pay float64's eight).
package board

import (
	"errors"
	"fmt"

	"github.com/gridloop/slitherloop/core"
)

// ErrInvalidDimensions indicates a negative X or Y was requested.
var ErrInvalidDimensions = errors.New("board: dimensions must be non-negative")

// Board is an X (wide) by Y (tall) grid of clues.
type Board struct {
	X, Y  int
	clues []core.Clue // row-major, length X*Y
}

// New builds an all-blank board of the given dimensions — the
// unconstrained case spec.md §6 defines as equivalent to a board with no
// clues at all.
func New(x, y int) (*Board, error) {
	if x < 0 || y < 0 {
		return nil, ErrInvalidDimensions
	}
	clues := make([]core.Clue, x*y)
	for i := range clues {
		clues[i] = core.Blank
	}

	return &Board{X: x, Y: y, clues: clues}, nil
}

func (b *Board) index(row, col int) (int, error) {
	if row < 0 || row >= b.Y || col < 0 || col >= b.X {
		return 0, fmt.Errorf("board: (%d,%d) out of bounds for %dx%d board", row, col, b.X, b.Y)
	}

	return row*b.X + col, nil
}

// At returns the clue at (row, col), or an error if out of bounds.
func (b *Board) At(row, col int) (core.Clue, error) {
	idx, err := b.index(row, col)
	if err != nil {
		return core.Blank, err
	}

	return b.clues[idx], nil
}

// set assigns the clue at (row, col); used only while loading.
func (b *Board) set(row, col int, c core.Clue) error {
	idx, err := b.index(row, col)
	if err != nil {
		return err
	}
	b.clues[idx] = c

	return nil
}

// SetClue assigns the clue at (row, col). Exported for callers building
// a board programmatically rather than parsing one from a file.
func (b *Board) SetClue(row, col int, c core.Clue) error {
	return b.set(row, col, c)
}

// Row returns the clue slice for row r (length X), the shape propagate.Check expects.
func (b *Board) Row(r int) []core.Clue {
	if r < 0 || r >= b.Y {
		return nil
	}

	return b.clues[r*b.X : (r+1)*b.X]
}

// Blank reports whether every cell is unclued — the unconstrained case.
func (b *Board) Blank() bool {
	for _, c := range b.clues {
		if c != core.Blank {
			return false
		}
	}

	return true
}
