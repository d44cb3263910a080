// Package render turns a captured sequence of per-row horizontal
// patterns into the ASCII diagram spec.md §6 defines, and recovers the
// vertical edges between rows that the patterns alone don't spell out.
//
// The package keeps no state between calls: VerticalsAt recomputes the
// active-column parity from a Solution's Rows each time it is called.
// The row stack a Solution is captured from lives in the search driver,
// which pushes a row pattern before recursing and pops it on return; only
// its non-memoized walk ever emits a Solution.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gridloop/slitherloop/core"
)

// Solution is one captured row-by-row Pattern sequence: the full output
// of a successful search branch, before it is rendered or verified. Rows
// holds one horizontal pattern per dot-row, so len(Rows) == Y+1 for a
// board with Y rows of cells — the search driver emits a pattern at
// r=0..Y inclusive, per spec.md §4.4's row lifecycle.
type Solution struct {
	X    int
	Rows []core.Pattern // length Y+1
}

// VerticalsAt returns the set of active dot columns on the frontier
// between row r-1 and row r (r==0 is the top edge, always empty). A
// column is active iff it appears an odd number of cumulative times
// across Rows[0:r].
func (s Solution) VerticalsAt(r int) map[int]bool {
	active := make(map[int]bool, s.X+1)
	for i := 0; i < r && i < len(s.Rows); i++ {
		for _, seg := range s.Rows[i] {
			toggle(active, seg.A)
			toggle(active, seg.B)
		}
	}

	return active
}

func toggle(active map[int]bool, col int) {
	if active[col] {
		delete(active, col)
	} else {
		active[col] = true
	}
}

// Write renders the solution as ASCII to w, followed by a "=" separator
// line 2*(X+1) characters wide.
func Write(w io.Writer, s Solution) error {
	for r, pattern := range s.Rows {
		if err := writeDotRow(w, s.X, pattern); err != nil {
			return err
		}
		if r+1 < len(s.Rows) {
			if err := writeCellRow(w, s.X, s.VerticalsAt(r+1)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, strings.Repeat("=", 2*(s.X+1)))

	return err
}

func writeDotRow(w io.Writer, x int, pattern core.Pattern) error {
	hEdge := make([]bool, x)
	for _, seg := range pattern {
		for c := seg.A; c < seg.B; c++ {
			hEdge[c] = true
		}
	}
	var b strings.Builder
	for c := 0; c <= x; c++ {
		b.WriteByte('+')
		if c < x {
			if hEdge[c] {
				b.WriteByte('-')
			} else {
				b.WriteByte(' ')
			}
		}
	}
	_, err := fmt.Fprintln(w, b.String())

	return err
}

func writeCellRow(w io.Writer, x int, verticals map[int]bool) error {
	var b strings.Builder
	for c := 0; c <= x; c++ {
		if verticals[c] {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		if c < x {
			b.WriteByte(' ')
		}
	}
	_, err := fmt.Fprintln(w, b.String())

	return err
}
