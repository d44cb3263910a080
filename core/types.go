// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Central value types shared by every solver package — Segment,
// VerticalPair, Frontier, Obligations, SearchState — plus sentinel errors.
//
// These are treated as immutable value tuples. Types holding slices are
// not comparable with ==, so SearchState is compared through Key().
// Canonical form (sorted,
// non-crossing) is a precondition enforced by the packages that produce
// them (pattern, frontier); this package only declares the shapes.
package core

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors shared across the solver packages.
var (
	// ErrNonCanonical indicates a Frontier or pattern was not in sorted,
	// non-crossing canonical form where one was required. This signals a
	// bug in a producer, not malformed user input.
	ErrNonCanonical = errors.New("core: value not in canonical form")

	// ErrCrossingPairs indicates two VerticalPair values cross, violating
	// the planar non-crossing invariant of a Frontier.
	ErrCrossingPairs = errors.New("core: frontier pairs cross")
)

// Clue is a per-cell edge-count requirement: 0-3, or Blank.
type Clue int8

// Blank marks a cell with no clue.
const Blank Clue = -1

// Segment is a maximal run of selected horizontal edges in one row,
// spanning dot columns A..B with A < B.
type Segment struct {
	A, B int
}

// Pattern is a row's complete horizontal edge placement: a sorted,
// pairwise-disjoint, non-touching sequence of Segments.
type Pattern []Segment

// VerticalPair is two frontier columns known to be connected through
// edges already drawn above the current row. A < B always holds.
type VerticalPair struct {
	A, B int
}

// Frontier is the canonical (sorted by A, non-crossing, each column
// appearing in at most one pair) sequence of open loop endpoints at the
// horizontal line between two rows.
type Frontier []VerticalPair

// Empty reports whether the frontier carries no open endpoints.
func (f Frontier) Empty() bool { return len(f) == 0 }

// Obligations are the forced/forbidden top-edge placements carried into
// the next row by the constraint propagator.
type Obligations struct {
	MustX    []int
	MustNotX []int
}

// SearchState is the full memoization key for the search driver: the
// frontier, the row about to be processed, whether the single permitted
// loop has already closed, and the obligations inherited from the row
// above.
type SearchState struct {
	Frontier Frontier
	Row      int
	LoopDone bool
	Must     Obligations
}

// Key builds a comparable signature string for use as a memoization map
// key. All inputs are assumed to already be in canonical (sorted) order;
// Key does not re-sort, it only concatenates, following the same
// comma-joined signature idiom used elsewhere in the pack for canonical
// sequence identity.
func (s SearchState) Key() string {
	var b strings.Builder
	b.Grow(8 + 4*len(s.Frontier) + 2*len(s.Must.MustX) + 2*len(s.Must.MustNotX))
	b.WriteString(strconv.Itoa(s.Row))
	b.WriteByte('|')
	if s.LoopDone {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('|')
	for _, p := range s.Frontier {
		b.WriteString(strconv.Itoa(p.A))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.B))
		b.WriteByte(';')
	}
	b.WriteByte('|')
	for _, x := range s.Must.MustX {
		b.WriteString(strconv.Itoa(x))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, x := range s.Must.MustNotX {
		b.WriteString(strconv.Itoa(x))
		b.WriteByte(',')
	}

	return b.String()
}

// Sort returns a copy of f sorted by A, the canonical order required for
// memoization-key stability and deterministic rendering.
func (f Frontier) Sort() Frontier {
	out := make(Frontier, len(f))
	copy(out, f)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].A > out[j].A; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}
