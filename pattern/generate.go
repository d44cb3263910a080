// Package pattern enumerates the legal horizontal edge placements for a
// single Slitherlink row.
//
// A placement is a sorted sequence of pairwise-disjoint, non-touching
// Segments over dot columns [0, X]. The generator is a straightforward
// left-to-right recursive choice (skip this column, or start a segment
// here and recurse past its right endpoint) with one pruning rule: a
// segment's right endpoint is tried at every column from its start+1 up
// to and including the first column in the live-vertical set V (or X if
// none follows), and a segment never extends past a column in V, since
// that dot would then carry two horizontal edges plus the vertical one
// entering from above. This mirrors the rightward-reach pruning
// builder.Grid uses to avoid emitting edges a caller can never observe
// separately.
package pattern

import (
	"sort"

	"github.com/gridloop/slitherloop/core"
)

// Generate returns every legal horizontal Pattern for a row of width X,
// given the set of columns where a vertical edge enters from above, in
// sorted order.
//
// Complexity: output-sensitive — proportional to the number of legal
// patterns produced, which is itself bounded by a Motzkin-like recurrence
// in X and shrinks sharply as |live| grows.
func Generate(x int, live map[int]bool) []core.Pattern {
	var results []core.Pattern
	var cur core.Pattern

	var rec func(col int)
	rec = func(col int) {
		if col >= x {
			out := make(core.Pattern, len(cur))
			copy(out, cur)
			results = append(results, out)
			return
		}

		// Option 1: skip this column, no segment starts here.
		rec(col + 1)

		// Option 2: start a segment at col, trying each canonical right
		// endpoint in increasing order.
		nx := col + 1
		cur = append(cur, core.Segment{A: col, B: nx})
		rec(nx + 1)
		for nx < x && !live[nx] {
			cur = cur[:len(cur)-1]
			nx++
			cur = append(cur, core.Segment{A: col, B: nx})
			rec(nx + 1)
		}
		cur = cur[:len(cur)-1]
	}
	rec(0)
	sort.Slice(results, func(i, j int) bool { return less(results[i], results[j]) })

	return results
}

// less orders two patterns the way Python orders tuples of tuples: the
// first differing segment decides, and a pattern that is a strict prefix
// of another sorts first.
func less(a, b core.Pattern) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].A != b[i].A {
			return a[i].A < b[i].A
		}
		if a[i].B != b[i].B {
			return a[i].B < b[i].B
		}
	}

	return len(a) < len(b)
}
