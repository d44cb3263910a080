// Package propagate checks a row's drawn edges against its clue digits
// and derives the forced ("must") and forbidden ("must not") top-edge
// obligations the row below has to satisfy.
//
// For cell (r, x) the propagator already knows three of its four edges
// by the time a row's Pattern and resulting Frontier are in hand: the
// top edge (from the Pattern itself), and the left/right edges (from
// whether columns x and x+1 appear in the new Frontier). Only the
// bottom edge — which belongs to the row not yet drawn — is unknown,
// and for a clued cell that uncertainty collapses to exactly one
// outcome: present, absent, or neither is consistent with the clue.
package propagate

import "github.com/gridloop/slitherloop/core"

// Check validates the just-drawn row against clues and obligations
// inherited from the row above, and derives the obligations for the row
// below.
//
// clues holds one Clue per column of this row (core.Blank for no
// constraint); it may be shorter than x (trailing columns treated as
// blank) to let callers pass an already-blank row cheaply.
//
// ok is false if inherited is violated by pattern's top edges, or if
// any clue's known edge count already over- or under-shoots what the
// unplaced bottom edge could fix — in either case the branch must be
// pruned, not explored further.
func Check(x int, pattern core.Pattern, newFrontier core.Frontier, clues []core.Clue, inherited core.Obligations) (next core.Obligations, ok bool) {
	topEdge := make([]bool, x)
	for _, s := range pattern {
		for c := s.A; c < s.B; c++ {
			topEdge[c] = true
		}
	}

	for _, col := range inherited.MustX {
		if !topEdge[col] {
			return core.Obligations{}, false
		}
	}
	for _, col := range inherited.MustNotX {
		if topEdge[col] {
			return core.Obligations{}, false
		}
	}

	// count[x] == number of known edges (top + left + right) touching
	// cell (r, x), i.e. every side but the bottom.
	count := make([]int, x+1)
	copy(count, boolsToCounts(topEdge))
	for _, v := range newFrontier {
		if v.A > 0 {
			count[v.A-1]++
		}
		count[v.A]++
		if v.B > 0 {
			count[v.B-1]++
		}
		count[v.B]++
	}

	var mustX, mustNotX []int
	for c := 0; c < x; c++ {
		clue := core.Blank
		if c < len(clues) {
			clue = clues[c]
		}
		if clue == core.Blank {
			continue
		}
		k := int(clue)
		switch {
		case count[c] == k:
			mustNotX = append(mustNotX, c)
		case count[c] == k-1:
			mustX = append(mustX, c)
		default:
			return core.Obligations{}, false
		}
	}

	return core.Obligations{MustX: mustX, MustNotX: mustNotX}, true
}

func boolsToCounts(edges []bool) []int {
	out := make([]int, len(edges))
	for i, e := range edges {
		if e {
			out[i] = 1
		}
	}

	return out
}
