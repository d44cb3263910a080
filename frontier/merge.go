// Package frontier implements the merge algebra between the open vertical
// loop endpoints carried down from the rows above (a Frontier) and the
// horizontal Pattern just drawn for the current row.
//
// Merge treats the junction between the two as a small graph and walks it:
// every segment endpoint and every open vertical is a join node, and
// following a walk from one endpoint either reaches a new open endpoint
// (the two combine into a new VerticalPair) or returns to its own
// starting point (a loop has closed). This mirrors the back-edge walk
// dfs.DetectCycles performs over a core.Graph, specialized to the planar,
// non-crossing structure a Slitherlink frontier guarantees by
// construction.
package frontier

import (
	"sort"

	"github.com/gridloop/slitherloop/core"
)

// Merge combines the current frontier with a row's horizontal pattern,
// returning the new frontier (in canonical sorted form) and the number
// of loops that closed during the merge.
//
// Preconditions (not re-validated here; violating them is a producer
// bug, not a user error): verticals is non-crossing with each column
// appearing at most once, and pattern is a sorted sequence of disjoint,
// non-touching segments.
//
// Complexity: O(n) in the combined number of pairs and segments — each
// edge of the junction graph is consumed at most once.
func Merge(verticals core.Frontier, pattern core.Pattern) (core.Frontier, int) {
	vmate := make(map[int]int, 2*len(verticals)) // column -> column, the vertical's partner
	for _, p := range verticals {
		vmate[p.A] = p.B
		vmate[p.B] = p.A
	}
	hmate := make(map[int]int, 2*len(pattern)) // column -> column, the segment's partner
	for _, s := range pattern {
		hmate[s.A] = s.B
		hmate[s.B] = s.A
	}

	usedVertical := make(map[int]bool, len(vmate))
	usedHorizontal := make(map[int]bool, len(hmate))

	// follow walks outward from column x, alternately crossing a vertical
	// pair and then a horizontal segment, until it reaches a column with
	// no further mate (a genuine open endpoint) or it tries to cross a
	// segment it has already consumed this merge (the walk closed a
	// loop on itself).
	follow := func(x int) (end int, closed bool) {
		for {
			partner, isVertical := vmate[x]
			if !isVertical {
				return x, false
			}
			if usedVertical[x] {
				// A non-crossing, column-unique frontier can never revisit
				// the same vertical pair within a single merge; this would
				// indicate the caller handed in a malformed frontier.
				panic("frontier: vertical pair reused during merge")
			}
			usedVertical[x] = true
			usedVertical[partner] = true
			x = partner

			next, isHorizontal := hmate[x]
			if !isHorizontal {
				return x, false
			}
			if usedHorizontal[x] {
				return 0, true
			}
			usedHorizontal[x] = true
			usedHorizontal[next] = true
			x = next
		}
	}

	closedLoops := 0
	result := make(core.Frontier, 0, len(verticals)+len(pattern))
	for _, s := range pattern {
		if usedHorizontal[s.A] {
			continue // already consumed while following from an earlier segment
		}
		usedHorizontal[s.A] = true
		usedHorizontal[s.B] = true

		endA, closed := follow(s.A)
		if closed {
			closedLoops++
			continue
		}
		endB, _ := follow(s.B)
		result = append(result, ordered(endA, endB))
	}

	// Vertical pairs untouched by any walk pass straight through to the
	// next row's frontier unchanged.
	for _, p := range verticals {
		if !usedVertical[p.A] {
			result = append(result, p)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].A < result[j].A })

	return result, closedLoops
}

func ordered(a, b int) core.VerticalPair {
	if a < b {
		return core.VerticalPair{A: a, B: b}
	}

	return core.VerticalPair{A: b, B: a}
}
