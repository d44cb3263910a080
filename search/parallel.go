package search

import (
	"sync"

	"github.com/gridloop/slitherloop/board"
	"github.com/gridloop/slitherloop/core"
	"github.com/gridloop/slitherloop/frontier"
	"github.com/gridloop/slitherloop/pattern"
	"github.com/gridloop/slitherloop/propagate"
)

// CountParallel partitions the row-0 recursion across workers goroutines,
// each owning a private memo table, and sums their counts after a
// sync.WaitGroup join — the fan-out shape the pack reaches for (plain
// goroutines plus a WaitGroup) rather than an errgroup dependency lvlath
// never imports anywhere in the retrieved pack.
func CountParallel(b *board.Board, workers int) int64 {
	if workers < 1 {
		workers = 1
	}

	branches := rootBranches(b)
	if len(branches) == 0 {
		return 0
	}
	if workers > len(branches) {
		workers = len(branches)
	}

	results := make([]int64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			d := newDriver(b, nil)
			var sum int64
			for i := w; i < len(branches); i += workers {
				sum += d.walk(branches[i])
			}
			results[w] = sum
		}(w)
	}
	wg.Wait()

	var total int64
	for _, r := range results {
		total += r
	}

	return total
}

// rootBranches enumerates the states reachable after row 0's pattern is
// placed, the partition point spec.md §5 names.
func rootBranches(b *board.Board) []core.SearchState {
	var out []core.SearchState
	s := core.SearchState{}
	for _, pat := range pattern.Generate(b.X, nil) {
		newFrontier, closed := frontier.Merge(s.Frontier, pat)
		if !acceptClosure(closed, newFrontier) {
			continue
		}
		var clues []core.Clue
		if b.Y > 0 {
			clues = b.Row(0)
		}
		must, ok := propagate.Check(b.X, pat, newFrontier, clues, s.Must)
		if !ok {
			continue
		}
		out = append(out, core.SearchState{
			Frontier: newFrontier,
			Row:      1,
			LoopDone: closed == 1,
			Must:     must,
		})
	}

	return out
}
