// Package search is the row-by-row depth-first driver: it walks every
// legal sequence of row patterns for a board, using frontier.Merge to
// track the loop's open ends and propagate.Check to prune rows that
// can't satisfy the clue digits, memoizing on core.SearchState so the
// same (frontier, row, loop_done, must) combination is never re-walked.
package search

import (
	"github.com/gridloop/slitherloop/board"
	"github.com/gridloop/slitherloop/core"
	"github.com/gridloop/slitherloop/frontier"
	"github.com/gridloop/slitherloop/pattern"
	"github.com/gridloop/slitherloop/propagate"
	"github.com/gridloop/slitherloop/render"
)

// Options configures a single Count run. Zero value counts with no
// rendering, no verification hook, single-threaded.
type Options struct {
	// OnSolution, if set, is invoked once per found solution with its
	// full captured row-pattern sequence. Setting it disables
	// memoization — see walkCapturing.
	OnSolution func(render.Solution)

	// Workers selects search.CountParallel over search.Count when > 1.
	// Ignored when OnSolution is set: rendering always walks
	// single-threaded, since the captured stack is per-branch state.
	Workers int

	// Stats, if set, is filled in with the memo table's hit/miss counts
	// once Count returns. Left unchanged when OnSolution or Workers>1
	// bypass the single memo table.
	Stats *MemoStats
}

// MemoStats reports how often walk's memo table short-circuited a
// recursion, mirroring the original Python's cache_info() debug dump.
type MemoStats struct {
	Hits   int64
	Misses int64
}

// Count returns the number of valid Slitherlink solutions on b.
func Count(b *board.Board, opts Options) int64 {
	if opts.OnSolution != nil {
		d := newDriver(b, opts.OnSolution)
		return d.walkCapturing(core.SearchState{}, nil)
	}
	if opts.Workers > 1 {
		return CountParallel(b, opts.Workers)
	}

	d := newDriver(b, nil)
	total := d.walk(core.SearchState{})
	if opts.Stats != nil {
		*opts.Stats = d.stats
	}

	return total
}

type driver struct {
	board *board.Board
	memo  map[string]int64
	sink  func(render.Solution)
	stats MemoStats
}

func newDriver(b *board.Board, sink func(render.Solution)) *driver {
	return &driver{board: b, memo: make(map[string]int64), sink: sink}
}

// walk is the memoized, non-capturing recursion: spec.md §4.4's
// procedure exactly, cached on SearchState.Key().
func (d *driver) walk(s core.SearchState) int64 {
	if s.Row > d.board.Y {
		if s.LoopDone && s.Frontier.Empty() {
			return 1
		}

		return 0
	}

	key := s.Key()
	if v, ok := d.memo[key]; ok {
		d.stats.Hits++
		return v
	}
	d.stats.Misses++

	var total int64
	if s.LoopDone {
		total = d.tryPattern(s, core.Pattern{}, d.walk)
	} else {
		live := liveColumns(s.Frontier)
		for _, pat := range pattern.Generate(d.board.X, live) {
			total += d.tryPattern(s, pat, d.walk)
		}
	}

	d.memo[key] = total

	return total
}

// walkCapturing mirrors walk but never consults the memo table — path
// matters here, since each solution must emit the row sequence that
// produced it — and pushes/pops the running stack exactly as spec.md
// §4.5 describes.
func (d *driver) walkCapturing(s core.SearchState, stack []core.Pattern) int64 {
	if s.Row > d.board.Y {
		if s.LoopDone && s.Frontier.Empty() {
			d.sink(render.Solution{X: d.board.X, Rows: append([]core.Pattern(nil), stack...)})

			return 1
		}

		return 0
	}

	recurse := func(next core.SearchState) int64 {
		return d.walkCapturing(next, stack)
	}

	var total int64
	if s.LoopDone {
		total = d.tryPatternCapturing(s, core.Pattern{}, &stack, recurse)
	} else {
		live := liveColumns(s.Frontier)
		for _, pat := range pattern.Generate(d.board.X, live) {
			total += d.tryPatternCapturing(s, pat, &stack, recurse)
		}
	}

	return total
}

// tryPattern merges pat into s's frontier, validates the clue rows with
// propagate.Check, and — if accepted — recurses via next.
func (d *driver) tryPattern(s core.SearchState, pat core.Pattern, next func(core.SearchState) int64) int64 {
	newFrontier, closed := frontier.Merge(s.Frontier, pat)
	if !acceptClosure(closed, newFrontier) {
		return 0
	}

	must, ok := propagate.Check(d.board.X, pat, newFrontier, d.rowClues(s.Row), s.Must)
	if !ok {
		return 0
	}

	return next(core.SearchState{
		Frontier: newFrontier,
		Row:      s.Row + 1,
		LoopDone: s.LoopDone || closed == 1,
		Must:     must,
	})
}

func (d *driver) tryPatternCapturing(s core.SearchState, pat core.Pattern, stack *[]core.Pattern, next func(core.SearchState) int64) int64 {
	newFrontier, closed := frontier.Merge(s.Frontier, pat)
	if !acceptClosure(closed, newFrontier) {
		return 0
	}

	must, ok := propagate.Check(d.board.X, pat, newFrontier, d.rowClues(s.Row), s.Must)
	if !ok {
		return 0
	}

	*stack = append(*stack, pat)
	total := next(core.SearchState{
		Frontier: newFrontier,
		Row:      s.Row + 1,
		LoopDone: s.LoopDone || closed == 1,
		Must:     must,
	})
	*stack = (*stack)[:len(*stack)-1]

	return total
}

// acceptClosure implements the tightened loop_done rule: a merge that
// closes a loop is only accepted if it leaves no dangling frontier.
func acceptClosure(closed int, newFrontier core.Frontier) bool {
	if closed == 0 {
		return true
	}

	return closed == 1 && newFrontier.Empty()
}

// rowClues returns the clue digits for cell-row r, or nil once r has
// passed the last cell row — propagate.Check treats a short clues slice
// as all-blank, so the final dot-row's obligation check still runs with
// no clue constraints.
func (d *driver) rowClues(r int) []core.Clue {
	if r < 0 || r >= d.board.Y {
		return nil
	}

	return d.board.Row(r)
}

func liveColumns(f core.Frontier) map[int]bool {
	live := make(map[int]bool, len(f)*2)
	for _, p := range f {
		live[p.A] = true
		live[p.B] = true
	}

	return live
}
