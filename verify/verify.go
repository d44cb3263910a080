// Package verify independently re-checks a captured solution against
// its board, without going anywhere near the frontier/pattern/propagate
// machinery that produced it. It rebuilds the dot-lattice edge set from
// scratch and confirms two things search.Count's bookkeeping only
// implies: the drawn edges form exactly one simple loop, and every
// clued cell sees exactly as many drawn edges as its clue demands.
package verify

import (
	"errors"
	"fmt"

	"github.com/gridloop/slitherloop/board"
	"github.com/gridloop/slitherloop/core"
	"github.com/gridloop/slitherloop/graph"
	"github.com/gridloop/slitherloop/render"
)

// ErrNotASingleLoop is returned when the rendered edges don't form
// exactly one connected, degree-2-everywhere cycle.
var ErrNotASingleLoop = errors.New("verify: rendered edges do not form a single loop")

// ErrClueMismatch is returned when a clued cell's drawn-edge count
// doesn't match its clue.
type ErrClueMismatch struct {
	Row, Col int
	Want     core.Clue
	Got      int
}

func (e *ErrClueMismatch) Error() string {
	return fmt.Sprintf("verify: cell (%d,%d): clue %d but %d edges drawn", e.Row, e.Col, e.Want, e.Got)
}

// Check rebuilds s as a graph.Graph and confirms it is a single loop
// consistent with b's clues. It returns nil iff the solution is valid.
func Check(b *board.Board, s render.Solution) error {
	g := buildGraph(s)
	if err := checkSingleLoop(g); err != nil {
		return err
	}

	return checkClues(b, s, g)
}

func buildGraph(s render.Solution) *graph.Graph {
	y := len(s.Rows) - 1
	g := graph.New()
	for r := 0; r <= y; r++ {
		for c := 0; c <= s.X; c++ {
			g.AddVertex(graph.Vertex{Row: r, Col: c})
		}
	}
	for r, pattern := range s.Rows {
		for _, seg := range pattern {
			for c := seg.A; c < seg.B; c++ {
				_ = g.AddEdge(graph.Vertex{Row: r, Col: c}, graph.Vertex{Row: r, Col: c + 1})
			}
		}
	}
	for r := 1; r <= y; r++ {
		for c, on := range s.VerticalsAt(r) {
			if on {
				_ = g.AddEdge(graph.Vertex{Row: r - 1, Col: c}, graph.Vertex{Row: r, Col: c})
			}
		}
	}

	return g
}

// checkSingleLoop confirms every edged vertex has degree exactly 2 and
// all edged vertices lie in one connected component. That combination
// forces the edge set to be a single simple cycle: degree-2-everywhere
// makes it a disjoint union of cycles, and connectivity collapses the
// union to one.
func checkSingleLoop(g *graph.Graph) error {
	var start *graph.Vertex
	edgedCount := 0
	for _, v := range g.Vertices() {
		if !g.Edged(v) {
			continue
		}
		edgedCount++
		if g.Degree(v) != 2 {
			return ErrNotASingleLoop
		}
		if start == nil {
			v := v
			start = &v
		}
	}
	if start == nil {
		return ErrNotASingleLoop
	}

	res := graph.BFS(g, *start)
	if len(res.Order) != edgedCount {
		return ErrNotASingleLoop
	}

	return nil
}

func checkClues(b *board.Board, s render.Solution, g *graph.Graph) error {
	for r := 0; r < b.Y; r++ {
		for c := 0; c < b.X; c++ {
			clue, err := b.At(r, c)
			if err != nil {
				return err
			}
			if clue == core.Blank {
				continue
			}
			got := cellEdgeCount(g, r, c)
			if int(clue) != got {
				return &ErrClueMismatch{Row: r, Col: c, Want: clue, Got: got}
			}
		}
	}

	return nil
}

func cellEdgeCount(g *graph.Graph, row, col int) int {
	top := graph.Vertex{Row: row, Col: col}
	topRight := graph.Vertex{Row: row, Col: col + 1}
	bottom := graph.Vertex{Row: row + 1, Col: col}
	bottomRight := graph.Vertex{Row: row + 1, Col: col + 1}

	count := 0
	for _, e := range [][2]graph.Vertex{
		{top, topRight},
		{bottom, bottomRight},
		{top, bottom},
		{topRight, bottomRight},
	} {
		if hasEdge(g, e[0], e[1]) {
			count++
		}
	}

	return count
}

func hasEdge(g *graph.Graph, a, b graph.Vertex) bool {
	for _, n := range g.Neighbors(a) {
		if n == b {
			return true
		}
	}

	return false
}
