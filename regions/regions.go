// Package regions reports 4-connected components of clued cells on a
// board, purely as a `--stats` diagnostic — it never feeds back into
// counting. Adapted from lvlath's gridgraph.ConnectedComponents: the
// same row-major visited array and per-component BFS, narrowed from
// gridgraph's "value ≥ LandThreshold" land/water split to a simple
// clued/blank one, since a Slitherlink clue digit has no ordering that
// would make grouping by value meaningful here.
package regions

import (
	"github.com/gridloop/slitherloop/board"
	"github.com/gridloop/slitherloop/core"
)

// Cell is one clued board position, as a component member.
type Cell struct {
	Row, Col int
}

var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Components returns every 4-connected group of clued (non-blank)
// cells on b, each as a slice of Cell in BFS discovery order.
func Components(b *board.Board) [][]Cell {
	if b.X == 0 || b.Y == 0 {
		return nil
	}

	visited := make([]bool, b.X*b.Y)
	var components [][]Cell

	for row := 0; row < b.Y; row++ {
		for col := 0; col < b.X; col++ {
			start := row*b.X + col
			if visited[start] {
				continue
			}
			clue, err := b.At(row, col)
			if err != nil || clue == core.Blank {
				continue
			}
			visited[start] = true
			queue := []Cell{{Row: row, Col: col}}
			var comp []Cell
			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				comp = append(comp, cur)
				for _, d := range offsets {
					nr, nc := cur.Row+d[0], cur.Col+d[1]
					if nr < 0 || nr >= b.Y || nc < 0 || nc >= b.X {
						continue
					}
					idx := nr*b.X + nc
					if visited[idx] {
						continue
					}
					nClue, err := b.At(nr, nc)
					if err != nil || nClue == core.Blank {
						continue
					}
					visited[idx] = true
					queue = append(queue, Cell{Row: nr, Col: nc})
				}
			}
			components = append(components, comp)
		}
	}

	return components
}
