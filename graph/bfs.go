package graph

// BFSResult records the order vertices were first reached in, the same
// shape lvlath's bfs.BFSResult exposes, trimmed to the fields verify
// actually needs — no per-vertex depth or parent tracking, since
// verify's connectivity check only cares about reachability.
type BFSResult struct {
	Order   []Vertex
	Visited map[Vertex]bool
}

// BFS walks g breadth-first from start, using the same
// enqueue/dequeue/visit staging lvlath's bfs.walker uses, minus hooks,
// depth limiting and context cancellation — a single verifier run never
// needs to abort mid-walk.
func BFS(g *Graph, start Vertex) *BFSResult {
	res := &BFSResult{
		Order:   make([]Vertex, 0, len(g.vertices)),
		Visited: make(map[Vertex]bool, len(g.vertices)),
	}
	if !g.vertices[start] {
		return res
	}

	queue := []Vertex{start}
	res.Visited[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur)

		neighbors := g.Neighbors(cur)
		sortVertices(neighbors)
		for _, n := range neighbors {
			if !res.Visited[n] {
				res.Visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return res
}

func sortVertices(vs []Vertex) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && less(vs[j], vs[j-1]); j-- {
			vs[j], vs[j-1] = vs[j-1], vs[j]
		}
	}
}

func less(a, b Vertex) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}
