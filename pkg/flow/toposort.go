package flow

// TopologicalOrder computes a deterministic execution order over the
// dependency DAG using Kahn's algorithm: for every edge u -> v, u precedes
// v in the returned order.
//
// Determinism: the zero-in-degree worklist is seeded in node insertion
// order and drained FIFO, and each node's successors are visited in edge
// insertion order, so equal-in-degree ties always resolve the same way.
//
// This is the authoritative cycle check. It runs even when every edge
// passed the connection validator, because an externally assembled graph
// may never have gone through incremental validation. If any node is left
// unordered, a CycleError naming the remaining nodes is returned and no
// partial order is produced.
func (g *Graph) TopologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.order))
	for _, id := range g.order {
		inDegree[id] = 0
	}
	for _, e := range g.edges {
		inDegree[e.Target]++
	}

	worklist := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if inDegree[id] == 0 {
			worklist = append(worklist, id)
		}
	}

	order := make([]string, 0, len(g.order))
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		order = append(order, current)

		for _, next := range g.out[current] {
			inDegree[next]--
			if inDegree[next] == 0 {
				worklist = append(worklist, next)
			}
		}
	}

	if len(order) != len(g.order) {
		remaining := make([]string, 0, len(g.order)-len(order))
		for _, id := range g.order {
			if inDegree[id] > 0 {
				remaining = append(remaining, id)
			}
		}
		return nil, &CycleError{Remaining: remaining}
	}
	return order, nil
}
