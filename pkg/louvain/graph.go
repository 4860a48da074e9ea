// Package louvain is a from-scratch Louvain community detection
// implementation over a plain weighted adjacency structure. It exists as the
// harness's clean-room backend, sitting between the gonum reference and the
// storage engine's compiled-in fast path.
package louvain

// Graph is a weighted undirected multigraph held as nested adjacency maps.
// Parallel edges accumulate weight; a self-loop is stored once under the
// node's own entry. Insertion order is preserved for nodes and neighbors so
// optimization sweeps are deterministic.
type Graph struct {
	adj      map[int64]map[int64]float64
	nbrOrder map[int64][]int64
	order    []int64
	m        float64 // total edge weight, each edge once
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		adj:      make(map[int64]map[int64]float64),
		nbrOrder: make(map[int64][]int64),
	}
}

// AddEdge inserts an undirected edge with the given weight, creating
// endpoints on first sight.
func (g *Graph) AddEdge(u, v int64, w float64) {
	g.ensureNode(u)
	g.ensureNode(v)

	if _, ok := g.adj[u][v]; !ok {
		g.nbrOrder[u] = append(g.nbrOrder[u], v)
		if u != v {
			g.nbrOrder[v] = append(g.nbrOrder[v], u)
		}
	}

	g.adj[u][v] += w
	if u != v {
		g.adj[v][u] += w
	}
	g.m += w
}

func (g *Graph) ensureNode(id int64) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = make(map[int64]float64)
	g.order = append(g.order, id)
}

// Nodes returns node identifiers in insertion order. Shared slice, do not
// mutate.
func (g *Graph) Nodes() []int64 {
	return g.order
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// TotalWeight returns the sum of all edge weights, each edge counted once.
func (g *Graph) TotalWeight() float64 {
	return g.m
}

// WeightedDegree returns the weighted degree of a node, self-loops counted
// twice.
func (g *Graph) WeightedDegree(id int64) float64 {
	d := g.adj[id][id]
	for _, w := range g.adj[id] {
		d += w
	}
	return d
}
