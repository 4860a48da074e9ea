package dataset

// Edge is one undirected edge between two integer node identifiers.
type Edge struct {
	U int64
	V int64
}

// Graph is the reference in-memory representation of an edge-list file.
// Edges are kept in file order, which fixes the iteration order used when
// adapting the graph to a backend. Self-loops and duplicate edges are
// preserved exactly as given in the file.
type Graph struct {
	edges []Edge
	seen  map[int64]struct{}
	nodes []int64 // first-appearance order
}

// NewGraph creates an empty reference graph.
func NewGraph() *Graph {
	return &Graph{
		edges: make([]Edge, 0),
		seen:  make(map[int64]struct{}),
	}
}

// AddEdge appends an undirected edge.
func (g *Graph) AddEdge(u, v int64) {
	g.edges = append(g.edges, Edge{U: u, V: v})
	g.addNode(u)
	g.addNode(v)
}

func (g *Graph) addNode(id int64) {
	if _, ok := g.seen[id]; ok {
		return
	}
	g.seen[id] = struct{}{}
	g.nodes = append(g.nodes, id)
}

// Edges returns the edge list in file order. The returned slice is shared
// with the graph and must not be mutated.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Nodes returns the node identifiers in first-appearance order. The returned
// slice is shared with the graph and must not be mutated.
func (g *Graph) Nodes() []int64 {
	return g.nodes
}

// HasNode reports whether the given identifier appears in the graph.
func (g *Graph) HasNode(id int64) bool {
	_, ok := g.seen[id]
	return ok
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, counting duplicates.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
