package storage

import (
	"sync"
	"sync/atomic"
)

// GraphStorage is the in-memory graph engine behind the storage backend.
// It keeps an undirected weighted adjacency index: nodes are created
// implicitly the first time an identifier appears in an edge, and parallel
// edges fold into the accumulated weight of a single adjacency entry.
// Node and neighbor iteration order is insertion order, so traversals are
// stable across runs.
type GraphStorage struct {
	// Core data structures
	adjacency     map[int64]map[int64]float64 // node -> neighbor -> accumulated weight
	neighborOrder map[int64][]int64           // node -> neighbors in insertion order
	nodeOrder     []int64                     // nodes in insertion order

	// Accumulated weights
	selfWeight  map[int64]float64 // node -> accumulated self-loop weight
	totalWeight float64           // sum of all edge weights (self-loops once)

	// Concurrency control
	mu sync.RWMutex

	// Statistics (atomic counters, as queried without the lock)
	stats Statistics
}

// NewGraphStorage creates an empty graph engine.
func NewGraphStorage() *GraphStorage {
	return &GraphStorage{
		adjacency:     make(map[int64]map[int64]float64),
		neighborOrder: make(map[int64][]int64),
		selfWeight:    make(map[int64]float64),
	}
}

// ensureNode registers a node on first sight. Caller holds gs.mu.
func (gs *GraphStorage) ensureNode(id int64) {
	if _, ok := gs.adjacency[id]; ok {
		return
	}
	gs.adjacency[id] = make(map[int64]float64)
	gs.nodeOrder = append(gs.nodeOrder, id)
	atomic.AddUint64(&gs.stats.NodeCount, 1)
}

// Nodes returns the node identifiers in insertion order. The returned slice
// is shared with the engine and must not be mutated.
func (gs *GraphStorage) Nodes() []int64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.nodeOrder
}

// HasNode reports whether the node exists.
func (gs *GraphStorage) HasNode(id int64) bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	_, ok := gs.adjacency[id]
	return ok
}

// Neighbors returns the neighbors of a node in insertion order, including
// the node itself when it carries a self-loop.
func (gs *GraphStorage) Neighbors(id int64) ([]int64, error) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	if _, ok := gs.adjacency[id]; !ok {
		return nil, NodeNotFoundError(id)
	}
	return gs.neighborOrder[id], nil
}

// ForEachNeighbor calls fn for every neighbor of the node with the
// accumulated edge weight, in insertion order. Unknown nodes are a no-op.
func (gs *GraphStorage) ForEachNeighbor(id int64, fn func(neighbor int64, weight float64)) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	weights := gs.adjacency[id]
	for _, n := range gs.neighborOrder[id] {
		fn(n, weights[n])
	}
}

// EdgeWeight returns the accumulated weight between two nodes, zero when no
// edge exists.
func (gs *GraphStorage) EdgeWeight(u, v int64) float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.adjacency[u][v]
}

// SelfLoopWeight returns the accumulated self-loop weight of a node.
func (gs *GraphStorage) SelfLoopWeight(id int64) float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.selfWeight[id]
}

// WeightedDegree returns the weighted degree of a node. Self-loops count
// twice, matching the convention modularity is defined over.
func (gs *GraphStorage) WeightedDegree(id int64) float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	degree := gs.selfWeight[id]
	for _, w := range gs.adjacency[id] {
		degree += w
	}
	return degree
}

// TotalEdgeWeight returns the sum of all edge weights, counting each
// undirected edge (and each self-loop) once.
func (gs *GraphStorage) TotalEdgeWeight() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.totalWeight
}
