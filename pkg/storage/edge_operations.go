package storage

import (
	"sync/atomic"
)

// CreateEdge inserts an undirected edge between two nodes, creating the
// nodes on first sight. A repeated edge accumulates into the weight of the
// existing adjacency entry; a self-loop is stored once under the node's own
// adjacency. Weight must be positive.
func (gs *GraphStorage) CreateEdge(fromID, toID int64, weight float64) error {
	if weight <= 0 {
		return EdgeError(fromID, toID, ErrInvalidWeight)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.ensureNode(fromID)
	gs.ensureNode(toID)

	if _, ok := gs.adjacency[fromID][toID]; !ok {
		gs.neighborOrder[fromID] = append(gs.neighborOrder[fromID], toID)
		if fromID != toID {
			gs.neighborOrder[toID] = append(gs.neighborOrder[toID], fromID)
		}
	}

	gs.adjacency[fromID][toID] += weight
	if fromID != toID {
		gs.adjacency[toID][fromID] += weight
	} else {
		gs.selfWeight[fromID] += weight
	}
	gs.totalWeight += weight

	atomic.AddUint64(&gs.stats.EdgeCount, 1)
	return nil
}
