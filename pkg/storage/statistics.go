package storage

import (
	"sync/atomic"
)

// Statistics tracks graph engine statistics
type Statistics struct {
	NodeCount uint64
	EdgeCount uint64 // edges as inserted, before weight folding
}

// GetStatistics returns current engine statistics
func (gs *GraphStorage) GetStatistics() Statistics {
	return Statistics{
		NodeCount: atomic.LoadUint64(&gs.stats.NodeCount),
		EdgeCount: atomic.LoadUint64(&gs.stats.EdgeCount),
	}
}
