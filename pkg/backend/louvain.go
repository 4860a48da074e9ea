package backend

import (
	"github.com/dd0wney/cluso-graphbench/pkg/louvain"
)

// LouvainBackend is the clean-room backend: the harness's own Louvain over
// its own weighted adjacency structure. Self-loops and duplicate edges are
// kept, folded into edge weights.
type LouvainBackend struct {
	opts louvain.Options
}

// NewLouvainBackend creates the clean-room backend.
func NewLouvainBackend(opts Options) *LouvainBackend {
	return &LouvainBackend{
		opts: louvain.Options{
			Resolution:          opts.Resolution,
			MinModularityGrowth: opts.MinQualityGain,
		},
	}
}

// Name returns the backend name used in reports.
func (b *LouvainBackend) Name() string { return "louvain" }

// NewGraph returns a fresh clean-room graph.
func (b *LouvainBackend) NewGraph() Graph {
	return &louvainGraph{g: louvain.NewGraph(), opts: b.opts}
}

type louvainGraph struct {
	g    *louvain.Graph
	opts louvain.Options
}

func (g *louvainGraph) AddEdge(u, v int64) error {
	g.g.AddEdge(u, v, 1.0)
	return nil
}

func (g *louvainGraph) ComputePartition() (Partition, error) {
	if g.g.NodeCount() == 0 {
		return nil, &ComputeError{Backend: "louvain", Cause: ErrEmptyGraph}
	}
	return louvain.BestPartition(g.g, g.opts), nil
}
