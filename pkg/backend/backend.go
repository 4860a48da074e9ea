// Package backend defines the pluggable community-detection backends the
// benchmark compares. Every backend exposes the same two-operation
// capability: feed it edges, then ask for a community partition. Nothing
// else about a backend is visible to the harness, which is what keeps the
// timing comparison fair.
package backend

// Partition maps every node identifier in a graph to a dense community
// identifier. Partitions from different backends are never compared
// numerically; different backends may settle in different local optima.
type Partition map[int64]int

// Graph is one backend-native graph instance. A fresh instance is built per
// (dataset, backend) pair so no state leaks across measurements.
type Graph interface {
	// AddEdge inserts one undirected edge.
	AddEdge(u, v int64) error
	// ComputePartition runs community detection over the inserted edges.
	// It fails with ErrEmptyGraph when no edge has been inserted.
	ComputePartition() (Partition, error)
}

// Backend builds backend-native graphs.
type Backend interface {
	Name() string
	NewGraph() Graph
}

// Options holds the knobs shared by the concrete backends.
type Options struct {
	// Resolution scales the null-model term of modularity; 1.0 is classic.
	Resolution float64
	// Seed fixes the gonum backend's randomized tie-breaking.
	Seed uint64
	// MinQualityGain stops aggregation once a level improves modularity
	// by less than this.
	MinQualityGain float64
	// MaxLevels bounds aggregation depth in the storage backend.
	MaxLevels int
}

// DefaultOptions returns the options used by the benchmark sweep.
func DefaultOptions() Options {
	return Options{
		Resolution:     1.0,
		Seed:           1,
		MinQualityGain: 1e-7,
		MaxLevels:      64,
	}
}

// Registry is an ordered, immutable set of backends. The benchmark measures
// backends in registry order, so reports are comparable run-to-run.
type Registry struct {
	backends []Backend
}

// NewRegistry creates a registry over the given backends.
func NewRegistry(backends ...Backend) *Registry {
	return &Registry{backends: backends}
}

// DefaultRegistry returns the three standard backends in measurement order:
// the gonum reference library, the clean-room implementation, and the graph
// engine's native path.
func DefaultRegistry(opts Options) *Registry {
	return NewRegistry(
		NewGonumBackend(opts),
		NewLouvainBackend(opts),
		NewStorageBackend(opts),
	)
}

// Backends returns the backends in registration order. Shared slice, do not
// mutate.
func (r *Registry) Backends() []Backend {
	return r.backends
}

// Names returns the backend names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.backends))
	for i, b := range r.backends {
		names[i] = b.Name()
	}
	return names
}

// Select returns a registry restricted to the named backends, keeping
// registration order. Unknown names fail with ErrUnknownBackend.
func (r *Registry) Select(names []string) (*Registry, error) {
	if len(names) == 0 {
		return r, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		found := false
		for _, b := range r.backends {
			if b.Name() == n {
				found = true
				break
			}
		}
		if !found {
			return nil, &ComputeError{Backend: n, Cause: ErrUnknownBackend}
		}
		wanted[n] = true
	}

	selected := make([]Backend, 0, len(wanted))
	for _, b := range r.backends {
		if wanted[b.Name()] {
			selected = append(selected, b)
		}
	}
	return NewRegistry(selected...), nil
}
