package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-graphbench/pkg/backend"
	"github.com/dd0wney/cluso-graphbench/pkg/dataset"
	"github.com/dd0wney/cluso-graphbench/pkg/logging"
	"github.com/dd0wney/cluso-graphbench/pkg/louvain"
)

// RunnerConfig wires a sweep together. Catalog and Registry are required;
// the rest defaults to stdout reporting with quiet logging and no metrics.
type RunnerConfig struct {
	Catalog  []dataset.Descriptor
	Registry *backend.Registry
	DataDir  string
	Logger   logging.Logger
	Metrics  *Metrics
	Output   io.Writer
}

// Runner drives one benchmark sweep: for each catalog dataset, load the
// reference graph once, then for each backend build a fresh native graph,
// adapt the edges (untimed), measure the partition computation, and report
// the line immediately. Everything is strictly sequential so no backend's
// timed region ever competes with another's.
type Runner struct {
	catalog  []dataset.Descriptor
	registry *backend.Registry
	dataDir  string
	logger   logging.Logger
	metrics  *Metrics
	out      io.Writer
	runID    string
}

// NewRunner creates a sweep runner. Each runner carries a unique run
// identifier that tags all of its log output.
func NewRunner(cfg RunnerConfig) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	runID := uuid.NewString()
	return &Runner{
		catalog:  cfg.Catalog,
		registry: cfg.Registry,
		dataDir:  cfg.DataDir,
		logger:   logger.With(logging.RunID(runID)),
		metrics:  cfg.Metrics,
		out:      out,
		runID:    runID,
	}
}

// RunID returns the sweep's unique identifier.
func (r *Runner) RunID() string {
	return r.runID
}

// Run executes the sweep and returns the ordered results. A dataset that
// fails to load is logged and skipped; a backend that fails to compute is
// logged and leaves a gap. Neither aborts the sweep.
func (r *Runner) Run() []Result {
	results := make([]Result, 0, len(r.catalog)*len(r.registry.Backends()))
	for _, d := range r.catalog {
		// One dataset at a time keeps at most one reference graph
		// live; it becomes collectable as soon as the call returns.
		results = append(results, r.runDataset(d)...)
	}
	r.logger.Info("sweep finished", logging.Int("results", len(results)))
	return results
}

func (r *Runner) runDataset(d dataset.Descriptor) []Result {
	log := r.logger.With(logging.Dataset(d.Name))
	path := d.Path(r.dataDir)

	log.Info("loading dataset", logging.Path(path))
	g, err := dataset.LoadGraph(path)
	if err != nil {
		log.Error("dataset load failed, skipping dataset", logging.Error(err))
		r.countFailure("load")
		return nil
	}
	log.Info("dataset loaded", logging.Nodes(g.NodeCount()), logging.Edges(g.EdgeCount()))
	if r.metrics != nil {
		r.metrics.DatasetNodes.WithLabelValues(d.Name).Set(float64(g.NodeCount()))
		r.metrics.DatasetEdges.WithLabelValues(d.Name).Set(float64(g.EdgeCount()))
	}

	var results []Result
	for _, b := range r.registry.Backends() {
		res, ok := r.runBackend(log, d, g, b)
		if ok {
			results = append(results, res)
		}
	}
	return results
}

func (r *Runner) runBackend(log logging.Logger, d dataset.Descriptor, g *dataset.Graph, b backend.Backend) (Result, bool) {
	log = log.With(logging.Backend(b.Name()))

	bg := b.NewGraph()
	inserted, err := Adapt(g, bg)
	if err != nil {
		log.Error("adaptation failed, skipping backend", logging.Error(err))
		r.countFailure("adapt")
		return Result{}, false
	}
	log.Debug("graph adapted", logging.Edges(inserted))

	var p backend.Partition
	elapsed, err := Measure(func() error {
		var cerr error
		p, cerr = bg.ComputePartition()
		return cerr
	})
	if err != nil {
		log.Error("partition computation failed, skipping backend", logging.Error(err))
		r.countFailure("compute")
		return Result{}, false
	}

	fmt.Fprintf(r.out, "Elapsed time for %s dataset with %s: %.3fs\n",
		d.Name, b.Name(), elapsed.Seconds())
	log.Info("partition computed",
		logging.Communities(communityCount(p)), logging.Latency(elapsed))
	if log.Enabled(logging.DebugLevel) {
		// Sanity score only; partitions from different backends settle in
		// different optima and are never compared on this number.
		log.Debug("partition quality",
			logging.Float64("modularity", partitionQuality(g, p)))
	}
	if r.metrics != nil {
		r.metrics.ComputeDuration.WithLabelValues(d.Name, b.Name()).Observe(elapsed.Seconds())
	}

	return Result{Dataset: d.Name, Backend: b.Name(), Elapsed: elapsed}, true
}

func (r *Runner) countFailure(stage string) {
	if r.metrics != nil {
		r.metrics.FailuresTotal.WithLabelValues(stage).Inc()
	}
}

// partitionQuality scores a partition against the reference graph. This runs
// outside the timed region.
func partitionQuality(g *dataset.Graph, p backend.Partition) float64 {
	lg := louvain.NewGraph()
	for _, e := range g.Edges() {
		lg.AddEdge(e.U, e.V, 1.0)
	}
	return louvain.Modularity(lg, p)
}

func communityCount(p backend.Partition) int {
	seen := make(map[int]struct{}, 16)
	for _, c := range p {
		seen[c] = struct{}{}
	}
	return len(seen)
}
