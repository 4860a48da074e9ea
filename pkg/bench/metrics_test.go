package bench

import (
	"bytes"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-graphbench/pkg/backend"
	"github.com/dd0wney/cluso-graphbench/pkg/dataset"
)

// findFamily locates a metric family in gathered output
func findFamily(t *testing.T, families []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestMetrics_RegistriesAreIndependent(t *testing.T) {
	// Two sweeps in one process must not collide on registration
	m1 := NewMetrics()
	m2 := NewMetrics()

	m1.FailuresTotal.WithLabelValues("load").Inc()

	families, err := m2.Gatherer().Gather()
	require.NoError(t, err)
	if mf := findFamily(t, families, "graphbench_failures_total"); mf != nil {
		assert.Empty(t, mf.GetMetric(), "second registry saw the first's counters")
	}
}

func TestMetrics_SweepObservations(t *testing.T) {
	dir, catalog := writeDatasets(t, "Email")
	catalog = append(catalog, dataset.Descriptor{Name: "Ghost", Filename: "ghost.txt"})
	metrics := NewMetrics()

	r := NewRunner(RunnerConfig{
		Catalog:  catalog,
		Registry: backend.NewRegistry(&fakeBackend{name: "fake"}),
		DataDir:  dir,
		Metrics:  metrics,
		Output:   &bytes.Buffer{},
	})
	r.Run()

	families, err := metrics.Gatherer().Gather()
	require.NoError(t, err)

	failures := findFamily(t, families, "graphbench_failures_total")
	require.NotNil(t, failures)
	require.Len(t, failures.GetMetric(), 1)
	assert.Equal(t, float64(1), failures.GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, "load", failures.GetMetric()[0].GetLabel()[0].GetValue())

	durations := findFamily(t, families, "graphbench_compute_duration_seconds")
	require.NotNil(t, durations)
	require.Len(t, durations.GetMetric(), 1)
	assert.Equal(t, uint64(1), durations.GetMetric()[0].GetHistogram().GetSampleCount())

	nodes := findFamily(t, families, "graphbench_dataset_nodes")
	require.NotNil(t, nodes)
	assert.Equal(t, float64(4), nodes.GetMetric()[0].GetGauge().GetValue())
}
