package bench

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-graphbench/pkg/backend"
	"github.com/dd0wney/cluso-graphbench/pkg/dataset"
	"github.com/dd0wney/cluso-graphbench/pkg/logging"
)

// fakeBackend builds recordingGraphs, optionally failing every computation
type fakeBackend struct {
	name    string
	partErr error
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) NewGraph() backend.Graph {
	return &recordingGraph{partErr: b.partErr}
}

// writeDatasets lays out edge-list files for the named datasets and returns
// the data directory plus the catalog describing them
func writeDatasets(t *testing.T, names ...string) (string, []dataset.Descriptor) {
	t.Helper()
	dir := t.TempDir()
	catalog := make([]dataset.Descriptor, 0, len(names))
	for _, name := range names {
		filename := strings.ToLower(name) + ".txt"
		content := "1 2\n2 3\n3 4\n4 1\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
		catalog = append(catalog, dataset.Descriptor{Name: name, Filename: filename})
	}
	return dir, catalog
}

func TestRunner_ReportFormat(t *testing.T) {
	dir, catalog := writeDatasets(t, "Email")
	var out bytes.Buffer

	r := NewRunner(RunnerConfig{
		Catalog:  catalog,
		Registry: backend.NewRegistry(&fakeBackend{name: "fake"}),
		DataDir:  dir,
		Output:   &out,
	})
	results := r.Run()

	require.Len(t, results, 1)
	line := strings.TrimSuffix(out.String(), "\n")
	assert.Regexp(t, regexp.MustCompile(`^Elapsed time for Email dataset with fake: \d+\.\d{3}s$`), line)
}

func TestRunner_DatasetMajorBackendMinorOrder(t *testing.T) {
	dir, catalog := writeDatasets(t, "Email", "Facebook")
	var out bytes.Buffer

	r := NewRunner(RunnerConfig{
		Catalog: catalog,
		Registry: backend.NewRegistry(
			&fakeBackend{name: "alpha"},
			&fakeBackend{name: "beta"},
		),
		DataDir: dir,
		Output:  &out,
	})
	results := r.Run()

	require.Len(t, results, 4)
	want := []struct{ ds, be string }{
		{"Email", "alpha"}, {"Email", "beta"},
		{"Facebook", "alpha"}, {"Facebook", "beta"},
	}
	for i, w := range want {
		assert.Equal(t, w.ds, results[i].Dataset, "result %d", i)
		assert.Equal(t, w.be, results[i].Backend, "result %d", i)
	}
}

func TestRunner_MissingDatasetSkipped(t *testing.T) {
	// Scenario: the middle dataset is absent from disk; the sweep must
	// still produce results for every other dataset.
	dir, catalog := writeDatasets(t, "Email", "Youtube")
	full := []dataset.Descriptor{
		catalog[0],
		{Name: "Ghost", Filename: "ghost.txt"},
		catalog[1],
	}
	var out bytes.Buffer

	r := NewRunner(RunnerConfig{
		Catalog:  full,
		Registry: backend.NewRegistry(&fakeBackend{name: "fake"}),
		DataDir:  dir,
		Metrics:  NewMetrics(),
		Output:   &out,
	})
	results := r.Run()

	require.Len(t, results, 2)
	assert.Equal(t, "Email", results[0].Dataset)
	assert.Equal(t, "Youtube", results[1].Dataset)
	assert.NotContains(t, out.String(), "Ghost")
}

func TestRunner_ComputeFailureLeavesGap(t *testing.T) {
	dir, catalog := writeDatasets(t, "Email")
	var out bytes.Buffer

	r := NewRunner(RunnerConfig{
		Catalog: catalog,
		Registry: backend.NewRegistry(
			&fakeBackend{name: "broken", partErr: errors.New("segfault, but politely")},
			&fakeBackend{name: "working"},
		),
		DataDir: dir,
		Output:  &out,
	})
	results := r.Run()

	// The broken backend leaves a gap; the sweep continues.
	require.Len(t, results, 1)
	assert.Equal(t, "working", results[0].Backend)
	assert.NotContains(t, out.String(), "broken")
}

func TestRunner_FailureDiagnosticsNameTheCulprit(t *testing.T) {
	dir, catalog := writeDatasets(t, "Email")
	var logs bytes.Buffer

	r := NewRunner(RunnerConfig{
		Catalog: append(catalog, dataset.Descriptor{Name: "Ghost", Filename: "ghost.txt"}),
		Registry: backend.NewRegistry(
			&fakeBackend{name: "broken", partErr: errors.New("boom")},
		),
		DataDir: dir,
		Logger:  logging.NewJSONLogger(&logs, logging.InfoLevel),
		Output:  &bytes.Buffer{},
	})
	r.Run()

	// Compute failure names dataset and backend; load failure names dataset.
	assert.Contains(t, logs.String(), `"backend":"broken"`)
	assert.Contains(t, logs.String(), `"dataset":"Ghost"`)
	assert.Contains(t, logs.String(), r.RunID())
}

func TestRunner_DebugLoggingScoresPartitionQuality(t *testing.T) {
	dir, catalog := writeDatasets(t, "Email")
	var logs bytes.Buffer

	r := NewRunner(RunnerConfig{
		Catalog:  catalog,
		Registry: backend.NewRegistry(&fakeBackend{name: "fake"}),
		DataDir:  dir,
		Logger:   logging.NewJSONLogger(&logs, logging.DebugLevel),
		Output:   &bytes.Buffer{},
	})
	r.Run()

	assert.Contains(t, logs.String(), `"modularity"`)
}

func TestRunner_MeasuresRealBackends(t *testing.T) {
	dir, catalog := writeDatasets(t, "Email")
	var out bytes.Buffer

	r := NewRunner(RunnerConfig{
		Catalog:  catalog,
		Registry: backend.DefaultRegistry(backend.DefaultOptions()),
		DataDir:  dir,
		Output:   &out,
	})
	results := r.Run()

	require.Len(t, results, 3)
	for i, name := range []string{"gonum", "louvain", "storage"} {
		assert.Equal(t, name, results[i].Backend)
		assert.GreaterOrEqual(t, results[i].Elapsed.Nanoseconds(), int64(0))
	}
	for _, name := range []string{"gonum", "louvain", "storage"} {
		assert.Contains(t, out.String(),
			fmt.Sprintf("Elapsed time for Email dataset with %s:", name))
	}
}
