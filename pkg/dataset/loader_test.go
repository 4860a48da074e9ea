package dataset

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEdgeList writes an edge-list file into a temp dir and returns its path
func writeEdgeList(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGraph_Basic(t *testing.T) {
	path := writeEdgeList(t, "simple.txt", "1 2\n2 3\n3 4\n4 1\n")

	g, err := LoadGraph(path)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []Edge{{1, 2}, {2, 3}, {3, 4}, {4, 1}}, g.Edges())
	assert.Equal(t, []int64{1, 2, 3, 4}, g.Nodes())
}

func TestLoadGraph_CommentsAndBlankLines(t *testing.T) {
	path := writeEdgeList(t, "commented.txt",
		"# Undirected graph: email-Eu-core\n# Nodes: 3 Edges: 2\n\n1 2\n\n2 3\n")

	g, err := LoadGraph(path)
	require.NoError(t, err)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
}

func TestLoadGraph_TabSeparated(t *testing.T) {
	// SNAP files are tab-separated; any whitespace must do.
	path := writeEdgeList(t, "tabs.txt", "10\t20\n20\t30\n")

	g, err := LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLoadGraph_PreservesSelfLoopsAndDuplicates(t *testing.T) {
	path := writeEdgeList(t, "loops.txt", "1 1\n1 2\n1 2\n2 1\n")

	g, err := LoadGraph(path)
	require.NoError(t, err)

	// No implicit de-duplication in the reference representation.
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 2, g.NodeCount())
}

func TestLoadGraph_MalformedLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"letters", "1 2\na b\n"},
		{"three fields", "1 2\n1 2 3\n"},
		{"one field", "1 2\n7\n"},
		{"float ids", "1 2\n1.5 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeEdgeList(t, "bad.txt", tt.content)

			g, err := LoadGraph(path)
			require.Error(t, err)
			assert.True(t, IsMalformed(err), "want ErrMalformedEdge, got %v", err)
			assert.Nil(t, g, "no partial graph on parse failure")
		})
	}
}

func TestLoadGraph_MalformedLineNumberReported(t *testing.T) {
	path := writeEdgeList(t, "bad.txt", "# header\n1 2\na b\n")

	_, err := LoadGraph(path)
	require.Error(t, err)

	var derr *DatasetError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 3, derr.Line)
	assert.Equal(t, path, derr.Path)
}

func TestLoadGraph_MissingFile(t *testing.T) {
	g, err := LoadGraph(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, IsMissing(err), "want ErrDatasetMissing, got %v", err)
	assert.Nil(t, g)
}

func TestLoadGraph_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("1 2\n2 3\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	g, err := LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLoadGraph_Snappy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt.sz")
	f, err := os.Create(path)
	require.NoError(t, err)
	sw := snappy.NewBufferedWriter(f)
	_, err = sw.Write([]byte("1 2\n2 3\n3 1\n"))
	require.NoError(t, err)
	require.NoError(t, sw.Close())
	require.NoError(t, f.Close())

	g, err := LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestLoadGraph_Deterministic(t *testing.T) {
	path := writeEdgeList(t, "det.txt", "5 6\n1 2\n2 3\n1 2\n")

	g1, err := LoadGraph(path)
	require.NoError(t, err)
	g2, err := LoadGraph(path)
	require.NoError(t, err)

	if !reflect.DeepEqual(g1.Edges(), g2.Edges()) {
		t.Errorf("two loads of the same file differ:\n\t%v\n\t%v", g1.Edges(), g2.Edges())
	}
	assert.Equal(t, g1.Nodes(), g2.Nodes())
}
