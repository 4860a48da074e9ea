package dataset

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// Scanner buffer sized for the largest SNAP edge lists; individual lines
// are short but the default bufio limit is too small to be comfortable.
const maxLineBytes = 1024 * 1024

// LoadGraph parses a plain-text edge list into a reference graph. Each line
// names one undirected edge as two whitespace-separated integers. Lines that
// are blank or start with '#' (the SNAP comment convention) are skipped; any
// other line that does not parse into exactly two integers fails the load
// with ErrMalformedEdge and no partial graph is returned.
//
// Files with a .gz or .sz suffix are decompressed on the fly (gzip and
// framed snappy respectively), so a downloaded SNAP archive member can be
// loaded without unpacking it first.
//
// A missing file fails with ErrDatasetMissing rather than a raw I/O error,
// so the runner can tell "fetch it first" apart from real failures.
func LoadGraph(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &DatasetError{Op: "load", Path: path, Cause: ErrDatasetMissing}
		}
		return nil, &DatasetError{Op: "load", Path: path, Cause: err}
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, &DatasetError{Op: "load", Path: path, Cause: err}
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".sz"):
		r = snappy.NewReader(f)
	}

	g := NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &DatasetError{Op: "load", Path: path, Line: lineNo, Cause: ErrMalformedEdge}
		}

		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, &DatasetError{Op: "load", Path: path, Line: lineNo, Cause: ErrMalformedEdge}
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, &DatasetError{Op: "load", Path: path, Line: lineNo, Cause: ErrMalformedEdge}
		}

		g.AddEdge(u, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, &DatasetError{Op: "load", Path: path, Cause: err}
	}

	return g, nil
}
