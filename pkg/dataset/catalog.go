package dataset

import "path/filepath"

// Descriptor identifies one benchmark dataset: a display name, the local
// filename under the data directory, and the canonical remote source.
// Fetching and unpacking the remote archive is left to the operator; the
// harness only reads the local file.
type Descriptor struct {
	Name      string
	Filename  string
	SourceURL string
}

// Path returns the dataset's location under the given data directory.
func (d Descriptor) Path(dataDir string) string {
	return filepath.Join(dataDir, d.Filename)
}

// DefaultCatalog returns the SNAP datasets used for the community-detection
// sweep, smallest first. The benchmark processes datasets in this order, so
// results are comparable run-to-run.
func DefaultCatalog() []Descriptor {
	return []Descriptor{
		{
			Name:      "Email",
			Filename:  "email-Eu-core.txt",
			SourceURL: "https://snap.stanford.edu/data/email-Eu-core.txt.gz",
		},
		{
			Name:      "Facebook",
			Filename:  "facebook_combined.txt",
			SourceURL: "https://snap.stanford.edu/data/facebook.tar.gz",
		},
		{
			Name:      "Amazon",
			Filename:  "com-amazon.ungraph.txt",
			SourceURL: "https://snap.stanford.edu/data/bigdata/communities/com-amazon.ungraph.txt.gz",
		},
		{
			Name:      "Youtube",
			Filename:  "com-youtube.ungraph.txt",
			SourceURL: "https://snap.stanford.edu/data/bigdata/communities/com-youtube.ungraph.txt.gz",
		},
		{
			Name:      "Orkut",
			Filename:  "com-orkut.ungraph.txt",
			SourceURL: "https://snap.stanford.edu/data/bigdata/communities/com-orkut.ungraph.txt.gz",
		},
	}
}
