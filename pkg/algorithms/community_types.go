package algorithms

// Community represents a detected community
type Community struct {
	ID    int
	Nodes []int64
	Size  int
}

// CommunityDetectionResult contains detected communities
type CommunityDetectionResult struct {
	Communities   []*Community
	Modularity    float64       // Quality measure of the partitioning
	NodeCommunity map[int64]int // Node ID -> Community ID
	Levels        int           // Aggregation levels performed
}

// LouvainOptions controls the modularity optimization
type LouvainOptions struct {
	// Resolution scales the null-model term; 1.0 is classic modularity
	Resolution float64
	// MinQualityGain stops the aggregation once a level improves
	// modularity by less than this
	MinQualityGain float64
	// MaxLevels bounds the number of aggregation levels
	MaxLevels int
}

// DefaultLouvainOptions returns the options used by the benchmark sweep
func DefaultLouvainOptions() LouvainOptions {
	return LouvainOptions{
		Resolution:     1.0,
		MinQualityGain: 1e-7,
		MaxLevels:      64,
	}
}
