package bench

import "time"

// Result is one timing measurement: how long one backend took to partition
// one dataset. The sweep appends results in dataset-major, backend-minor
// order; a failed (dataset, backend) pair simply has no entry.
type Result struct {
	Dataset string
	Backend string
	Elapsed time.Duration
}

// Seconds returns the elapsed time in seconds, the unit reports use.
func (r Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}
