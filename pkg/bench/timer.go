package bench

import "time"

// Measure runs op to completion and returns how long it took. The reading
// comes from the monotonic clock carried by time.Now, so wall-clock
// corrections during the run cannot skew it; the result is never negative.
func Measure(op func() error) (time.Duration, error) {
	start := time.Now()
	err := op()
	elapsed := time.Since(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, err
}
