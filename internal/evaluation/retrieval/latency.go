package retrieval

import (
	"math"
	"sort"
	"time"
)

type LatencyStats struct {
	Min         time.Duration         `json:"min"`
	Max         time.Duration         `json:"max"`
	Mean        time.Duration         `json:"mean"`
	Median      time.Duration         `json:"median"`
	Stddev      time.Duration         `json:"stddev"`
	Percentiles map[int]time.Duration `json:"percentiles"`
	SampleCount int                   `json:"sample_count"`
	Raw         []time.Duration       `json:"-"`
}

var defaultPercentiles = []int{50, 75, 90, 95, 99}

func ComputeLatencyStats(durations []time.Duration) LatencyStats {
	if len(durations) == 0 {
		return LatencyStats{Percentiles: make(map[int]time.Duration)}
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	stats := LatencyStats{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Median:      percentile(sorted, 50),
		Percentiles: make(map[int]time.Duration, len(defaultPercentiles)),
		SampleCount: len(sorted),
		Raw:         durations,
	}

	var sum int64
	for _, d := range sorted {
		sum += int64(d)
	}
	stats.Mean = time.Duration(sum / int64(len(sorted)))

	if len(sorted) > 1 {
		var squares float64
		mean := float64(stats.Mean)
		for _, d := range sorted {
			diff := float64(d) - mean
			squares += diff * diff
		}
		stats.Stddev = time.Duration(math.Sqrt(squares / float64(len(sorted)-1)))
	}

	for _, p := range defaultPercentiles {
		stats.Percentiles[p] = percentile(sorted, p)
	}
	return stats
}

// percentile interpolates linearly between the closest ranks.
func percentile(sorted []time.Duration, p int) time.Duration {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := float64(p) / 100 * float64(len(sorted)-1)
	lower := int(rank)
	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	w := rank - float64(lower)
	return time.Duration(float64(sorted[lower])*(1-w) + float64(sorted[lower+1])*w)
}

// MergeLatencyStats recomputes stats over every raw sample.
func MergeLatencyStats(stats []LatencyStats) LatencyStats {
	var all []time.Duration
	for _, s := range stats {
		all = append(all, s.Raw...)
	}
	return ComputeLatencyStats(all)
}

func (s LatencyStats) P50() time.Duration { return s.Percentiles[50] }
func (s LatencyStats) P95() time.Duration { return s.Percentiles[95] }
func (s LatencyStats) P99() time.Duration { return s.Percentiles[99] }

func (s LatencyStats) IsZero() bool {
	return s.SampleCount == 0
}
