package stats

import (
	"sort"

	"github.com/fahrenkrug/rust-learn-book-collections/internal/domain"
)

// Summarize computes count, sum, mean, median and mode of values.
//
// Policy:
// - Mean truncates toward zero; FloatMean is exact.
// - Median is the element at len/2 of the sorted values (upper median for even lengths).
// - Mode ties resolve to the smallest value.
// - values is not modified.
func Summarize(values []int) (domain.NumberSummary, error) {
	if len(values) == 0 {
		return domain.NumberSummary{}, &domain.OpError{
			Op:   "stats.summarize",
			Kind: domain.KindInvalidInput,
			Err:  domain.ErrEmptyInput,
		}
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	sum := 0
	for _, v := range sorted {
		sum += v
	}

	mode, modeCount := modeOf(sorted)

	return domain.NumberSummary{
		Count:     len(sorted),
		Sum:       sum,
		Mean:      sum / len(sorted),
		FloatMean: float64(sum) / float64(len(sorted)),
		Median:    sorted[len(sorted)/2],
		Mode:      mode,
		ModeCount: modeCount,
	}, nil
}

// modeOf expects sorted input; equal values are adjacent.
func modeOf(sorted []int) (value int, count int) {
	counts := make(map[int]int, len(sorted))
	for _, v := range sorted {
		counts[v]++
	}

	for _, v := range sorted {
		// Strictly greater keeps the first (smallest) value on ties.
		if counts[v] > count {
			value, count = v, counts[v]
		}
	}
	return value, count
}
