package stats

import (
	"math"
	"sort"
)

// Summary holds every supported statistic of one sample vector, computed
// in a single call. Use it when several statistics of the same pixel are
// needed; sorting and the moment pass then happen once instead of once per
// statistic.
type Summary struct {
	Count    int
	Mean     float64
	Variance float64 // population variance (divide by N)
	SD       float64
	Median   float64
	Mode     float64
	Min      float64
	Max      float64
}

// Summarize computes all statistics of samples. The input is sorted in
// place. Fails with ErrEmptySelection on empty input.
func Summarize(samples []float64) (Summary, error) {
	n := len(samples)
	if n == 0 {
		return Summary{}, ErrEmptySelection
	}

	sort.Float64s(samples)

	m, variance := meanVariance(samples)

	return Summary{
		Count:    n,
		Mean:     m,
		Variance: variance,
		SD:       math.Sqrt(variance),
		Median:   medianSorted(samples),
		Mode:     modeSorted(samples),
		Min:      samples[0],
		Max:      samples[n-1],
	}, nil
}

// Value returns the summary's value for the given statistic.
func (s Summary) Value(statistic Statistic) (float64, error) {
	switch statistic {
	case Mean:
		return s.Mean, nil
	case Median:
		return s.Median, nil
	case Mode:
		return s.Mode, nil
	case Min:
		return s.Min, nil
	case Max:
		return s.Max, nil
	case SD1Pos:
		return s.Mean + s.SD, nil
	case SD2Pos:
		return s.Mean + 2*s.SD, nil
	case SD3Pos:
		return s.Mean + 3*s.SD, nil
	case SD1Neg:
		return s.Mean - s.SD, nil
	case SD2Neg:
		return s.Mean - 2*s.SD, nil
	case SD3Neg:
		return s.Mean - 3*s.SD, nil
	default:
		return 0, ErrUnknownStatistic
	}
}
