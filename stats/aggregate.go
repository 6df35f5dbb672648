package stats

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Kernel is a pure aggregation function over a non-empty sample vector.
// Kernels returned by NewKernel for order statistics (median, mode) sort
// the slice in place; all kernels are safe for concurrent use on disjoint
// slices.
type Kernel func(samples []float64) float64

// NewKernel returns the aggregation function for statistic. The dispatch
// happens here, once, so the per-pixel call is branch-free on the
// statistic choice.
func NewKernel(statistic Statistic) (Kernel, error) {
	switch statistic {
	case Mean:
		return mean, nil
	case Median:
		return median, nil
	case Mode:
		return mode, nil
	case Min:
		return minimum, nil
	case Max:
		return maximum, nil
	case SD1Pos:
		return sdOffset(1), nil
	case SD2Pos:
		return sdOffset(2), nil
	case SD3Pos:
		return sdOffset(3), nil
	case SD1Neg:
		return sdOffset(-1), nil
	case SD2Neg:
		return sdOffset(-2), nil
	case SD3Neg:
		return sdOffset(-3), nil
	default:
		return nil, ErrUnknownStatistic
	}
}

// Aggregate reduces samples to a single value using the given statistic.
// It fails with ErrEmptySelection on an empty input rather than emitting
// NaN, so corrupt selections cannot pass undetected. Order statistics may
// reorder samples in place.
func Aggregate(samples []float64, statistic Statistic) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySelection
	}

	k, err := NewKernel(statistic)
	if err != nil {
		return 0, err
	}

	return k(samples), nil
}

func mean(samples []float64) float64 {
	return vecmath.Sum(samples) / float64(len(samples))
}

func median(samples []float64) float64 {
	sort.Float64s(samples)
	return medianSorted(samples)
}

func medianSorted(samples []float64) float64 {
	n := len(samples)
	if n%2 == 1 {
		return samples[n/2]
	}

	return (samples[n/2-1] + samples[n/2]) / 2
}

func mode(samples []float64) float64 {
	sort.Float64s(samples)
	return modeSorted(samples)
}

// modeSorted returns the most frequent value. Ties resolve to the smallest
// tied value: the scan walks the sorted samples ascending and only a
// strictly longer run displaces the current best.
func modeSorted(samples []float64) float64 {
	best := samples[0]
	bestCount := 1
	runStart := 0

	for i := 1; i <= len(samples); i++ {
		if i < len(samples) && samples[i] == samples[runStart] {
			continue
		}
		if count := i - runStart; count > bestCount {
			best = samples[runStart]
			bestCount = count
		}
		runStart = i
	}

	return best
}

func minimum(samples []float64) float64 {
	out := samples[0]
	for _, v := range samples[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func maximum(samples []float64) float64 {
	out := samples[0]
	for _, v := range samples[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

// sdOffset builds a kernel computing mean + k·sd with the population
// standard deviation. At N=1 the variance is zero, so every offset
// degrades to the mean.
func sdOffset(k float64) Kernel {
	return func(samples []float64) float64 {
		m, variance := meanVariance(samples)
		return m + k*math.Sqrt(variance)
	}
}

// meanVariance returns the mean and population variance (divide by N) in
// two passes. The two-pass form is numerically stable for the short sample
// vectors band selections produce.
func meanVariance(samples []float64) (mean, variance float64) {
	n := float64(len(samples))
	mean = vecmath.Sum(samples) / n

	var m2 float64
	for _, v := range samples {
		d := v - mean
		m2 += d * d
	}

	return mean, m2 / n
}
