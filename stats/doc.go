// Package stats provides the per-pixel aggregation statistics that collapse
// a set of contributing band values into a single output channel value.
//
// The statistic set is closed: mean, median, mode, min, max, and the six
// standard-deviation offsets mean ± k·sd for k in 1..3. Standard deviation
// uses the population formula (divide by N), so every statistic degrades to
// the sample itself for single-band selections.
//
// The aggregation runs once per pixel per channel, which makes it the hot
// path of composite construction. Callers that aggregate many sample
// vectors with the same statistic should obtain a Kernel once and reuse it:
//
//	k, err := stats.NewKernel(stats.Median)
//	if err != nil { ... }
//	for each pixel {
//	    // fill samples, then:
//	    v := k(samples)
//	}
//
// Kernels for order statistics sort the sample slice in place to avoid a
// per-pixel allocation; pass a copy if the original order matters.
package stats
