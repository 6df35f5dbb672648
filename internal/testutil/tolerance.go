package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-hyper/raster"
)

// RequireNear fails t if got and want differ by more than eps.
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, math.Abs(got-want), eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRasterNearlyEqual fails t if the rasters differ in shape or any
// pixel pair exceeds eps.
func RequireRasterNearlyEqual(t *testing.T, got, want *raster.Raster, eps float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	for row := 0; row < got.Rows(); row++ {
		RequireSliceNearlyEqual(t, got.Row(row), want.Row(row), eps)
	}
}

// RequireRasterFinite fails t if any pixel is NaN or Inf.
func RequireRasterFinite(t *testing.T, r *raster.Raster) {
	t.Helper()
	for row := 0; row < r.Rows(); row++ {
		for col, v := range r.Row(row) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("pixel (%d,%d): non-finite value %v", row, col, v)
			}
		}
	}
}
