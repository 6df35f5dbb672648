package stats

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAggregateMean(t *testing.T) {
	got, err := Aggregate([]float64{1, 2, 3, 4}, Mean)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !almostEqual(got, 2.5, tolerance) {
		t.Fatalf("mean = %v, want 2.5", got)
	}
}

func TestAggregateMedianOdd(t *testing.T) {
	got, err := Aggregate([]float64{3, 1, 2}, Median)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 2 {
		t.Fatalf("median = %v, want 2", got)
	}
}

func TestAggregateMedianEven(t *testing.T) {
	got, err := Aggregate([]float64{4, 1, 3, 2}, Median)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 2.5 {
		t.Fatalf("median = %v, want 2.5", got)
	}
}

func TestAggregateMode(t *testing.T) {
	got, err := Aggregate([]float64{5, 3, 3, 5, 3, 1}, Mode)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 3 {
		t.Fatalf("mode = %v, want 3", got)
	}
}

func TestAggregateModeTieSmallest(t *testing.T) {
	// 2 and 7 both appear twice; the smaller value wins.
	got, err := Aggregate([]float64{7, 2, 7, 2, 5}, Mode)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 2 {
		t.Fatalf("mode = %v, want 2", got)
	}
}

func TestAggregateMinMax(t *testing.T) {
	samples := []float64{2, -1, 7, 0}

	got, err := Aggregate(samples, Min)
	if err != nil {
		t.Fatalf("Aggregate min: %v", err)
	}
	if got != -1 {
		t.Fatalf("min = %v, want -1", got)
	}

	got, err = Aggregate(samples, Max)
	if err != nil {
		t.Fatalf("Aggregate max: %v", err)
	}
	if got != 7 {
		t.Fatalf("max = %v, want 7", got)
	}
}

func TestAggregateSDOffsets(t *testing.T) {
	// mean = 5, population variance = ((−3)²+(−1)²+1²+3²)/4 = 5.
	samples := []float64{2, 4, 6, 8}
	m := 5.0
	sd := math.Sqrt(5)

	cases := []struct {
		statistic Statistic
		want      float64
	}{
		{SD1Pos, m + sd},
		{SD2Pos, m + 2*sd},
		{SD3Pos, m + 3*sd},
		{SD1Neg, m - sd},
		{SD2Neg, m - 2*sd},
		{SD3Neg, m - 3*sd},
	}

	for _, tc := range cases {
		in := append([]float64(nil), samples...)
		got, err := Aggregate(in, tc.statistic)
		if err != nil {
			t.Fatalf("%v: %v", tc.statistic, err)
		}
		if !almostEqual(got, tc.want, tolerance) {
			t.Fatalf("%v = %v, want %v", tc.statistic, got, tc.want)
		}
	}
}

func TestAggregatePopulationSD(t *testing.T) {
	// Population formula divides by N: for {1,3} sd = 1, not sqrt(2).
	got, err := Aggregate([]float64{1, 3}, SD1Pos)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !almostEqual(got, 3, tolerance) {
		t.Fatalf("sd1_pos = %v, want 3", got)
	}
}

func TestAggregateSingleSample(t *testing.T) {
	// Every statistic returns a lone sample unchanged; sd = 0 at N=1.
	for _, s := range Statistics() {
		got, err := Aggregate([]float64{42.5}, s)
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if got != 42.5 {
			t.Fatalf("%v = %v, want 42.5", s, got)
		}
	}
}

func TestAggregateOrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	base := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}

	for _, s := range Statistics() {
		in := append([]float64(nil), base...)
		want, err := Aggregate(in, s)
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}

		for trial := 0; trial < 10; trial++ {
			perm := append([]float64(nil), base...)
			rng.Shuffle(len(perm), func(i, j int) {
				perm[i], perm[j] = perm[j], perm[i]
			})

			got, err := Aggregate(perm, s)
			if err != nil {
				t.Fatalf("%v: %v", s, err)
			}
			if !almostEqual(got, want, 1e-9) {
				t.Fatalf("%v order-dependent: got %v, want %v", s, got, want)
			}
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	for _, s := range Statistics() {
		_, err := Aggregate(nil, s)
		if !errors.Is(err, ErrEmptySelection) {
			t.Fatalf("%v: err = %v, want ErrEmptySelection", s, err)
		}
	}
}

func TestNewKernelUnknown(t *testing.T) {
	_, err := NewKernel(Statistic(99))
	if !errors.Is(err, ErrUnknownStatistic) {
		t.Fatalf("err = %v, want ErrUnknownStatistic", err)
	}
}

func TestParseStatistic(t *testing.T) {
	for _, s := range Statistics() {
		got, err := ParseStatistic(s.String())
		if err != nil {
			t.Fatalf("ParseStatistic(%q): %v", s.String(), err)
		}
		if got != s {
			t.Fatalf("ParseStatistic(%q) = %v, want %v", s.String(), got, s)
		}
	}

	_, err := ParseStatistic("stddev")
	if !errors.Is(err, ErrUnknownStatistic) {
		t.Fatalf("err = %v, want ErrUnknownStatistic", err)
	}
}

func TestKernelMatchesAggregate(t *testing.T) {
	samples := []float64{9, 2, 4, 4, 7}

	for _, s := range Statistics() {
		k, err := NewKernel(s)
		if err != nil {
			t.Fatalf("NewKernel(%v): %v", s, err)
		}

		a := append([]float64(nil), samples...)
		b := append([]float64(nil), samples...)

		want, err := Aggregate(a, s)
		if err != nil {
			t.Fatalf("Aggregate(%v): %v", s, err)
		}
		if got := k(b); got != want {
			t.Fatalf("%v kernel = %v, Aggregate = %v", s, got, want)
		}
	}
}
