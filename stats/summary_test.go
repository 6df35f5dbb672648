package stats

import (
	"errors"
	"testing"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{2, 4, 4, 6, 8})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if s.Count != 5 {
		t.Fatalf("Count = %d, want 5", s.Count)
	}
	if !almostEqual(s.Mean, 4.8, tolerance) {
		t.Fatalf("Mean = %v, want 4.8", s.Mean)
	}
	if s.Median != 4 {
		t.Fatalf("Median = %v, want 4", s.Median)
	}
	if s.Mode != 4 {
		t.Fatalf("Mode = %v, want 4", s.Mode)
	}
	if s.Min != 2 || s.Max != 8 {
		t.Fatalf("Min/Max = %v/%v, want 2/8", s.Min, s.Max)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
}

func TestSummaryValueMatchesAggregate(t *testing.T) {
	samples := []float64{3, 7, 7, 1, 5, 2}

	sum, err := Summarize(append([]float64(nil), samples...))
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	for _, s := range Statistics() {
		want, err := Aggregate(append([]float64(nil), samples...), s)
		if err != nil {
			t.Fatalf("Aggregate(%v): %v", s, err)
		}

		got, err := sum.Value(s)
		if err != nil {
			t.Fatalf("Value(%v): %v", s, err)
		}
		if !almostEqual(got, want, tolerance) {
			t.Fatalf("Value(%v) = %v, Aggregate = %v", s, got, want)
		}
	}
}

func TestSummaryValueUnknown(t *testing.T) {
	sum, err := Summarize([]float64{1})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	_, err = sum.Value(Statistic(99))
	if !errors.Is(err, ErrUnknownStatistic) {
		t.Fatalf("err = %v, want ErrUnknownStatistic", err)
	}
}
