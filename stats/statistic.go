package stats

import "errors"

// Errors returned by aggregation functions.
var (
	ErrEmptySelection   = errors.New("stats: empty sample selection")
	ErrUnknownStatistic = errors.New("stats: unknown statistic")
)

// Statistic identifies one of the supported per-pixel aggregation methods.
type Statistic int

// Supported statistics. The SD variants are offsets from the mean by
// multiples of the population standard deviation.
const (
	Mean Statistic = iota
	Median
	Mode
	Min
	Max
	SD1Pos // mean + 1·sd
	SD2Pos // mean + 2·sd
	SD3Pos // mean + 3·sd
	SD1Neg // mean - 1·sd
	SD2Neg // mean - 2·sd
	SD3Neg // mean - 3·sd
)

var statisticNames = map[Statistic]string{
	Mean:   "mean",
	Median: "median",
	Mode:   "mode",
	Min:    "min",
	Max:    "max",
	SD1Pos: "sd1_pos",
	SD2Pos: "sd2_pos",
	SD3Pos: "sd3_pos",
	SD1Neg: "sd1_neg",
	SD2Neg: "sd2_neg",
	SD3Neg: "sd3_neg",
}

// String returns the configuration name of the statistic.
func (s Statistic) String() string {
	if name, ok := statisticNames[s]; ok {
		return name
	}
	return "unknown"
}

// Statistics returns all supported statistics in declaration order.
func Statistics() []Statistic {
	return []Statistic{
		Mean, Median, Mode, Min, Max,
		SD1Pos, SD2Pos, SD3Pos,
		SD1Neg, SD2Neg, SD3Neg,
	}
}

// ParseStatistic maps a configuration name like "mean" or "sd2_neg" to its
// Statistic. Returns ErrUnknownStatistic for unrecognized names.
func ParseStatistic(name string) (Statistic, error) {
	for s, n := range statisticNames {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrUnknownStatistic
}
