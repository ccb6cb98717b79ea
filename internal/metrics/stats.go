package metrics

import (
	"math"

	"github.com/spboyer/filmtop/internal/models"
)

// Mean computes the arithmetic mean of a float64 slice, summing in order.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance computes the population variance of a float64 slice.
// Returns 0 for empty input.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return sumSq / float64(len(values))
}

// StdDev computes the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// ScoreSummary describes the score distribution of a ranked list.
type ScoreSummary struct {
	Count  int     `json:"count" yaml:"count"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
}

// Summarize computes a ScoreSummary over entries. The zero value is returned
// for an empty list.
func Summarize(entries []models.RankedEntry) ScoreSummary {
	if len(entries) == 0 {
		return ScoreSummary{}
	}
	scores := make([]float64, len(entries))
	s := ScoreSummary{Count: len(entries), Min: entries[0].Score, Max: entries[0].Score}
	for i, e := range entries {
		scores[i] = e.Score
		s.Min = math.Min(s.Min, e.Score)
		s.Max = math.Max(s.Max, e.Score)
	}
	s.Mean = Mean(scores)
	s.StdDev = StdDev(scores)
	return s
}
