package segment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds length-weighted descriptive statistics of a Profile.
// A genome-representative profile has Mean close to 1; strong deviation
// usually means the caller's normalization step was skipped.
type Summary struct {
	Segments    int     // number of segments
	TotalLength float64 // Σ lengths
	Mean        float64 // length-weighted mean of relative values
	Std         float64 // length-weighted population standard deviation
	Min         float64 // smallest relative value
	Max         float64 // largest relative value
}

// Summary computes length-weighted statistics over the profile. Std uses
// the population form (weighted mean squared deviation), so a single
// segment reports Std == 0 rather than NaN.
//
// Complexity: O(n) time, O(n) scratch space for the deviation buffer.
func (p Profile) Summary() Summary {
	if len(p.vals) == 0 {
		return Summary{}
	}

	mean := stat.Mean(p.vals, p.lens)

	// Population variance as the length-weighted mean of squared deviations.
	dev := make([]float64, len(p.vals))
	var d float64
	for i, v := range p.vals {
		d = v - mean
		dev[i] = d * d
	}

	return Summary{
		Segments:    len(p.vals),
		TotalLength: p.total,
		Mean:        mean,
		Std:         math.Sqrt(stat.Mean(dev, p.lens)),
		Min:         floats.Min(p.vals),
		Max:         floats.Max(p.vals),
	}
}

// String renders the summary in a compact one-line form for logs and demos.
func (s Summary) String() string {
	return fmt.Sprintf("segments=%d total=%.0f mean=%.3f std=%.3f min=%.3f max=%.3f",
		s.Segments, s.TotalLength, s.Mean, s.Std, s.Min, s.Max)
}
