package stat

import (
	"fmt"
	"math"
)

// Summary is the file-level aggregate over the per-response samples of one
// metric.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64

	// CV is the coefficient of variation in percent: StdDev/Mean*100,
	// 0 when Mean is 0.
	CV float64
}

// Aggregate reduces samples to a Summary. The standard deviation is the
// population deviation (divisor N, not N-1). An empty sample yields the
// zero Summary.
func Aggregate(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / float64(len(samples))

	var sq float64
	for _, v := range samples {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(samples)))

	cv := 0.0
	if mean != 0 {
		cv = std / mean * 100
	}

	return Summary{
		Count:  len(samples),
		Mean:   mean,
		StdDev: std,
		CV:     cv,
	}
}

// Round4 rounds to the 4 decimal places used in every table cell.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// CVString renders a CV value the way the tables expect it, e.g. "40.82%".
func CVString(cv float64) string {
	return fmt.Sprintf("%.2f%%", cv)
}
