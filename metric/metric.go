package metric

import (
	"github.com/lexistat/lexistat/corpus"
)

// Scorer computes one scalar value for a single response. Every scorer in
// this package follows the same rule: ratio of matching sub-units to total
// relevant sub-units, 0 when the denominator is empty.
type Scorer func(r corpus.Response) float64

// PairScorer computes two related proportions for a single response, such
// as the before/after split of dependency directions.
type PairScorer func(r corpus.Response) (before, after float64)

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
