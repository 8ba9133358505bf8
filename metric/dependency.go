package metric

import (
	"github.com/lexistat/lexistat/corpus"
)

// DependencyDistance scores a response with its mean per-token dependency
// distance: the sum of absolute head offsets over the token count.
func DependencyDistance() Scorer {
	return func(r corpus.Response) float64 {
		var sum, tokens int
		for _, s := range r.Sentences {
			for _, t := range s.Tokens {
				sum += t.DepDistance
				tokens++
			}
		}
		if tokens == 0 {
			return 0
		}
		return float64(sum) / float64(tokens)
	}
}

// DependencyDirection returns the proportions of dependents standing
// before and after their head. Heads are resolved by surface text within
// the sentence; when a form occurs more than once the last occurrence
// wins. Tokens whose head cannot be resolved, or that head themselves,
// count in neither proportion. The two proportions sum to 1 whenever at
// least one relation resolves, and are both 0 otherwise.
func DependencyDirection() PairScorer {
	return func(r corpus.Response) (float64, float64) {
		var before, after int
		for _, s := range r.Sentences {
			positions := make(map[string]int, len(s.Tokens))
			for _, t := range s.Tokens {
				if p := t.Position(); p > 0 {
					positions[t.Text] = p
				}
			}

			for _, t := range s.Tokens {
				pos := t.Position()
				if pos == 0 {
					continue
				}
				head, ok := positions[t.Head]
				if !ok {
					continue
				}

				switch {
				case head > pos:
					before++
				case head < pos:
					after++
				}
			}
		}

		total := before + after
		if total == 0 {
			return 0, 0
		}
		return float64(before) / float64(total), float64(after) / float64(total)
	}
}
