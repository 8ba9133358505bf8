package metric

import (
	"github.com/lexistat/lexistat/corpus"
)

// POSInventory is the fixed coarse-tag order shared by every POS frequency
// artifact. NON-ZH is the bucket the Chinese tagger assigns to
// latin-script material.
var POSInventory = []string{
	"NOUN", "PROPN", "VERB", "AUX", "ADJ", "ADV", "PRON", "NUM", "DET",
	"PART", "CCONJ", "SCONJ", "ADP", "INTJ", "PUNCT", "X", "NON-ZH",
}

// POSCounts tallies the coarse tags of a response. Tokens with an empty
// tag are left out.
func POSCounts(r corpus.Response) map[string]int {
	counts := map[string]int{}
	for _, s := range r.Sentences {
		for _, t := range s.Tokens {
			if t.Pos == "" {
				continue
			}
			counts[t.Pos]++
		}
	}
	return counts
}

// POSRelativeFrequency scores the share of one coarse tag against the
// total count of all inventory tags in the response. Tags outside the
// inventory enter neither numerator nor denominator.
func POSRelativeFrequency(tag string, inventory []string) Scorer {
	return func(r corpus.Response) float64 {
		counts := POSCounts(r)

		total := 0
		for _, p := range inventory {
			total += counts[p]
		}
		return ratio(counts[tag], total)
	}
}
