package metric

import (
	"github.com/lexistat/lexistat/corpus"
)

// Defaults for the passive-voice scorers.
const (
	PassiveAuxPos        = "AUX"
	PassiveParticipleTag = "VBN"
	PassiveMarker        = "被"
)

// PassiveSequenceFrequency scores the share of sentences containing an
// auxiliary immediately followed by a past participle. A sentence counts
// at most once however many pairs it contains. The check is strictly
// adjacent; separated auxiliary-participle pairs are not detected.
func PassiveSequenceFrequency(auxPos, participleTag string) Scorer {
	return func(r corpus.Response) float64 {
		var passive, total int
		for _, s := range r.Sentences {
			total++
			for i := 0; i+1 < len(s.Tokens); i++ {
				if s.Tokens[i].Pos == auxPos && s.Tokens[i+1].Tag == participleTag {
					passive++
					break
				}
			}
		}
		return ratio(passive, total)
	}
}

// PassiveMarkerFrequency scores the share of sentences containing the
// designated passive marker as an exact token surface form.
func PassiveMarkerFrequency(marker string) Scorer {
	return func(r corpus.Response) float64 {
		var passive, total int
		for _, s := range r.Sentences {
			total++
			for _, t := range s.Tokens {
				if t.Text == marker {
					passive++
					break
				}
			}
		}
		return ratio(passive, total)
	}
}
