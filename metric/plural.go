package metric

import (
	"strings"

	"github.com/lexistat/lexistat/corpus"
)

// PluralNounTags holds the fine-grained tag sets separating singular from
// plural nouns in a language with number morphology.
type PluralNounTags struct {
	Singular map[string]bool
	Plural   map[string]bool
}

// EnglishNounTags returns the Penn treebank noun tags used for the English
// corpora.
func EnglishNounTags() PluralNounTags {
	return PluralNounTags{
		Singular: map[string]bool{"NN": true, "NNP": true},
		Plural:   map[string]bool{"NNS": true, "NNPS": true},
	}
}

// PluralNounFrequency scores the share of plural nouns among all nouns of
// a response, based on fine-grained tags. Tokens outside both tag sets do
// not enter the denominator.
func PluralNounFrequency(tags PluralNounTags) Scorer {
	return func(r corpus.Response) float64 {
		var singular, plural int
		for _, s := range r.Sentences {
			for _, t := range s.Tokens {
				switch {
				case tags.Plural[t.Tag]:
					plural++
				case tags.Singular[t.Tag]:
					singular++
				}
			}
		}
		return ratio(plural, singular+plural)
	}
}

// PluralLexicon is the closed set of plural markers for a language whose
// nouns carry no number morphology. Only items of this lexicon count as
// plural marking; each list is conditioned on a coarse tag.
type PluralLexicon struct {
	NounPos string
	DetPos  string
	NumPos  string

	// Suffixes match as substrings of NounPos tokens.
	Suffixes []string

	// Determiners and Quantifiers match the exact surface form of DetPos
	// and NumPos tokens.
	Determiners map[string]bool
	Quantifiers map[string]bool
}

// ChinesePluralLexicon returns the marker lexicon used for the Chinese
// corpora: the suffix 们, the determiners 各 and 些, and the quantifiers
// 诸 and 许多.
func ChinesePluralLexicon() PluralLexicon {
	return PluralLexicon{
		NounPos:     "NOUN",
		DetPos:      "DET",
		NumPos:      "NUM",
		Suffixes:    []string{"们"},
		Determiners: map[string]bool{"各": true, "些": true},
		Quantifiers: map[string]bool{"诸": true, "许多": true},
	}
}

// LexicalPluralFrequency scores plural marking against the noun count of a
// response. The denominator counts NounPos tokens only; determiner and
// quantifier matches still raise the numerator.
func LexicalPluralFrequency(lex PluralLexicon) Scorer {
	return func(r corpus.Response) float64 {
		var nouns, plural int
		for _, s := range r.Sentences {
			for _, t := range s.Tokens {
				switch t.Pos {
				case lex.NounPos:
					nouns++
					for _, suffix := range lex.Suffixes {
						if strings.Contains(t.Text, suffix) {
							plural++
							break
						}
					}
				case lex.DetPos:
					if lex.Determiners[t.Text] {
						plural++
					}
				case lex.NumPos:
					if lex.Quantifiers[t.Text] {
						plural++
					}
				}
			}
		}
		return ratio(plural, nouns)
	}
}
