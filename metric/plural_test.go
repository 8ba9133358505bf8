package metric

import (
	"testing"

	"github.com/lexistat/lexistat/corpus"
)

func TestPluralNounFrequency(t *testing.T) {
	score := PluralNounFrequency(EnglishNounTags())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "report", Tag: "NN"},
		corpus.Token{Text: "files", Tag: "NNS"},
		corpus.Token{Text: "results", Tag: "NNS"},
	))

	approx(t, score(r), 2.0/3.0)
}

func TestPluralNounFrequencyIgnoresNonNouns(t *testing.T) {
	score := PluralNounFrequency(EnglishNounTags())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "quickly", Tag: "RB"},
		corpus.Token{Text: "runs", Tag: "VBZ"},
		corpus.Token{Text: "dogs", Tag: "NNS"},
	))

	approx(t, score(r), 1.0)
}

func TestPluralNounFrequencyNoNouns(t *testing.T) {
	score := PluralNounFrequency(EnglishNounTags())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "quickly", Tag: "RB"},
	))

	approx(t, score(r), 0)
}

func TestPluralNounFrequencyMissingTag(t *testing.T) {
	// A token without a fine tag stays out of both counts.
	score := PluralNounFrequency(EnglishNounTags())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "report"},
		corpus.Token{Text: "files", Tag: "NNS"},
	))

	approx(t, score(r), 1.0)
}

func TestLexicalPluralFrequencySuffix(t *testing.T) {
	score := LexicalPluralFrequency(ChinesePluralLexicon())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "朋友们", Pos: "NOUN"},
		corpus.Token{Text: "学生", Pos: "NOUN"},
	))

	approx(t, score(r), 0.5)
}

func TestLexicalPluralFrequencyDeterminerAndQuantifier(t *testing.T) {
	// Determiner and quantifier matches raise the numerator without
	// entering the noun denominator.
	score := LexicalPluralFrequency(ChinesePluralLexicon())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "各", Pos: "DET"},
		corpus.Token{Text: "许多", Pos: "NUM"},
		corpus.Token{Text: "学校", Pos: "NOUN"},
		corpus.Token{Text: "学生", Pos: "NOUN"},
	))

	approx(t, score(r), 1.0)
}

func TestLexicalPluralFrequencyNoNouns(t *testing.T) {
	score := LexicalPluralFrequency(ChinesePluralLexicon())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "跑", Pos: "VERB"},
	))

	approx(t, score(r), 0)
}

func TestLexicalPluralFrequencyLexiconOnly(t *testing.T) {
	// A determiner outside the closed lexicon is not plural marking.
	score := LexicalPluralFrequency(ChinesePluralLexicon())

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "这", Pos: "DET"},
		corpus.Token{Text: "学生", Pos: "NOUN"},
	))

	approx(t, score(r), 0)
}
