package metric

import (
	"testing"

	"github.com/lexistat/lexistat/corpus"
)

func TestPOSCounts(t *testing.T) {
	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "The", Pos: "DET"},
		corpus.Token{Text: "report", Pos: "NOUN"},
		corpus.Token{Text: "was", Pos: "AUX"},
		corpus.Token{Text: "filed", Pos: "VERB"},
		corpus.Token{Text: "?"},
	))

	counts := POSCounts(r)
	if len(counts) != 4 {
		t.Fatalf("expected 4 tags, got %d: %v", len(counts), counts)
	}
	if counts["NOUN"] != 1 || counts["DET"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if _, ok := counts[""]; ok {
		t.Error("empty tag must not be counted")
	}
}

func TestPOSRelativeFrequency(t *testing.T) {
	score := POSRelativeFrequency("NOUN", POSInventory)

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "The", Pos: "DET"},
		corpus.Token{Text: "report", Pos: "NOUN"},
		corpus.Token{Text: "was", Pos: "AUX"},
		corpus.Token{Text: "filed", Pos: "VERB"},
	))

	approx(t, score(r), 0.25)
}

func TestPOSRelativeFrequencyOutsideInventory(t *testing.T) {
	// Tags outside the inventory stay out of the denominator.
	score := POSRelativeFrequency("NOUN", POSInventory)

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "report", Pos: "NOUN"},
		corpus.Token{Text: "odd", Pos: "SYM"},
	))

	approx(t, score(r), 1.0)
}

func TestPOSRelativeFrequencyEmpty(t *testing.T) {
	score := POSRelativeFrequency("NOUN", POSInventory)
	approx(t, score(mkResponse()), 0)
}
