package metric

import (
	"testing"

	"github.com/lexistat/lexistat/corpus"
)

func TestDependencyDistance(t *testing.T) {
	score := DependencyDistance()

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Text: "The", DepDistance: 1},
		corpus.Token{Text: "report", DepDistance: 2},
		corpus.Token{Text: "was", DepDistance: 1},
		corpus.Token{Text: "filed", DepDistance: 0},
	))

	approx(t, score(r), 1.0)
}

func TestDependencyDistanceEmpty(t *testing.T) {
	score := DependencyDistance()
	approx(t, score(mkResponse()), 0)
}

func TestDependencyDirection(t *testing.T) {
	// "The report was filed": the, report and was point forward to their
	// heads, filed is the root and resolves to itself.
	score := DependencyDirection()

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Id: "p1-r1-s1-t1", Text: "The", Head: "report"},
		corpus.Token{Id: "p1-r1-s1-t2", Text: "report", Head: "filed"},
		corpus.Token{Id: "p1-r1-s1-t3", Text: "was", Head: "filed"},
		corpus.Token{Id: "p1-r1-s1-t4", Text: "filed", Head: "filed"},
	))

	before, after := score(r)
	approx(t, before, 1.0)
	approx(t, after, 0)
}

func TestDependencyDirectionAfter(t *testing.T) {
	score := DependencyDirection()

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Id: "p1-r1-s1-t1", Text: "ran", Head: "ran"},
		corpus.Token{Id: "p1-r1-s1-t2", Text: "quickly", Head: "ran"},
	))

	before, after := score(r)
	approx(t, before, 0)
	approx(t, after, 1.0)
}

func TestDependencyDirectionSumsToOne(t *testing.T) {
	score := DependencyDirection()

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Id: "p1-r1-s1-t1", Text: "He", Head: "ran"},
		corpus.Token{Id: "p1-r1-s1-t2", Text: "ran", Head: "ran"},
		corpus.Token{Id: "p1-r1-s1-t3", Text: "away", Head: "ran"},
	))

	before, after := score(r)
	approx(t, before+after, 1.0)
	approx(t, before, 0.5)
	approx(t, after, 0.5)
}

func TestDependencyDirectionUnresolvedHead(t *testing.T) {
	// A head form absent from the sentence contributes to neither side.
	score := DependencyDirection()

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Id: "p1-r1-s1-t1", Text: "stray", Head: "missing"},
	))

	before, after := score(r)
	approx(t, before, 0)
	approx(t, after, 0)
}

func TestDependencyDirectionLastOccurrenceWins(t *testing.T) {
	// Repeated surface form: head lookup resolves to the last occurrence.
	score := DependencyDirection()

	r := mkResponse(mkSentence("p1-r1-s1",
		corpus.Token{Id: "p1-r1-s1-t1", Text: "the", Head: "dog"},
		corpus.Token{Id: "p1-r1-s1-t2", Text: "dog", Head: "saw"},
		corpus.Token{Id: "p1-r1-s1-t3", Text: "saw", Head: "saw"},
		corpus.Token{Id: "p1-r1-s1-t4", Text: "the", Head: "cat"},
		corpus.Token{Id: "p1-r1-s1-t5", Text: "cat", Head: "saw"},
	))

	// t1 the->dog(2) before, t2 dog->saw(3) before, t4 the->cat(5) before,
	// t5 cat->saw(3) after, t3 excluded as self head.
	before, after := score(r)
	approx(t, before, 0.75)
	approx(t, after, 0.25)
}

func TestDependencyDirectionEmpty(t *testing.T) {
	score := DependencyDirection()
	before, after := score(mkResponse())
	approx(t, before, 0)
	approx(t, after, 0)
}
