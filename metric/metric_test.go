package metric

import (
	"math"
	"strconv"
	"testing"

	"github.com/lexistat/lexistat/corpus"
)

// test helpers shared by the scorer tests

func mkSentence(id string, tokens ...corpus.Token) corpus.Sentence {
	for i := range tokens {
		if tokens[i].Id == "" {
			tokens[i].Id = id + "-t" + strconv.Itoa(i+1)
		}
	}
	return corpus.Sentence{Id: id, Tokens: tokens}
}

func mkResponse(sentences ...corpus.Sentence) corpus.Response {
	return corpus.Response{Id: "p1-r1", Sentences: sentences}
}

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}
