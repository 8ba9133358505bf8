// Package annotate declares the model capabilities the statistics code
// depends on. The taggers, parsers and language models themselves live
// out of process; implementations of these interfaces wrap whatever
// produces the annotations, and the rest of the repository only ever sees
// the returned values. Tests inject fixtures.
package annotate

import (
	"github.com/lexistat/lexistat/corpus"
)

// Annotator produces the linguistic annotation of one raw response text:
// sentence boundaries, tokens, tags and dependency attributes.
type Annotator interface {
	Annotate(text string) (corpus.Response, error)
}

// Scorer measures a response against a language model.
type Scorer interface {
	// Score returns the mean token cross-entropy of the response given
	// the prompt, and its exponential (perplexity).
	Score(prompt, response string) (loss, perplexity float64, err error)
}
