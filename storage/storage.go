package storage

import (
	"github.com/lexistat/lexistat/corpus"
)

// CorpusReader defines read operations over a set of annotated corpus
// files.
type CorpusReader interface {
	// Names returns the file names of the corpus in canonical order:
	// category key order first, numeric suffix second, names without a
	// recognizable key last.
	Names() ([]string, error)

	// File returns the fully decoded file for a name obtained from Names.
	File(name string) (corpus.File, error)
}

// CorpusWriter defines write operations for corpus storage.
type CorpusWriter interface {
	// Write persists a file and its responses to storage.
	Write(f corpus.File) error
}

// CorpusRepository combines read and write operations.
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}
