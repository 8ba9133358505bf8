package filesystem

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lexistat/lexistat/corpus"
	"github.com/lexistat/lexistat/storage"
)

// CorpusStore reads annotated corpus files from a directory of XML files.
type CorpusStore struct {
	dir string

	// names in canonical order, fixed at construction
	names []string
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

// NewCorpusStore creates a filesystem corpus handler for dir.
func NewCorpusStore(dir string) (*CorpusStore, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".xml" {
			names = append(names, entry.Name())
		}
	}

	return &CorpusStore{
		dir:   dir,
		names: corpus.SortNames(names),
	}, nil
}

func (h *CorpusStore) Names() ([]string, error) {
	return h.names, nil
}

func (h *CorpusStore) File(name string) (corpus.File, error) {
	return ReadFile(filepath.Join(h.dir, name))
}

func (h *CorpusStore) Write(f corpus.File) error {
	return fmt.Errorf("read-only storage")
}

// ReadFile reads one annotated corpus XML file and decodes it. The file's
// Name is set from the path base.
func ReadFile(path string) (corpus.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return corpus.File{}, fmt.Errorf("IO error: %w", err)
	}

	var f corpus.File
	if err := xml.Unmarshal(data, &f); err != nil {
		return corpus.File{}, fmt.Errorf("XML decoding error: %w", err)
	}

	f.Name = filepath.Base(path)
	return f, nil
}
