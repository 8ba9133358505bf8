package report

import (
	"os"
	"path/filepath"

	"github.com/lexistat/lexistat/corpus"
	"github.com/lexistat/lexistat/perplexity"
	"github.com/lexistat/lexistat/stat"
)

// PerplexityRecord carries the loss and perplexity summaries of one record
// file.
type PerplexityRecord struct {
	File       string
	Loss       stat.Summary
	Perplexity stat.Summary
}

// RunPerplexity reduces every JSON record file in dir, in canonical name
// order. Unreadable files are skipped and reported, like Run does for
// corpus files.
func RunPerplexity(dir string, cb func(name string)) ([]PerplexityRecord, []Skip, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var names []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".json" {
			names = append(names, entry.Name())
		}
	}
	names = corpus.SortNames(names)

	var records []PerplexityRecord
	var skipped []Skip

	for _, name := range names {
		if cb != nil {
			cb(name)
		}

		recs, err := perplexity.ReadRecords(filepath.Join(dir, name))
		if err != nil {
			skipped = append(skipped, Skip{File: name, Err: err})
			continue
		}

		loss, ppl := perplexity.Reduce(recs)
		records = append(records, PerplexityRecord{File: name, Loss: loss, Perplexity: ppl})
	}

	return records, skipped, nil
}
