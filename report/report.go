package report

import (
	"github.com/lexistat/lexistat/corpus"
	"github.com/lexistat/lexistat/metric"
	"github.com/lexistat/lexistat/stat"
	"github.com/lexistat/lexistat/storage"
)

// Record is one output row: a file reduced to the summary of one metric.
type Record struct {
	File    string
	Summary stat.Summary
}

// PairRecord carries the two parallel summaries of a direction-style
// metric.
type PairRecord struct {
	File   string
	Before stat.Summary
	After  stat.Summary
}

// ProfileRecord carries one summary per inventory tag for a file.
type ProfileRecord struct {
	File  string
	ByTag map[string]stat.Summary
}

// Skip reports a file that could not be processed. Skips never abort a
// batch; the reducers complete a full pass over everything they can read.
type Skip struct {
	File string
	Err  error
}

// Samples collects the per-response metric values of a file, in response
// order.
func Samples(f corpus.File, score metric.Scorer) []float64 {
	samples := make([]float64, 0, len(f.Responses))
	for _, r := range f.Responses {
		samples = append(samples, score(r))
	}
	return samples
}

// Run reduces every file of the repository with the given scorer. Records
// come back in the repository's canonical order; each file is independent,
// no cross-file combination happens. cb, if not nil, is called once per
// visited file.
func Run(repo storage.CorpusReader, score metric.Scorer, cb func(name string)) ([]Record, []Skip, error) {
	names, err := repo.Names()
	if err != nil {
		return nil, nil, err
	}

	var records []Record
	var skipped []Skip

	for _, name := range names {
		if cb != nil {
			cb(name)
		}

		f, err := repo.File(name)
		if err != nil {
			skipped = append(skipped, Skip{File: name, Err: err})
			continue
		}

		records = append(records, Record{
			File:    name,
			Summary: stat.Aggregate(Samples(f, score)),
		})
	}

	return records, skipped, nil
}

// RunPair is Run for a two-proportion scorer. The aggregator runs
// independently per proportion, producing two parallel summaries per file.
func RunPair(repo storage.CorpusReader, score metric.PairScorer, cb func(name string)) ([]PairRecord, []Skip, error) {
	names, err := repo.Names()
	if err != nil {
		return nil, nil, err
	}

	var records []PairRecord
	var skipped []Skip

	for _, name := range names {
		if cb != nil {
			cb(name)
		}

		f, err := repo.File(name)
		if err != nil {
			skipped = append(skipped, Skip{File: name, Err: err})
			continue
		}

		befores := make([]float64, 0, len(f.Responses))
		afters := make([]float64, 0, len(f.Responses))
		for _, r := range f.Responses {
			before, after := score(r)
			befores = append(befores, before)
			afters = append(afters, after)
		}

		records = append(records, PairRecord{
			File:   name,
			Before: stat.Aggregate(befores),
			After:  stat.Aggregate(afters),
		})
	}

	return records, skipped, nil
}

// RunProfile reduces every file once per inventory tag, yielding the
// relative-frequency summary of each tag.
func RunProfile(repo storage.CorpusReader, inventory []string, cb func(name string)) ([]ProfileRecord, []Skip, error) {
	names, err := repo.Names()
	if err != nil {
		return nil, nil, err
	}

	var records []ProfileRecord
	var skipped []Skip

	for _, name := range names {
		if cb != nil {
			cb(name)
		}

		f, err := repo.File(name)
		if err != nil {
			skipped = append(skipped, Skip{File: name, Err: err})
			continue
		}

		byTag := make(map[string]stat.Summary, len(inventory))
		for _, tag := range inventory {
			byTag[tag] = stat.Aggregate(Samples(f, metric.POSRelativeFrequency(tag, inventory)))
		}

		records = append(records, ProfileRecord{File: name, ByTag: byTag})
	}

	return records, skipped, nil
}
