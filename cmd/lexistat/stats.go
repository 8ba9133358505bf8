package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/lexistat/lexistat/corpus"
	"github.com/lexistat/lexistat/metric"
	"github.com/lexistat/lexistat/render"
	"github.com/lexistat/lexistat/report"
	"github.com/lexistat/lexistat/storage"
	"github.com/lexistat/lexistat/storage/filesystem"
	"github.com/lexistat/lexistat/storage/sqlite/zombiezen"
)

// openCorpus resolves the --corpus flag to a repository: a SQLite store
// for .db paths, a filesystem store otherwise. The returned func releases
// the repository.
func openCorpus(c *cli.Context) (storage.CorpusReader, func() error, error) {
	path := c.String("corpus")
	if path == "" {
		return nil, nil, errors.New("no corpus given (--corpus or LEXISTAT_CORPUS_PATH)")
	}

	if filepath.Ext(path) == ".db" {
		pool, err := zombiezen.NewPool(path)
		if err != nil {
			return nil, nil, err
		}
		return zombiezen.NewCorpusStore(pool), pool.Close, nil
	}

	store, err := filesystem.NewCorpusStore(path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() error { return nil }, nil
}

// scorerFor returns the column label and scorer of a metric for a
// response language.
func scorerFor(name, lang string) (string, metric.Scorer, error) {
	switch name {
	case "plural":
		switch lang {
		case "en":
			return "Plural Frequency", metric.PluralNounFrequency(metric.EnglishNounTags()), nil
		case "zh":
			return "Plural Frequency", metric.LexicalPluralFrequency(metric.ChinesePluralLexicon()), nil
		}
		return "", nil, fmt.Errorf("unsupported language: %s", lang)

	case "passive":
		switch lang {
		case "en":
			return "Passive Frequency", metric.PassiveSequenceFrequency(metric.PassiveAuxPos, metric.PassiveParticipleTag), nil
		case "zh":
			return "Passive Frequency", metric.PassiveMarkerFrequency(metric.PassiveMarker), nil
		}
		return "", nil, fmt.Errorf("unsupported language: %s", lang)

	case "distance":
		return "Dependency Distance", metric.DependencyDistance(), nil
	}

	return "", nil, fmt.Errorf("unknown metric: %s", name)
}

func pluralCommand(c *cli.Context, ui UI) error {
	label, score, err := scorerFor("plural", c.String("lang"))
	if err != nil {
		return err
	}
	return runSummary(c, ui, label, score)
}

func passiveCommand(c *cli.Context, ui UI) error {
	label, score, err := scorerFor("passive", c.String("lang"))
	if err != nil {
		return err
	}
	return runSummary(c, ui, label, score)
}

func distanceCommand(c *cli.Context, ui UI) error {
	label, score, err := scorerFor("distance", "")
	if err != nil {
		return err
	}
	return runSummary(c, ui, label, score)
}

func runSummary(c *cli.Context, ui UI, label string, score metric.Scorer) error {
	repo, closeRepo, err := openCorpus(c)
	if err != nil {
		return err
	}
	defer closeRepo()

	names, err := repo.Names()
	if err != nil {
		return err
	}
	warnUnrecognized(ui, names)

	bar := startBar(c, len(names))
	records, skipped, err := report.Run(repo, score, func(string) { incr(bar) })
	stopBar(bar)
	if err != nil {
		return err
	}

	if err := writeOutputs(c, ui, render.SummaryTable(label, records), render.SummaryRecords(records)); err != nil {
		return err
	}

	reportSkipped(ui, skipped)
	return nil
}

func directionCommand(c *cli.Context, ui UI) error {
	repo, closeRepo, err := openCorpus(c)
	if err != nil {
		return err
	}
	defer closeRepo()

	names, err := repo.Names()
	if err != nil {
		return err
	}
	warnUnrecognized(ui, names)

	bar := startBar(c, len(names))
	records, skipped, err := report.RunPair(repo, metric.DependencyDirection(), func(string) { incr(bar) })
	stopBar(bar)
	if err != nil {
		return err
	}

	if err := writeOutputs(c, ui, render.PairTable(records), render.PairRecords(records)); err != nil {
		return err
	}

	reportSkipped(ui, skipped)
	return nil
}

func posCommand(c *cli.Context, ui UI) error {
	repo, closeRepo, err := openCorpus(c)
	if err != nil {
		return err
	}
	defer closeRepo()

	names, err := repo.Names()
	if err != nil {
		return err
	}
	warnUnrecognized(ui, names)

	bar := startBar(c, len(names))
	records, skipped, err := report.RunProfile(repo, metric.POSInventory, func(string) { incr(bar) })
	stopBar(bar)
	if err != nil {
		return err
	}

	data, err := render.ProfileJSON(records, metric.POSInventory)
	if err != nil {
		return err
	}

	if path := c.String("json"); path != "" {
		if err := writeFile(path, data); err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "Results saved to %s\n", path)
	} else {
		_, _ = ui.Out.Write(data)
	}

	reportSkipped(ui, skipped)
	return nil
}

func pplCommand(c *cli.Context, ui UI) error {
	records, skipped, err := report.RunPerplexity(c.String("records"), nil)
	if err != nil {
		return err
	}

	if err := writeOutputs(c, ui, render.PerplexityTable(records), render.PerplexityRecords(records)); err != nil {
		return err
	}

	reportSkipped(ui, skipped)
	return nil
}

// writeOutputs writes the CSV and/or JSON artifact of one reducer run.
// Without an output flag the table goes to stdout.
func writeOutputs(c *cli.Context, ui UI, t render.Table, records interface{}) error {
	wrote := false

	if path := c.String("csv"); path != "" {
		if err := writeCSVFile(path, t); err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "Results saved to %s\n", path)
		wrote = true
	}

	if path := c.String("json"); path != "" {
		if err := writeJSONFile(path, records); err != nil {
			return err
		}
		fmt.Fprintf(ui.Out, "Results saved to %s\n", path)
		wrote = true
	}

	if !wrote {
		return render.NewCSVRenderer(ui.Out).Render(t)
	}
	return nil
}

func writeCSVFile(path string, t render.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.NewCSVRenderer(f).Render(t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSONFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.NewJSONRenderer(f).Render(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func warnUnrecognized(ui UI, names []string) {
	for _, name := range names {
		if _, ok := corpus.ParseKey(name); !ok {
			fmt.Fprintf(ui.Err, "lexistat: warning: %s does not match the category naming scheme, sorted last\n", name)
		}
	}
}

func reportSkipped(ui UI, skipped []report.Skip) {
	for _, s := range skipped {
		fmt.Fprintf(ui.Err, "lexistat: skipped %s: %v\n", s.File, s.Err)
	}
}

func startBar(c *cli.Context, total int) *uiprogress.Bar {
	if c.Bool("no-progress") || total == 0 {
		return nil
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	return bar
}

func incr(bar *uiprogress.Bar) {
	if bar != nil {
		bar.Incr()
	}
}

func stopBar(bar *uiprogress.Bar) {
	if bar != nil {
		uiprogress.Stop()
	}
}
