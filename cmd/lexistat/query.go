package main

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/lexistat/lexistat/corpus"
	"github.com/lexistat/lexistat/metric"
	"github.com/lexistat/lexistat/render"
	"github.com/lexistat/lexistat/report"
	"github.com/lexistat/lexistat/stat"
)

var queryMetrics = []string{"plural", "passive", "distance", "direction", "pos"}

func queryCommand(c *cli.Context, ui UI) error {
	repo, closeRepo, err := openCorpus(c)
	if err != nil {
		return err
	}
	defer closeRepo()

	names, err := repo.Names()
	if err != nil {
		return err
	}

	console := render.NewConsole(ui.Out)
	fmt.Fprintln(ui.Out, "🔑 <metric> <file>, quit to exit")

	history := []string{}

	for {
		in := prompt.Input("  📊 ", completer(names),
			prompt.OptionTitle("lexistat query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}
		history = append(history, in)

		fields := strings.Fields(in)
		if len(fields) != 2 {
			fmt.Fprintln(ui.Out, "usage: <metric> <file>")
			continue
		}

		f, err := repo.File(fields[1])
		if err != nil {
			fmt.Fprintf(ui.Out, "✗ %v\n", err)
			continue
		}

		if err := renderQuery(console, fields[0], f); err != nil {
			fmt.Fprintf(ui.Out, "✗ %v\n", err)
		}
	}
}

func renderQuery(console *render.Console, metricName string, f corpus.File) error {
	switch metricName {
	case "direction":
		befores, afters := pairSamples(f)
		console.Summary(f.Name, "Before Proportion", stat.Aggregate(befores))
		console.Summary(f.Name, "After Proportion", stat.Aggregate(afters))
		return nil

	case "pos":
		for _, tag := range metric.POSInventory {
			score := metric.POSRelativeFrequency(tag, metric.POSInventory)
			console.Summary(f.Name, tag, stat.Aggregate(report.Samples(f, score)))
		}
		return nil
	}

	// Language-dependent scorers follow the file's declared response
	// language.
	label, score, err := scorerFor(metricName, f.ResponseType)
	if err != nil {
		return err
	}

	console.Summary(f.Name, label, stat.Aggregate(report.Samples(f, score)))
	return nil
}

func pairSamples(f corpus.File) (befores, afters []float64) {
	score := metric.DependencyDirection()
	for _, r := range f.Responses {
		b, a := score(r)
		befores = append(befores, b)
		afters = append(afters, a)
	}
	return befores, afters
}

func completer(names []string) func(prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		tokens := strings.Split(befCursor, " ")
		word := in.GetWordBeforeCursor()

		if len(tokens) == 1 {
			for _, m := range queryMetrics {
				if strings.HasPrefix(m, word) {
					s = append(s, prompt.Suggest{Text: m, Description: "metric"})
				}
			}
			return s
		}

		for _, name := range names {
			if strings.HasPrefix(name, word) {
				s = append(s, prompt.Suggest{Text: name, Description: "file"})
			}
		}
		return s
	}
}
