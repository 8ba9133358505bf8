package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/lexistat/lexistat/lang"
	"github.com/lexistat/lexistat/report"
)

func checkCommand(c *cli.Context, ui UI) error {
	repo, closeRepo, err := openCorpus(c)
	if err != nil {
		return err
	}
	defer closeRepo()

	names, err := repo.Names()
	if err != nil {
		return err
	}

	total := 0
	var skipped []report.Skip

	for _, name := range names {
		f, err := repo.File(name)
		if err != nil {
			skipped = append(skipped, report.Skip{File: name, Err: err})
			continue
		}

		for _, m := range lang.Verify(f) {
			total++
			fmt.Fprintf(ui.Out, "✗ %s %s: declared %s, detected %s\n", name, m.Response, m.Want, m.Got)
		}
	}

	if total == 0 {
		fmt.Fprintln(ui.Out, "✓ all responses match their declared language")
	} else {
		fmt.Fprintf(ui.Out, "%d responses differ from their declared language\n", total)
	}

	reportSkipped(ui, skipped)
	return nil
}
