package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "lexistat: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "lexistat",
		Usage:     "per-file statistics over bilingual LLM response corpora",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Commands: []*cli.Command{
			{
				Name:  "plural",
				Usage: "plural-noun frequency per file",
				Flags: append([]cli.Flag{langFlag()}, outputFlags()...),
				Action: func(c *cli.Context) error {
					return pluralCommand(c, ui)
				},
			},
			{
				Name:  "passive",
				Usage: "passive-voice sentence frequency per file",
				Flags: append([]cli.Flag{langFlag()}, outputFlags()...),
				Action: func(c *cli.Context) error {
					return passiveCommand(c, ui)
				},
			},
			{
				Name:  "distance",
				Usage: "mean dependency distance per file",
				Flags: outputFlags(),
				Action: func(c *cli.Context) error {
					return distanceCommand(c, ui)
				},
			},
			{
				Name:  "direction",
				Usage: "dependency direction proportions per file",
				Flags: outputFlags(),
				Action: func(c *cli.Context) error {
					return directionCommand(c, ui)
				},
			},
			{
				Name:  "pos",
				Usage: "POS relative-frequency profile per file",
				Flags: outputFlags(),
				Action: func(c *cli.Context) error {
					return posCommand(c, ui)
				},
			},
			{
				Name:  "ppl",
				Usage: "perplexity and loss statistics from precomputed records",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "records",
						Aliases:  []string{"r"},
						Usage:    "directory of perplexity record JSON files",
						Required: true,
					},
				}, writerFlags()...),
				Action: func(c *cli.Context) error {
					return pplCommand(c, ui)
				},
			},
			{
				Name:  "import",
				Usage: "copy a corpus directory into a SQLite file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "corpus directory to read",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "SQLite file to write",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					return importCommand(c, ui)
				},
			},
			{
				Name:  "check",
				Usage: "verify that responses are in their declared language",
				Flags: []cli.Flag{corpusFlag()},
				Action: func(c *cli.Context) error {
					return checkCommand(c, ui)
				},
			},
			{
				Name:  "query",
				Usage: "interactive per-file metric inspection",
				Flags: []cli.Flag{corpusFlag()},
				Action: func(c *cli.Context) error {
					return queryCommand(c, ui)
				},
			},
		},
	}
}

func corpusFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "corpus",
		Aliases: []string{"c"},
		Usage:   "path to a corpus directory or SQLite file",
		EnvVars: []string{"LEXISTAT_CORPUS_PATH"},
	}
}

func langFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "lang",
		Aliases:  []string{"l"},
		Usage:    "response language: en or zh",
		Required: true,
	}
}

// writerFlags are the output options shared by every table-producing
// command.
func writerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "csv",
			Usage: "write the table to this CSV file",
		},
		&cli.StringFlag{
			Name:  "json",
			Usage: "write the records to this JSON file",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "disable the progress bar",
		},
	}
}

func outputFlags() []cli.Flag {
	return append([]cli.Flag{corpusFlag()}, writerFlags()...)
}
