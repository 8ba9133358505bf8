package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/lexistat/lexistat/storage/filesystem"
	"github.com/lexistat/lexistat/storage/sqlite/zombiezen"
)

func importCommand(c *cli.Context, ui UI) error {
	from, to := c.String("from"), c.String("to")

	src, err := filesystem.NewCorpusStore(from)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(to)
	if err != nil {
		return err
	}
	defer pool.Close()

	dst := zombiezen.NewCorpusStore(pool)

	names, err := src.Names()
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading corpus files from %s...\n", from)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(names))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, name := range names {
		f, err := src.File(name)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read file %s: %w", name, err)
		}

		if err := dst.Write(f); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write file %s: %w", name, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d files from %s to %s\n", count, from, to)
	return nil
}
