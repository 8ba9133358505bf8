package render

import (
	"strconv"

	"github.com/lexistat/lexistat/report"
	"github.com/lexistat/lexistat/stat"
)

// Table is the tabular form of a reducer output: a header row plus one row
// per file, already in canonical file order. The same Table feeds the CSV
// writer and the console so rows stay aligned across artifacts.
type Table struct {
	Header []string
	Rows   [][]string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// SummaryTable builds the tabular form of single-summary records. label
// names the metric column, e.g. "Plural Frequency".
func SummaryTable(label string, records []report.Record) Table {
	t := Table{
		Header: []string{"File Name", "Total Responses", "Average " + label, "Standard Deviation", "CV"},
	}

	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.File,
			strconv.Itoa(r.Summary.Count),
			formatFloat(r.Summary.Mean),
			formatFloat(r.Summary.StdDev),
			stat.CVString(r.Summary.CV),
		})
	}

	return t
}

// PairTable builds the tabular form of before/after records.
func PairTable(records []report.PairRecord) Table {
	t := Table{
		Header: []string{
			"File Name",
			"Average Before Proportion", "Std Dev Before", "CV Before",
			"Average After Proportion", "Std Dev After", "CV After",
		},
	}

	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.File,
			formatFloat(r.Before.Mean),
			formatFloat(r.Before.StdDev),
			stat.CVString(r.Before.CV),
			formatFloat(r.After.Mean),
			formatFloat(r.After.StdDev),
			stat.CVString(r.After.CV),
		})
	}

	return t
}

// PerplexityTable builds the tabular form of perplexity/loss records.
func PerplexityTable(records []report.PerplexityRecord) Table {
	t := Table{
		Header: []string{
			"File Name",
			"Average Perplexity", "Std Dev Perplexity", "CV Perplexity",
			"Average Loss", "Std Dev Loss", "CV Loss",
		},
	}

	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.File,
			formatFloat(r.Perplexity.Mean),
			formatFloat(r.Perplexity.StdDev),
			stat.CVString(r.Perplexity.CV),
			formatFloat(r.Loss.Mean),
			formatFloat(r.Loss.StdDev),
			stat.CVString(r.Loss.CV),
		})
	}

	return t
}
