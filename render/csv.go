package render

import (
	"encoding/csv"
	"io"
)

// CSVRenderer writes a Table as CSV to a writer.
type CSVRenderer struct {
	W io.Writer
}

// NewCSVRenderer creates a CSVRenderer writing to w.
func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{W: w}
}

// Render writes the header row followed by all data rows.
func (r *CSVRenderer) Render(t Table) error {
	w := csv.NewWriter(r.W)

	if err := w.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
