package render

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/lexistat/lexistat/report"
	"github.com/lexistat/lexistat/stat"
)

// JSONRenderer writes reducer results as indented JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes v as a 4-space indented JSON document.
func (r *JSONRenderer) Render(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	_, err = r.W.Write(data)
	return err
}

// SummaryRecord is the structured twin of one SummaryTable row.
type SummaryRecord struct {
	FileName string  `json:"file_name"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	CV       string  `json:"cv"`
}

// SummaryRecords mirrors SummaryTable rows as structured records, in the
// same order with the same rounding.
func SummaryRecords(records []report.Record) []SummaryRecord {
	out := make([]SummaryRecord, 0, len(records))
	for _, r := range records {
		out = append(out, SummaryRecord{
			FileName: r.File,
			Count:    r.Summary.Count,
			Mean:     stat.Round4(r.Summary.Mean),
			StdDev:   stat.Round4(r.Summary.StdDev),
			CV:       stat.CVString(r.Summary.CV),
		})
	}
	return out
}

// PairJSONRecord is the structured twin of one PairTable row.
type PairJSONRecord struct {
	FileName     string  `json:"file_name"`
	AvgBefore    float64 `json:"avg_before_proportion"`
	StdDevBefore float64 `json:"std_dev_before"`
	CVBefore     string  `json:"cv_before"`
	AvgAfter     float64 `json:"avg_after_proportion"`
	StdDevAfter  float64 `json:"std_dev_after"`
	CVAfter      string  `json:"cv_after"`
}

// PairRecords mirrors PairTable rows as structured records.
func PairRecords(records []report.PairRecord) []PairJSONRecord {
	out := make([]PairJSONRecord, 0, len(records))
	for _, r := range records {
		out = append(out, PairJSONRecord{
			FileName:     r.File,
			AvgBefore:    stat.Round4(r.Before.Mean),
			StdDevBefore: stat.Round4(r.Before.StdDev),
			CVBefore:     stat.CVString(r.Before.CV),
			AvgAfter:     stat.Round4(r.After.Mean),
			StdDevAfter:  stat.Round4(r.After.StdDev),
			CVAfter:      stat.CVString(r.After.CV),
		})
	}
	return out
}

// PerplexityJSONRecord is the structured twin of one PerplexityTable row.
type PerplexityJSONRecord struct {
	FileName         string  `json:"file_name"`
	AvgPerplexity    float64 `json:"average_perplexity"`
	StdDevPerplexity float64 `json:"std_dev_perplexity"`
	CVPerplexity     string  `json:"cv_perplexity"`
	AvgLoss          float64 `json:"average_loss"`
	StdDevLoss       float64 `json:"std_dev_loss"`
	CVLoss           string  `json:"cv_loss"`
}

// PerplexityRecords mirrors PerplexityTable rows as structured records.
func PerplexityRecords(records []report.PerplexityRecord) []PerplexityJSONRecord {
	out := make([]PerplexityJSONRecord, 0, len(records))
	for _, r := range records {
		out = append(out, PerplexityJSONRecord{
			FileName:         r.File,
			AvgPerplexity:    stat.Round4(r.Perplexity.Mean),
			StdDevPerplexity: stat.Round4(r.Perplexity.StdDev),
			CVPerplexity:     stat.CVString(r.Perplexity.CV),
			AvgLoss:          stat.Round4(r.Loss.Mean),
			StdDevLoss:       stat.Round4(r.Loss.StdDev),
			CVLoss:           stat.CVString(r.Loss.CV),
		})
	}
	return out
}

// ProfileJSON serializes POS profile records as a nested document keyed by
// file then tag, keeping inventory order inside each file object. A plain
// map would randomize the tag order and break the cross-artifact row
// correspondence.
func ProfileJSON(records []report.ProfileRecord, inventory []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	for i, rec := range records {
		name, err := json.Marshal(rec.File)
		if err != nil {
			return nil, err
		}
		buf.WriteString("    ")
		buf.Write(name)
		buf.WriteString(": {\n")

		for j, tag := range inventory {
			s := rec.ByTag[tag]
			entry := struct {
				Mean   float64 `json:"mean"`
				StdDev float64 `json:"std_dev"`
				CV     float64 `json:"cv"`
			}{stat.Round4(s.Mean), stat.Round4(s.StdDev), stat.Round4(s.CV)}

			data, err := json.Marshal(entry)
			if err != nil {
				return nil, err
			}

			key, err := json.Marshal(tag)
			if err != nil {
				return nil, err
			}

			buf.WriteString("        ")
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(data)
			if j < len(inventory)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}

		buf.WriteString("    }")
		if i < len(records)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")
	return buf.Bytes(), nil
}
