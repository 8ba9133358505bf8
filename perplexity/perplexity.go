package perplexity

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lexistat/lexistat/stat"
)

// Record is one precomputed model measurement for a response: the mean
// token cross-entropy and its exponential. The aggregator only consumes
// these values, it never computes them.
type Record struct {
	Index      int     `json:"index"`
	Loss       float64 `json:"loss"`
	Perplexity float64 `json:"perplexity"`
}

// MaxRecords caps how many records per file enter the statistics. The
// study generated exactly 1000 responses per merged file; any surplus is
// ignored.
const MaxRecords = 1000

// ReadRecords reads a JSON array of records from path.
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	return records, nil
}

// Reduce aggregates the loss and perplexity columns separately, over at
// most MaxRecords records.
func Reduce(records []Record) (loss, perplexity stat.Summary) {
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}

	losses := make([]float64, 0, len(records))
	perplexities := make([]float64, 0, len(records))
	for _, r := range records {
		losses = append(losses, r.Loss)
		perplexities = append(perplexities, r.Perplexity)
	}

	return stat.Aggregate(losses), stat.Aggregate(perplexities)
}
