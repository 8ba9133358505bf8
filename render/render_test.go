package render

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/lexistat/lexistat/report"
	"github.com/lexistat/lexistat/stat"
)

func sampleRecords() []report.Record {
	return []report.Record{
		{File: "en_en_1.xml", Summary: stat.Aggregate([]float64{0.2, 0.4, 0.6})},
		{File: "zh_zh_1.xml", Summary: stat.Summary{}},
	}
}

func TestSummaryTable(t *testing.T) {
	table := SummaryTable("Plural Frequency", sampleRecords())

	wantHeader := []string{"File Name", "Total Responses", "Average Plural Frequency", "Standard Deviation", "CV"}
	if !reflect.DeepEqual(table.Header, wantHeader) {
		t.Errorf("unexpected header: %v", table.Header)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	want := []string{"en_en_1.xml", "3", "0.4000", "0.1633", "40.82%"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Errorf("expected row %v, got %v", want, table.Rows[0])
	}

	wantZero := []string{"zh_zh_1.xml", "0", "0.0000", "0.0000", "0.00%"}
	if !reflect.DeepEqual(table.Rows[1], wantZero) {
		t.Errorf("expected row %v, got %v", wantZero, table.Rows[1])
	}
}

func TestPairTable(t *testing.T) {
	records := []report.PairRecord{{
		File:   "en_en_1.xml",
		Before: stat.Aggregate([]float64{0.75}),
		After:  stat.Aggregate([]float64{0.25}),
	}}

	table := PairTable(records)
	want := []string{"en_en_1.xml", "0.7500", "0.0000", "0.00%", "0.2500", "0.0000", "0.00%"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Errorf("expected row %v, got %v", want, table.Rows[0])
	}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewCSVRenderer(&buf)

	err := r.Render(Table{
		Header: []string{"File Name", "CV"},
		Rows:   [][]string{{"en_en_1.xml", "40.82%"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "File Name,CV\nen_en_1.xml,40.82%\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestSummaryRecords(t *testing.T) {
	out := SummaryRecords(sampleRecords())

	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	want := SummaryRecord{
		FileName: "en_en_1.xml",
		Count:    3,
		Mean:     0.4,
		StdDev:   0.1633,
		CV:       "40.82%",
	}
	if out[0] != want {
		t.Errorf("expected %+v, got %+v", want, out[0])
	}
}

func TestJSONRendererIndentation(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.Render(SummaryRecords(sampleRecords()[:1])); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	want := `[
    {
        "file_name": "en_en_1.xml",
        "count": 3,
        "mean": 0.4,
        "std_dev": 0.1633,
        "cv": "40.82%"
    }
]
`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestProfileJSON(t *testing.T) {
	records := []report.ProfileRecord{{
		File: "en_en.xml",
		ByTag: map[string]stat.Summary{
			"NOUN": stat.Aggregate([]float64{0.25}),
			"VERB": stat.Aggregate([]float64{0.5}),
		},
	}}

	data, err := ProfileJSON(records, []string{"NOUN", "VERB"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
    "en_en.xml": {
        "NOUN": {"mean":0.25,"std_dev":0,"cv":0},
        "VERB": {"mean":0.5,"std_dev":0,"cv":0}
    }
}
`
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestProfileJSONKeepsInventoryOrder(t *testing.T) {
	records := []report.ProfileRecord{{
		File:  "en_en.xml",
		ByTag: map[string]stat.Summary{},
	}}

	data, err := ProfileJSON(records, []string{"VERB", "NOUN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	verb := bytes.Index(data, []byte(`"VERB"`))
	noun := bytes.Index(data, []byte(`"NOUN"`))
	if verb == -1 || noun == -1 || verb > noun {
		t.Errorf("expected VERB before NOUN, got %s", data)
	}
}

func TestConsoleSummary(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.HasColor = false

	c.Summary("en_en_1.xml", "Plural Frequency", stat.Aggregate([]float64{0.2, 0.4, 0.6}))

	want := "en_en_1.xml Plural Frequency  n=3 mean=0.4000 std=0.1633 cv=40.82%\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
