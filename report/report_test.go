package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func sampleSummary() Summary {
	return Summary{
		Domain:   "compression",
		Quality:  "Ratio",
		Trials:   10,
		Variants: []string{"lz4", "zstd_lvl1"},
		Subjects: []SubjectSummary{
			{
				Name:      "corpus.txt",
				SizeBytes: 1536,
				Results: []Cell{
					{Variant: "lz4", MeanMs: 2, Quality: 2.5},
					{Variant: "zstd_lvl1", MeanMs: 4, Quality: 3.25},
				},
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sampleSummary()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Benchmark Results (compression)",
		"Trials per subject: 10",
		"corpus.txt (1.5 KiB)",
		"| Variant | Mean Time | Ratio | Speedup |",
		"| lz4 | 2.00ms | 2.500 | 1.00x |",
		"| zstd_lvl1 | 4.00ms | 3.250 | 2.00x |",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, Summary{})
	if err == nil {
		t.Error("expected error for empty results")
	}
}

func TestGenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateJSON(&buf, sampleSummary()); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed Summary
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(parsed.Subjects) != 1 {
		t.Fatalf("expected 1 subject, got %d", len(parsed.Subjects))
	}
	if parsed.Subjects[0].Results[1].Variant != "zstd_lvl1" {
		t.Errorf("variant = %q, want zstd_lvl1", parsed.Subjects[0].Results[1].Variant)
	}
	if !strings.Contains(buf.String(), `"quality_metric": "Ratio"`) {
		t.Error("expected quality_metric field")
	}
}

func TestFindFastest(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		want  float64
	}{
		{"none", nil, 0},
		{"all zero", []Cell{{MeanMs: 0}}, 0},
		{"mixed", []Cell{{MeanMs: 3}, {MeanMs: 0}, {MeanMs: 1.5}}, 1.5},
	}

	for _, tt := range tests {
		if got := findFastest(tt.cells); got != tt.want {
			t.Errorf("%s: findFastest = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatMs(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.0µs"},
		{0.25, "250.0µs"},
		{1, "1.00ms"},
		{999, "999.00ms"},
		{1000, "1.00s"},
		{1500, "1.50s"},
		{60000, "60.00s"},
	}

	for _, tt := range tests {
		got := formatMs(tt.input)
		if got != tt.want {
			t.Errorf("formatMs(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
