// Package report renders finalized benchmark results as CSV tables and
// human-readable comparisons.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
)

// Cell holds the finalized means of one variant on one subject.
type Cell struct {
	Variant string  `json:"variant"`
	MeanMs  float64 `json:"mean_ms"`
	Quality float64 `json:"quality"`
}

// SubjectSummary lists the cells of one subject in registry order.
type SubjectSummary struct {
	Name      string `json:"name"`
	SizeBytes uint64 `json:"size_bytes"`
	Results   []Cell `json:"results"`
}

// Summary describes a whole run.
type Summary struct {
	Domain   string           `json:"domain"`
	Quality  string           `json:"quality_metric"`
	Trials   int              `json:"trials"`
	Variants []string         `json:"variants"`
	Subjects []SubjectSummary `json:"subjects"`
}

// Generate writes a markdown comparison table for the given summary.
func Generate(w io.Writer, s Summary) error {
	if len(s.Subjects) == 0 {
		return fmt.Errorf("no results to report")
	}

	// Header.
	fmt.Fprintf(w, "## Benchmark Results (%s)\n", s.Domain)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Trials per subject: %d\n", s.Trials)
	fmt.Fprintln(w)

	for _, subj := range s.Subjects {
		fastest := findFastest(subj.Results)

		fmt.Fprintf(w, "### %s (%s)\n", subj.Name, humanize.IBytes(subj.SizeBytes))
		fmt.Fprintln(w)

		// Table header.
		fmt.Fprintf(w, "| Variant | Mean Time | %s | Speedup |\n", s.Quality)
		fmt.Fprintln(w, "|---------|-----------|--------|---------|")

		for _, c := range subj.Results {
			speedup := 1.0
			if fastest > 0 && c.MeanMs > 0 {
				speedup = c.MeanMs / fastest
			}

			fmt.Fprintf(w, "| %s | %s | %.3f | %.2fx |\n",
				c.Variant,
				formatMs(c.MeanMs),
				c.Quality,
				speedup,
			)
		}

		fmt.Fprintln(w)
	}

	return nil
}

// GenerateJSON writes the summary as JSON to w.
func GenerateJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func findFastest(cells []Cell) float64 {
	fastest := math.Inf(1)
	for _, c := range cells {
		if c.MeanMs > 0 && c.MeanMs < fastest {
			fastest = c.MeanMs
		}
	}

	if math.IsInf(fastest, 1) {
		return 0
	}

	return fastest
}

func formatMs(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.1fµs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.2fms", ms)
	default:
		return fmt.Sprintf("%.2fs", ms/1000)
	}
}
