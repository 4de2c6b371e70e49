// Package harness verifies algorithm variants and times them over
// repeated trials.
package harness

import (
	"errors"
	"fmt"
	"time"
)

// ErrIncompleteTable indicates Finalize was called before every cell
// received its full set of trials.
var ErrIncompleteTable = errors.New("result table incomplete")

// Result is the outcome of one timed execution of one variant against one
// subject.
type Result struct {
	Elapsed time.Duration
	Quality float64
}

// Table accumulates running sums per (subject, variant) cell.
// It is written by a single goroutine and read once by Finalize.
type Table struct {
	subjects int
	variants int
	trials   int

	elapsed []time.Duration
	quality []float64
	counts  []int
}

// NewTable creates an empty table expecting trials additions per cell.
func NewTable(subjects, variants, trials int) *Table {
	cells := subjects * variants

	return &Table{
		subjects: subjects,
		variants: variants,
		trials:   trials,
		elapsed:  make([]time.Duration, cells),
		quality:  make([]float64, cells),
		counts:   make([]int, cells),
	}
}

func (t *Table) cell(subject, variant int) int {
	if subject < 0 || subject >= t.subjects || variant < 0 || variant >= t.variants {
		panic(fmt.Sprintf("harness: cell (%d, %d) outside %dx%d table",
			subject, variant, t.subjects, t.variants))
	}

	return subject*t.variants + variant
}

// Add records one trial for the cell.
func (t *Table) Add(subject, variant int, r Result) {
	i := t.cell(subject, variant)
	t.elapsed[i] += r.Elapsed
	t.quality[i] += r.Quality
	t.counts[i]++
}

// Count returns how many trials the cell has received.
func (t *Table) Count(subject, variant int) int {
	return t.counts[t.cell(subject, variant)]
}

// Finalize averages every cell. It fails with ErrIncompleteTable unless
// each cell holds exactly the expected number of trials.
func (t *Table) Finalize() (*Means, error) {
	if t.trials <= 0 {
		return nil, fmt.Errorf("%w: %d trials per cell", ErrIncompleteTable, t.trials)
	}

	m := &Means{
		subjects: t.subjects,
		variants: t.variants,
		timeMs:   make([]float64, len(t.counts)),
		quality:  make([]float64, len(t.counts)),
	}

	for i, n := range t.counts {
		if n != t.trials {
			return nil, fmt.Errorf("%w: cell (%d, %d) has %d of %d trials",
				ErrIncompleteTable, i/t.variants, i%t.variants, n, t.trials)
		}

		m.timeMs[i] = float64(t.elapsed[i]) / float64(n) / float64(time.Millisecond)
		m.quality[i] = t.quality[i] / float64(n)
	}

	return m, nil
}

// Means holds the finalized per-cell averages.
type Means struct {
	subjects int
	variants int
	timeMs   []float64
	quality  []float64
}

// Subjects returns the number of rows.
func (m *Means) Subjects() int { return m.subjects }

// Variants returns the number of columns.
func (m *Means) Variants() int { return m.variants }

// Time returns the mean elapsed time of the cell in milliseconds.
func (m *Means) Time(subject, variant int) float64 {
	return m.timeMs[subject*m.variants+variant]
}

// Quality returns the mean quality metric of the cell.
func (m *Means) Quality(subject, variant int) float64 {
	return m.quality[subject*m.variants+variant]
}

// TimeRow returns the mean times of one subject in variant order.
func (m *Means) TimeRow(subject int) []float64 {
	return row(m.timeMs, subject, m.variants)
}

// QualityRow returns the mean quality metrics of one subject in variant
// order.
func (m *Means) QualityRow(subject int) []float64 {
	return row(m.quality, subject, m.variants)
}

func row(vals []float64, subject, width int) []float64 {
	out := make([]float64, width)
	copy(out, vals[subject*width:(subject+1)*width])

	return out
}
