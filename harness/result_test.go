package harness

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestTableMeans(t *testing.T) {
	table := NewTable(2, 3, 4)

	for trial := 0; trial < 4; trial++ {
		for s := 0; s < 2; s++ {
			for v := 0; v < 3; v++ {
				table.Add(s, v, Result{
					Elapsed: time.Duration((s*3+v+1)*(trial+1)) * time.Millisecond,
					Quality: float64(trial + v),
				})
			}
		}
	}

	means, err := table.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if means.Subjects() != 2 || means.Variants() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", means.Subjects(), means.Variants())
	}

	for s := 0; s < 2; s++ {
		for v := 0; v < 3; v++ {
			// (1+2+3+4)/4 = 2.5 times the cell base.
			wantTime := float64(s*3+v+1) * 2.5
			if got := means.Time(s, v); got != wantTime {
				t.Errorf("time(%d, %d) = %v, want %v", s, v, got, wantTime)
			}

			wantQuality := float64(v) + 1.5
			if got := means.Quality(s, v); got != wantQuality {
				t.Errorf("quality(%d, %d) = %v, want %v", s, v, got, wantQuality)
			}
		}
	}

	row := means.TimeRow(1)
	if len(row) != 3 || row[0] != 10 || row[2] != 15 {
		t.Errorf("time row 1 = %v, want [10 12.5 15]", row)
	}

	qrow := means.QualityRow(0)
	qrow[0] = -1
	if means.Quality(0, 0) == -1 {
		t.Error("QualityRow exposes internal storage")
	}
}

func TestTableOrderIndependent(t *testing.T) {
	const trials = 50

	rng := rand.New(rand.NewSource(5))
	results := make([]Result, trials)
	for i := range results {
		results[i] = Result{
			Elapsed: time.Duration(rng.Int63n(int64(time.Second))),
			Quality: rng.Float64() * 10,
		}
	}

	forward := NewTable(1, 1, trials)
	for _, r := range results {
		forward.Add(0, 0, r)
	}

	backward := NewTable(1, 1, trials)
	for i := len(results) - 1; i >= 0; i-- {
		backward.Add(0, 0, results[i])
	}

	a, err := forward.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	b, err := backward.Finalize()
	if err != nil {
		t.Fatal(err)
	}

	var sum time.Duration
	for _, r := range results {
		sum += r.Elapsed
	}
	want := float64(sum) / trials / float64(time.Millisecond)

	if a.Time(0, 0) != want || b.Time(0, 0) != want {
		t.Errorf("mean time = %v / %v, want %v", a.Time(0, 0), b.Time(0, 0), want)
	}
}

func TestTableIncomplete(t *testing.T) {
	table := NewTable(1, 2, 2)
	table.Add(0, 0, Result{Elapsed: time.Millisecond})
	table.Add(0, 0, Result{Elapsed: time.Millisecond})
	table.Add(0, 1, Result{Elapsed: time.Millisecond})

	if got := table.Count(0, 1); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}

	if _, err := table.Finalize(); !errors.Is(err, ErrIncompleteTable) {
		t.Errorf("err = %v, want ErrIncompleteTable", err)
	}
}

func TestTableOvercounted(t *testing.T) {
	table := NewTable(1, 1, 1)
	table.Add(0, 0, Result{})
	table.Add(0, 0, Result{})

	if _, err := table.Finalize(); !errors.Is(err, ErrIncompleteTable) {
		t.Errorf("err = %v, want ErrIncompleteTable", err)
	}
}

func TestTableZeroTrials(t *testing.T) {
	if _, err := NewTable(1, 1, 0).Finalize(); !errors.Is(err, ErrIncompleteTable) {
		t.Errorf("err = %v, want ErrIncompleteTable", err)
	}
}

func TestTableEmpty(t *testing.T) {
	means, err := NewTable(0, 3, 10).Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if means.Subjects() != 0 {
		t.Errorf("subjects = %d, want 0", means.Subjects())
	}
}

func TestTableAddOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range cell")
		}
	}()

	NewTable(1, 1, 1).Add(0, 1, Result{})
}
