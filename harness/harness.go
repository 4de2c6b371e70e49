package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/weiihann/algobench/algo"
	"github.com/weiihann/algobench/workload"
)

// ErrTransform marks a forward transform failure during the timed phase.
var ErrTransform = errors.New("transform failed")

// TransformError identifies the variant and subject of a failed timed
// transform.
type TransformError struct {
	Variant string
	Subject string
	Err     error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s of %s by %s: %v", ErrTransform, e.Subject, e.Variant, e.Err)
}

func (e *TransformError) Unwrap() []error {
	return []error{ErrTransform, e.Err}
}

// Metric computes the quality value of one trial from the input length,
// the output length and the elapsed time.
type Metric func(srcLen, written int, elapsed time.Duration) float64

// Ratio is the uncompressed-to-compressed size ratio.
func Ratio(srcLen, written int, _ time.Duration) float64 {
	return float64(srcLen) / float64(written)
}

// Throughput is the input processed per second in MiB. Elapsed time is
// clamped to one nanosecond.
func Throughput(srcLen, _ int, elapsed time.Duration) float64 {
	elapsed = max(elapsed, time.Nanosecond)

	return float64(srcLen) / (1 << 20) / elapsed.Seconds()
}

// Runner times single executions of a variant's forward transform.
type Runner struct {
	Metric Metric
	Logger *slog.Logger
}

// NewRunner creates a Runner reporting the given quality metric.
func NewRunner(metric Metric, logger *slog.Logger) *Runner {
	return &Runner{
		Metric: metric,
		Logger: logger,
	}
}

// Run executes v.Forward once on s. dst is caller-owned scratch of at
// least v.Bound(s.Size()) bytes; only the transform call is timed.
func (r *Runner) Run(v algo.Variant, s workload.Subject, dst []byte) (Result, error) {
	start := time.Now()
	n, err := v.Forward(dst, s.Data)
	elapsed := time.Since(start)

	if err == nil && n <= 0 {
		err = algo.ErrEmptyOutput
	}
	if err != nil {
		r.Logger.Error("transform failed",
			slog.String("variant", v.Name),
			slog.String("subject", s.Name),
			slog.String("error", err.Error()),
		)

		return Result{}, &TransformError{Variant: v.Name, Subject: s.Name, Err: err}
	}

	return Result{
		Elapsed: elapsed,
		Quality: r.Metric(len(s.Data), n, elapsed),
	}, nil
}
