package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/weiihann/algobench/algo"
	"github.com/weiihann/algobench/workload"
)

var (
	// ErrCorrectness marks a variant that failed verification.
	ErrCorrectness = errors.New("correctness check failed")

	// ErrMismatch indicates a round trip that did not reproduce its input.
	ErrMismatch = errors.New("round trip mismatch")

	// ErrWidth indicates a digest of the wrong size.
	ErrWidth = errors.New("unexpected digest width")
)

// GateError identifies the variant and subject that failed verification.
type GateError struct {
	Variant string
	Subject string
	Err     error
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%s: variant %s, subject %s: %v",
		ErrCorrectness, e.Variant, e.Subject, e.Err)
}

func (e *GateError) Unwrap() []error {
	return []error{ErrCorrectness, e.Err}
}

// Gate verifies that every variant of a registry behaves as advertised on
// a subject before any timing of it is trusted.
type Gate struct {
	Logger *slog.Logger
}

// NewGate creates a Gate.
func NewGate(logger *slog.Logger) *Gate {
	return &Gate{Logger: logger}
}

// Check runs every variant on s in registry order and stops at the first
// failure. Reversible variants must reproduce s byte for byte; hash
// variants must produce exactly Width bytes.
func (g *Gate) Check(ctx context.Context, reg *algo.Registry, s workload.Subject) error {
	dst := make([]byte, reg.MaxBound(s.Size()))

	var restored []byte
	if reg.Kind() == algo.KindCompression {
		restored = make([]byte, s.Size())
	}

	for _, v := range reg.List() {
		if err := check(v, s.Data, dst, restored); err != nil {
			g.Logger.ErrorContext(ctx, "correctness check failed",
				slog.String("variant", v.Name),
				slog.String("subject", s.Name),
				slog.String("error", err.Error()),
			)

			return &GateError{Variant: v.Name, Subject: s.Name, Err: err}
		}

		g.Logger.DebugContext(ctx, "variant verified",
			slog.String("variant", v.Name),
			slog.String("subject", s.Name),
			slog.String("size", humanize.IBytes(uint64(s.Size()))),
		)
	}

	return nil
}

func check(v algo.Variant, src, dst, restored []byte) error {
	n, err := v.Forward(dst, src)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	if n <= 0 {
		return fmt.Errorf("forward: %w", algo.ErrEmptyOutput)
	}

	if !v.Reversible() {
		if n != v.Width {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrWidth, n, v.Width)
		}

		return nil
	}

	m, err := v.Inverse(restored, dst[:n])
	if err != nil {
		return fmt.Errorf("inverse: %w", err)
	}
	if m != len(src) || !bytes.Equal(restored[:m], src) {
		return fmt.Errorf("%w: restored %d of %d bytes", ErrMismatch, m, len(src))
	}

	return nil
}
