package bench

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/weiihann/algobench/algo"
	"github.com/weiihann/algobench/harness"
	"github.com/weiihann/algobench/workload"
)

// Outcome is the finalized result of a run.
type Outcome struct {
	Header   []string
	Subjects []workload.Subject
	Means    *harness.Means
	Trials   int
}

// Driver runs the verification and timing phases strictly in sequence.
type Driver struct {
	Registry  *algo.Registry
	Gate      *harness.Gate
	Runner    *harness.Runner
	SelfCheck workload.Subject
	Trials    int
	Logger    *slog.Logger
}

// NewDriver creates a Driver for the domain.
func NewDriver(
	d Domain,
	selfCheck workload.Subject,
	trials int,
	logger *slog.Logger,
) *Driver {
	logger = logger.With(slog.String("domain", d.Name))

	return &Driver{
		Registry:  d.Registry,
		Gate:      harness.NewGate(logger),
		Runner:    harness.NewRunner(d.Metric, logger),
		SelfCheck: selfCheck,
		Trials:    trials,
		Logger:    logger,
	}
}

// Run verifies the self-check subject, loads and verifies every subject
// from src, then times Trials repetitions of every (subject, variant)
// pair. Any failure aborts the run.
func (d *Driver) Run(ctx context.Context, src workload.Source) (*Outcome, error) {
	if d.Trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", ErrSetup, d.Trials)
	}

	// Step 1: Verify every variant before any user input is touched.
	if err := d.Gate.Check(ctx, d.Registry, d.SelfCheck); err != nil {
		return nil, fmt.Errorf("self-check: %w", err)
	}

	d.Logger.InfoContext(ctx, "self-check passed",
		slog.Int("variants", d.Registry.Len()),
	)

	// Step 2: Load subjects and verify each of them.
	subjects, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	scratch := make([][]byte, len(subjects))

	for i, s := range subjects {
		if err := d.Registry.CheckInput(s.Size()); err != nil {
			return nil, fmt.Errorf("%w: subject %s: %w", ErrSetup, s.Name, err)
		}

		if err := d.Gate.Check(ctx, d.Registry, s); err != nil {
			return nil, err
		}

		scratch[i] = make([]byte, d.Registry.MaxBound(s.Size()))

		d.Logger.InfoContext(ctx, "subject verified",
			slog.String("subject", s.Name),
			slog.String("size", humanize.IBytes(uint64(s.Size()))),
		)
	}

	// Step 3: Time every pair, interleaving variants within each trial.
	variants := d.Registry.List()
	table := harness.NewTable(len(subjects), len(variants), d.Trials)

	for trial := 0; trial < d.Trials; trial++ {
		for i, s := range subjects {
			for _, v := range variants {
				r, err := d.Runner.Run(v, s, scratch[i])
				if err != nil {
					return nil, err
				}

				table.Add(i, v.Index, r)
			}
		}

		d.Logger.DebugContext(ctx, "trial finished",
			slog.Int("trial", trial+1),
			slog.Int("trials", d.Trials),
		)
	}

	means, err := table.Finalize()
	if err != nil {
		return nil, err
	}

	d.Logger.InfoContext(ctx, "timing finished",
		slog.Int("subjects", len(subjects)),
		slog.Int("trials", d.Trials),
	)

	return &Outcome{
		Header:   d.Registry.Names(),
		Subjects: subjects,
		Means:    means,
		Trials:   d.Trials,
	}, nil
}
