package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/weiihann/algobench/config"
	"github.com/weiihann/algobench/report"
	"github.com/weiihann/algobench/workload"
)

// Output selects what is printed to stdout after the reports are written.
type Output int

const (
	OutputNone Output = iota
	OutputMarkdown
	OutputJSON
)

// Plan is everything a command resolved before running.
type Plan struct {
	Domain Domain
	Source workload.Source
	Config *config.Config
	Output Output
	Stdout io.Writer
}

// Execute runs the plan end to end. Reports are written only if every
// phase succeeded.
func Execute(ctx context.Context, logger *slog.Logger, p Plan) error {
	cfg := p.Config

	info, err := os.Stat(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("%w: output dir: %w", ErrSetup, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: output dir %s is not a directory", ErrSetup, cfg.OutputDir)
	}

	selfCheck, err := workload.SelfCheck(workload.Config{Seed: cfg.Seed}, cfg.SelfCheckSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.String("domain", p.Domain.Name),
		slog.Any("variants", p.Domain.Registry.Names()),
		slog.Int("trials", cfg.Trials),
	)

	driver := NewDriver(p.Domain, selfCheck, cfg.Trials, logger)

	outcome, err := driver.Run(ctx, p.Source)
	if err != nil {
		return err
	}

	if err := WriteReports(cfg.OutputDir, p.Domain, outcome); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	logger.InfoContext(ctx, "reports written",
		slog.String("speed", p.Domain.SpeedFile),
		slog.String("quality", p.Domain.QualityFile),
		slog.String("dir", cfg.OutputDir),
	)

	switch p.Output {
	case OutputMarkdown:
		if err := report.Generate(p.Stdout, Summarize(p.Domain, outcome)); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	case OutputJSON:
		if err := report.GenerateJSON(p.Stdout, Summarize(p.Domain, outcome)); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}

// WriteReports writes the speed and quality tables of the outcome. Both
// share the header and row order.
func WriteReports(dir string, d Domain, o *Outcome) error {
	speed := report.Table{Label: d.Label, Header: o.Header}
	quality := report.Table{Label: d.Label, Header: o.Header}

	for i, s := range o.Subjects {
		speed.Rows = append(speed.Rows, report.Row{Label: s.Name, Values: o.Means.TimeRow(i)})
		quality.Rows = append(quality.Rows, report.Row{Label: s.Name, Values: o.Means.QualityRow(i)})
	}

	return report.WriteFiles(dir,
		report.File{Name: d.SpeedFile, Table: speed},
		report.File{Name: d.QualityFile, Table: quality},
	)
}

// Summarize converts an outcome into the report summary form.
func Summarize(d Domain, o *Outcome) report.Summary {
	s := report.Summary{
		Domain:   d.Name,
		Quality:  d.QualityName,
		Trials:   o.Trials,
		Variants: o.Header,
		Subjects: make([]report.SubjectSummary, len(o.Subjects)),
	}

	for i, subj := range o.Subjects {
		cells := make([]report.Cell, len(o.Header))
		for v, name := range o.Header {
			cells[v] = report.Cell{
				Variant: name,
				MeanMs:  o.Means.Time(i, v),
				Quality: o.Means.Quality(i, v),
			}
		}

		s.Subjects[i] = report.SubjectSummary{
			Name:      subj.Name,
			SizeBytes: uint64(subj.Size()),
			Results:   cells,
		}
	}

	return s
}
