package bench

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/weiihann/algobench/config"
)

// Flags are the command-line settings shared by both commands. Values set
// on the command line override the config file.
type Flags struct {
	ConfigPath string
	Trials     int
	OutputDir  string
	LogLevel   string
	JSON       bool
	Summary    bool
}

// Register binds the flags to cmd and makes flag parse errors usage errors.
func (f *Flags) Register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.ConfigPath, "config", "",
		"Path to a YAML config file")
	flags.IntVar(&f.Trials, "trials", config.DefaultTrials,
		"Number of timed trials per subject and variant")
	flags.StringVar(&f.OutputDir, "output-dir", config.DefaultOutputDir,
		"Directory receiving the CSV reports")
	flags.StringVar(&f.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: debug, info, warn, error")
	flags.BoolVar(&f.JSON, "json", false,
		"Print the result summary as JSON on stdout")
	flags.BoolVar(&f.Summary, "summary", false,
		"Print the result summary as markdown on stdout")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
}

// Resolve loads the config file and applies the flags the user set.
func (f *Flags) Resolve(cmd *cobra.Command) (*config.Config, error) {
	if f.JSON && f.Summary {
		return nil, fmt.Errorf("%w: --json and --summary are mutually exclusive", ErrUsage)
	}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	flags := cmd.Flags()
	if flags.Changed("trials") {
		cfg.Trials = f.Trials
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = f.OutputDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return cfg, nil
}

// Output reports which summary the flags request.
func (f *Flags) Output() Output {
	switch {
	case f.JSON:
		return OutputJSON
	case f.Summary:
		return OutputMarkdown
	default:
		return OutputNone
	}
}

// NewLogger creates the text logger used by the commands.
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
}
