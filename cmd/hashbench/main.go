// Package main provides hashbench, which measures hashing speed and
// throughput over a range of synthetic input sizes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weiihann/algobench/bench"
	"github.com/weiihann/algobench/workload"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hashbench:", err)
		os.Exit(bench.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var flags bench.Flags

	cmd := &cobra.Command{
		Use:   "hashbench [flags] <rangeStart> <rangeUpperBound> <step>",
		Short: "Hash function benchmark",
		Long: `Hashbench generates pseudo-random inputs of sizes rangeStart,
rangeStart+step, ... up to rangeUpperBound and times every hash function on
each of them. Mean time in milliseconds is written to hash_speed.csv and
mean throughput in MiB/s to hash_throughput.csv.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("%w: expected 3 arguments, got %d", bench.ErrUsage, len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd)
			if err != nil {
				return err
			}

			sizes, err := workload.ParseRange(args, cfg.Seed)
			if err != nil {
				return fmt.Errorf("%w: %w", bench.ErrSetup, err)
			}

			domain, err := bench.Hashing()
			if err != nil {
				return err
			}

			return bench.Execute(cmd.Context(), bench.NewLogger(os.Stderr, cfg), bench.Plan{
				Domain: domain,
				Source: sizes,
				Config: cfg,
				Output: flags.Output(),
				Stdout: cmd.OutOrStdout(),
			})
		},
	}

	flags.Register(cmd)

	return cmd
}
