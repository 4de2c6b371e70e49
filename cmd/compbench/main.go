// Package main provides compbench, which measures compression speed and
// ratio of several codecs over the files named on the command line.
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
		fmt.Fprintln(os.Stderr, "compbench:", err)
		os.Exit(bench.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var flags bench.Flags

	cmd := &cobra.Command{
		Use:   "compbench [flags] <filename> [<filename> ...]",
		Short: "Compression codec benchmark",
		Long: `Compbench verifies that every codec round-trips each input file, then
times repeated compression of every file by every codec. Mean time in
milliseconds is written to speed.csv and mean compression ratio to
compression.csv.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: at least one file is required", bench.ErrUsage)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd)
			if err != nil {
				return err
			}

			domain, err := bench.Compression()
			if err != nil {
				return err
			}

			return bench.Execute(cmd.Context(), bench.NewLogger(os.Stderr, cfg), bench.Plan{
				Domain: domain,
				Source: workload.Files(args),
				Config: cfg,
				Output: flags.Output(),
				Stdout: cmd.OutOrStdout(),
			})
		},
	}

	flags.Register(cmd)

	return cmd
}
