package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gridloop/slitherloop/board"
	"github.com/gridloop/slitherloop/internal/config"
	"github.com/gridloop/slitherloop/internal/logging"
	"github.com/gridloop/slitherloop/regions"
	"github.com/gridloop/slitherloop/render"
	"github.com/gridloop/slitherloop/search"
	"github.com/gridloop/slitherloop/verify"
)

var cliConfig *viper.Viper

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count solutions for a board loaded from a file or given as dimensions",
}

var countFileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Count solutions for a board loaded from a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := board.Load(args[0])
		if err != nil {
			return &exitError{code: 2, err: err}
		}

		return runCount(cmd, b, func(n int64) { fmt.Fprintf(cmd.OutOrStdout(), "# solutions: %d\n", n) })
	},
}

var countDimsCmd = &cobra.Command{
	Use:   "dims <X> <Y>",
	Short: "Count solutions for a blank board of the given dimensions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, errX := strconv.Atoi(args[0])
		y, errY := strconv.Atoi(args[1])
		if errX != nil || errY != nil {
			return &exitError{code: 2, err: fmt.Errorf("dims: %q and %q must be integers", args[0], args[1])}
		}

		b, err := board.New(x, y)
		if err != nil {
			return &exitError{code: 2, err: err}
		}

		return runCount(cmd, b, func(n int64) { fmt.Fprintln(cmd.OutOrStdout(), n) })
	},
}

func init() {
	countCmd.AddCommand(countFileCmd, countDimsCmd)
	cliConfig = config.Bind(countCmd)
}

// runCount drives a single count call: optional region stats first,
// then the search itself, streaming renders and verifying solutions as
// they're found if the relevant flags are set.
func runCount(cmd *cobra.Command, b *board.Board, report func(int64)) error {
	cfg := config.Load(cliConfig)
	logger := logging.New(cfg.LogLevel).With().Str("run_id", uuid.NewString()).Logger()

	if cfg.Stats {
		for i, comp := range regions.Components(b) {
			fmt.Fprintf(cmd.OutOrStdout(), "region %d: %d cells\n", i, len(comp))
		}
	}

	var stats search.MemoStats
	opts := search.Options{Workers: cfg.Workers, Stats: &stats}
	var verifyErr error
	if cfg.Render || cfg.Verify {
		opts.OnSolution = func(s render.Solution) {
			if cfg.Verify && verifyErr == nil {
				if err := verify.Check(b, s); err != nil {
					verifyErr = err
				}
			}
			if cfg.Render {
				_ = render.Write(cmd.OutOrStdout(), s)
			}
		}
	}

	n := search.Count(b, opts)
	if verifyErr != nil {
		return &exitError{code: 3, err: verifyErr}
	}

	logger.Debug().
		Int64("solutions", n).
		Int64("memo_hits", stats.Hits).
		Int64("memo_misses", stats.Misses).
		Msg("search complete")
	report(n)

	return nil
}
