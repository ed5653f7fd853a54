// SPDX-License-Identifier: MIT
// Package cli: the compute command.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/katalvlaran/sparsesim/internal/matrixio"
	"github.com/katalvlaran/sparsesim/similarity"
)

type computeFlags struct {
	a, b      string
	out       string
	minScore  float64
	top       int
	workers   int
	chunkSize int
	metric    string
	kernel    string
	timeout   string
}

func newComputeCmd(a *app) *cobra.Command {
	var f computeFlags

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute row similarities of one matrix or between two matrices",
		Long: `Compute scores every row of --a against every row of --b, or against the
other rows of --a when --b is omitted, and writes the matches that reach
--min-score, best first, at most --top per row (0 = all).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompute(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.a, "a", "", "source matrix (JSON)")
	cmd.Flags().StringVar(&f.b, "b", "", "target matrix (JSON); omit for self mode")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write results to this file instead of stdout")
	cmd.Flags().Float64Var(&f.minScore, "min-score", 0, "keep matches with score >= min-score")
	cmd.Flags().IntVar(&f.top, "top", 0, "keep at most this many matches per row (0 = all)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&f.chunkSize, "chunk-size", 0, "rows claimed per worker step (0 = automatic)")
	cmd.Flags().StringVar(&f.metric, "metric", "", "similarity metric: cosine or dot")
	cmd.Flags().StringVar(&f.kernel, "kernel", "", "kernel: auto, merge-join or accumulator")
	cmd.Flags().StringVar(&f.timeout, "timeout", "", "abort after this duration, keeping completed rows")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}

// applyFlags overrides the loaded engine config with explicitly set flags.
func (a *app) applyFlags(cmd *cobra.Command, f computeFlags) error {
	e := &a.cfg.Engine
	flags := cmd.Flags()
	if flags.Changed("min-score") {
		e.MinScore = f.minScore
	}
	if flags.Changed("top") {
		e.MaxResults = f.top
	}
	if flags.Changed("workers") {
		e.Workers = f.workers
	}
	if flags.Changed("chunk-size") {
		e.ChunkSize = f.chunkSize
	}
	if flags.Changed("metric") {
		e.Metric = f.metric
	}
	if flags.Changed("kernel") {
		e.Kernel = f.kernel
	}
	if flags.Changed("timeout") {
		e.TimeoutRaw = f.timeout
	}

	return a.cfg.Validate()
}

func (a *app) runCompute(cmd *cobra.Command, f computeFlags) error {
	if err := a.applyFlags(cmd, f); err != nil {
		return err
	}
	e := a.cfg.Engine

	ma, err := matrixio.ReadMatrix(f.a)
	if err != nil {
		return err
	}
	var mb *csr.Matrix
	if f.b != "" {
		if mb, err = matrixio.ReadMatrix(f.b); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	timeout, _ := e.Timeout() // validated above
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := append(e.Options(), similarity.WithLogger(a.log))
	rs, err := similarity.Compute(ctx, ma, mb, e.MinScore, e.MaxResults, opts...)
	cancelled := errors.Is(err, similarity.ErrCancelled)
	if err != nil && !cancelled {
		return err
	}

	a.log.Info().
		Str("a", f.a).
		Str("b", f.b).
		Int("rows", len(rs)).
		Int("pairs", rs.Pairs()).
		Bool("cancelled", cancelled).
		Msg("similarity computed")

	// Partial results are still written before reporting the cancellation.
	if werr := a.writeResults(cmd.OutOrStdout(), f.out, rs, cancelled); werr != nil {
		return werr
	}
	return err
}

func (a *app) writeResults(stdout io.Writer, path string, rs similarity.ResultSet, cancelled bool) error {
	if path == "" {
		return matrixio.EncodeResultSet(stdout, rs, cancelled)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating result file: %w", err)
	}
	if err := matrixio.EncodeResultSet(fh, rs, cancelled); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
