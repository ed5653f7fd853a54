// SPDX-License-Identifier: MIT
// Package cli: the inspect command.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/katalvlaran/sparsesim/internal/matrixio"
)

func newInspectCmd(a *app) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print shape and sparsity statistics of a CSR matrix file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixio.ReadMatrix(in)
			if err != nil {
				return err
			}
			a.log.Debug().Str("in", in).Msg("inspecting matrix")
			return writeStats(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input matrix (JSON)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

// writeStats prints one "key: value" line per statistic.
func writeStats(w io.Writer, m *csr.Matrix) error {
	rows, cols := m.Dims()
	nnz := m.NNZ()

	var empty, zeroNorm, maxRow int
	for i, n := range csr.RowNorms(m) {
		k := m.RowNNZ(i)
		if k == 0 {
			empty++
		}
		if n == 0 {
			zeroNorm++
		}
		maxRow = max(maxRow, k)
	}
	density := 0.0
	if rows > 0 && cols > 0 {
		density = float64(nnz) / (float64(rows) * float64(cols))
	}

	_, err := fmt.Fprintf(w, "rows: %d\ncols: %d\nnnz: %d\ndensity: %.4f\nempty_rows: %d\nzero_norm_rows: %d\nmax_row_nnz: %d\n",
		rows, cols, nnz, density, empty, zeroNorm, maxRow)
	return err
}
