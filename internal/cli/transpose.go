// SPDX-License-Identifier: MIT
// Package cli: the transpose command.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/katalvlaran/sparsesim/internal/matrixio"
)

func newTransposeCmd(a *app) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Transpose a CSR matrix file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixio.ReadMatrix(in)
			if err != nil {
				return err
			}
			rows, cols := m.Dims()
			csr.Transpose(m)
			if out == "" {
				return matrixio.EncodeMatrix(cmd.OutOrStdout(), m)
			}
			if err := matrixio.WriteMatrix(out, m); err != nil {
				return err
			}

			a.log.Info().
				Str("in", in).
				Str("out", out).
				Int("rows", rows).
				Int("cols", cols).
				Int("nnz", m.NNZ()).
				Msg("matrix transposed")
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "input matrix (JSON)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
