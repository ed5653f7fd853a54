// SPDX-License-Identifier: MIT

// Package cli implements the sparsesim command tree.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsesim/internal/config"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	log    zerolog.Logger
	stderr io.Writer
}

// Execute runs the command tree with args and logs a failing command once.
func Execute(ctx context.Context, args []string) error {
	a := newApp(os.Stderr)
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("command failed")
	}
	return err
}

func newApp(stderr io.Writer) *app {
	return &app{
		cfg:    config.Default(),
		log:    zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger(),
		stderr: stderr,
	}
}

// newRootCmd builds a fresh command tree bound to a.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sparsesim",
		Short: "Sparse CSR matrices and thresholded top-k cosine similarity",
		Long: `sparsesim reads CSR matrices stored as JSON, transposes and inspects them,
and computes the rows most similar to each row of a matrix, either against
the rows of a second matrix or against the other rows of the same matrix.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newComputeCmd(a),
		newTransposeCmd(a),
		newInspectCmd(a),
		newVersionCmd(),
	)

	return root
}

// init loads the configuration and replaces the bootstrap logger.
func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(a.stderr, cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger

	a.log.Debug().Str("config", a.cfgFile).Msg("configuration loaded")
	return nil
}
