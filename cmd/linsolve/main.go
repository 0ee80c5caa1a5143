// SPDX-License-Identifier: MIT

// Command linsolve solves linear systems described in YAML files.
//
//	linsolve solve testdata/*.yaml --rref -v
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the global flags and the logger shared by subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "linsolve",
		Short: "Exact-decimal linear system solver",
		Long: `linsolve reduces systems of linear equations to reduced row-echelon form
and classifies them: a unique point, no solution, or an affine family of
solutions written in terms of free parameters t_1, t_2, ...

Coefficients are exact decimals; only divisions round, to --precision places.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log reduction steps (row swaps, pivotless columns)")

	root.AddCommand(newSolveCmd(a))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
