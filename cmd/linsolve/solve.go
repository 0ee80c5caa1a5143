// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linsolve/internal/sysfile"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/tolerance"
)

type solveFlags struct {
	epsilon   float64
	precision int32
	rref      bool
	jobs      int
}

// report is the outcome for one input file.
type report struct {
	path   string
	name   string
	system *linsys.System
	sol    linsys.Solution
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve the systems described by YAML files",
		Long: `Solves every file and prints the results in argument order.

File format:
  name: two lines          # optional, defaults to the file name
  epsilon: 1.0e-10         # optional
  precision: 30            # optional
  equations:
    - normal: [1, 1]
      constant: 1
    - normal: [0, 1]
      constant: 2

--epsilon and --precision override the values in the files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []linsys.Option
			if cmd.Flags().Changed("epsilon") || cmd.Flags().Changed("precision") {
				if _, err := tolerance.NewPolicy(f.epsilon, f.precision); err != nil {
					return err
				}
				if cmd.Flags().Changed("epsilon") {
					opts = append(opts, linsys.WithEpsilon(f.epsilon))
				}
				if cmd.Flags().Changed("precision") {
					opts = append(opts, linsys.WithPrecision(f.precision))
				}
			}
			opts = append(opts, linsys.WithLogger(a.logger))

			reports, err := solveAll(cmd.Context(), a.logger, args, f.jobs, opts)
			if err != nil {
				return err
			}
			for _, r := range reports {
				printReport(cmd.OutOrStdout(), r, f.rref)
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", linsys.DefaultEpsilon, "Near-zero threshold for pivots and zero rows")
	cmd.Flags().Int32Var(&f.precision, "precision", linsys.DefaultPrecision, "Decimal places kept by divisions")
	cmd.Flags().BoolVar(&f.rref, "rref", false, "Also print the reduced row-echelon form")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Files solved in parallel")

	return cmd
}

// solveAll loads and solves every path, at most jobs at a time. The first
// failure cancels the remaining work.
func solveAll(ctx context.Context, logger *zap.Logger, paths []string, jobs int, opts []linsys.Option) ([]report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}
	out := make([]report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := sysfile.Load(p)
			if err != nil {
				return err
			}
			s, err := f.System(opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			sol, err := s.Solve()
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			logger.Info("solved",
				zap.String("file", p),
				zap.Stringer("kind", sol.Kind),
				zap.Int("equations", s.Len()),
				zap.Int("dimension", s.Dimension()))
			out[i] = report{path: p, name: f.Name, system: s, sol: sol}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func printReport(w io.Writer, r report, withRREF bool) {
	fmt.Fprintf(w, "== %s (%s)\n", r.name, r.path)
	fmt.Fprintln(w, r.system)
	if withRREF {
		fmt.Fprintln(w, "Reduced:")
		for i, row := range r.sol.RREF.Rows() {
			fmt.Fprintf(w, "  %d: %s\n", i+1, row)
		}
	}
	fmt.Fprintf(w, "Result: %s\n", r.sol.Kind)
	if r.sol.Kind != linsys.NoSolution {
		fmt.Fprintln(w, r.sol)
	}
	fmt.Fprintln(w)
}
