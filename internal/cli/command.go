package cli

import (
	"context"
	"fmt"

	"github.com/limaJavier/busplan/pkg/glpk"
	"github.com/limaJavier/busplan/pkg/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewCommand builds "<binary> <input-file> <output-data-file>" for a variant
func NewCommand(variant Variant) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%v <input-file> <output-data-file>", variant.Binary),
		Short: variant.Short,
		Long: fmt.Sprintf(`%v.

The input file is translated into a MathProg data file written to <output-data-file>,
solved by glpsol against the model file and the optimal assignment is printed.`, variant.Short),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.resolve(cmd, variant)
			if err != nil {
				return err
			}

			problem, err := variant.Read(args[0])
			if err != nil {
				return err
			}

			plan, err := Solve(cmd.Context(), config, problem, args[1])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), problem.Summary(plan))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	opts.bind(cmd, variant)

	return cmd
}

// Solve runs problem through glpsol as configured
func Solve(ctx context.Context, config glpk.Config, problem model.Problem, dataFile string) (model.Plan, error) {
	solver := glpk.NewGlpsolSolver(config)
	planner := model.NewPlanner(solver, config.ModelPath, config.ReportDir)
	return planner.Solve(ctx, problem, dataFile)
}

// Execute runs cmd and returns the process exit status
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var usage usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n%v", usage.Err, cmd.UsageString())
		return ExitUsage
	}

	log.Error(err)
	return ExitCode(err)
}

func setupLogging(verbose bool) {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
