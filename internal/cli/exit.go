package cli

import (
	"github.com/limaJavier/busplan/pkg/glpk"
	"github.com/limaJavier/busplan/pkg/model"
	"github.com/pkg/errors"
)

const (
	ExitOK = iota
	ExitFailure
	ExitUsage
	ExitInput
	ExitDataWrite
	ExitSolverLaunch
	ExitSolverExecution
	ExitReportRead
)

type usageError struct {
	Err error
}

func (err usageError) Error() string {
	return err.Err.Error()
}

func (err usageError) Unwrap() error {
	return err.Err
}

// ExitCode maps an error to the exit status of its category
func ExitCode(err error) int {
	var (
		usage      usageError
		input      model.InputError
		dataWrite  model.DataWriteError
		launch     glpk.SolverLaunchError
		execution  glpk.SolverExecutionError
		reportRead glpk.ReportReadError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usage):
		return ExitUsage
	case errors.As(err, &input):
		return ExitInput
	case errors.As(err, &dataWrite):
		return ExitDataWrite
	case errors.As(err, &launch):
		return ExitSolverLaunch
	case errors.As(err, &execution):
		return ExitSolverExecution
	case errors.As(err, &reportRead):
		return ExitReportRead
	default:
		return ExitFailure
	}
}
