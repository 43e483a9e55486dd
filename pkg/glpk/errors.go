package glpk

import (
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// SolverLaunchError reports a solver executable that could not be started
type SolverLaunchError struct {
	Path string
	Err  error
}

func (err SolverLaunchError) Error() string {
	if err.NotFound() {
		return fmt.Sprintf("solver executable %q was not found, is GLPK installed and in PATH?", err.Path)
	}
	return fmt.Sprintf("cannot launch solver %q: %v", err.Path, err.Err)
}

func (err SolverLaunchError) NotFound() bool {
	return errors.Is(err.Err, exec.ErrNotFound) || errors.Is(err.Err, fs.ErrNotExist)
}

func (err SolverLaunchError) Unwrap() error {
	return err.Err
}

// SolverExecutionError reports a solver run that did not finish successfully
type SolverExecutionError struct {
	ExitCode int
	TimedOut bool
	Canceled bool
	Output   string // Captured stdout followed by stderr
	Err      error
}

func (err SolverExecutionError) Error() string {
	var message string
	switch {
	case err.TimedOut:
		message = fmt.Sprintf("solver did not finish in time: %v", err.Err)
	case err.Canceled:
		message = fmt.Sprintf("solver run was cancelled: %v", err.Err)
	default:
		message = fmt.Sprintf("solver exited with status %d, the problem may be infeasible or unbounded: %v", err.ExitCode, err.Err)
	}

	if output := strings.TrimSpace(err.Output); output != "" {
		message = fmt.Sprintf("%v : %v", message, output)
	}
	return message
}

func (err SolverExecutionError) Unwrap() error {
	return err.Err
}

// ReportReadError reports a solver report that is missing or unreadable
type ReportReadError struct {
	File string
	Err  error
}

func (err ReportReadError) Error() string {
	return fmt.Sprintf("cannot read solver report %v: %v", err.File, err.Err)
}

func (err ReportReadError) Unwrap() error {
	return err.Err
}
