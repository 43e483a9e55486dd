package glpk

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Time glpsol's output pipes may stay open once the process is gone or killed
const waitDelay = time.Second

type glpsolSolver struct {
	path    string
	locale  string
	timeout time.Duration
}

func NewGlpsolSolver(config Config) Solver {
	return &glpsolSolver{
		path:    config.GlpsolPath,
		locale:  config.Locale,
		timeout: config.Timeout,
	}
}

func (solver *glpsolSolver) Solve(ctx context.Context, modelFile, dataFile, reportFile string) error {
	if solver.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solver.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, solver.path, "-m", modelFile, "-d", dataFile, "-o", reportFile)
	// A fixed locale keeps the report labels ("Rows", "Columns", ...) in English
	cmd.Env = append(os.Environ(), "LC_ALL="+solver.locale)
	cmd.WaitDelay = waitDelay

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	started := time.Now()
	err := cmd.Run()
	log.WithFields(log.Fields{
		"solver":   solver.path,
		"model":    modelFile,
		"data":     dataFile,
		"duration": time.Since(started),
	}).Debugf("glpsol output:\n%v%v", stdOut.String(), stdErr.String())

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) || ctx.Err() != nil {
		executionErr := SolverExecutionError{
			ExitCode: -1,
			TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
			Canceled: errors.Is(ctx.Err(), context.Canceled),
			Output:   stdOut.String() + stdErr.String(),
			Err:      err,
		}
		if exitErr != nil {
			executionErr.ExitCode = exitErr.ExitCode()
		}
		return executionErr
	}

	return SolverLaunchError{Path: solver.path, Err: err}
}
