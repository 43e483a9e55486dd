package glpk

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Script standing in for glpsol: it writes its arguments and locale into the -o file
const echoGlpsol = `
args="$*"
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then report="$2"; fi
  shift
done
printf 'args %s\nlocale %s\n' "$args" "$LC_ALL" > "$report"
`

func writeFakeGlpsol(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake glpsol is a shell script")
	}

	path := filepath.Join(t.TempDir(), "glpsol")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestGlpsolArgumentsAndLocale(t *testing.T) {
	// Arrange
	t.Setenv("LC_ALL", "es_ES.UTF-8")
	config := DefaultConfig("model.mod")
	config.GlpsolPath = writeFakeGlpsol(t, echoGlpsol)
	solver := NewGlpsolSolver(config)
	reportFile := filepath.Join(t.TempDir(), "report.out")

	// Act
	err := solver.Solve(context.Background(), "model.mod", "data.dat", reportFile)

	// Assert
	require.NoError(t, err)
	report, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Equal(t, "args -m model.mod -d data.dat -o "+reportFile+"\nlocale C\n", string(report))
}

func TestGlpsolNonZeroExit(t *testing.T) {
	config := DefaultConfig("model.mod")
	config.GlpsolPath = writeFakeGlpsol(t, "echo 'PROBLEM HAS NO PRIMAL FEASIBLE SOLUTION'\necho 'model error' >&2\nexit 3\n")

	err := NewGlpsolSolver(config).Solve(context.Background(), "model.mod", "data.dat", "report.out")

	var executionErr SolverExecutionError
	require.True(t, errors.As(err, &executionErr), "expected an execution error, got %v", err)
	assert.Equal(t, 3, executionErr.ExitCode)
	assert.False(t, executionErr.TimedOut)
	assert.Contains(t, executionErr.Output, "PROBLEM HAS NO PRIMAL FEASIBLE SOLUTION")
	assert.Contains(t, executionErr.Output, "model error")
	assert.Contains(t, err.Error(), "infeasible or unbounded")
}

func TestGlpsolTimeout(t *testing.T) {
	config := DefaultConfig("model.mod")
	config.GlpsolPath = writeFakeGlpsol(t, "exec sleep 10\n")
	config.Timeout = 100 * time.Millisecond

	started := time.Now()
	err := NewGlpsolSolver(config).Solve(context.Background(), "model.mod", "data.dat", "report.out")

	var executionErr SolverExecutionError
	require.True(t, errors.As(err, &executionErr), "expected an execution error, got %v", err)
	assert.True(t, executionErr.TimedOut)
	assert.Less(t, time.Since(started), 5*time.Second)
}

func TestGlpsolCanceled(t *testing.T) {
	config := DefaultConfig("model.mod")
	config.GlpsolPath = writeFakeGlpsol(t, "exec sleep 10\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(100*time.Millisecond, cancel)

	err := NewGlpsolSolver(config).Solve(ctx, "model.mod", "data.dat", "report.out")

	var executionErr SolverExecutionError
	require.True(t, errors.As(err, &executionErr), "expected an execution error, got %v", err)
	assert.True(t, executionErr.Canceled)
	assert.False(t, executionErr.TimedOut)
	assert.Contains(t, err.Error(), "cancelled")
	assert.NotContains(t, err.Error(), "infeasible")
}

func TestGlpsolTimeoutWithOpenOutput(t *testing.T) {
	config := DefaultConfig("model.mod")
	// The background sleep inherits stdout and outlives the killed script
	config.GlpsolPath = writeFakeGlpsol(t, "sleep 10 &\nexec sleep 10\n")
	config.Timeout = 100 * time.Millisecond

	started := time.Now()
	err := NewGlpsolSolver(config).Solve(context.Background(), "model.mod", "data.dat", "report.out")

	var executionErr SolverExecutionError
	require.True(t, errors.As(err, &executionErr), "expected an execution error, got %v", err)
	assert.True(t, executionErr.TimedOut)
	assert.Less(t, time.Since(started), 5*time.Second)
}

func TestGlpsolNotFound(t *testing.T) {
	scenarios := []string{
		"glpsol-that-does-not-exist",
		filepath.Join(t.TempDir(), "missing", "glpsol"),
	}

	for _, path := range scenarios {
		config := DefaultConfig("model.mod")
		config.GlpsolPath = path

		err := NewGlpsolSolver(config).Solve(context.Background(), "model.mod", "data.dat", "report.out")

		var launchErr SolverLaunchError
		require.True(t, errors.As(err, &launchErr), "expected a launch error, got %v", err)
		assert.True(t, launchErr.NotFound())
		assert.True(t, strings.Contains(err.Error(), "was not found"))
		var executionErr SolverExecutionError
		assert.False(t, errors.As(err, &executionErr))
	}
}

func TestGlpsolNotExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced")
	}
	path := filepath.Join(t.TempDir(), "glpsol")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0644))
	config := DefaultConfig("model.mod")
	config.GlpsolPath = path

	err := NewGlpsolSolver(config).Solve(context.Background(), "model.mod", "data.dat", "report.out")

	var launchErr SolverLaunchError
	require.True(t, errors.As(err, &launchErr), "expected a launch error, got %v", err)
	assert.False(t, launchErr.NotFound())
}
