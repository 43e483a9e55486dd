package cli

import (
	"fmt"
	"testing"

	"github.com/limaJavier/busplan/pkg/glpk"
	"github.com/limaJavier/busplan/pkg/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	scenarios := []struct {
		err  error
		code int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitFailure},
		{usageError{errors.New("accepts 2 arg(s)")}, ExitUsage},
		{model.InputError{Reason: "bad"}, ExitInput},
		{fmt.Errorf("reading: %w", model.InputError{Reason: "bad"}), ExitInput},
		{model.DataWriteError{File: "out.dat"}, ExitDataWrite},
		{glpk.SolverLaunchError{Path: "glpsol"}, ExitSolverLaunch},
		{errors.Wrap(glpk.SolverExecutionError{ExitCode: 1}, "solving"), ExitSolverExecution},
		{glpk.ReportReadError{File: "report.out"}, ExitReportRead},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.code, ExitCode(scenario.err), "ExitCode(%v)", scenario.err)
	}
}
