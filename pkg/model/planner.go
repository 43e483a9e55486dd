package model

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/limaJavier/busplan/pkg/glpk"
	log "github.com/sirupsen/logrus"
)

// Planner runs one problem through glpsol: data file, solver run, report scraping and cleanup
type Planner struct {
	solver    glpk.Solver
	modelFile string
	reportDir string
}

func NewPlanner(solver glpk.Solver, modelFile, reportDir string) *Planner {
	return &Planner{
		solver:    solver,
		modelFile: modelFile,
		reportDir: reportDir,
	}
}

// Solve writes the data file for problem, solves it and builds the plan. The report file is
// unique to the call and removed before returning, whatever the outcome
func (planner *Planner) Solve(ctx context.Context, problem Problem, dataFile string) (Plan, error) {
	//** Emit data
	if err := WriteDataFile(dataFile, problem); err != nil {
		return Plan{}, err
	}

	if workshopProblem, ok := problem.(WorkshopProblem); ok {
		if capacity := workshopProblem.Capacity(); capacity < workshopProblem.Buses {
			log.Warnf("only %d open slot/workshop cells for %d buses, the model is expected to be infeasible", capacity, workshopProblem.Buses)
		}
	}

	//** Invoke solver
	reportFile := filepath.Join(planner.reportDir, fmt.Sprintf("glpsol-%v.out", uuid.NewString()))
	defer os.Remove(reportFile) // Best effort, a leftover report does not affect the result

	if err := planner.solver.Solve(ctx, planner.modelFile, dataFile, reportFile); err != nil {
		return Plan{}, err
	}

	//** Scrape report
	report, err := glpk.ReadReport(reportFile)
	if err != nil {
		return Plan{}, err
	}
	plan := BuildPlan(problem, report)

	if workshopProblem, ok := problem.(WorkshopProblem); ok {
		for _, violation := range workshopProblem.Verify(plan) {
			log.Warn(violation)
		}
	}

	return plan, nil
}
