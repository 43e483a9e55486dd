package glpk

import "context"

type Solver interface {
	// Runs the model against the data file; on success the printed solution is left in reportFile
	Solve(ctx context.Context, modelFile, dataFile, reportFile string) error
}
