package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/limaJavier/busplan/internal/cli"
	"github.com/limaJavier/busplan/pkg/glpk"
	"github.com/limaJavier/busplan/pkg/model"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ResultType int

const (
	solved ResultType = iota
	failed
)

var resultTypes = map[ResultType]string{
	solved: "solved",
	failed: "failed",
}

type BenchmarkResult struct {
	Instance  string
	Variant   string
	Buses     uint64
	Plan      model.Plan
	Duration  time.Duration
	Result    ResultType
	Exit      int
	ErrorText string
}

func main() {
	var (
		variantName string
		outFile     string
		modelPath   string
		glpsolPath  string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:           "benchmark <instances-dir>",
		Short:         "Solve every instance of a directory and record the outcomes as CSV",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, ok := cli.Variants[variantName]
			if !ok {
				return errors.Errorf("%v is not a valid variant, allowed values are %v", variantName, lo.Keys(cli.Variants))
			}

			config := glpk.DefaultConfig(variant.DefaultModel)
			config.GlpsolPath = glpsolPath
			config.Timeout = timeout
			if modelPath != "" {
				config.ModelPath = modelPath
			}

			instances, err := getInstances(args[0])
			if err != nil {
				return err
			}

			workDir, err := os.MkdirTemp("", "busplan-benchmark-*")
			if err != nil {
				return errors.Wrap(err, "cannot create working directory")
			}
			defer os.RemoveAll(workDir)
			config.ReportDir = workDir

			results := make([]BenchmarkResult, 0, len(instances))
			for _, instance := range instances {
				log.Infof("Benchmarking instance %q with variant %q", instance, variant.Name)
				results = append(results, measure(cmd.Context(), config, variant, instance, workDir))
			}

			return toCsv(results, outFile)
		},
	}
	cmd.Flags().StringVar(&variantName, "variant", cli.Slots.Name, "Input layout of the instances: \"slots\" or \"workshops\"")
	cmd.Flags().StringVar(&outFile, "out", "benchmark_results.csv", "CSV file receiving the results")
	cmd.Flags().StringVar(&modelPath, "model", "", "MathProg model file, the variant's default when empty")
	cmd.Flags().StringVar(&glpsolPath, "glpsol", glpk.DefaultGlpsolPath, "glpsol executable")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Maximum time per instance")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func getInstances(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read instances directory")
	}

	instances := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return filepath.Join(dir, entry.Name()), !entry.IsDir()
	})
	slices.Sort(instances)
	return instances, nil
}

func measure(ctx context.Context, config glpk.Config, variant cli.Variant, instance string, workDir string) BenchmarkResult {
	result := BenchmarkResult{
		Instance: filepath.Base(instance),
		Variant:  variant.Name,
		Result:   solved,
	}

	problem, err := variant.Read(instance)
	if err != nil {
		return result.fail(err)
	}
	result.Buses = problem.BusCount()

	dataFile := filepath.Join(workDir, result.Instance+".dat")
	start := time.Now()
	plan, err := cli.Solve(ctx, config, problem, dataFile)
	result.Duration = time.Since(start)
	if err != nil {
		return result.fail(err)
	}

	result.Plan = plan
	return result
}

func (result BenchmarkResult) fail(err error) BenchmarkResult {
	log.Warnf("instance %q failed: %v", result.Instance, err)
	result.Result = failed
	result.Exit = cli.ExitCode(err)
	result.ErrorText = err.Error()
	return result
}

func toCsv(results []BenchmarkResult, outFile string) error {
	file, err := os.Create(outFile)
	if err != nil {
		return errors.Wrap(err, "cannot create CSV file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{"Instance", "Variant", "Buses", "Status", "Objective", "Constraints", "Variables", "Assigned", "Duration(ms)", "Result", "Exit", "Error"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "cannot write CSV header")
	}
	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			return errors.Wrap(err, "cannot write CSV record")
		}
	}

	writer.Flush()
	return writer.Error()
}

func toRecord(result BenchmarkResult) []string {
	count := func(value *uint64) string {
		return lo.TernaryF(value == nil, func() string { return "" }, func() string { return fmt.Sprint(*value) })
	}
	assigned := len(lo.UniqBy(result.Plan.Assignments, func(assignment model.Assignment) uint64 { return assignment.Bus }))

	return []string{
		result.Instance,
		result.Variant,
		fmt.Sprintf("%d", result.Buses),
		result.Plan.Status,
		result.Plan.Objective,
		count(result.Plan.Constraints),
		count(result.Plan.Variables),
		fmt.Sprintf("%d", assigned),
		fmt.Sprintf("%d", result.Duration.Milliseconds()),
		resultTypes[result.Result],
		fmt.Sprintf("%d", result.Exit),
		result.ErrorText,
	}
}
