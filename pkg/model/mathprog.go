package model

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DataWriteError reports a data file that could not be written
type DataWriteError struct {
	File string
	Err  error
}

func (err DataWriteError) Error() string {
	return fmt.Sprintf("cannot write data file %v: %v", err.File, err.Err)
}

func (err DataWriteError) Unwrap() error {
	return err.Err
}

// WriteDataFile serializes the problem into the MathProg data file consumed by glpsol
func WriteDataFile(file string, problem Problem) error {
	if err := os.WriteFile(file, []byte(problem.ToMathProg()), 0666); err != nil {
		return DataWriteError{File: file, Err: err}
	}
	return nil
}

func (problem SlotProblem) ToMathProg() string {
	var builder strings.Builder
	builder.WriteString("data;\n\n")

	fmt.Fprintf(&builder, "set BUSES := %v;\n", indexRange(problem.Buses))
	fmt.Fprintf(&builder, "set SLOTS := %v;\n\n", indexRange(problem.Slots))

	fmt.Fprintf(&builder, "param k_d := %v;\n", formatFloat(problem.DistanceWeight))
	fmt.Fprintf(&builder, "param k_p := %v;\n\n", formatFloat(problem.PassengerWeight))

	builder.WriteString("param distances :=\n")
	for i, distance := range problem.Distances {
		fmt.Fprintf(&builder, "  %d %v\n", i+1, formatFloat(distance))
	}
	builder.WriteString(";\n\n")

	builder.WriteString("param passengers :=\n")
	for i, passengers := range problem.Passengers {
		fmt.Fprintf(&builder, "  %d %d\n", i+1, passengers)
	}
	builder.WriteString(";\n\n")

	builder.WriteString("end;\n")
	return builder.String()
}

func (problem WorkshopProblem) ToMathProg() string {
	var builder strings.Builder
	builder.WriteString("data;\n\n")

	fmt.Fprintf(&builder, "set BUSES := %v;\n", indexRange(problem.Buses))
	fmt.Fprintf(&builder, "set SLOTS := %v;\n", indexRange(problem.Slots))
	fmt.Fprintf(&builder, "set WORKSHOP := %v;\n\n", indexRange(problem.Workshops))

	writeTable(&builder, "c", problem.Buses, problem.Conflicts)
	writeTable(&builder, "o", problem.Workshops, problem.Availability)

	builder.WriteString("end;\n")
	return builder.String()
}

// Tabular form: a header with the column indices followed by one "<row> <values...>" line per row
func writeTable(builder *strings.Builder, name string, columns uint64, matrix [][]int64) {
	fmt.Fprintf(builder, "param %v : %v :=\n", name, indexRange(columns))
	for i, row := range matrix {
		values := lo.Map(row, func(value int64, _ int) string { return strconv.FormatInt(value, 10) })
		fmt.Fprintf(builder, "%d %v\n", i+1, strings.Join(values, " "))
	}
	builder.WriteString(";\n\n")
}

// 1-based contiguous index domain "1 2 ... n"
func indexRange(n uint64) string {
	indices := lo.Map(lo.RangeFrom(uint64(1), int(n)), func(index uint64, _ int) string {
		return strconv.FormatUint(index, 10)
	})
	return strings.Join(indices, " ")
}

// Shortest representation that round-trips, always carrying a decimal point or an exponent (3 -> "3.0", 1e-05, 1e+16)
func formatFloat(value float64) string {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}

	magnitude := math.Abs(value)
	if magnitude != 0 && (magnitude < 1e-4 || magnitude >= 1e16) {
		return strconv.FormatFloat(value, 'e', -1, 64)
	}

	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}
