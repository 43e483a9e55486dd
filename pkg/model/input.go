package model

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const slotProblemLines = 4

// Largest slot, bus or workshop count; index sets are materialized in full when emitted
const maxDimension = math.MaxInt32

// Numbers are scanned as runs of digits and dots, signs and separators are ignored
var numericToken = regexp.MustCompile(`[\d.]+`)

// InputError reports an input file that cannot be turned into a problem
type InputError struct {
	File   string
	Reason string
	Err    error
}

func (err InputError) Error() string {
	message := err.Reason
	if err.File != "" {
		message = fmt.Sprintf("%v: %v", err.File, message)
	}
	if err.Err != nil {
		message = fmt.Sprintf("%v: %v", message, err.Err)
	}
	return message
}

func (err InputError) Unwrap() error {
	return err.Err
}

func SlotProblemFromFile(file string) (SlotProblem, error) {
	reader, err := os.Open(file)
	if err != nil {
		return SlotProblem{}, InputError{File: file, Reason: "cannot open input file", Err: err}
	}
	defer reader.Close()

	problem, err := ParseSlotProblem(reader)
	return problem, withFile(err, file)
}

func WorkshopProblemFromFile(file string) (WorkshopProblem, error) {
	reader, err := os.Open(file)
	if err != nil {
		return WorkshopProblem{}, InputError{File: file, Reason: "cannot open input file", Err: err}
	}
	defer reader.Close()

	problem, err := ParseWorkshopProblem(reader)
	return problem, withFile(err, file)
}

// ParseSlotProblem reads the four data lines of the slot layout: "n m", "k_d k_p", the distances and the passengers
func ParseSlotProblem(reader io.Reader) (SlotProblem, error) {
	lines, err := dataLines(reader)
	if err != nil {
		return SlotProblem{}, err
	}
	if len(lines) < slotProblemLines {
		return SlotProblem{}, InputError{Reason: fmt.Sprintf("expected %d data lines, found %d", slotProblemLines, len(lines))}
	}

	//** Dimensions
	dimensions, err := parseUints(numericToken.FindAllString(lines[0], -1), "dimensions")
	if err != nil {
		return SlotProblem{}, err
	} else if len(dimensions) != 2 {
		return SlotProblem{}, InputError{Reason: fmt.Sprintf("line 1 must hold the slot and bus counts, found %d values", len(dimensions))}
	}
	if err := checkDimensions(dimensions); err != nil {
		return SlotProblem{}, err
	}
	slots, buses := dimensions[0], dimensions[1]

	//** Weights
	weights, err := parseFloats(numericToken.FindAllString(lines[1], -1), "weights")
	if err != nil {
		return SlotProblem{}, err
	} else if len(weights) != 2 {
		return SlotProblem{}, InputError{Reason: fmt.Sprintf("line 2 must hold k_d and k_p, found %d values", len(weights))}
	}

	//** Per-bus vectors
	distances, err := parseFloats(numericToken.FindAllString(lines[2], -1), "distances")
	if err != nil {
		return SlotProblem{}, err
	}
	passengers, err := parseUints(numericToken.FindAllString(lines[3], -1), "passengers")
	if err != nil {
		return SlotProblem{}, err
	}

	if uint64(len(distances)) != buses || uint64(len(passengers)) != buses {
		return SlotProblem{}, InputError{Reason: fmt.Sprintf("inconsistent data: %d buses declared, but found %d distances and %d passenger counts", buses, len(distances), len(passengers))}
	}

	return SlotProblem{
		Slots:           slots,
		Buses:           buses,
		DistanceWeight:  weights[0],
		PassengerWeight: weights[1],
		Distances:       distances,
		Passengers:      passengers,
	}, nil
}

// ParseWorkshopProblem reads "n m u" followed by the m x m conflict matrix and the n x u availability matrix
func ParseWorkshopProblem(reader io.Reader) (WorkshopProblem, error) {
	lines, err := dataLines(reader)
	if err != nil {
		return WorkshopProblem{}, err
	}
	if len(lines) == 0 {
		return WorkshopProblem{}, InputError{Reason: "input file holds no data"}
	}

	//** Dimensions
	dimensions, err := parseIntegerRow(lines[0], "dimensions")
	if err != nil {
		return WorkshopProblem{}, err
	} else if len(dimensions) != 3 {
		return WorkshopProblem{}, InputError{Reason: fmt.Sprintf("line 1 must hold the slot, bus and workshop counts, found %d values", len(dimensions))}
	} else if lo.SomeBy(dimensions, func(dimension int64) bool { return dimension < 0 }) {
		return WorkshopProblem{}, InputError{Reason: fmt.Sprintf("dimensions must not be negative: %v", dimensions)}
	}
	slots, buses, workshops := uint64(dimensions[0]), uint64(dimensions[1]), uint64(dimensions[2])
	if err := checkDimensions([]uint64{slots, buses, workshops}); err != nil {
		return WorkshopProblem{}, err
	}

	available := uint64(len(lines))
	if required := 1 + buses + slots; buses >= available || slots >= available || available < required {
		return WorkshopProblem{}, InputError{Reason: fmt.Sprintf("expected %d data lines, found %d", 1+buses+slots, len(lines))}
	}

	//** Conflict matrix
	cursor := 1
	conflicts, err := parseMatrix(lines[cursor:cursor+int(buses)], buses, "conflict matrix")
	if err != nil {
		return WorkshopProblem{}, err
	}
	cursor += int(buses)

	//** Availability matrix
	availability, err := parseMatrix(lines[cursor:cursor+int(slots)], workshops, "availability matrix")
	if err != nil {
		return WorkshopProblem{}, err
	}

	return WorkshopProblem{
		Slots:        slots,
		Buses:        buses,
		Workshops:    workshops,
		Conflicts:    conflicts,
		Availability: availability,
	}, nil
}

func checkDimensions(dimensions []uint64) error {
	if lo.SomeBy(dimensions, func(dimension uint64) bool { return dimension > maxDimension }) {
		return InputError{Reason: fmt.Sprintf("dimensions must not exceed %d: %v", maxDimension, dimensions)}
	}
	return nil
}

// Blank lines do not count when locating data by position
func dataLines(reader io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, InputError{Reason: "cannot read input file", Err: err}
	}

	return lo.Filter(lines, func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	}), nil
}

func parseMatrix(lines []string, columns uint64, name string) ([][]int64, error) {
	matrix := make([][]int64, 0, len(lines))
	for i, line := range lines {
		row, err := parseIntegerRow(line, name)
		if err != nil {
			return nil, err
		}
		if uint64(len(row)) != columns {
			return nil, InputError{Reason: fmt.Sprintf("invalid %v: row %d has %d values, expected %d", name, i+1, len(row), columns)}
		}
		matrix = append(matrix, row)
	}
	return matrix, nil
}

func parseIntegerRow(line string, name string) ([]int64, error) {
	row := make([]int64, 0)
	for _, field := range strings.Fields(line) {
		value, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, InputError{Reason: fmt.Sprintf("invalid %v value %q", name, field), Err: err}
		}
		row = append(row, value)
	}
	return row, nil
}

func parseUints(tokens []string, name string) ([]uint64, error) {
	values := make([]uint64, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, InputError{Reason: fmt.Sprintf("invalid %v value %q", name, token), Err: err}
		}
		values = append(values, value)
	}
	return values, nil
}

func parseFloats(tokens []string, name string) ([]float64, error) {
	values := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, InputError{Reason: fmt.Sprintf("invalid %v value %q", name, token), Err: err}
		}
		values = append(values, value)
	}
	return values, nil
}

func withFile(err error, file string) error {
	if inputErr, ok := err.(InputError); ok && inputErr.File == "" {
		inputErr.File = file
		return inputErr
	}
	return err
}
