package glpk

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Values above the threshold count as 1 under the solver's floating-point tolerance
const SelectionThreshold = 0.99

const (
	decisionPrefix   = "x"
	objectiveMarker  = "Objective:"
	tableStartMarker = "Column instances:"
	separatorMarker  = "---"
)

var (
	statusPattern    = regexp.MustCompile(`^Status:\s+(.+)$`)
	rowsPattern      = regexp.MustCompile(`\bRows:?\s+(\d+)`)
	columnsPattern   = regexp.MustCompile(`\bColumns:?\s+(\d+)`)
	numberPattern    = regexp.MustCompile(`^[-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`)
	columnRowPattern = regexp.MustCompile(`^\d+\s+` + decisionPrefix + `\[[^\]]*\]\s+\*\s+`)
	variablePattern  = regexp.MustCompile(`^` + decisionPrefix + `\[([^\]]*)\]$`)
)

// Variable is a decision variable reported with a value above SelectionThreshold
type Variable struct {
	Name    string
	Indices []uint64
	Value   float64
}

// Report holds what could be scraped from a glpsol printed solution, absent figures stay empty or nil
type Report struct {
	Status    string
	Objective string
	Rows      *uint64
	Columns   *uint64
	Selected  []Variable
}

type scanState int

const (
	outsideTable scanState = iota
	insideTable
)

// ReadReport parses the report glpsol wrote to file
func ReadReport(file string) (Report, error) {
	reader, err := os.Open(file)
	if err != nil {
		return Report{}, ReportReadError{File: file, Err: err}
	}
	defer reader.Close()

	report, err := ParseReport(reader)
	if err != nil {
		return Report{}, ReportReadError{File: file, Err: err}
	}
	return report, nil
}

// ParseReport scans a printed solution line by line. Header figures are matched wherever they appear;
// decision variables are taken from a "Column instances:" section (closed by a dash separator) or from
// any line shaped like a glpsol column row
func ParseReport(reader io.Reader) (Report, error) {
	report := Report{Selected: make([]Variable, 0)}
	state := outsideTable

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		//** Header figures
		if match := statusPattern.FindStringSubmatch(line); match != nil {
			report.Status = strings.TrimSpace(match[1])
		}
		if strings.HasPrefix(line, objectiveMarker) {
			if objective, ok := parseObjective(line); ok {
				report.Objective = objective
			}
		}
		if rows, ok := parseCount(rowsPattern, line); ok && !strings.HasPrefix(line, "Column") {
			report.Rows = lo.ToPtr(rows)
		}
		if columns, ok := parseCount(columnsPattern, line); ok {
			report.Columns = lo.ToPtr(columns)
		}

		//** Variable table
		if strings.HasPrefix(line, tableStartMarker) {
			state = insideTable
			continue
		}
		if state == insideTable && strings.HasPrefix(line, separatorMarker) {
			state = outsideTable
			continue
		}

		if state == insideTable || columnRowPattern.MatchString(line) {
			if variable, ok := parseSelected(line); ok {
				report.Selected = append(report.Selected, variable)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Report{}, errors.Wrap(err, "cannot scan report")
	}

	return report, nil
}

func parseCount(pattern *regexp.Regexp, line string) (uint64, bool) {
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}
	count, err := strconv.ParseUint(match[1], 10, 64)
	return count, err == nil
}

// Text after the last '=': its leading number when there is one, the trimmed text otherwise
func parseObjective(line string) (string, bool) {
	separator := strings.LastIndex(line, "=")
	if separator < 0 {
		return "", false
	}

	remainder := strings.TrimSpace(line[separator+1:])
	if number := numberPattern.FindString(remainder); number != "" {
		return number, true
	}
	return remainder, remainder != ""
}

// "<no> x[i,j(,k)] * <value> ..." is selected when the fourth field exceeds SelectionThreshold
func parseSelected(line string) (Variable, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 || !strings.HasPrefix(fields[1], decisionPrefix) {
		return Variable{}, false
	}

	value, err := strconv.ParseFloat(fields[3], 64)
	if err != nil || !(value > SelectionThreshold) { // NaN is never selected
		return Variable{}, false
	}

	indices, ok := parseIndices(fields[1])
	if !ok {
		return Variable{}, false
	}

	return Variable{Name: fields[1], Indices: indices, Value: value}, true
}

func parseIndices(name string) ([]uint64, bool) {
	match := variablePattern.FindStringSubmatch(name)
	if match == nil {
		return nil, false
	}

	parts := strings.Split(match[1], ",")
	indices := make([]uint64, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, false
		}
		indices = append(indices, index)
	}
	return indices, true
}
