package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/limaJavier/busplan/pkg/glpk"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Assignment places a bus in a slot (and a workshop, zero for the slot model)
type Assignment struct {
	Bus      uint64
	Slot     uint64
	Workshop uint64
}

// Plan is what could be recovered from a solver report, missing figures are nil or empty
type Plan struct {
	Status      string
	Objective   string
	Variables   *uint64
	Constraints *uint64
	Estimated   bool // Variables and Constraints come from Problem.Estimate
	Assignments []Assignment
	Unassigned  []uint64
}

func (problem SlotProblem) Decode(indices []uint64) (Assignment, error) {
	if len(indices) != 2 {
		return Assignment{}, fmt.Errorf("expected x[bus,slot], found %d indices", len(indices))
	}
	return Assignment{Bus: indices[0], Slot: indices[1]}, nil
}

func (problem WorkshopProblem) Decode(indices []uint64) (Assignment, error) {
	if len(indices) != 3 {
		return Assignment{}, fmt.Errorf("expected x[bus,slot,workshop], found %d indices", len(indices))
	}
	return Assignment{Bus: indices[0], Slot: indices[1], Workshop: indices[2]}, nil
}

// BuildPlan turns the selected variables of a report into assignments and lists the buses left out
func BuildPlan(problem Problem, report glpk.Report) Plan {
	plan := Plan{
		Status:      report.Status,
		Objective:   report.Objective,
		Variables:   report.Columns,
		Constraints: report.Rows,
		Assignments: make([]Assignment, 0, len(report.Selected)),
	}

	if lo.FromPtr(plan.Variables) == 0 || lo.FromPtr(plan.Constraints) == 0 {
		if variables, constraints, ok := problem.Estimate(); ok {
			plan.Variables, plan.Constraints, plan.Estimated = lo.ToPtr(variables), lo.ToPtr(constraints), true
		}
	}

	for _, variable := range report.Selected {
		assignment, err := problem.Decode(variable.Indices)
		if err != nil {
			log.Warnf("ignoring decision variable %v: %v", variable.Name, err)
			continue
		}
		plan.Assignments = append(plan.Assignments, assignment)
	}

	slices.SortFunc(plan.Assignments, func(a, b Assignment) int {
		if busComparison := cmp.Compare(a.Bus, b.Bus); busComparison != 0 {
			return busComparison
		} else if slotComparison := cmp.Compare(a.Slot, b.Slot); slotComparison != 0 {
			return slotComparison
		}
		return cmp.Compare(a.Workshop, b.Workshop)
	})

	assigned := lo.SliceToMap(plan.Assignments, func(assignment Assignment) (uint64, bool) { return assignment.Bus, true })
	plan.Unassigned = lo.Filter(lo.RangeFrom(uint64(1), int(problem.BusCount())), func(bus uint64, _ int) bool {
		return !assigned[bus]
	})

	return plan
}
