package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Capacity is the number of open (slot, workshop) cells, each of them can host a single bus
func (problem WorkshopProblem) Capacity() uint64 {
	return uint64(lo.SumBy(problem.Availability, func(row []int64) int {
		return lo.CountBy(row, func(value int64) bool { return value > 0 })
	}))
}

// Verify lists the ways a plan breaks the workshop model: buses placed more than once, closed cells and shared cells
func (problem WorkshopProblem) Verify(plan Plan) []string {
	violations := make([]string, 0)

	perBus := lo.CountValuesBy(plan.Assignments, func(assignment Assignment) uint64 { return assignment.Bus })
	for bus := uint64(1); bus <= problem.Buses; bus++ {
		if perBus[bus] > 1 {
			violations = append(violations, fmt.Sprintf("bus %d is assigned %d times", bus, perBus[bus]))
		}
	}

	perCell := lo.CountValuesBy(plan.Assignments, func(assignment Assignment) [2]uint64 {
		return [2]uint64{assignment.Slot, assignment.Workshop}
	})
	reported := make(map[[2]uint64]bool)
	for _, assignment := range plan.Assignments {
		cell := [2]uint64{assignment.Slot, assignment.Workshop}
		if !problem.isOpen(assignment.Slot, assignment.Workshop) {
			violations = append(violations, fmt.Sprintf("bus %d uses slot %d of workshop %d, which is not available", assignment.Bus, assignment.Slot, assignment.Workshop))
		}
		if perCell[cell] > 1 && !reported[cell] {
			reported[cell] = true
			violations = append(violations, fmt.Sprintf("slot %d of workshop %d hosts %d buses", cell[0], cell[1], perCell[cell]))
		}
	}

	return violations
}

func (problem WorkshopProblem) isOpen(slot, workshop uint64) bool {
	if slot == 0 || workshop == 0 || slot > uint64(len(problem.Availability)) {
		return false
	}
	row := problem.Availability[slot-1]
	return workshop <= uint64(len(row)) && row[workshop-1] > 0
}
