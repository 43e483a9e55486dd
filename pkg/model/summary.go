package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const notFound = "not found"

func (problem SlotProblem) Summary(plan Plan) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Optimal objective value: %v\n", lo.Ternary(plan.Objective != "", plan.Objective, notFound))
	fmt.Fprintf(&builder, "Decision variables: %v\n", formatCount(plan.Variables))
	fmt.Fprintf(&builder, "Total constraints: %v\n", formatCount(plan.Constraints))

	builder.WriteString("\nBuses assigned to slots:\n")
	if len(plan.Assignments) == 0 {
		builder.WriteString("No bus was assigned to a slot\n")
	}
	for _, assignment := range plan.Assignments {
		fmt.Fprintf(&builder, "  - Bus %d assigned to slot %d\n", assignment.Bus, assignment.Slot)
	}

	builder.WriteString("\nUnassigned buses:\n")
	if len(plan.Unassigned) == 0 {
		builder.WriteString("All buses were assigned\n")
	}
	for _, bus := range plan.Unassigned {
		fmt.Fprintf(&builder, "  - Bus %d not assigned.\n", bus)
	}

	return builder.String()
}

func (problem WorkshopProblem) Summary(plan Plan) string {
	var builder strings.Builder

	if plan.Status != "" {
		fmt.Fprintf(&builder, "Model status: %v\n", plan.Status)
	}

	if plan.Objective != "" {
		fmt.Fprintf(&builder, "Objective (minimum impact): %v\n", plan.Objective)
	} else {
		builder.WriteString("Could not obtain an optimal solution\n")
	}

	if plan.Estimated {
		fmt.Fprintf(&builder, "Variables (estimated): %v\n", formatCount(plan.Variables))
		fmt.Fprintf(&builder, "Constraints (estimated): %v\n", formatCount(plan.Constraints))
	} else {
		fmt.Fprintf(&builder, "Variables: %v\n", formatCount(plan.Variables))
		fmt.Fprintf(&builder, "Constraints: %v\n", formatCount(plan.Constraints))
	}

	builder.WriteString("\n---------ASSIGNMENTS---------\n")
	perBus := lo.GroupBy(plan.Assignments, func(assignment Assignment) uint64 { return assignment.Bus })
	for bus := uint64(1); bus <= problem.Buses; bus++ {
		assignments, ok := perBus[bus]
		if !ok {
			fmt.Fprintf(&builder, "Error: bus %d NOT assigned. Check the parsing or the model.\n", bus)
			continue
		}
		for _, assignment := range assignments {
			fmt.Fprintf(&builder, "Bus %d assigned to slot %d of workshop %d\n", bus, assignment.Slot, assignment.Workshop)
		}
	}

	return builder.String()
}

func formatCount(count *uint64) string {
	if count == nil {
		return notFound
	}
	return fmt.Sprint(*count)
}
