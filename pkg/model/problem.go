package model

// Problem is one instance of a bus planning model ready to be handed to the solver
type Problem interface {
	// Number of buses that must appear in the summary
	BusCount() uint64
	// MathProg data section for the instance (byte-exact input for glpsol's data reader)
	ToMathProg() string
	// Builds an assignment from the indices of a selected decision variable
	Decode(indices []uint64) (Assignment, error)
	// Expected amount of variables and constraints when the report does not state them
	Estimate() (variables uint64, constraints uint64, ok bool)
	// Human-readable summary of a solved plan
	Summary(plan Plan) string
}

// SlotProblem assigns buses to time slots weighing distances and passengers
type SlotProblem struct {
	Slots           uint64
	Buses           uint64
	DistanceWeight  float64 // k_d
	PassengerWeight float64 // k_p
	Distances       []float64
	Passengers      []uint64
}

// WorkshopProblem assigns every bus to a slot of a workshop
type WorkshopProblem struct {
	Slots        uint64
	Buses        uint64
	Workshops    uint64
	Conflicts    [][]int64 // Buses x Buses, passengers shared by two buses
	Availability [][]int64 // Slots x Workshops, 1 when the workshop is open during the slot
}

func (problem SlotProblem) BusCount() uint64 {
	return problem.Buses
}

func (problem WorkshopProblem) BusCount() uint64 {
	return problem.Buses
}

func (problem SlotProblem) Estimate() (uint64, uint64, bool) {
	return 0, 0, false
}

// Estimate mirrors the size of the workshop model: one variable per bus/slot/workshop plus one
// per pair of buses and slot, linearized by three constraints each
func (problem WorkshopProblem) Estimate() (uint64, uint64, bool) {
	m, n, u := problem.Buses, problem.Slots, problem.Workshops
	pairs := m * (m - 1) / 2 // Zero buses yield zero pairs
	variables := m*n*u + pairs*n
	constraints := m + n*u + 3*pairs*n
	return variables, constraints, true
}
