package cli

import "github.com/limaJavier/busplan/pkg/model"

// Variant ties an input layout to the model file solving it
type Variant struct {
	Name         string
	Binary       string
	Short        string
	DefaultModel string
	Read         func(file string) (model.Problem, error)
}

var (
	Slots = Variant{
		Name:         "slots",
		Binary:       "busslots",
		Short:        "Assign buses to time slots weighing distances and passengers",
		DefaultModel: "parte-2-1.mod",
		Read: func(file string) (model.Problem, error) {
			return model.SlotProblemFromFile(file)
		},
	}
	Workshops = Variant{
		Name:         "workshops",
		Binary:       "busworkshops",
		Short:        "Assign buses to workshop slots minimizing shared passengers",
		DefaultModel: "parte-2-2.mod",
		Read: func(file string) (model.Problem, error) {
			return model.WorkshopProblemFromFile(file)
		},
	}

	Variants = map[string]Variant{
		Slots.Name:     Slots,
		Workshops.Name: Workshops,
	}
)
