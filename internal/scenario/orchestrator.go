package scenario

import (
	"context"
	"fmt"

	"github.com/statepath/spgo/internal/calculation"
	"github.com/statepath/spgo/internal/dataset"
	"github.com/statepath/spgo/internal/domain"
)

// LocationUnknown marks a household with no settled location choice; the run
// then covers every state in the dataset.
const LocationUnknown = "unknown"

// Orchestrator runs the calculation engine across the candidate state set.
type Orchestrator struct {
	Engine *calculation.CalculationEngine
	Data   *dataset.Dataset
}

// NewOrchestrator creates an orchestrator over a loaded dataset.
func NewOrchestrator(engine *calculation.CalculationEngine, data *dataset.Dataset) *Orchestrator {
	return &Orchestrator{Engine: engine, Data: data}
}

// Run produces one StateResult per candidate state, in input order for an
// explicit selection and sorted name order for an all-states run. Repeated
// calls with identical inputs return identical results.
func (o *Orchestrator) Run(ctx context.Context, inputs *domain.UserInputs) ([]domain.StateResult, error) {
	if o.Data == nil || o.Data.Len() == 0 {
		return nil, fmt.Errorf("no state dataset loaded")
	}

	candidates := o.candidateStates(inputs)
	results := make([]domain.StateResult, 0, len(candidates))
	for _, id := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sd := o.Data.Lookup(id)
		if sd == nil {
			o.Engine.Logger.Warnf("skipping unknown state %q", id)
			continue
		}
		results = append(results, o.Engine.CalculateStateResult(inputs, sd))
	}
	return results, nil
}

// candidateStates selects the states to simulate: the explicit user choice,
// or every state when the location is unknown or unspecified.
func (o *Orchestrator) candidateStates(inputs *domain.UserInputs) []string {
	if inputs.LocationCertainty == LocationUnknown || len(inputs.States) == 0 {
		return o.Data.StateNames()
	}
	return inputs.States
}
