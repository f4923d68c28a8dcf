package recorder

import "github.com/statepath/spgo/internal/domain"

// RunSnapshot holds everything worth keeping about one analysis run.
type RunSnapshot struct {
	HouseholdType     domain.HouseholdType
	Strategy          domain.Strategy
	HomeSize          domain.HomeSize
	AllocationPercent string
	Results           []domain.StateResult
}

// Recorder persists run history for later comparison.
type Recorder interface {
	RecordRun(snap *RunSnapshot) error
	Close() error
}
