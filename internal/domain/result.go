package domain

import "github.com/shopspring/decimal"

// Tier is the discrete viability classification for a state.
type Tier string

const (
	TierVeryViable       Tier = "Very viable and stable"
	TierViable           Tier = "Viable"
	TierExtremeCare      Tier = "Viable with extreme care"
	TierHigherAllocation Tier = "Viable with a higher % allocated"
	TierRentingOnly      Tier = "Viable only when renting"
	TierNoPath           Tier = "No viable path"
)

// BaseScore returns the fixed per-tier base used by the 0-10 viability rating.
func (t Tier) BaseScore() decimal.Decimal {
	switch t {
	case TierVeryViable:
		return decimal.NewFromInt(10)
	case TierViable:
		return decimal.NewFromInt(8)
	case TierExtremeCare:
		return decimal.NewFromInt(6)
	case TierHigherAllocation:
		return decimal.NewFromInt(5)
	case TierRentingOnly:
		return decimal.NewFromInt(3)
	default:
		return decimal.Zero
	}
}

// SimulationResult is the raw output of one simulator run for a single
// (inputs, state) pair. Milestone years are nil when the milestone was not
// reached within the horizon; zero is a legitimate "achieved immediately".
type SimulationResult struct {
	YearsToHome                  *int
	YearsToDebtFree              *int
	MonthlyMortgagePayment       decimal.Decimal
	RequiredAllocationPercent    decimal.Decimal
	RecommendedAllocationPercent decimal.Decimal
	Notes                        []string
}

// StateResult is the per-state output contract consumed by the results UI,
// the refinement flow and the report generator. It is created fresh on every
// calculation and never mutated afterwards.
type StateResult struct {
	StateName                    string           `json:"stateName"`
	StateAbbr                    string           `json:"stateAbbr"`
	Classification               Tier             `json:"classification"`
	ViabilityRating              decimal.Decimal  `json:"viabilityRating"`
	DisposableIncome             decimal.Decimal  `json:"disposableIncome"`
	CombinedIncome               decimal.Decimal  `json:"combinedIncome"`
	MinDebtPercent               decimal.Decimal  `json:"minDebtPercent"`
	MinCreditPercent             decimal.Decimal  `json:"minCreditPercent"`
	SavingsPercent               decimal.Decimal  `json:"savingsPercent"`
	YearsToHome                  *int             `json:"yearsToHome"`
	YearsToDebtFree              *int             `json:"yearsToDebtFree"`
	HomeValue                    decimal.Decimal  `json:"homeValue"`
	MortgageRate                 decimal.Decimal  `json:"mortgageRate"`
	DownPaymentPercent           decimal.Decimal  `json:"downPaymentPercent"`
	ChosenStrategy               Strategy         `json:"chosenStrategy"`
	CreditCardPlan               string           `json:"creditCardPlan"`
	Notes                        []string         `json:"notes"`
	MonthlyMortgagePayment       *decimal.Decimal `json:"monthlyMortgagePayment,omitempty"`
	RequiredAllocationPercent    *decimal.Decimal `json:"requiredAllocationPercent,omitempty"`
	RecommendedAllocationPercent *decimal.Decimal `json:"recommendedAllocationPercent,omitempty"`
}
