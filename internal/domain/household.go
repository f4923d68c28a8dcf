package domain

import (
	"github.com/shopspring/decimal"
)

// HouseholdType identifies the household composition used for cost-of-living
// lookups and income combination.
type HouseholdType string

const (
	HouseholdSingle           HouseholdType = "single"
	HouseholdMarriedOneIncome HouseholdType = "married_one_income"
	HouseholdMarriedTwoIncome HouseholdType = "married_two_income"
)

// Valid reports whether the household type is one of the known values.
func (h HouseholdType) Valid() bool {
	switch h {
	case HouseholdSingle, HouseholdMarriedOneIncome, HouseholdMarriedTwoIncome:
		return true
	}
	return false
}

// HomeSize is the target home size tier used to pick a home-value figure from
// the state dataset.
type HomeSize string

const (
	HomeSmall  HomeSize = "small"
	HomeMedium HomeSize = "medium"
	HomeLarge  HomeSize = "large"
)

// Valid reports whether the home size is one of the known tiers.
func (h HomeSize) Valid() bool {
	switch h {
	case HomeSmall, HomeMedium, HomeLarge:
		return true
	}
	return false
}

// Strategy selects the savings strategy mode. The engine simulates a single
// deterministic path; "auto" resolves to the balanced strategy before
// simulation and the resolved value is recorded on the result.
type Strategy string

const (
	StrategyConservative Strategy = "conservative"
	StrategyBalanced     Strategy = "balanced"
	StrategyAggressive   Strategy = "aggressive"
	StrategyAuto         Strategy = "auto"
)

// Valid reports whether the strategy is one of the known modes.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyConservative, StrategyBalanced, StrategyAggressive, StrategyAuto:
		return true
	}
	return false
}

// Loan repayment styles. Standard pays debt minimums and routes the remaining
// budget to savings; aggressive attacks outstanding balances before saving
// (pre-purchase only).
const (
	RepaymentStandard   = "standard"
	RepaymentAggressive = "aggressive"
)

// IncomeSource resolves to an annual salary: the manual override wins when
// positive, otherwise the occupation's salary field for the state is used.
type IncomeSource struct {
	Occupation     string          `yaml:"occupation" json:"occupation"`
	AnnualOverride decimal.Decimal `yaml:"annual_override" json:"annualOverride"`
}

// AdvancedOptions carries the optional life-event and behavior settings.
type AdvancedOptions struct {
	FutureKids          bool            `yaml:"future_kids" json:"futureKids"`
	FirstChildAge       int             `yaml:"first_child_age" json:"firstChildAge"`
	SecondChildAge      int             `yaml:"second_child_age" json:"secondChildAge"`
	PartnerArrivalYears *int            `yaml:"partner_arrival_years,omitempty" json:"partnerArrivalYears,omitempty"`
	CCRespendAmount     decimal.Decimal `yaml:"cc_respend_amount" json:"ccRespendAmount"`
	LoanRepaymentStyle  string          `yaml:"loan_repayment_style" json:"loanRepaymentStyle"`
}

// UserInputs is the household's financial profile for one scenario run.
type UserInputs struct {
	Age               int             `yaml:"age" json:"age"`
	HouseholdType     HouseholdType   `yaml:"household_type" json:"householdType"`
	Kids              int             `yaml:"kids" json:"kids"`
	Primary           IncomeSource    `yaml:"primary_income" json:"primaryIncome"`
	Partner           *IncomeSource   `yaml:"partner_income,omitempty" json:"partnerIncome,omitempty"`
	StudentLoanBal    decimal.Decimal `yaml:"student_loan_balance" json:"studentLoanBalance"`
	StudentLoanRate   decimal.Decimal `yaml:"student_loan_rate" json:"studentLoanRate"`
	CreditCardBal     decimal.Decimal `yaml:"credit_card_balance" json:"creditCardBalance"`
	CreditCardAPR     decimal.Decimal `yaml:"credit_card_apr" json:"creditCardApr"`
	SavingsRate       decimal.Decimal `yaml:"savings_rate" json:"savingsRate"`
	AllocationPercent decimal.Decimal `yaml:"allocation_percent" json:"allocationPercent"`
	HomeSize          HomeSize        `yaml:"home_size" json:"homeSize"`
	Strategy          Strategy        `yaml:"strategy" json:"strategy"`
	LocationCertainty string          `yaml:"location_certainty" json:"locationCertainty"`
	States            []string        `yaml:"states,omitempty" json:"states,omitempty"`
	Advanced          AdvancedOptions `yaml:"advanced" json:"advanced"`
}

// ResolvedStrategy maps the auto mode to the single representative strategy
// the engine actually simulates.
func (u *UserInputs) ResolvedStrategy() Strategy {
	if u.Strategy == StrategyAuto || u.Strategy == "" {
		return StrategyBalanced
	}
	return u.Strategy
}

// RepaymentStyle returns the loan repayment style, defaulting to standard.
func (u *UserInputs) RepaymentStyle() string {
	if u.Advanced.LoanRepaymentStyle == RepaymentAggressive {
		return RepaymentAggressive
	}
	return RepaymentStandard
}
