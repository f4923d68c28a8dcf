package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/statepath/spgo/internal/domain"
)

// ScenarioFile is the complete input document for a calculation run.
type ScenarioFile struct {
	Inputs      domain.UserInputs  `yaml:"inputs"`
	Assumptions domain.Assumptions `yaml:"assumptions"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file, applies assumption
// defaults, and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario ScenarioFile
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	scenario.Assumptions.ApplyDefaults()

	if err := ip.ValidateInputs(&scenario.Inputs); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	if err := ip.ValidateAssumptions(&scenario.Assumptions); err != nil {
		return nil, fmt.Errorf("assumptions validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateInputs checks the household profile invariants.
func (ip *InputParser) ValidateInputs(inputs *domain.UserInputs) error {
	if inputs.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if inputs.Kids < 0 {
		return fmt.Errorf("kids cannot be negative")
	}
	if inputs.HouseholdType != "" && !inputs.HouseholdType.Valid() {
		return fmt.Errorf("unknown household type %q", inputs.HouseholdType)
	}
	if inputs.HomeSize != "" && !inputs.HomeSize.Valid() {
		return fmt.Errorf("unknown home size %q", inputs.HomeSize)
	}
	if inputs.Strategy != "" && !inputs.Strategy.Valid() {
		return fmt.Errorf("unknown strategy %q", inputs.Strategy)
	}
	if inputs.AllocationPercent.LessThan(decimal.Zero) || inputs.AllocationPercent.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("allocation percent must be between 0 and 1")
	}
	if inputs.StudentLoanBal.LessThan(decimal.Zero) {
		return fmt.Errorf("student loan balance cannot be negative")
	}
	if inputs.CreditCardBal.LessThan(decimal.Zero) {
		return fmt.Errorf("credit card balance cannot be negative")
	}
	if inputs.Advanced.CCRespendAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("credit card re-spend amount cannot be negative")
	}
	if style := inputs.Advanced.LoanRepaymentStyle; style != "" &&
		style != domain.RepaymentStandard && style != domain.RepaymentAggressive {
		return fmt.Errorf("loan repayment style must be %q or %q", domain.RepaymentStandard, domain.RepaymentAggressive)
	}
	if arrival := inputs.Advanced.PartnerArrivalYears; arrival != nil && *arrival < 0 {
		return fmt.Errorf("partner arrival years cannot be negative")
	}
	return nil
}

// ValidateAssumptions checks the global rate set.
func (ip *InputParser) ValidateAssumptions(a *domain.Assumptions) error {
	if a.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%% (extreme deflation)")
	}
	if a.IncomeGrowthRate.LessThan(decimal.NewFromFloat(-1.0)) {
		return fmt.Errorf("income growth rate cannot be less than -100%%")
	}
	if a.MaxYears <= 0 || a.MaxYears > 120 {
		return fmt.Errorf("max years must be between 1 and 120")
	}
	if a.LoanTermYears <= 0 || a.LoanTermYears > 50 {
		return fmt.Errorf("loan term must be between 1 and 50 years")
	}
	return nil
}
