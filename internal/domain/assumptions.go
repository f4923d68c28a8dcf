package domain

import "github.com/shopspring/decimal"

// Assumptions are the fixed annual rates and horizon settings driving the
// deterministic simulation. Zero-valued fields are filled from
// DefaultAssumptions before a run.
type Assumptions struct {
	IncomeGrowthRate     decimal.Decimal `yaml:"income_growth_rate" json:"incomeGrowthRate"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	HomePriceGrowthRate  decimal.Decimal `yaml:"home_price_growth_rate" json:"homePriceGrowthRate"`
	LoanProgressBuffer   decimal.Decimal `yaml:"loan_progress_buffer" json:"loanProgressBuffer"`
	CreditProgressBuffer decimal.Decimal `yaml:"credit_progress_buffer" json:"creditProgressBuffer"`
	ClosingCostRate      decimal.Decimal `yaml:"closing_cost_rate" json:"closingCostRate"`
	EquityGrowthRate     decimal.Decimal `yaml:"equity_growth_rate" json:"equityGrowthRate"`
	CCRefreshPeriodYears int             `yaml:"cc_refresh_period_years" json:"ccRefreshPeriodYears"`
	LoanTermYears        int             `yaml:"loan_term_years" json:"loanTermYears"`
	MaxYears             int             `yaml:"max_years" json:"maxYears"`
}

// DefaultAssumptions returns the standard rate set.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		IncomeGrowthRate:     decimal.NewFromFloat(0.03),
		InflationRate:        decimal.NewFromFloat(0.025),
		HomePriceGrowthRate:  decimal.NewFromFloat(0.035),
		LoanProgressBuffer:   decimal.NewFromFloat(0.03),
		CreditProgressBuffer: decimal.NewFromFloat(0.01),
		ClosingCostRate:      decimal.NewFromFloat(0.02),
		EquityGrowthRate:     decimal.NewFromFloat(0.03),
		CCRefreshPeriodYears: 5,
		LoanTermYears:        30,
		MaxYears:             80,
	}
}

// ApplyDefaults fills any unset field from DefaultAssumptions.
func (a *Assumptions) ApplyDefaults() {
	def := DefaultAssumptions()
	if a.IncomeGrowthRate.IsZero() {
		a.IncomeGrowthRate = def.IncomeGrowthRate
	}
	if a.InflationRate.IsZero() {
		a.InflationRate = def.InflationRate
	}
	if a.HomePriceGrowthRate.IsZero() {
		a.HomePriceGrowthRate = def.HomePriceGrowthRate
	}
	if a.LoanProgressBuffer.IsZero() {
		a.LoanProgressBuffer = def.LoanProgressBuffer
	}
	if a.CreditProgressBuffer.IsZero() {
		a.CreditProgressBuffer = def.CreditProgressBuffer
	}
	if a.ClosingCostRate.IsZero() {
		a.ClosingCostRate = def.ClosingCostRate
	}
	if a.EquityGrowthRate.IsZero() {
		a.EquityGrowthRate = def.EquityGrowthRate
	}
	if a.CCRefreshPeriodYears <= 0 {
		a.CCRefreshPeriodYears = def.CCRefreshPeriodYears
	}
	if a.LoanTermYears <= 0 {
		a.LoanTermYears = def.LoanTermYears
	}
	if a.MaxYears <= 0 {
		a.MaxYears = def.MaxYears
	}
}
