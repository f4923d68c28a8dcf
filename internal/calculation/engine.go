package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/statepath/spgo/internal/domain"
)

// Logger is the minimal logging surface the engine needs. The engine is pure;
// logging is advisory only and a no-op by default.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// CalculationEngine runs the year-by-year simulation and classification for
// one state at a time. Safe for concurrent use: it holds no mutable state
// across calls.
type CalculationEngine struct {
	Assumptions domain.Assumptions
	Logger      Logger
}

// NewCalculationEngine creates an engine with default assumptions.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewCalculationEngineWithAssumptions creates an engine with explicit rates.
func NewCalculationEngineWithAssumptions(a domain.Assumptions) *CalculationEngine {
	a.ApplyDefaults()
	return &CalculationEngine{
		Assumptions: a,
		Logger:      NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CalculateStateResult produces the full per-state result for one household:
// simulation, classification, rating and the derived percentages the UI
// shows. It never returns an error; data problems surface as notes and nil
// milestones per the untrusted-input policy.
func (ce *CalculationEngine) CalculateStateResult(inputs *domain.UserInputs, sd *domain.StateData) domain.StateResult {
	a := ce.Assumptions
	strategy := inputs.ResolvedStrategy()

	combinedIncome := IncomeAtYear(inputs, sd, a.IncomeGrowthRate, 0)
	costOfLiving := CostOfLivingAtYear(inputs, sd, a.InflationRate, 0)
	disposable := combinedIncome.Sub(costOfLiving)
	if disposable.IsNegative() {
		disposable = decimal.Zero
	}

	sim := ce.Simulate(inputs, sd, &a)
	tier := Classify(&sim, inputs.AllocationPercent, disposable)
	rating := ViabilityRating(tier, &sim)

	minDebtPct := obligationPercent(inputs.StudentLoanBal, inputs.StudentLoanRate, disposable, a.LoanProgressBuffer)
	minCreditPct := obligationPercent(inputs.CreditCardBal, inputs.CreditCardAPR, disposable, a.CreditProgressBuffer)
	savingsPct := inputs.AllocationPercent.Sub(minDebtPct).Sub(minCreditPct)
	if savingsPct.IsNegative() {
		savingsPct = decimal.Zero
	}

	ce.Logger.Debugf("state %s: tier=%q rating=%s required=%s",
		sd.Name, tier, rating.StringFixed(1), sim.RequiredAllocationPercent.StringFixed(4))

	monthly := sim.MonthlyMortgagePayment
	required := sim.RequiredAllocationPercent
	recommended := sim.RecommendedAllocationPercent

	return domain.StateResult{
		StateName:                    sd.Name,
		StateAbbr:                    sd.Abbr,
		Classification:               tier,
		ViabilityRating:              rating,
		DisposableIncome:             disposable,
		CombinedIncome:               combinedIncome,
		MinDebtPercent:               minDebtPct,
		MinCreditPercent:             minCreditPct,
		SavingsPercent:               savingsPct,
		YearsToHome:                  sim.YearsToHome,
		YearsToDebtFree:              sim.YearsToDebtFree,
		HomeValue:                    sd.HomeValue(inputs.HomeSize),
		MortgageRate:                 sd.MortgageRate(),
		DownPaymentPercent:           sd.DownPaymentPercent(),
		ChosenStrategy:               strategy,
		CreditCardPlan:               creditCardPlan(inputs, &a),
		Notes:                        sim.Notes,
		MonthlyMortgagePayment:       &monthly,
		RequiredAllocationPercent:    &required,
		RecommendedAllocationPercent: &recommended,
	}
}

// obligationPercent expresses a balance's minimum yearly payment as a share
// of first-year disposable income.
func obligationPercent(balance, rate, disposable, bufferPercent decimal.Decimal) decimal.Decimal {
	if disposable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return MinimumObligation(balance, rate, disposable, bufferPercent).Div(disposable)
}

// creditCardPlan describes how the simulation treats the revolving balance.
func creditCardPlan(inputs *domain.UserInputs, a *domain.Assumptions) string {
	if inputs.CreditCardBal.LessThanOrEqual(decimal.Zero) && inputs.Advanced.CCRespendAmount.LessThanOrEqual(decimal.Zero) {
		return "No revolving balance to manage"
	}
	plan := "Pay interest plus a 1% progress buffer each year"
	if inputs.Advanced.CCRespendAmount.GreaterThan(decimal.Zero) {
		plan += fmt.Sprintf(", absorbing a $%s re-spend every %d years",
			inputs.Advanced.CCRespendAmount.StringFixed(0), a.CCRefreshPeriodYears)
	}
	return plan
}
