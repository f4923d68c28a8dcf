package calculation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statepath/spgo/internal/domain"
)

func TestSimulate_DebtFreeHighEarner(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()
	inputs := testInputs()

	sim := engine.Simulate(inputs, sd, &engine.Assumptions)

	require.NotNil(t, sim.YearsToDebtFree, "A household with no debt is debt-free immediately")
	assert.Equal(t, 0, *sim.YearsToDebtFree, "Debt-free in year zero")
	require.NotNil(t, sim.YearsToHome, "A large surplus should reach the down payment target quickly")
	assert.LessOrEqual(t, *sim.YearsToHome, 3, "Home purchase within the first few years")
	assert.True(t, sim.MonthlyMortgagePayment.IsPositive(), "Should report the purchase-year mortgage payment")
}

func TestSimulate_NoDisposableIncome(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()
	inputs := testInputs()
	inputs.Primary = domain.IncomeSource{AnnualOverride: decimal.NewFromInt(20000)}

	sim := engine.Simulate(inputs, sd, &engine.Assumptions)

	assert.Nil(t, sim.YearsToHome, "No purchase without disposable income")
	assert.Nil(t, sim.YearsToDebtFree, "No debt-free milestone recorded after an immediate stop")
	require.NotEmpty(t, sim.Notes, "Should explain why the projection stopped")
	assert.Contains(t, sim.Notes[0], "cost of living meets or exceeds income")
}

func TestSimulate_InsufficientAllocationNeverDebtFree(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()
	inputs := testInputs()
	inputs.Primary = domain.IncomeSource{AnnualOverride: decimal.NewFromInt(50000)}
	inputs.StudentLoanBal = decimal.NewFromInt(50000)
	inputs.StudentLoanRate = decimal.NewFromFloat(0.08)
	inputs.AllocationPercent = decimal.NewFromFloat(0.10)

	sim := engine.Simulate(inputs, sd, &engine.Assumptions)

	assert.Nil(t, sim.YearsToDebtFree, "A budget below loan interest never clears the balance")
	assert.True(t, sim.RequiredAllocationPercent.GreaterThan(inputs.AllocationPercent),
		"Observed minimum should exceed the user's allocation")

	shortfallNotes := 0
	for _, note := range sim.Notes {
		if strings.Contains(note, "a higher allocation is needed") {
			shortfallNotes++
		}
	}
	assert.Equal(t, 1, shortfallNotes, "Should note the allocation shortfall exactly once")
}

func TestSimulate_RecommendedAllocationRoundsUp(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()
	inputs := testInputs()
	inputs.StudentLoanBal = decimal.NewFromInt(20000)
	inputs.StudentLoanRate = decimal.NewFromFloat(0.05)
	inputs.AllocationPercent = decimal.NewFromFloat(0.30)

	sim := engine.Simulate(inputs, sd, &engine.Assumptions)

	rec := sim.RecommendedAllocationPercent
	assert.True(t, rec.GreaterThanOrEqual(sim.RequiredAllocationPercent), "Recommendation covers the requirement")
	assert.True(t, rec.Mod(decimal.NewFromFloat(0.05)).IsZero(), "Recommendation lands on a 5% step")
	assert.True(t, rec.LessThanOrEqual(decimal.NewFromInt(1)), "Recommendation is capped at 100%")
}

func TestSimulate_AggressiveRepaymentClearsDebtSooner(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()

	standard := testInputs()
	standard.StudentLoanBal = decimal.NewFromInt(40000)
	standard.StudentLoanRate = decimal.NewFromFloat(0.06)

	aggressive := testInputs()
	aggressive.StudentLoanBal = decimal.NewFromInt(40000)
	aggressive.StudentLoanRate = decimal.NewFromFloat(0.06)
	aggressive.Advanced.LoanRepaymentStyle = domain.RepaymentAggressive

	simStandard := engine.Simulate(standard, sd, &engine.Assumptions)
	simAggressive := engine.Simulate(aggressive, sd, &engine.Assumptions)

	require.NotNil(t, simStandard.YearsToDebtFree, "Standard style clears the loan eventually")
	require.NotNil(t, simAggressive.YearsToDebtFree, "Aggressive style clears the loan")
	assert.LessOrEqual(t, *simAggressive.YearsToDebtFree, *simStandard.YearsToDebtFree,
		"Attacking balances first can never be slower to debt freedom")
}

func TestSimulate_CreditCardRespend(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()

	plain := testInputs()
	plain.CreditCardBal = decimal.NewFromInt(5000)
	plain.CreditCardAPR = decimal.NewFromFloat(0.20)

	respend := testInputs()
	respend.CreditCardBal = decimal.NewFromInt(5000)
	respend.CreditCardAPR = decimal.NewFromFloat(0.20)
	respend.Advanced.CCRespendAmount = decimal.NewFromInt(2000)

	simPlain := engine.Simulate(plain, sd, &engine.Assumptions)
	simRespend := engine.Simulate(respend, sd, &engine.Assumptions)

	require.NotNil(t, simPlain.YearsToDebtFree, "The card clears without re-spend")
	require.NotNil(t, simRespend.YearsToDebtFree, "A modest re-spend still clears eventually")
	assert.GreaterOrEqual(t, *simRespend.YearsToDebtFree, *simPlain.YearsToDebtFree,
		"Periodic re-spend cannot accelerate debt freedom")
}

func TestSimulate_DebtFreeMilestoneFrozen(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()

	// A small card cleared aggressively in year zero, then a re-spend far
	// beyond the yearly budget lands at year five. The large home keeps the
	// purchase trigger rejecting, so the loop keeps running after the debt
	// comes back.
	inputs := testInputs()
	inputs.AllocationPercent = decimal.NewFromFloat(0.20)
	inputs.HomeSize = domain.HomeLarge
	inputs.CreditCardBal = decimal.NewFromInt(2000)
	inputs.CreditCardAPR = decimal.NewFromFloat(0.20)
	inputs.Advanced.LoanRepaymentStyle = domain.RepaymentAggressive
	inputs.Advanced.CCRespendAmount = decimal.NewFromInt(50000)

	sim := engine.Simulate(inputs, sd, &engine.Assumptions)

	require.NotNil(t, sim.YearsToDebtFree, "The initial card balance clears immediately")
	assert.Equal(t, 0, *sim.YearsToDebtFree,
		"The milestone stays at the first debt-free year even after the re-spend re-creates a balance")
	assert.Nil(t, sim.YearsToHome, "The mortgage ratio on the large home exceeds the allocation in every look-ahead")
}

func TestSimulate_HigherAllocationNeverSlower(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()

	low := testInputs()
	low.StudentLoanBal = decimal.NewFromInt(30000)
	low.StudentLoanRate = decimal.NewFromFloat(0.06)
	low.AllocationPercent = decimal.NewFromFloat(0.30)

	high := testInputs()
	high.StudentLoanBal = decimal.NewFromInt(30000)
	high.StudentLoanRate = decimal.NewFromFloat(0.06)
	high.AllocationPercent = decimal.NewFromFloat(0.50)

	simLow := engine.Simulate(low, sd, &engine.Assumptions)
	simHigh := engine.Simulate(high, sd, &engine.Assumptions)

	require.NotNil(t, simLow.YearsToHome, "The lower allocation still reaches the down payment")
	require.NotNil(t, simHigh.YearsToHome, "The higher allocation reaches the down payment")
	require.NotNil(t, simLow.YearsToDebtFree, "The lower allocation clears the loan within the horizon")
	require.NotNil(t, simHigh.YearsToDebtFree, "The higher allocation clears the loan")
	assert.LessOrEqual(t, *simHigh.YearsToHome, *simLow.YearsToHome,
		"More budget cannot slow the home purchase")
	assert.LessOrEqual(t, *simHigh.YearsToDebtFree, *simLow.YearsToDebtFree,
		"More budget cannot slow debt payoff")
}

func TestSimulate_Deterministic(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()
	inputs := testInputs()
	inputs.StudentLoanBal = decimal.NewFromInt(25000)
	inputs.StudentLoanRate = decimal.NewFromFloat(0.05)

	first := engine.Simulate(inputs, sd, &engine.Assumptions)
	second := engine.Simulate(inputs, sd, &engine.Assumptions)

	assert.Equal(t, first.YearsToHome, second.YearsToHome, "Repeated runs agree on the home milestone")
	assert.Equal(t, first.YearsToDebtFree, second.YearsToDebtFree, "Repeated runs agree on the debt milestone")
	assert.True(t, first.RequiredAllocationPercent.Equal(second.RequiredAllocationPercent),
		"Repeated runs agree on the required allocation")
}

func TestSimulate_MissingOccupationNote(t *testing.T) {
	engine := NewCalculationEngine()
	sd := testStateData()
	inputs := testInputs()
	inputs.Primary = domain.IncomeSource{Occupation: "astronaut"}

	sim := engine.Simulate(inputs, sd, &engine.Assumptions)

	require.NotEmpty(t, sim.Notes, "Missing occupation data should be surfaced")
	assert.Equal(t, "Missing occupation data for this state", sim.Notes[0])
}

func TestMinimumObligation(t *testing.T) {
	disp := decimal.NewFromInt(20000)
	buffer := decimal.NewFromFloat(0.03)

	min := MinimumObligation(decimal.NewFromInt(50000), decimal.NewFromFloat(0.08), disp, buffer)
	assert.InDelta(t, 4600.0, min.InexactFloat64(), 0.001, "Interest plus 3% of disposable income")

	assert.True(t, MinimumObligation(decimal.Zero, decimal.NewFromFloat(0.08), disp, buffer).IsZero(),
		"No balance means no obligation")
}

func TestSettleBalance(t *testing.T) {
	next := SettleBalance(decimal.NewFromInt(10000), decimal.NewFromFloat(0.05), decimal.NewFromInt(3000))
	assert.InDelta(t, 7500.0, next.InexactFloat64(), 0.001, "Interest accrues before the payment lands")

	assert.True(t, SettleBalance(decimal.NewFromInt(1000), decimal.NewFromFloat(0.05), decimal.NewFromInt(5000)).IsZero(),
		"Overpayment floors the balance at zero")
	assert.True(t, SettleBalance(decimal.Zero, decimal.NewFromFloat(0.05), decimal.Zero).IsZero(),
		"A cleared balance stays cleared")
}
