package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/statepath/spgo/internal/dataset"
	"github.com/statepath/spgo/internal/domain"
)

// sustainabilityHorizon is how many future years the home-purchase trigger
// checks before committing to a purchase.
const sustainabilityHorizon = 5

// simState carries the balances and milestones across simulated years.
type simState struct {
	savingsBalance   decimal.Decimal
	loanBalance      decimal.Decimal
	ccBalance        decimal.Decimal
	homePurchased    bool
	homePurchaseYear *int
	yearsToDebtFree  *int
}

// Simulate advances one household through time for a single state, applying
// income growth, inflation, life events, debt service, savings accumulation
// and the home-purchase trigger. It never returns an error: constraint
// failures surface as notes and nil milestones.
func (ce *CalculationEngine) Simulate(inputs *domain.UserInputs, sd *domain.StateData, a *domain.Assumptions) domain.SimulationResult {
	var result domain.SimulationResult

	st := simState{
		savingsBalance: decimal.Zero,
		loanBalance:    inputs.StudentLoanBal,
		ccBalance:      inputs.CreditCardBal,
	}

	baseHomeValue := sd.HomeValue(inputs.HomeSize)
	mortgageRate := sd.MortgageRate()
	downPayment := sd.DownPaymentPercent()
	aggressive := inputs.RepaymentStyle() == domain.RepaymentAggressive

	if dataset.OccupationSalary(sd, inputs.Primary).LessThanOrEqual(decimal.Zero) {
		result.Notes = append(result.Notes, "Missing occupation data for this state")
	}

	maxRequiredRatio := decimal.Zero
	preShortfallNoted := false
	lastYear := 0

	for year := 0; year < a.MaxYears; year++ {
		lastYear = year

		income := IncomeAtYear(inputs, sd, a.IncomeGrowthRate, year)
		costOfLiving := CostOfLivingAtYear(inputs, sd, a.InflationRate, year)
		disp := income.Sub(costOfLiving)
		if disp.LessThanOrEqual(decimal.Zero) {
			result.Notes = append(result.Notes,
				fmt.Sprintf("Year %d: cost of living meets or exceeds income; no disposable income remains", year))
			break
		}

		budget := disp.Mul(inputs.AllocationPercent)

		loanMin := MinimumObligation(st.loanBalance, inputs.StudentLoanRate, disp, a.LoanProgressBuffer)
		ccMin := MinimumObligation(st.ccBalance, inputs.CreditCardAPR, disp, a.CreditProgressBuffer)
		required := loanMin.Add(ccMin)

		mortgageAnnual := decimal.Zero
		if st.homePurchased {
			mortgageAnnual = AnnualMortgagePayment(
				HomeValueAtYear(baseHomeValue, a.HomePriceGrowthRate, year),
				mortgageRate, downPayment, a.LoanTermYears)
			required = required.Add(mortgageAnnual)
		}

		ratio := required.Div(disp)
		if ratio.GreaterThan(maxRequiredRatio) {
			maxRequiredRatio = ratio
		}

		if budget.LessThan(required) {
			if st.homePurchased {
				result.Notes = append(result.Notes,
					fmt.Sprintf("Year %d: allocated budget cannot sustain the mortgage and debt obligations; the home would be lost", year))
				break
			}
			if !preShortfallNoted {
				result.Notes = append(result.Notes,
					fmt.Sprintf("Year %d: allocated budget cannot cover minimum debt obligations; a higher allocation is needed for progress", year))
				preShortfallNoted = true
			}
		}

		// Allocate the budget. Pre-purchase: debt minimums first, remainder
		// saved. Post-purchase: mortgage first, then debt minimums, nothing
		// saved.
		remaining := budget
		savingsContribution := decimal.Zero
		if st.homePurchased {
			remaining = remaining.Sub(decimal.Min(remaining, mortgageAnnual))
		}
		loanPayment := decimal.Min(remaining, loanMin)
		remaining = remaining.Sub(loanPayment)
		ccPayment := decimal.Min(remaining, ccMin)
		remaining = remaining.Sub(ccPayment)
		if !st.homePurchased {
			if aggressive {
				extraLoan := decimal.Min(remaining, st.loanBalance)
				loanPayment = loanPayment.Add(extraLoan)
				remaining = remaining.Sub(extraLoan)
				extraCC := decimal.Min(remaining, st.ccBalance)
				ccPayment = ccPayment.Add(extraCC)
				remaining = remaining.Sub(extraCC)
			}
			savingsContribution = remaining
		}

		st.loanBalance = SettleBalance(st.loanBalance, inputs.StudentLoanRate, loanPayment)
		st.ccBalance = SettleBalance(st.ccBalance, inputs.CreditCardAPR, ccPayment)

		// Recurring big-ticket re-spend lands back on the card periodically.
		if a.CCRefreshPeriodYears > 0 && year > 0 && year%a.CCRefreshPeriodYears == 0 {
			st.ccBalance = st.ccBalance.Add(inputs.Advanced.CCRespendAmount)
		}

		st.savingsBalance = st.savingsBalance.Add(savingsContribution).Mul(decimalOne.Add(inputs.SavingsRate))

		if !st.homePurchased {
			target := HomeValueAtYear(baseHomeValue, a.HomePriceGrowthRate, year).
				Mul(downPayment.Add(a.ClosingCostRate))
			if target.GreaterThan(decimal.Zero) && st.savingsBalance.GreaterThanOrEqual(target) &&
				ce.purchaseSustainable(inputs, sd, a, &st, year) {
				st.homePurchased = true
				y := year
				st.homePurchaseYear = &y
				result.YearsToHome = &y
			}
		}

		if st.yearsToDebtFree == nil &&
			st.loanBalance.LessThanOrEqual(decimal.Zero) && st.ccBalance.LessThanOrEqual(decimal.Zero) {
			y := year
			st.yearsToDebtFree = &y
		}

		if st.homePurchased && st.yearsToDebtFree != nil {
			break
		}
	}

	result.YearsToDebtFree = st.yearsToDebtFree

	mortgageValueYear := lastYear
	if st.homePurchaseYear != nil {
		mortgageValueYear = *st.homePurchaseYear
	}
	result.MonthlyMortgagePayment = MonthlyMortgagePayment(
		HomeValueAtYear(baseHomeValue, a.HomePriceGrowthRate, mortgageValueYear),
		mortgageRate, downPayment, a.LoanTermYears)

	result.RequiredAllocationPercent = maxRequiredRatio
	result.RecommendedAllocationPercent = roundUpToFivePercent(maxRequiredRatio)

	return result
}

// purchaseSustainable looks ahead up to five years from a candidate purchase
// year and rejects the purchase when any checked year would need more than
// the user's allocation, or would have no disposable income at all.
func (ce *CalculationEngine) purchaseSustainable(inputs *domain.UserInputs, sd *domain.StateData, a *domain.Assumptions, st *simState, year int) bool {
	baseHomeValue := sd.HomeValue(inputs.HomeSize)
	mortgageRate := sd.MortgageRate()
	downPayment := sd.DownPaymentPercent()

	horizon := sustainabilityHorizon
	if remaining := a.MaxYears - 1 - year; remaining < horizon {
		horizon = remaining
	}

	for ahead := 1; ahead <= horizon; ahead++ {
		future := year + ahead
		disp := IncomeAtYear(inputs, sd, a.IncomeGrowthRate, future).
			Sub(CostOfLivingAtYear(inputs, sd, a.InflationRate, future))
		if disp.LessThanOrEqual(decimal.Zero) {
			return false
		}

		required := AnnualMortgagePayment(
			HomeValueAtYear(baseHomeValue, a.HomePriceGrowthRate, future),
			mortgageRate, downPayment, a.LoanTermYears).
			Add(MinimumObligation(st.loanBalance, inputs.StudentLoanRate, disp, a.LoanProgressBuffer)).
			Add(MinimumObligation(st.ccBalance, inputs.CreditCardAPR, disp, a.CreditProgressBuffer))

		if required.Div(disp).GreaterThan(inputs.AllocationPercent) {
			return false
		}
	}
	return true
}

// MinimumObligation is a year's minimum payment on a balance: interest plus a
// progress buffer so principal visibly shrinks rather than just servicing
// interest.
func MinimumObligation(balance, rate, disposable, bufferPercent decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Mul(rate).Add(disposable.Mul(bufferPercent))
}

// SettleBalance applies a year of interest and a payment, flooring at zero.
func SettleBalance(balance, rate, payment decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	next := balance.Add(balance.Mul(rate)).Sub(payment)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// roundUpToFivePercent rounds an allocation ratio up to the nearest 5%,
// capped at 100%.
func roundUpToFivePercent(ratio decimal.Decimal) decimal.Decimal {
	if ratio.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	step := decimal.NewFromFloat(0.05)
	rounded := ratio.Div(step).Ceil().Mul(step)
	if rounded.GreaterThan(decimalOne) {
		return decimalOne
	}
	return rounded
}
