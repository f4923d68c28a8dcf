package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/statepath/spgo/internal/calculation"
	"github.com/statepath/spgo/internal/domain"
)

// YearDetail is one row of the year-by-year report table. It is rebuilt from
// the same projection primitives the simulator uses, with a simplified
// balance model: minimum debt payments, remainder saved, and post-purchase
// home equity growing at the flat equity rate.
type YearDetail struct {
	Year             int             `json:"year"`
	Income           decimal.Decimal `json:"income"`
	CostOfLiving     decimal.Decimal `json:"costOfLiving"`
	DisposableIncome decimal.Decimal `json:"disposableIncome"`
	KidCount         int             `json:"kidCount"`
	LoanBalance      decimal.Decimal `json:"loanBalance"`
	CCBalance        decimal.Decimal `json:"ccBalance"`
	SavingsBalance   decimal.Decimal `json:"savingsBalance"`
	HomeEquity       decimal.Decimal `json:"homeEquity"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// BuildBreakdown replays the projection for reporting. The purchase year is
// taken from the already-computed result so the table agrees with the
// headline milestones.
func BuildBreakdown(inputs *domain.UserInputs, sd *domain.StateData, a domain.Assumptions, result *domain.StateResult, years int) []YearDetail {
	a.ApplyDefaults()
	if years <= 0 || years > a.MaxYears {
		years = a.MaxYears
	}

	savings := decimal.Zero
	loanBal := inputs.StudentLoanBal
	ccBal := inputs.CreditCardBal
	equityBase := decimal.Zero

	rows := make([]YearDetail, 0, years)
	for year := 0; year < years; year++ {
		income := calculation.IncomeAtYear(inputs, sd, a.IncomeGrowthRate, year)
		costOfLiving := calculation.CostOfLivingAtYear(inputs, sd, a.InflationRate, year)
		disp := income.Sub(costOfLiving)
		if disp.IsNegative() {
			disp = decimal.Zero
		}

		purchased := result.YearsToHome != nil && year >= *result.YearsToHome

		budget := disp.Mul(inputs.AllocationPercent)
		loanMin := calculation.MinimumObligation(loanBal, inputs.StudentLoanRate, disp, a.LoanProgressBuffer)
		ccMin := calculation.MinimumObligation(ccBal, inputs.CreditCardAPR, disp, a.CreditProgressBuffer)

		remaining := budget
		if purchased && result.MonthlyMortgagePayment != nil {
			annualMortgage := result.MonthlyMortgagePayment.Mul(decimal.NewFromInt(12))
			remaining = remaining.Sub(decimal.Min(remaining, annualMortgage))
		}
		loanPayment := decimal.Min(remaining, loanMin)
		remaining = remaining.Sub(loanPayment)
		ccPayment := decimal.Min(remaining, ccMin)
		remaining = remaining.Sub(ccPayment)

		loanBal = calculation.SettleBalance(loanBal, inputs.StudentLoanRate, loanPayment)
		ccBal = calculation.SettleBalance(ccBal, inputs.CreditCardAPR, ccPayment)

		if !purchased {
			savings = savings.Add(remaining).Mul(decimal.NewFromInt(1).Add(inputs.SavingsRate))
		} else {
			savings = savings.Mul(decimal.NewFromInt(1).Add(inputs.SavingsRate))
		}

		equity := decimal.Zero
		if purchased {
			if equityBase.IsZero() {
				// Equity starts at the down payment on the purchase-year
				// home value, then grows at the flat equity rate.
				purchaseValue := calculation.HomeValueAtYear(result.HomeValue, a.HomePriceGrowthRate, *result.YearsToHome)
				equityBase = purchaseValue.Mul(result.DownPaymentPercent)
			}
			equity = calculation.GrowAt(equityBase, a.EquityGrowthRate, year-*result.YearsToHome)
		}

		rows = append(rows, YearDetail{
			Year:             year,
			Income:           income,
			CostOfLiving:     costOfLiving,
			DisposableIncome: disp,
			KidCount:         calculation.KidCountAtYear(inputs, year),
			LoanBalance:      loanBal,
			CCBalance:        ccBal,
			SavingsBalance:   savings,
			HomeEquity:       equity,
			NetWorth:         savings.Add(equity).Sub(loanBal).Sub(ccBal),
		})

		if disp.IsZero() {
			break
		}
	}
	return rows
}

// FormatBreakdown renders the year-by-year table for the console.
func FormatBreakdown(state string, rows []YearDetail) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Year-by-year projection: %s\n", state)
	fmt.Fprintf(&buf, "%4s %14s %14s %14s %5s %14s %12s %14s %14s\n",
		"Year", "Income", "CostOfLiving", "Disposable", "Kids", "LoanBal", "CCBal", "Savings", "NetWorth")
	for _, r := range rows {
		fmt.Fprintf(&buf, "%4d %14s %14s %14s %5d %14s %12s %14s %14s\n",
			r.Year,
			r.Income.StringFixed(0),
			r.CostOfLiving.StringFixed(0),
			r.DisposableIncome.StringFixed(0),
			r.KidCount,
			r.LoanBalance.StringFixed(0),
			r.CCBalance.StringFixed(0),
			r.SavingsBalance.StringFixed(0),
			r.NetWorth.StringFixed(0))
	}
	return buf.Bytes()
}
