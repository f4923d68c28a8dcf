package calculation

import "github.com/shopspring/decimal"

var (
	decimalOne    = decimal.NewFromInt(1)
	decimalTwelve = decimal.NewFromInt(12)
)

// MonthlyMortgagePayment computes the fixed monthly payment for a loan of
// homeValue*(1-downPaymentPercent) at the given annual rate over termYears.
// A zero rate degrades to straight-line repayment. Non-positive home value,
// principal, term or a negative rate yield zero.
func MonthlyMortgagePayment(homeValue, annualRate, downPaymentPercent decimal.Decimal, termYears int) decimal.Decimal {
	if homeValue.LessThanOrEqual(decimal.Zero) || termYears <= 0 || annualRate.IsNegative() {
		return decimal.Zero
	}

	principal := homeValue.Mul(decimalOne.Sub(downPaymentPercent))
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(termYears * 12))
	if annualRate.IsZero() {
		return principal.Div(months)
	}

	// P * r(1+r)^n / ((1+r)^n - 1), r = annualRate/12, n = termYears*12.
	monthlyRate := annualRate.Div(decimalTwelve)
	compound := decimalOne.Add(monthlyRate).Pow(months)
	return principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(decimalOne))
}

// AnnualMortgagePayment is the monthly payment times twelve.
func AnnualMortgagePayment(homeValue, annualRate, downPaymentPercent decimal.Decimal, termYears int) decimal.Decimal {
	return MonthlyMortgagePayment(homeValue, annualRate, downPaymentPercent, termYears).Mul(decimalTwelve)
}
