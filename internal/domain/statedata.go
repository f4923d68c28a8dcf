package domain

import "github.com/shopspring/decimal"

// Dataset field keys shared between the loader and the engine.
const (
	FieldMortgageRate       = "average_mortgage_rate_fixed_30_year"
	FieldDownPaymentPercent = "median_mortgage_down_payment_percent"

	FieldHomeValueSmall  = "home_value_small"
	FieldHomeValueMedium = "home_value_medium"
	FieldHomeValueLarge  = "home_value_large"
)

// StateData is the immutable reference record for one U.S. state (or D.C.):
// a flat map of occupation, cost-of-living, home-value and mortgage fields,
// already coerced to decimals at load time.
type StateData struct {
	Name   string
	Abbr   string
	Fields map[string]decimal.Decimal
}

// Field returns the named figure, or zero when absent. Missing and malformed
// values load as zero, so callers cannot distinguish them from true zeroes.
func (s *StateData) Field(key string) decimal.Decimal {
	if s == nil || s.Fields == nil {
		return decimal.Zero
	}
	return s.Fields[key]
}

// HomeValue returns the home value figure for a size tier.
func (s *StateData) HomeValue(size HomeSize) decimal.Decimal {
	switch size {
	case HomeSmall:
		return s.Field(FieldHomeValueSmall)
	case HomeLarge:
		return s.Field(FieldHomeValueLarge)
	default:
		return s.Field(FieldHomeValueMedium)
	}
}

// MortgageRate returns the state's average 30-year fixed mortgage rate.
func (s *StateData) MortgageRate() decimal.Decimal {
	return s.Field(FieldMortgageRate)
}

// DownPaymentPercent returns the state's median down-payment percent.
func (s *StateData) DownPaymentPercent() decimal.Decimal {
	return s.Field(FieldDownPaymentPercent)
}
