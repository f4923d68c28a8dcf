package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/statepath/spgo/internal/dataset"
	"github.com/statepath/spgo/internal/domain"
)

// Shared projection primitives. The simulator and the report/breakdown
// derivations both build on these so their year-by-year views cannot drift.

// GrowAt compounds base by (1+rate)^years. A non-positive year count returns
// the base unchanged.
func GrowAt(base, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return base
	}
	return base.Mul(decimalOne.Add(rate).Pow(decimal.NewFromInt(int64(years))))
}

// KidCountAtYear returns the household's kid count at projection year t.
// The count starts at the current number of kids, reaches at least one once
// the primary's age hits the first-child age and at least two at the
// second-child age. It never decreases.
func KidCountAtYear(inputs *domain.UserInputs, year int) int {
	kids := inputs.Kids
	if !inputs.Advanced.FutureKids {
		return kids
	}
	age := inputs.Age + year
	if inputs.Advanced.SecondChildAge > 0 && age >= inputs.Advanced.SecondChildAge && kids < 2 {
		kids = 2
	} else if inputs.Advanced.FirstChildAge > 0 && age >= inputs.Advanced.FirstChildAge && kids < 1 {
		kids = 1
	}
	return kids
}

// householdTypeAtYear accounts for a configured partner arrival: a single
// household becomes a married one from the arrival year on, two-income when
// the partner brings an income source.
func householdTypeAtYear(inputs *domain.UserInputs, year int) domain.HouseholdType {
	ht := inputs.HouseholdType
	if ht != domain.HouseholdSingle {
		return ht
	}
	arrival := inputs.Advanced.PartnerArrivalYears
	if arrival == nil || year < *arrival {
		return ht
	}
	if inputs.Partner != nil {
		return domain.HouseholdMarriedTwoIncome
	}
	return domain.HouseholdMarriedOneIncome
}

// partnerActiveAtYear reports whether partner income counts at year t.
func partnerActiveAtYear(inputs *domain.UserInputs, year int) bool {
	if inputs.Partner == nil {
		return false
	}
	if inputs.HouseholdType == domain.HouseholdMarriedTwoIncome {
		return true
	}
	arrival := inputs.Advanced.PartnerArrivalYears
	return inputs.HouseholdType == domain.HouseholdSingle && arrival != nil && year >= *arrival
}

// IncomeAtYear projects the household's combined income at year t: each
// active earner's base salary compounded at the income growth rate.
func IncomeAtYear(inputs *domain.UserInputs, sd *domain.StateData, growthRate decimal.Decimal, year int) decimal.Decimal {
	income := GrowAt(dataset.OccupationSalary(sd, inputs.Primary), growthRate, year)
	if partnerActiveAtYear(inputs, year) {
		income = income.Add(GrowAt(dataset.OccupationSalary(sd, *inputs.Partner), growthRate, year))
	}
	return income
}

// CostOfLivingAtYear projects the annual cost of living at year t: the base
// figure for the household composition in effect that year, inflated.
func CostOfLivingAtYear(inputs *domain.UserInputs, sd *domain.StateData, inflationRate decimal.Decimal, year int) decimal.Decimal {
	base := dataset.CostOfLiving(sd, householdTypeAtYear(inputs, year), KidCountAtYear(inputs, year))
	return GrowAt(base, inflationRate, year)
}

// DisposableIncomeAtYear is income minus cost of living, floored at zero.
func DisposableIncomeAtYear(inputs *domain.UserInputs, sd *domain.StateData, a *domain.Assumptions, year int) decimal.Decimal {
	disp := IncomeAtYear(inputs, sd, a.IncomeGrowthRate, year).
		Sub(CostOfLivingAtYear(inputs, sd, a.InflationRate, year))
	if disp.IsNegative() {
		return decimal.Zero
	}
	return disp
}

// HomeValueAtYear projects a home value forward at the home price growth rate.
func HomeValueAtYear(baseValue, growthRate decimal.Decimal, year int) decimal.Decimal {
	return GrowAt(baseValue, growthRate, year)
}
