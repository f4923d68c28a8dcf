package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/statepath/spgo/internal/domain"
)

// Helper functions for creating pointers
func intPtr(i int) *int {
	return &i
}

// testStateData builds a small in-memory state record with comfortable
// software developer numbers: $80k salary against a $20k single cost of
// living and a $150k medium home.
func testStateData() *domain.StateData {
	return &domain.StateData{
		Name: "Testonia",
		Abbr: "TS",
		Fields: map[string]decimal.Decimal{
			"software_developer":                        decimal.NewFromInt(80000),
			"teacher":                                   decimal.NewFromInt(50000),
			"cost_of_living_single_no_kids":             decimal.NewFromInt(20000),
			"cost_of_living_single_1_kid":               decimal.NewFromInt(30000),
			"cost_of_living_single_2_kids":              decimal.NewFromInt(38000),
			"cost_of_living_married_one_income_no_kids": decimal.NewFromInt(28000),
			"cost_of_living_married_two_income_no_kids": decimal.NewFromInt(32000),
			"cost_of_living_married_two_income_1_kid":   decimal.NewFromInt(42000),
			"cost_of_living_married_two_income_2_kids":  decimal.NewFromInt(50000),
			domain.FieldHomeValueSmall:                  decimal.NewFromInt(110000),
			domain.FieldHomeValueMedium:                 decimal.NewFromInt(150000),
			domain.FieldHomeValueLarge:                  decimal.NewFromInt(250000),
			domain.FieldMortgageRate:                    decimal.NewFromFloat(0.06),
			domain.FieldDownPaymentPercent:              decimal.NewFromFloat(0.10),
		},
	}
}

// testInputs is a debt-free single developer allocating half of a large
// disposable income.
func testInputs() *domain.UserInputs {
	return &domain.UserInputs{
		Age:               28,
		HouseholdType:     domain.HouseholdSingle,
		Kids:              0,
		Primary:           domain.IncomeSource{Occupation: "software_developer"},
		AllocationPercent: decimal.NewFromFloat(0.50),
		HomeSize:          domain.HomeMedium,
		Strategy:          domain.StrategyBalanced,
	}
}
