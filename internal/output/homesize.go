package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/statepath/spgo/internal/calculation"
	"github.com/statepath/spgo/internal/domain"
)

// HomeSizeComparison holds one state's results across all three home-size
// tiers so a household can see what stepping down (or up) would cost.
type HomeSizeComparison struct {
	StateName string                                 `json:"stateName"`
	StateAbbr string                                 `json:"stateAbbr"`
	Results   map[domain.HomeSize]domain.StateResult `json:"results"`
}

// CompareHomeSizes reruns the engine for each home-size tier, holding every
// other input fixed.
func CompareHomeSizes(ce *calculation.CalculationEngine, inputs *domain.UserInputs, sd *domain.StateData) HomeSizeComparison {
	cmp := HomeSizeComparison{
		StateName: sd.Name,
		StateAbbr: sd.Abbr,
		Results:   make(map[domain.HomeSize]domain.StateResult, 3),
	}
	for _, size := range []domain.HomeSize{domain.HomeSmall, domain.HomeMedium, domain.HomeLarge} {
		scenario := *inputs
		scenario.HomeSize = size
		cmp.Results[size] = ce.CalculateStateResult(&scenario, sd)
	}
	return cmp
}

// FormatHomeSizeComparison renders the three-tier comparison side by side.
func FormatHomeSizeComparison(cmp HomeSizeComparison) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Home size comparison: %s (%s)\n", cmp.StateName, cmp.StateAbbr)
	fmt.Fprintln(&buf, strings.Repeat("-", 60))

	for _, size := range []domain.HomeSize{domain.HomeSmall, domain.HomeMedium, domain.HomeLarge} {
		r, ok := cmp.Results[size]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "%-8s %s at %s\n", size, FormatCurrency(r.HomeValue), FormatPercent(r.DownPaymentPercent))
		fmt.Fprintf(&buf, "         %s  %s/10\n", r.Classification, r.ViabilityRating.StringFixed(1))
		fmt.Fprintf(&buf, "         Years to home: %s\n", yearsLabel(r.YearsToHome))
		if r.MonthlyMortgagePayment != nil && r.MonthlyMortgagePayment.IsPositive() {
			fmt.Fprintf(&buf, "         Monthly mortgage: %s\n", FormatCurrency(*r.MonthlyMortgagePayment))
		}
		fmt.Fprintln(&buf)
	}
	return buf.Bytes()
}
