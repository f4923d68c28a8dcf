package output

import (
	"fmt"

	"github.com/statepath/spgo/internal/domain"
)

// GenerateRecommendations inspects a result set and suggests concrete
// adjustments the household could make. Suggestions are deduplicated and
// ordered from most to least impactful.
func GenerateRecommendations(results []domain.StateResult) []string {
	if len(results) == 0 {
		return nil
	}

	var recs []string
	seen := make(map[string]bool)
	add := func(rec string) {
		if !seen[rec] {
			seen[rec] = true
			recs = append(recs, rec)
		}
	}

	var bestState string
	var bestRating *domain.StateResult
	higherAllocation := 0
	rentingOnly := 0
	noPath := 0
	slowDebt := 0

	for i := range results {
		r := &results[i]
		switch r.Classification {
		case domain.TierHigherAllocation:
			higherAllocation++
			if r.RecommendedAllocationPercent != nil {
				add(fmt.Sprintf("%s becomes viable at a %s allocation; consider raising the share of disposable income set aside",
					r.StateName, FormatPercent(*r.RecommendedAllocationPercent)))
			}
		case domain.TierRentingOnly:
			rentingOnly++
		case domain.TierNoPath:
			noPath++
		}
		if r.YearsToDebtFree == nil && (r.MinDebtPercent.IsPositive() || r.MinCreditPercent.IsPositive()) {
			slowDebt++
		}
		if bestRating == nil || r.ViabilityRating.GreaterThan(bestRating.ViabilityRating) {
			bestRating = r
			bestState = r.StateName
		}
	}

	if len(results) > 1 && bestRating != nil && bestRating.ViabilityRating.IsPositive() {
		add(fmt.Sprintf("%s rates highest (%s/10) for this household profile",
			bestState, bestRating.ViabilityRating.StringFixed(1)))
	}
	if rentingOnly > 0 {
		add("A smaller home size would lower the down payment target in states where only renting is viable")
	}
	if slowDebt > 0 {
		add("Debt is never cleared within the projection horizon; an aggressive repayment style would redirect savings toward balances first")
	}
	if noPath == len(results) {
		add("No state shows a viable path at current income; the projection is dominated by cost of living exceeding earnings")
	}

	return recs
}
