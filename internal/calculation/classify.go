package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/statepath/spgo/internal/domain"
)

// Composite score thresholds for the tier ladder. Ties resolve upward: a
// score exactly at a threshold takes the better tier.
var tierLadder = []struct {
	threshold int64
	tier      domain.Tier
}{
	{80, domain.TierVeryViable},
	{60, domain.TierViable},
	{40, domain.TierExtremeCare},
	{20, domain.TierRentingOnly},
}

// Classify maps simulation outputs to a viability tier.
//
// A negative gap between the user's allocation and the simulator's observed
// minimum overrides everything: the only advice that matters then is to raise
// the allocation and re-run. A household with no disposable income has no
// path regardless of scores.
func Classify(sim *domain.SimulationResult, allocationPercent, disposableIncome decimal.Decimal) domain.Tier {
	if disposableIncome.LessThanOrEqual(decimal.Zero) {
		return domain.TierNoPath
	}
	if allocationPercent.Sub(sim.RequiredAllocationPercent).IsNegative() {
		return domain.TierHigherAllocation
	}
	return TierForScore(CompositeScore(sim, allocationPercent, disposableIncome))
}

// CompositeScore computes the 0-100 viability score from milestone speeds,
// allocation buffer and disposable income.
func CompositeScore(sim *domain.SimulationResult, allocationPercent, disposableIncome decimal.Decimal) decimal.Decimal {
	score := decimal.NewFromInt(homeSpeedPoints(sim.YearsToHome) + debtSpeedPoints(sim.YearsToDebtFree))

	gap := allocationPercent.Sub(sim.RequiredAllocationPercent)
	if gap.GreaterThan(decimal.Zero) {
		score = score.Add(decimal.NewFromInt(bufferPoints(gap)))
	}

	return score.Add(decimal.NewFromInt(disposableIncomePoints(disposableIncome)))
}

// TierForScore applies the strict threshold ladder to a composite score.
func TierForScore(score decimal.Decimal) domain.Tier {
	for _, step := range tierLadder {
		if score.GreaterThanOrEqual(decimal.NewFromInt(step.threshold)) {
			return step.tier
		}
	}
	return domain.TierNoPath
}

func homeSpeedPoints(years *int) int64 {
	if years == nil {
		return 0
	}
	switch {
	case *years <= 5:
		return 40
	case *years <= 10:
		return 30
	case *years <= 15:
		return 20
	case *years <= 20:
		return 10
	default:
		return 5
	}
}

func debtSpeedPoints(years *int) int64 {
	if years == nil {
		return 0
	}
	switch {
	case *years <= 5:
		return 30
	case *years <= 10:
		return 22
	case *years <= 15:
		return 15
	case *years <= 20:
		return 8
	default:
		return 3
	}
}

func bufferPoints(gap decimal.Decimal) int64 {
	switch {
	case gap.GreaterThanOrEqual(decimal.NewFromFloat(0.20)):
		return 20
	case gap.GreaterThanOrEqual(decimal.NewFromFloat(0.15)):
		return 15
	case gap.GreaterThanOrEqual(decimal.NewFromFloat(0.10)):
		return 10
	case gap.GreaterThanOrEqual(decimal.NewFromFloat(0.05)):
		return 5
	default:
		return 0
	}
}

func disposableIncomePoints(disposable decimal.Decimal) int64 {
	switch {
	case disposable.GreaterThanOrEqual(decimal.NewFromInt(50000)):
		return 10
	case disposable.GreaterThanOrEqual(decimal.NewFromInt(30000)):
		return 7
	case disposable.GreaterThanOrEqual(decimal.NewFromInt(15000)):
		return 5
	case disposable.GreaterThanOrEqual(decimal.NewFromInt(5000)):
		return 3
	case disposable.GreaterThan(decimal.Zero):
		return 1
	default:
		return 0
	}
}

// ViabilityRating produces the continuous 0-10 rating: the tier's base score
// plus milestone adjustments, clamped to [0,10] and rounded to one decimal.
func ViabilityRating(tier domain.Tier, sim *domain.SimulationResult) decimal.Decimal {
	rating := tier.BaseScore()

	if sim.YearsToDebtFree == nil {
		rating = rating.Sub(decimalOne)
	} else if *sim.YearsToDebtFree <= 5 {
		rating = rating.Add(decimal.NewFromFloat(0.5))
	} else if *sim.YearsToDebtFree <= 10 {
		rating = rating.Add(decimal.NewFromFloat(0.2))
	}

	if sim.YearsToHome == nil {
		rating = rating.Sub(decimal.NewFromFloat(0.5))
	} else if *sim.YearsToHome <= 5 {
		rating = rating.Add(decimal.NewFromFloat(0.3))
	} else if *sim.YearsToHome <= 10 {
		rating = rating.Add(decimal.NewFromFloat(0.1))
	}

	if rating.IsNegative() {
		rating = decimal.Zero
	}
	ten := decimal.NewFromInt(10)
	if rating.GreaterThan(ten) {
		rating = ten
	}
	return rating.Round(1)
}
