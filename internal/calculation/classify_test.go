package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/statepath/spgo/internal/domain"
)

func TestClassify_NoDisposableIncome(t *testing.T) {
	sim := &domain.SimulationResult{}

	tier := Classify(sim, decimal.NewFromFloat(0.50), decimal.Zero)

	assert.Equal(t, domain.TierNoPath, tier, "No disposable income means no path regardless of scores")
}

func TestClassify_AllocationGapOverrides(t *testing.T) {
	sim := &domain.SimulationResult{
		YearsToHome:               intPtr(2),
		YearsToDebtFree:           intPtr(1),
		RequiredAllocationPercent: decimal.NewFromFloat(0.40),
	}

	tier := Classify(sim, decimal.NewFromFloat(0.30), decimal.NewFromInt(60000))

	assert.Equal(t, domain.TierHigherAllocation, tier,
		"An allocation below the observed minimum overrides fast milestones")
}

func TestClassify_TierLadder(t *testing.T) {
	fast := &domain.SimulationResult{
		YearsToHome:     intPtr(2),
		YearsToDebtFree: intPtr(1),
	}

	// 40 + 30 + 20 (gap 0.50) + 10 (disposable 60k) = 100.
	tier := Classify(fast, decimal.NewFromFloat(0.50), decimal.NewFromInt(60000))
	assert.Equal(t, domain.TierVeryViable, tier, "A perfect run lands in the top tier")

	slow := &domain.SimulationResult{
		YearsToHome:     intPtr(25),
		YearsToDebtFree: intPtr(25),
	}

	// 5 + 3 + 20 + 10 = 38 falls below the extreme-care threshold.
	tier = Classify(slow, decimal.NewFromFloat(0.50), decimal.NewFromInt(60000))
	assert.Equal(t, domain.TierRentingOnly, tier, "Slow milestones drop to renting-only")
}

func TestTierForScore_Boundaries(t *testing.T) {
	assert.Equal(t, domain.TierVeryViable, TierForScore(decimal.NewFromInt(80)), "Ties resolve upward")
	assert.Equal(t, domain.TierViable, TierForScore(decimal.NewFromFloat(79.9)))
	assert.Equal(t, domain.TierViable, TierForScore(decimal.NewFromInt(60)))
	assert.Equal(t, domain.TierExtremeCare, TierForScore(decimal.NewFromInt(40)))
	assert.Equal(t, domain.TierRentingOnly, TierForScore(decimal.NewFromInt(20)))
	assert.Equal(t, domain.TierNoPath, TierForScore(decimal.NewFromInt(19)))
}

func TestCompositeScore_NoBufferBelowGap(t *testing.T) {
	sim := &domain.SimulationResult{
		YearsToHome:               intPtr(2),
		YearsToDebtFree:           intPtr(1),
		RequiredAllocationPercent: decimal.NewFromFloat(0.48),
	}

	// Gap of 0.02 earns no buffer points: 40 + 30 + 0 + 10 = 80.
	score := CompositeScore(sim, decimal.NewFromFloat(0.50), decimal.NewFromInt(60000))

	assert.True(t, score.Equal(decimal.NewFromInt(80)), "Small gaps earn no buffer points")
}

func TestViabilityRating_Adjustments(t *testing.T) {
	fast := &domain.SimulationResult{
		YearsToHome:     intPtr(3),
		YearsToDebtFree: intPtr(2),
	}

	rating := ViabilityRating(domain.TierViable, fast)
	assert.True(t, rating.Equal(decimal.NewFromFloat(8.8)), "Base 8 plus 0.5 debt and 0.3 home bonuses")

	moderate := &domain.SimulationResult{
		YearsToHome:     intPtr(8),
		YearsToDebtFree: intPtr(9),
	}

	rating = ViabilityRating(domain.TierViable, moderate)
	assert.True(t, rating.Equal(decimal.NewFromFloat(8.3)), "Base 8 plus 0.2 debt and 0.1 home bonuses")
}

func TestViabilityRating_ClampsAtBounds(t *testing.T) {
	perfect := &domain.SimulationResult{
		YearsToHome:     intPtr(0),
		YearsToDebtFree: intPtr(0),
	}

	rating := ViabilityRating(domain.TierVeryViable, perfect)
	assert.True(t, rating.Equal(decimal.NewFromInt(10)), "Bonuses never push the rating above 10")

	never := &domain.SimulationResult{}

	rating = ViabilityRating(domain.TierNoPath, never)
	assert.True(t, rating.IsZero(), "Penalties never push the rating below zero")
}
