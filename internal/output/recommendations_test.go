package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statepath/spgo/internal/domain"
)

func TestGenerateRecommendations_Empty(t *testing.T) {
	assert.Nil(t, GenerateRecommendations(nil), "No results means no recommendations")
}

func TestGenerateRecommendations_HigherAllocation(t *testing.T) {
	results := []domain.StateResult{
		{
			StateName:                    "Ohio",
			Classification:               domain.TierHigherAllocation,
			ViabilityRating:              decimal.NewFromInt(5),
			RecommendedAllocationPercent: decimalPtr(decimal.NewFromFloat(0.45)),
		},
	}

	recs := GenerateRecommendations(results)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Ohio becomes viable at a 45.00% allocation")
}

func TestGenerateRecommendations_BestStateAcrossSet(t *testing.T) {
	results := []domain.StateResult{
		{StateName: "California", Classification: domain.TierRentingOnly, ViabilityRating: decimal.NewFromFloat(3.2)},
		{StateName: "Ohio", Classification: domain.TierVeryViable, ViabilityRating: decimal.NewFromFloat(9.8)},
	}

	recs := GenerateRecommendations(results)

	joined := strings.Join(recs, "\n")
	assert.Contains(t, joined, "Ohio rates highest (9.8/10)", "Should name the top-rated state")
	assert.Contains(t, joined, "smaller home size", "Renting-only states trigger the home-size suggestion")
}

func TestGenerateRecommendations_AllNoPath(t *testing.T) {
	results := []domain.StateResult{
		{StateName: "California", Classification: domain.TierNoPath},
		{StateName: "New York", Classification: domain.TierNoPath},
	}

	recs := GenerateRecommendations(results)

	joined := strings.Join(recs, "\n")
	assert.Contains(t, joined, "No state shows a viable path")
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234,567.89", FormatCurrency(decimal.NewFromFloat(1234567.89)))
	assert.Equal(t, "$999.00", FormatCurrency(decimal.NewFromInt(999)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "-$1,500.00", FormatCurrency(decimal.NewFromInt(-1500)))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "6.25%", FormatPercent(decimal.NewFromFloat(0.0625)))
	assert.Equal(t, "100.00%", FormatPercent(decimal.NewFromInt(1)))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero))
}
