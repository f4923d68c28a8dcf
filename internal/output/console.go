package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/statepath/spgo/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Faint(true)

	tierStyles = map[domain.Tier]lipgloss.Style{
		domain.TierVeryViable:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		domain.TierViable:           lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		domain.TierExtremeCare:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		domain.TierHigherAllocation: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		domain.TierRentingOnly:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		domain.TierNoPath:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

// ConsoleFormatter renders a readable per-state report for terminals.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(results []domain.StateResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("STATE VIABILITY ANALYSIS"))
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf)

	for _, r := range results {
		tierStyle, ok := tierStyles[r.Classification]
		if !ok {
			tierStyle = lipgloss.NewStyle()
		}

		fmt.Fprintf(&buf, "%s (%s)  %s  %s/10\n",
			titleStyle.Render(r.StateName), r.StateAbbr,
			tierStyle.Render(string(r.Classification)),
			r.ViabilityRating.StringFixed(1))

		fmt.Fprintf(&buf, "  Combined income:    %s\n", FormatCurrency(r.CombinedIncome))
		fmt.Fprintf(&buf, "  Disposable income:  %s\n", FormatCurrency(r.DisposableIncome))
		fmt.Fprintf(&buf, "  Target home:        %s at %s, %s down\n",
			FormatCurrency(r.HomeValue),
			FormatPercent(r.MortgageRate), FormatPercent(r.DownPaymentPercent))
		fmt.Fprintf(&buf, "  Years to home:      %s\n", yearsLabel(r.YearsToHome))
		fmt.Fprintf(&buf, "  Years to debt-free: %s\n", yearsLabel(r.YearsToDebtFree))
		if r.MonthlyMortgagePayment != nil && r.MonthlyMortgagePayment.IsPositive() {
			fmt.Fprintf(&buf, "  Monthly mortgage:   %s\n", FormatCurrency(*r.MonthlyMortgagePayment))
		}
		if r.RequiredAllocationPercent != nil {
			fmt.Fprintf(&buf, "  Allocation needed:  %s (recommended %s)\n",
				FormatPercent(*r.RequiredAllocationPercent), FormatPercent(*r.RecommendedAllocationPercent))
		}
		fmt.Fprintf(&buf, "  Credit card plan:   %s\n", r.CreditCardPlan)
		for _, note := range r.Notes {
			fmt.Fprintf(&buf, "  %s\n", noteStyle.Render("- "+note))
		}
		fmt.Fprintln(&buf)
	}

	if recs := GenerateRecommendations(results); len(recs) > 0 {
		fmt.Fprintln(&buf, titleStyle.Render("RECOMMENDATIONS"))
		for _, rec := range recs {
			fmt.Fprintf(&buf, "  * %s\n", rec)
		}
	}

	return buf.Bytes(), nil
}

func yearsLabel(years *int) string {
	if years == nil {
		return "not within horizon"
	}
	if *years == 0 {
		return "immediately"
	}
	return fmt.Sprintf("%d years", *years)
}
