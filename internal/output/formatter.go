package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/statepath/spgo/internal/domain"
)

// Formatter renders a set of state results to bytes.
type Formatter interface {
	Name() string
	Format(results []domain.StateResult) ([]byte, error)
}

// GetFormatterByName returns the named formatter, or nil when unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// JSONFormatter emits the StateResult contract as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(results []domain.StateResult) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}
	return append(data, '\n'), nil
}

// CSVFormatter emits one row per state with the headline figures.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(results []domain.StateResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"state", "abbr", "classification", "rating",
		"combined_income", "disposable_income",
		"years_to_home", "years_to_debt_free",
		"home_value", "mortgage_rate", "down_payment_percent",
		"required_allocation", "recommended_allocation", "strategy",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range results {
		row := []string{
			r.StateName,
			r.StateAbbr,
			string(r.Classification),
			r.ViabilityRating.StringFixed(1),
			r.CombinedIncome.StringFixed(0),
			r.DisposableIncome.StringFixed(0),
			yearsField(r.YearsToHome),
			yearsField(r.YearsToDebtFree),
			r.HomeValue.StringFixed(0),
			r.MortgageRate.StringFixed(4),
			r.DownPaymentPercent.StringFixed(4),
			optionalPercent(r.RequiredAllocationPercent),
			optionalPercent(r.RecommendedAllocationPercent),
			string(r.ChosenStrategy),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// yearsField renders a nullable milestone; empty means never reached.
func yearsField(years *int) string {
	if years == nil {
		return ""
	}
	return strconv.Itoa(*years)
}

func optionalPercent(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.StringFixed(4)
}
