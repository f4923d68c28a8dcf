package dataset

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/statepath/spgo/internal/domain"
)

// Dataset is the read-only per-state reference data, loaded once per process
// and never mutated afterwards.
type Dataset struct {
	byName map[string]*domain.StateData
	byAbbr map[string]*domain.StateData
	names  []string
}

// datasetFile is the on-disk YAML shape: state display name -> flat field map.
type datasetFile struct {
	States map[string]map[string]any `yaml:"states"`
}

// Load reads and normalizes a state dataset from a YAML file. Every field
// value passes through SafeNumber, so malformed entries load as zero rather
// than failing.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(file.States) == 0 {
		return nil, fmt.Errorf("dataset %s contains no states", path)
	}

	return New(file.States), nil
}

// New builds a Dataset from raw state records.
func New(states map[string]map[string]any) *Dataset {
	ds := &Dataset{
		byName: make(map[string]*domain.StateData, len(states)),
		byAbbr: make(map[string]*domain.StateData, len(states)),
	}
	for name, raw := range states {
		fields := make(map[string]decimal.Decimal, len(raw))
		for key, value := range raw {
			fields[key] = SafeNumber(value)
		}
		sd := &domain.StateData{
			Name:   name,
			Abbr:   AbbreviationFor(name),
			Fields: fields,
		}
		ds.byName[name] = sd
		if sd.Abbr != "" {
			ds.byAbbr[sd.Abbr] = sd
		}
		ds.names = append(ds.names, name)
	}
	sort.Strings(ds.names)
	return ds
}

// Lookup resolves a state by display name or postal abbreviation. Returns nil
// when not found; it never panics.
func (ds *Dataset) Lookup(id string) *domain.StateData {
	if ds == nil {
		return nil
	}
	if sd, ok := ds.byName[id]; ok {
		return sd
	}
	if sd, ok := ds.byAbbr[strings.ToUpper(id)]; ok {
		return sd
	}
	return nil
}

// StateNames returns all state names in sorted order.
func (ds *Dataset) StateNames() []string {
	out := make([]string, len(ds.names))
	copy(out, ds.names)
	return out
}

// Len returns the number of states loaded.
func (ds *Dataset) Len() int {
	return len(ds.names)
}

// kidBuckets maps a kid count to the dataset key fragment. Three or more kids
// share one bucket.
func kidBucket(kids int) string {
	switch {
	case kids <= 0:
		return "no_kids"
	case kids == 1:
		return "1_kid"
	case kids == 2:
		return "2_kids"
	default:
		return "3_plus_kids"
	}
}

// CostOfLivingKey returns the dataset field key for a household type and kid
// count, e.g. "cost_of_living_married_two_income_2_kids".
func CostOfLivingKey(ht domain.HouseholdType, kids int) string {
	base := string(ht)
	if !ht.Valid() {
		base = string(domain.HouseholdSingle)
	}
	return "cost_of_living_" + base + "_" + kidBucket(kids)
}

// CostOfLiving returns the annual cost-of-living figure for a household type
// and kid count in the given state. Missing data resolves to zero.
func CostOfLiving(sd *domain.StateData, ht domain.HouseholdType, kids int) decimal.Decimal {
	return sd.Field(CostOfLivingKey(ht, kids))
}

// OccupationSalary resolves an income source against a state: a positive
// manual override wins, otherwise the occupation's salary field is used,
// defaulting to zero when absent.
func OccupationSalary(sd *domain.StateData, src domain.IncomeSource) decimal.Decimal {
	if src.AnnualOverride.GreaterThan(decimal.Zero) {
		return src.AnnualOverride
	}
	return sd.Field(src.Occupation)
}

// SafeNumber coerces an untyped dataset value to a decimal. Strings are
// stripped of thousand separators and currency symbols before parsing.
// Anything unparsable coerces to zero; this function never panics and never
// produces a non-finite value.
func SafeNumber(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		// YAML numbers arrive as float64; NaN and infinities cannot be
		// represented as decimals, so they coerce to zero.
		d, err := decimal.NewFromString(strings.TrimSpace(fmt.Sprintf("%v", v)))
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		cleaned := strings.NewReplacer(",", "", "$", "", "%", "", " ", "").Replace(v)
		if cleaned == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero
		}
		return d
	case decimal.Decimal:
		return v
	default:
		return decimal.Zero
	}
}
