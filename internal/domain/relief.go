package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Period selects between the annual and monthly statutory schedules.
type Period string

const (
	PeriodYearly  Period = "yearly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod validates a period token. Matching is case-insensitive; only
// yearly and monthly are accepted.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PeriodYearly):
		return PeriodYearly, nil
	case string(PeriodMonthly):
		return PeriodMonthly, nil
	default:
		return "", fmt.Errorf("%w: unrecognized period %q (want yearly or monthly)", ErrInvalidInput, s)
	}
}

// ReliefRegime selects which relief component feeds the total-relief sum.
// The two regimes are mutually exclusive alternatives over the same base.
type ReliefRegime string

const (
	// RegimeConsolidated applies the consolidated relief allowance.
	RegimeConsolidated ReliefRegime = "consolidated"
	// RegimeRent applies the rent-based relief instead.
	RegimeRent ReliefRegime = "rent"
)

// ParseReliefRegime validates a regime token, case-insensitively.
func ParseReliefRegime(s string) (ReliefRegime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RegimeConsolidated):
		return RegimeConsolidated, nil
	case string(RegimeRent):
		return RegimeRent, nil
	default:
		return "", fmt.Errorf("%w: unrecognized relief regime %q (want consolidated or rent)", ErrInvalidInput, s)
	}
}

// ReliefSet names the four amounts whose sum is total relief. The relief
// component is whichever of consolidated or rent relief the assessment
// regime selected upstream; the named fields remove any argument-order
// ambiguity from the waterfall.
type ReliefSet struct {
	ReliefComponent decimal.Decimal `yaml:"relief_component" json:"relief_component"`
	Pension         decimal.Decimal `yaml:"pension" json:"pension"`
	HousingFund     decimal.Decimal `yaml:"housing_fund" json:"housing_fund"`
	HealthInsurance decimal.Decimal `yaml:"health_insurance" json:"health_insurance"`
}
