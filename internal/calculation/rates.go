package calculation

import (
	"fmt"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// ExemptAmount applies a rate to a base amount to produce the exempt or
// deducted portion. The rate is normalized first; the product is returned
// unrounded. A negative base rejects with ErrInvalidInput.
func ExemptAmount(base decimal.Decimal, rate domain.RateSpec) (decimal.Decimal, error) {
	r, err := rate.Normalize()
	if err != nil {
		return decimal.Decimal{}, err
	}
	if base.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: base amount %s is negative", domain.ErrInvalidInput, base)
	}
	return base.Mul(r), nil
}

// ExemptAmounts broadcasts a rate across a column of base amounts. The whole
// column is validated before any output: a missing or negative cell rejects
// the batch.
func ExemptAmounts(base domain.Series, rate domain.RateSpec) ([]decimal.Decimal, error) {
	r, err := rate.Normalize()
	if err != nil {
		return nil, err
	}
	for i, c := range base {
		if !c.Valid {
			return nil, fmt.Errorf("%w: base row %d is missing a value", domain.ErrInvalidInput, i+1)
		}
		if c.Decimal.IsNegative() {
			return nil, fmt.Errorf("%w: base row %d is negative (%s)", domain.ErrInvalidInput, i+1, c.Decimal)
		}
	}
	out := make([]decimal.Decimal, len(base))
	for i, c := range base {
		out[i] = c.Decimal.Mul(r)
	}
	return out, nil
}

// PensionCalculator computes the statutory pension contribution on gross
// earnings.
type PensionCalculator struct {
	Rate decimal.Decimal
}

// NewPensionCalculator creates a pension calculator with the default rate.
func NewPensionCalculator() *PensionCalculator {
	return &PensionCalculator{
		Rate: decimal.NewFromFloat(0.08), // Default rate
	}
}

// NewPensionCalculatorWithConfig creates a pension calculator with a configurable rate.
func NewPensionCalculatorWithConfig(sc domain.StatutoryConfig) *PensionCalculator {
	return &PensionCalculator{Rate: sc.Deductions.Pension}
}

// Contribution computes the pension deduction on gross earnings.
func (pc *PensionCalculator) Contribution(grossEarnings decimal.Decimal) (decimal.Decimal, error) {
	return ExemptAmount(grossEarnings, domain.Proportion(pc.Rate))
}

// ContributionWithRate overrides the calculator's rate for a single call.
func (pc *PensionCalculator) ContributionWithRate(grossEarnings decimal.Decimal, rate domain.RateSpec) (decimal.Decimal, error) {
	return ExemptAmount(grossEarnings, rate)
}

// HousingFundCalculator computes the national housing fund contribution.
// The contribution is charged against basic pay, not gross earnings.
type HousingFundCalculator struct {
	Rate decimal.Decimal
}

// NewHousingFundCalculator creates a housing fund calculator with the default rate.
func NewHousingFundCalculator() *HousingFundCalculator {
	return &HousingFundCalculator{
		Rate: decimal.NewFromFloat(0.025), // Default rate
	}
}

// NewHousingFundCalculatorWithConfig creates a housing fund calculator with a configurable rate.
func NewHousingFundCalculatorWithConfig(sc domain.StatutoryConfig) *HousingFundCalculator {
	return &HousingFundCalculator{Rate: sc.Deductions.HousingFund}
}

// Contribution computes the housing fund deduction on basic pay.
func (hfc *HousingFundCalculator) Contribution(basicPay decimal.Decimal) (decimal.Decimal, error) {
	return ExemptAmount(basicPay, domain.Proportion(hfc.Rate))
}

// ContributionWithRate overrides the calculator's rate for a single call.
func (hfc *HousingFundCalculator) ContributionWithRate(basicPay decimal.Decimal, rate domain.RateSpec) (decimal.Decimal, error) {
	return ExemptAmount(basicPay, rate)
}

// HealthInsuranceCalculator computes the national health insurance
// contribution on gross earnings.
type HealthInsuranceCalculator struct {
	Rate decimal.Decimal
}

// NewHealthInsuranceCalculator creates a health insurance calculator with the default rate.
func NewHealthInsuranceCalculator() *HealthInsuranceCalculator {
	return &HealthInsuranceCalculator{
		Rate: decimal.NewFromFloat(0.05), // Default rate
	}
}

// NewHealthInsuranceCalculatorWithConfig creates a health insurance calculator with a configurable rate.
func NewHealthInsuranceCalculatorWithConfig(sc domain.StatutoryConfig) *HealthInsuranceCalculator {
	return &HealthInsuranceCalculator{Rate: sc.Deductions.HealthInsurance}
}

// Contribution computes the health insurance deduction on gross earnings.
func (hic *HealthInsuranceCalculator) Contribution(grossEarnings decimal.Decimal) (decimal.Decimal, error) {
	return ExemptAmount(grossEarnings, domain.Proportion(hic.Rate))
}

// ContributionWithRate overrides the calculator's rate for a single call.
func (hic *HealthInsuranceCalculator) ContributionWithRate(grossEarnings decimal.Decimal, rate domain.RateSpec) (decimal.Decimal, error) {
	return ExemptAmount(grossEarnings, rate)
}
