package calculation

import (
	"fmt"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// GrossIncome subtracts the statutory exempt deductions from gross earnings.
// The result feeds the consolidated relief rule; it may be negative and is
// neither floored nor rounded here.
func GrossIncome(grossEarnings, pension, healthInsurance, housingFund decimal.Decimal) decimal.Decimal {
	return grossEarnings.Sub(pension).Sub(healthInsurance).Sub(housingFund)
}

// ConsolidatedReliefCalculator applies the consolidated relief allowance:
// the higher of a small percentage of gross income or a period floor, plus a
// flat share of gross income.
type ConsolidatedReliefCalculator struct {
	YearlyFloor    decimal.Decimal
	ComparisonRate decimal.Decimal
	FlatRate       decimal.Decimal
}

// NewConsolidatedReliefCalculator creates a consolidated relief calculator with the default rule.
func NewConsolidatedReliefCalculator() *ConsolidatedReliefCalculator {
	return &ConsolidatedReliefCalculator{
		YearlyFloor:    decimal.NewFromInt(200000),
		ComparisonRate: decimal.NewFromFloat(0.01),
		FlatRate:       decimal.NewFromFloat(0.20),
	}
}

// NewConsolidatedReliefCalculatorWithConfig creates a consolidated relief calculator with configurable rules.
func NewConsolidatedReliefCalculatorWithConfig(sc domain.StatutoryConfig) *ConsolidatedReliefCalculator {
	return &ConsolidatedReliefCalculator{
		YearlyFloor:    sc.ConsolidatedRelief.YearlyFloor,
		ComparisonRate: sc.ConsolidatedRelief.ComparisonRate,
		FlatRate:       sc.ConsolidatedRelief.FlatRate,
	}
}

// Relief computes max(ComparisonRate * grossIncome, period floor) +
// FlatRate * grossIncome, rounded to two decimal places. The monthly floor
// is the yearly floor divided by twelve. Negative gross income and
// unrecognized periods reject with ErrInvalidInput.
func (crc *ConsolidatedReliefCalculator) Relief(grossIncome decimal.Decimal, period domain.Period) (decimal.Decimal, error) {
	if grossIncome.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: gross income %s is negative", domain.ErrInvalidInput, grossIncome)
	}

	var floor decimal.Decimal
	switch period {
	case domain.PeriodYearly:
		floor = crc.YearlyFloor
	case domain.PeriodMonthly:
		floor = crc.YearlyFloor.Div(twelve)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unrecognized period %q (want yearly or monthly)", domain.ErrInvalidInput, string(period))
	}

	base := decimal.Max(grossIncome.Mul(crc.ComparisonRate), floor)
	return base.Add(grossIncome.Mul(crc.FlatRate)).Round(2), nil
}

// RentReliefCalculator applies the alternative rent-based relief: a flat
// share of annual rent paid, capped at a fixed ceiling.
type RentReliefCalculator struct {
	Cap  decimal.Decimal
	Rate decimal.Decimal
}

// NewRentReliefCalculator creates a rent relief calculator with the default rule.
func NewRentReliefCalculator() *RentReliefCalculator {
	return &RentReliefCalculator{
		Cap:  decimal.NewFromInt(200000),
		Rate: decimal.NewFromFloat(0.20),
	}
}

// NewRentReliefCalculatorWithConfig creates a rent relief calculator with configurable rules.
func NewRentReliefCalculatorWithConfig(sc domain.StatutoryConfig) *RentReliefCalculator {
	return &RentReliefCalculator{
		Cap:  sc.RentRelief.Cap,
		Rate: sc.RentRelief.Rate,
	}
}

// Relief computes min(Cap, Rate * rentPaid), rounded to two decimal places.
// Negative rent rejects with ErrInvalidInput.
func (rrc *RentReliefCalculator) Relief(rentPaid decimal.Decimal) (decimal.Decimal, error) {
	if rentPaid.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: rent paid %s is negative", domain.ErrInvalidInput, rentPaid)
	}
	return decimal.Min(rrc.Cap, rentPaid.Mul(rrc.Rate)).Round(2), nil
}

// TotalRelief sums the named relief amounts, rounded to two decimal places.
// Any negative field rejects with ErrInvalidInput naming the field.
func TotalRelief(set domain.ReliefSet) (decimal.Decimal, error) {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"relief component", set.ReliefComponent},
		{"pension", set.Pension},
		{"housing fund", set.HousingFund},
		{"health insurance", set.HealthInsurance},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return decimal.Decimal{}, fmt.Errorf("%w: %s %s is negative", domain.ErrInvalidInput, f.name, f.value)
		}
	}
	return set.ReliefComponent.Add(set.Pension).Add(set.HousingFund).Add(set.HealthInsurance).Round(2), nil
}

// TaxableIncome subtracts total relief from gross earnings, floored at zero
// so that relief exceeding earnings produces a zero tax base rather than a
// negative one. Rounded to two decimal places. Negative arguments reject
// with ErrInvalidInput.
func TaxableIncome(grossEarnings, totalRelief decimal.Decimal) (decimal.Decimal, error) {
	if grossEarnings.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: gross earnings %s is negative", domain.ErrInvalidInput, grossEarnings)
	}
	if totalRelief.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: total relief %s is negative", domain.ErrInvalidInput, totalRelief)
	}

	taxable := grossEarnings.Sub(totalRelief)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	return taxable.Round(2), nil
}
