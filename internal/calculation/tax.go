package calculation

import (
	"fmt"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxCalculator applies the six-band progressive schedules to taxable
// income. The annual and monthly tables are both fixed statutory schedules;
// the monthly one is not derived from the annual at runtime.
type TaxCalculator struct {
	Annual  domain.Schedule
	Monthly domain.Schedule
}

// NewTaxCalculator creates a tax calculator with the built-in schedules.
func NewTaxCalculator() *TaxCalculator {
	sc := domain.DefaultStatutory()
	return &TaxCalculator{
		Annual:  sc.AnnualSchedule,
		Monthly: sc.MonthlySchedule,
	}
}

// NewTaxCalculatorWithConfig creates a tax calculator with configurable schedules.
func NewTaxCalculatorWithConfig(sc domain.StatutoryConfig) *TaxCalculator {
	return &TaxCalculator{
		Annual:  sc.AnnualSchedule,
		Monthly: sc.MonthlySchedule,
	}
}

// Liability walks the period's schedule over taxable income: each band taxes
// the lesser of the remaining income and the band width at its marginal
// rate, strictly in order, and whatever remains after the last band is taxed
// at the top rate. Rounded to two decimal places. Negative taxable income or
// an unrecognized period rejects with ErrInvalidInput.
func (tc *TaxCalculator) Liability(taxableIncome decimal.Decimal, period domain.Period) (decimal.Decimal, error) {
	if taxableIncome.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: taxable income %s is negative", domain.ErrInvalidInput, taxableIncome)
	}

	var schedule domain.Schedule
	switch period {
	case domain.PeriodYearly:
		schedule = tc.Annual
	case domain.PeriodMonthly:
		schedule = tc.Monthly
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unrecognized period %q (want yearly or monthly)", domain.ErrInvalidInput, string(period))
	}

	tax := decimal.Zero
	remaining := taxableIncome
	for _, band := range schedule.Bands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		incomeInBand := decimal.Min(remaining, band.Width)
		tax = tax.Add(incomeInBand.Mul(band.Rate))
		remaining = remaining.Sub(incomeInBand)
	}
	if remaining.GreaterThan(decimal.Zero) {
		tax = tax.Add(remaining.Mul(schedule.TopRate))
	}

	return tax.Round(2), nil
}
