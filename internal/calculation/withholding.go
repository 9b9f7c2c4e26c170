package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// WithholdingCalculator applies the deduction-at-source rate table to
// one-off transactions such as dividends, rent or consultancy fees. Rates
// differ by transaction category and payee class.
type WithholdingCalculator struct {
	Rates map[string]domain.WithholdingRate
}

// NewWithholdingCalculator creates a withholding calculator with the default rate table.
func NewWithholdingCalculator() *WithholdingCalculator {
	return &WithholdingCalculator{Rates: domain.DefaultStatutory().Withholding}
}

// NewWithholdingCalculatorWithConfig creates a withholding calculator with a configurable rate table.
func NewWithholdingCalculatorWithConfig(sc domain.StatutoryConfig) *WithholdingCalculator {
	return &WithholdingCalculator{Rates: sc.Withholding}
}

// Deduct computes the withholding tax on a transaction amount, rounded to
// two decimal places. The category is matched case-insensitively with spaces
// read as underscores; an unknown category rejects with
// ErrUnknownTransactionType and a negative amount with ErrInvalidInput.
func (wc *WithholdingCalculator) Deduct(amount decimal.Decimal, category string, payee domain.EmployerClass) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %s is negative", domain.ErrInvalidInput, amount)
	}

	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(category)), " ", "_")
	rate, ok := wc.Rates[key]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no withholding rate for category %q", domain.ErrUnknownTransactionType, category)
	}

	class, err := domain.ParseEmployerClass(string(payee))
	if err != nil {
		return decimal.Decimal{}, err
	}

	r := rate.Corporate
	if class == domain.EmployerIndividual {
		r = rate.Individual
	}
	return amount.Mul(r).Round(2), nil
}

// Categories returns the known transaction categories in sorted order.
func (wc *WithholdingCalculator) Categories() []string {
	out := make([]string, 0, len(wc.Rates))
	for k := range wc.Rates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// VATCalculator applies the flat value-added tax rate.
type VATCalculator struct {
	Rate decimal.Decimal
}

// NewVATCalculator creates a VAT calculator with the default rate.
func NewVATCalculator() *VATCalculator {
	return &VATCalculator{
		Rate: decimal.NewFromFloat(0.075), // Default rate
	}
}

// NewVATCalculatorWithConfig creates a VAT calculator with a configurable rate.
func NewVATCalculatorWithConfig(sc domain.StatutoryConfig) *VATCalculator {
	return &VATCalculator{Rate: sc.VATRate}
}

// Tax computes the value-added tax on an amount, rounded to two decimal
// places. A negative amount rejects with ErrInvalidInput.
func (vc *VATCalculator) Tax(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %s is negative", domain.ErrInvalidInput, amount)
	}
	return amount.Mul(vc.Rate).Round(2), nil
}
