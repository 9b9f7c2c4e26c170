package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RateForm identifies which of the three accepted notations a caller used
// to express a deduction rate.
type RateForm int

const (
	// RateFormProportion is a decimal proportion, e.g. 0.08 for eight percent.
	RateFormProportion RateForm = iota
	// RateFormWholePercent is a whole-number percentage, e.g. 8 for eight percent.
	RateFormWholePercent
	// RateFormPercentString is a percentage string, e.g. "8%".
	RateFormPercentString
)

// RateSpec carries a deduction rate in one of three human-friendly forms.
// The form is always stated explicitly by the caller; it is never inferred
// from the magnitude of the value, so 8 cannot be silently misread as either
// 8% or 800%.
type RateSpec struct {
	Form  RateForm
	Value decimal.Decimal
	Text  string
}

// Proportion builds a RateSpec from a decimal proportion.
func Proportion(v decimal.Decimal) RateSpec {
	return RateSpec{Form: RateFormProportion, Value: v}
}

// WholePercent builds a RateSpec from a whole-number percentage.
func WholePercent(v decimal.Decimal) RateSpec {
	return RateSpec{Form: RateFormWholePercent, Value: v}
}

// PercentString builds a RateSpec from a percentage string such as "8%".
func PercentString(s string) RateSpec {
	return RateSpec{Form: RateFormPercentString, Text: s}
}

// ParseRate reads a rate from free text: a trailing percent sign selects the
// percentage-string form, anything else is taken as a decimal proportion.
// Used by CLI flags and config files where only text is available.
func ParseRate(s string) RateSpec {
	if strings.HasSuffix(strings.TrimSpace(s), "%") {
		return PercentString(s)
	}
	return RateSpec{Form: RateFormProportion, Text: s}
}

var oneHundred = decimal.NewFromInt(100)

// Normalize converts the rate to a canonical proportion. Percentage forms
// are divided by 100; proportions pass through unchanged. A non-numeric
// string, a string without a trailing percent sign, or a negative result
// rejects with ErrInvalidInput.
func (r RateSpec) Normalize() (decimal.Decimal, error) {
	var rate decimal.Decimal

	switch r.Form {
	case RateFormProportion:
		if r.Text != "" {
			v, err := decimal.NewFromString(strings.TrimSpace(r.Text))
			if err != nil {
				return decimal.Decimal{}, fmt.Errorf("%w: rate %q is not numeric", ErrInvalidInput, r.Text)
			}
			rate = v
		} else {
			rate = r.Value
		}
	case RateFormWholePercent:
		rate = r.Value.Div(oneHundred)
	case RateFormPercentString:
		s := strings.TrimSpace(r.Text)
		if !strings.HasSuffix(s, "%") {
			return decimal.Decimal{}, fmt.Errorf("%w: rate %q is missing a trailing %%", ErrInvalidInput, r.Text)
		}
		v, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(s, "%")))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%w: rate %q is not numeric", ErrInvalidInput, r.Text)
		}
		rate = v.Div(oneHundred)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: unknown rate form %d", ErrInvalidInput, r.Form)
	}

	if rate.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: rate %s is negative", ErrInvalidInput, rate)
	}
	return rate, nil
}
