package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// PenaltyPolicy computes the late-remittance penalty for a case. Two named
// policies exist and the caller must pick one explicitly; nothing defaults
// silently to either.
type PenaltyPolicy interface {
	Name() string
	Penalty(c domain.RemittanceCase) (decimal.Decimal, error)
}

// FixedPenalty charges a flat class-dependent fee: one amount for an
// individual employer, another for a corporate one.
type FixedPenalty struct {
	Individual decimal.Decimal
	Corporate  decimal.Decimal
}

// NewFixedPenalty creates a fixed penalty policy with the default amounts.
func NewFixedPenalty() FixedPenalty {
	return FixedPenalty{
		Individual: decimal.NewFromInt(50000),
		Corporate:  decimal.NewFromInt(500000),
	}
}

// NewFixedPenaltyWithConfig creates a fixed penalty policy with configurable amounts.
func NewFixedPenaltyWithConfig(sc domain.StatutoryConfig) FixedPenalty {
	return FixedPenalty{
		Individual: sc.Remittance.FixedPenaltyIndividual,
		Corporate:  sc.Remittance.FixedPenaltyCorporate,
	}
}

// Name identifies the policy for factory lookups and report output.
func (fp FixedPenalty) Name() string { return "fixed" }

// Penalty returns the flat fee for the case's employer class. The class
// token is matched case-insensitively, an empty token defaults to corporate,
// and any other unrecognized token rejects with ErrInvalidInput.
func (fp FixedPenalty) Penalty(c domain.RemittanceCase) (decimal.Decimal, error) {
	class, err := domain.ParseEmployerClass(string(c.EmployerClass))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if class == domain.EmployerIndividual {
		return fp.Individual, nil
	}
	return fp.Corporate, nil
}

// ProportionalPenalty charges a flat share of the unpaid tax regardless of
// employer class.
type ProportionalPenalty struct {
	Rate decimal.Decimal
}

// NewProportionalPenalty creates a proportional penalty policy with the default rate.
func NewProportionalPenalty() ProportionalPenalty {
	return ProportionalPenalty{
		Rate: decimal.NewFromFloat(0.10), // Default rate
	}
}

// NewProportionalPenaltyWithConfig creates a proportional penalty policy with a configurable rate.
func NewProportionalPenaltyWithConfig(sc domain.StatutoryConfig) ProportionalPenalty {
	return ProportionalPenalty{Rate: sc.Remittance.ProportionalPenaltyRate}
}

// Name identifies the policy for factory lookups and report output.
func (pp ProportionalPenalty) Name() string { return "proportional" }

// Penalty returns Rate times the unpaid tax.
func (pp ProportionalPenalty) Penalty(c domain.RemittanceCase) (decimal.Decimal, error) {
	return c.UnpaidTax.Mul(pp.Rate), nil
}

// PenaltyPolicyByName returns the named penalty policy built from the given
// statutory config. Unknown names reject with ErrInvalidInput.
func PenaltyPolicyByName(name string, sc domain.StatutoryConfig) (PenaltyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed":
		return NewFixedPenaltyWithConfig(sc), nil
	case "proportional":
		return NewProportionalPenaltyWithConfig(sc), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized penalty policy %q (want fixed or proportional)", domain.ErrInvalidInput, name)
	}
}

// RemittanceCalculator accrues interest and penalties on tax remitted after
// its statutory due date.
type RemittanceCalculator struct {
	AnnualInterestRate decimal.Decimal
}

// NewRemittanceCalculator creates a remittance calculator with the default interest rate.
func NewRemittanceCalculator() *RemittanceCalculator {
	return &RemittanceCalculator{
		AnnualInterestRate: decimal.NewFromFloat(0.21), // Default rate
	}
}

// NewRemittanceCalculatorWithConfig creates a remittance calculator with a configurable interest rate.
func NewRemittanceCalculatorWithConfig(sc domain.StatutoryConfig) *RemittanceCalculator {
	return &RemittanceCalculator{AnnualInterestRate: sc.Remittance.AnnualInterestRate}
}

var daysPerYear = decimal.NewFromInt(365)

// PenaltyAndInterest computes the full accrual for one remittance case. A
// payment on or before the due date yields the on-time terminal result with
// zero interest and penalty. Otherwise simple interest accrues at the annual
// rate divided by 365 for each calendar day overdue, the chosen policy sets
// the penalty, and the total is unpaid tax plus interest plus penalty.
// Interest, penalty and total are rounded to two decimal places.
func (rc *RemittanceCalculator) PenaltyAndInterest(c domain.RemittanceCase, policy PenaltyPolicy) (domain.RemittanceResult, error) {
	if c.UnpaidTax.IsNegative() {
		return domain.RemittanceResult{}, fmt.Errorf("%w: unpaid tax %s is negative", domain.ErrInvalidInput, c.UnpaidTax)
	}
	if c.DueDate.IsZero() || c.PaymentDate.IsZero() {
		return domain.RemittanceResult{}, fmt.Errorf("%w: due date and payment date are both required", domain.ErrInvalidInput)
	}
	if policy == nil {
		return domain.RemittanceResult{}, fmt.Errorf("%w: a penalty policy must be selected (fixed or proportional)", domain.ErrInvalidInput)
	}

	days := daysBetween(c.DueDate, c.PaymentDate)
	if days <= 0 {
		return domain.RemittanceResult{
			PaidOnTime: true,
			UnpaidTax:  c.UnpaidTax,
		}, nil
	}

	dailyRate := rc.AnnualInterestRate.Div(daysPerYear)
	interest := c.UnpaidTax.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days))).Round(2)

	penalty, err := policy.Penalty(c)
	if err != nil {
		return domain.RemittanceResult{}, err
	}
	penalty = penalty.Round(2)

	return domain.RemittanceResult{
		UnpaidTax:      c.UnpaidTax,
		DaysOverdue:    days,
		Interest:       interest,
		Penalty:        penalty,
		TotalLiability: c.UnpaidTax.Add(interest).Add(penalty).Round(2),
	}, nil
}

// daysBetween counts whole calendar days from one date to another, ignoring
// any time-of-day component.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// OutstandingLiability reconciles a single liability against a payment
// already made. Negative inputs reject, and a payment larger than the
// liability rejects as an overpayment.
func OutstandingLiability(actualLiability, paymentMade decimal.Decimal) (decimal.Decimal, error) {
	if actualLiability.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: actual liability %s is negative", domain.ErrInvalidInput, actualLiability)
	}
	if paymentMade.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: payment made %s is negative", domain.ErrInvalidInput, paymentMade)
	}
	if paymentMade.GreaterThan(actualLiability) {
		return decimal.Decimal{}, fmt.Errorf("%w: payment made %s exceeds actual liability %s", domain.ErrInvalidInput, paymentMade, actualLiability)
	}
	return actualLiability.Sub(paymentMade).Round(2), nil
}

// OutstandingLiabilities reconciles equal-length columns of liabilities and
// payments. The whole batch is validated before any output: a length
// mismatch, a missing cell, a negative value or an overpayment on any row
// rejects the entire call.
func OutstandingLiabilities(actual, paid domain.Series) ([]decimal.Decimal, error) {
	if len(actual) != len(paid) {
		return nil, fmt.Errorf("%w: liabilities have %d rows but payments have %d", domain.ErrInvalidInput, len(actual), len(paid))
	}

	for i := range actual {
		if !actual[i].Valid {
			return nil, fmt.Errorf("%w: liability row %d is missing a value", domain.ErrInvalidInput, i+1)
		}
		if !paid[i].Valid {
			return nil, fmt.Errorf("%w: payment row %d is missing a value", domain.ErrInvalidInput, i+1)
		}
		if actual[i].Decimal.IsNegative() {
			return nil, fmt.Errorf("%w: liability row %d is negative (%s)", domain.ErrInvalidInput, i+1, actual[i].Decimal)
		}
		if paid[i].Decimal.IsNegative() {
			return nil, fmt.Errorf("%w: payment row %d is negative (%s)", domain.ErrInvalidInput, i+1, paid[i].Decimal)
		}
		if paid[i].Decimal.GreaterThan(actual[i].Decimal) {
			return nil, fmt.Errorf("%w: payment row %d (%s) exceeds its liability (%s)", domain.ErrInvalidInput, i+1, paid[i].Decimal, actual[i].Decimal)
		}
	}

	out := make([]decimal.Decimal, len(actual))
	for i := range actual {
		out[i] = actual[i].Decimal.Sub(paid[i].Decimal).Round(2)
	}
	return out, nil
}
