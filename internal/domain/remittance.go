package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EmployerClass identifies the remitting employer for penalty purposes.
type EmployerClass string

const (
	EmployerIndividual EmployerClass = "individual"
	EmployerCorporate  EmployerClass = "corporate"
)

// ParseEmployerClass maps a raw class token to an EmployerClass. Matching is
// case-insensitive and an empty token defaults to corporate; any other
// unrecognized token rejects with ErrInvalidInput.
func ParseEmployerClass(s string) (EmployerClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return EmployerCorporate, nil
	case string(EmployerIndividual):
		return EmployerIndividual, nil
	case string(EmployerCorporate):
		return EmployerCorporate, nil
	default:
		return "", fmt.Errorf("%w: unrecognized employer class %q (want individual or corporate)", ErrInvalidInput, s)
	}
}

// RemittanceCase describes one late-remittance audit event. Constructed once
// per event and never mutated; a payment date on or before the due date
// collapses the case to the on-time terminal result.
type RemittanceCase struct {
	UnpaidTax     decimal.Decimal `yaml:"unpaid_tax" json:"unpaid_tax"`
	DueDate       time.Time       `yaml:"due_date" json:"due_date"`
	PaymentDate   time.Time       `yaml:"payment_date" json:"payment_date"`
	EmployerClass EmployerClass   `yaml:"employer_class" json:"employer_class"`
}

// RemittanceResult is the outcome of a remittance accrual computation.
// PaidOnTime true means the remaining fields carry no liability beyond the
// unpaid tax itself.
type RemittanceResult struct {
	PaidOnTime     bool            `json:"paid_on_time"`
	UnpaidTax      decimal.Decimal `json:"unpaid_tax"`
	DaysOverdue    int             `json:"days_overdue"`
	Interest       decimal.Decimal `json:"interest_amount"`
	Penalty        decimal.Decimal `json:"penalty_amount"`
	TotalLiability decimal.Decimal `json:"total_liability"`
}
