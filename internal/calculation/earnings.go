package calculation

import (
	"fmt"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// GrossEarnings sums earnings components row-wise into gross earnings, one
// column per component. All columns must have the same length and every
// populated cell must be non-negative; the whole batch is validated before
// any output. Missing cells aggregate as zero, and a row where every
// component is missing sums to zero rather than failing.
func GrossEarnings(components ...domain.Series) ([]decimal.Decimal, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("%w: at least one earnings component is required", domain.ErrInvalidInput)
	}

	rows := len(components[0])
	for i, col := range components {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: component %d has %d rows, want %d", domain.ErrInvalidInput, i+1, len(col), rows)
		}
		for j, c := range col {
			if c.Valid && c.Decimal.IsNegative() {
				return nil, fmt.Errorf("%w: component %d row %d is negative (%s)", domain.ErrInvalidInput, i+1, j+1, c.Decimal)
			}
		}
	}

	out := make([]decimal.Decimal, rows)
	for j := range out {
		sum := decimal.Zero
		for _, col := range components {
			if col[j].Valid {
				sum = sum.Add(col[j].Decimal)
			}
		}
		out[j] = sum
	}
	return out, nil
}

// GrossEarningsRow sums one employee-period's earnings components. Missing
// cells count as zero; a populated negative cell rejects with
// ErrInvalidInput.
func GrossEarningsRow(components ...decimal.NullDecimal) (decimal.Decimal, error) {
	for i, c := range components {
		if c.Valid && c.Decimal.IsNegative() {
			return decimal.Decimal{}, fmt.Errorf("%w: component %d is negative (%s)", domain.ErrInvalidInput, i+1, c.Decimal)
		}
	}

	sum := decimal.Zero
	for _, c := range components {
		if c.Valid {
			sum = sum.Add(c.Decimal)
		}
	}
	return sum, nil
}
