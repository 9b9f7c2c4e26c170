package domain

import "github.com/shopspring/decimal"

// Series is an ordered column of money values, one cell per employee-period
// row. A cell with Valid=false marks a value that was absent from the source
// table, which is distinct from an explicit zero.
type Series []decimal.NullDecimal

// NewSeries builds a fully-populated series from plain decimal values.
func NewSeries(values ...decimal.Decimal) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = decimal.NewNullDecimal(v)
	}
	return s
}

// Cell wraps a plain value as a populated series cell.
func Cell(v decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(v)
}

// MissingCell returns a cell marked as absent from the source table.
func MissingCell() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// Decimals unwraps the series into plain values, substituting zero for
// missing cells.
func (s Series) Decimals() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s))
	for i, c := range s {
		if c.Valid {
			out[i] = c.Decimal
		}
	}
	return out
}
