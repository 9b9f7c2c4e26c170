package ingest

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// Money is a CSV cell holding a nullable amount. A blank cell stays missing
// rather than collapsing to zero, so the aggregator can tell "absent from the
// source document" apart from an explicit zero. Thousands separators are
// accepted on input.
type Money struct {
	decimal.NullDecimal
}

// Amount wraps a plain value as a populated money cell.
func Amount(v decimal.Decimal) Money {
	return Money{decimal.NewNullDecimal(v)}
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (m *Money) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		m.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	v, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid amount", domain.ErrInvalidInput, s)
	}
	m.Decimal = v
	m.Valid = true
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (m Money) MarshalCSV() (string, error) {
	if !m.Valid {
		return "", nil
	}
	return m.Decimal.String(), nil
}

// DateLayout is the calendar-date format accepted in payroll tables.
const DateLayout = "2006-01-02"

// Date is a CSV cell holding a day-granularity calendar date; blank cells
// stay zero.
type Date struct {
	time.Time
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (d *Date) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid date (want YYYY-MM-DD)", domain.ErrInvalidInput, s)
	}
	d.Time = t
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (d Date) MarshalCSV() (string, error) {
	if d.IsZero() {
		return "", nil
	}
	return d.Format(DateLayout), nil
}

// PayrollRow is one line of the cleaned payroll CSV. Earnings columns are
// optional; a column missing from the file entirely or a blank cell both
// aggregate as zero downstream. The remittance columns are only consulted
// when a row carries an unpaid tax amount.
type PayrollRow struct {
	Name               string `csv:"name" validate:"required"`
	EmployeeID         string `csv:"employee_id" validate:"-"`
	BasicSalary        Money  `csv:"basic_salary" validate:"omitempty,gte=0"`
	HousingAllowance   Money  `csv:"housing_allowance" validate:"omitempty,gte=0"`
	TransportAllowance Money  `csv:"transport_allowance" validate:"omitempty,gte=0"`
	UtilityAllowance   Money  `csv:"utility_allowance" validate:"omitempty,gte=0"`
	MealAllowance      Money  `csv:"meal_allowance" validate:"omitempty,gte=0"`
	LeaveAllowance     Money  `csv:"leave_allowance" validate:"omitempty,gte=0"`
	Bonus              Money  `csv:"bonus" validate:"omitempty,gte=0"`
	Arrears            Money  `csv:"arrears" validate:"omitempty,gte=0"`
	OtherAllowances    Money  `csv:"other_allowances" validate:"omitempty,gte=0"`
	RentPaid           Money  `csv:"rent_paid" validate:"omitempty,gte=0"`

	UnpaidTax     Money  `csv:"unpaid_tax" validate:"omitempty,gte=0"`
	DueDate       Date   `csv:"due_date" validate:"-"`
	PaymentDate   Date   `csv:"payment_date" validate:"-"`
	EmployerClass string `csv:"employer_class" validate:"-"`
}

// Loader reads payroll tables from CSV and validates every row before
// handing records to the engine.
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a payroll loader with row validation wired up.
func NewLoader() *Loader {
	vl := validator.New()
	// Teach the validator to see through the Money cell type: a missing cell
	// reads as nil (skipped by omitempty), a populated one as its numeric
	// value so gte=0 applies.
	vl.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(Money); ok {
			if !m.Valid {
				return nil
			}
			f, _ := m.Decimal.Float64()
			return f
		}
		return nil
	}, Money{})
	return &Loader{validate: vl}
}

// LoadFile reads and validates a payroll CSV file.
func (l *Loader) LoadFile(path string) ([]PayrollRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payroll file %s: %w", path, err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads and validates a payroll CSV from a reader. The whole table is
// validated before any rows are returned: one bad row rejects the batch.
func (l *Loader) Load(r io.Reader) ([]PayrollRow, error) {
	var rows []PayrollRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse payroll CSV: %w", err)
	}

	for i, row := range rows {
		if err := l.validate.Struct(row); err != nil {
			return nil, fmt.Errorf("%w: payroll row %d (%s): %v", domain.ErrInvalidInput, i+1, row.Name, err)
		}
	}
	return rows, nil
}

// EmployeeRecords converts payroll rows into engine records.
func EmployeeRecords(rows []PayrollRow) []domain.EmployeeRecord {
	recs := make([]domain.EmployeeRecord, len(rows))
	for i, row := range rows {
		recs[i] = domain.EmployeeRecord{
			Name:               row.Name,
			EmployeeID:         row.EmployeeID,
			BasicSalary:        row.BasicSalary.NullDecimal,
			HousingAllowance:   row.HousingAllowance.NullDecimal,
			TransportAllowance: row.TransportAllowance.NullDecimal,
			UtilityAllowance:   row.UtilityAllowance.NullDecimal,
			MealAllowance:      row.MealAllowance.NullDecimal,
			LeaveAllowance:     row.LeaveAllowance.NullDecimal,
			Bonus:              row.Bonus.NullDecimal,
			Arrears:            row.Arrears.NullDecimal,
			OtherAllowances:    row.OtherAllowances.NullDecimal,
			RentPaid:           row.RentPaid.NullDecimal,
		}
	}
	return recs
}

// RemittanceCases extracts the remittance audit events from a payroll table:
// one case per row carrying an unpaid tax amount. Such a row must also carry
// both dates; the employer class token defaults to corporate when blank.
func RemittanceCases(rows []PayrollRow) ([]domain.RemittanceCase, error) {
	var cases []domain.RemittanceCase
	for i, row := range rows {
		if !row.UnpaidTax.Valid {
			continue
		}
		if row.DueDate.IsZero() || row.PaymentDate.IsZero() {
			return nil, fmt.Errorf("%w: payroll row %d (%s) has unpaid tax but is missing a due or payment date",
				domain.ErrInvalidInput, i+1, row.Name)
		}
		class, err := domain.ParseEmployerClass(row.EmployerClass)
		if err != nil {
			return nil, fmt.Errorf("payroll row %d (%s): %w", i+1, row.Name, err)
		}
		cases = append(cases, domain.RemittanceCase{
			UnpaidTax:     row.UnpaidTax.Decimal,
			DueDate:       row.DueDate.Time,
			PaymentDate:   row.PaymentDate.Time,
			EmployerClass: class,
		})
	}
	return cases, nil
}
