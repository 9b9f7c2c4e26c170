package domain

import (
	"github.com/shopspring/decimal"
)

// EmployeeRecord is one employee-period row of the cleaned payroll table.
// Earnings components are nullable: a missing cell means the component was
// absent from the source document and aggregates as zero.
type EmployeeRecord struct {
	Name               string              `yaml:"name" json:"name"`
	EmployeeID         string              `yaml:"employee_id,omitempty" json:"employee_id,omitempty"`
	BasicSalary        decimal.NullDecimal `yaml:"basic_salary" json:"basic_salary"`
	HousingAllowance   decimal.NullDecimal `yaml:"housing_allowance,omitempty" json:"housing_allowance,omitempty"`
	TransportAllowance decimal.NullDecimal `yaml:"transport_allowance,omitempty" json:"transport_allowance,omitempty"`
	UtilityAllowance   decimal.NullDecimal `yaml:"utility_allowance,omitempty" json:"utility_allowance,omitempty"`
	MealAllowance      decimal.NullDecimal `yaml:"meal_allowance,omitempty" json:"meal_allowance,omitempty"`
	LeaveAllowance     decimal.NullDecimal `yaml:"leave_allowance,omitempty" json:"leave_allowance,omitempty"`
	Bonus              decimal.NullDecimal `yaml:"bonus,omitempty" json:"bonus,omitempty"`
	Arrears            decimal.NullDecimal `yaml:"arrears,omitempty" json:"arrears,omitempty"`
	OtherAllowances    decimal.NullDecimal `yaml:"other_allowances,omitempty" json:"other_allowances,omitempty"`

	// RentPaid feeds the rent relief regime; ignored under consolidated relief.
	RentPaid decimal.NullDecimal `yaml:"rent_paid,omitempty" json:"rent_paid,omitempty"`
}

// EarningsComponents returns the employee's earnings cells in table order,
// ready for row-wise aggregation.
func (e EmployeeRecord) EarningsComponents() []decimal.NullDecimal {
	return []decimal.NullDecimal{
		e.BasicSalary,
		e.HousingAllowance,
		e.TransportAllowance,
		e.UtilityAllowance,
		e.MealAllowance,
		e.LeaveAllowance,
		e.Bonus,
		e.Arrears,
		e.OtherAllowances,
	}
}

// EarningsColumnNames returns the component names matching the order of
// EarningsComponents.
func EarningsColumnNames() []string {
	return []string{
		"Basic Salary",
		"Housing Allowance",
		"Transport Allowance",
		"Utility Allowance",
		"Meal Allowance",
		"Leave Allowance",
		"Bonus",
		"Arrears",
		"Other Allowances",
	}
}

// BasicPay returns the basic salary with a missing cell read as zero. The
// housing fund contribution is charged against this base rather than gross
// earnings.
func (e EmployeeRecord) BasicPay() decimal.Decimal {
	if e.BasicSalary.Valid {
		return e.BasicSalary.Decimal
	}
	return decimal.Zero
}
