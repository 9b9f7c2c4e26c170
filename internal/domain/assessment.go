package domain

import "github.com/shopspring/decimal"

// AssessmentRow is one employee's fully-computed tax waterfall: every
// pipeline stage's output in table order. ReliefAllowance holds whichever of
// consolidated or rent relief the assessment regime selected.
type AssessmentRow struct {
	Name            string          `json:"name"`
	GrossEarnings   decimal.Decimal `json:"gross_earnings"`
	Pension         decimal.Decimal `json:"pension"`
	HousingFund     decimal.Decimal `json:"housing_fund"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	GrossIncome     decimal.Decimal `json:"gross_income"`
	ReliefAllowance decimal.Decimal `json:"relief_allowance"`
	TotalRelief     decimal.Decimal `json:"total_relief"`
	TaxableIncome   decimal.Decimal `json:"taxable_income"`
	TaxDue          decimal.Decimal `json:"tax_due"`
}

// Cells returns the row's numeric columns in Columns order, without the
// leading name column. Formatters and stores consume rows through this so
// none of them needs to know the table layout.
func (r AssessmentRow) Cells() []decimal.Decimal {
	return []decimal.Decimal{
		r.GrossEarnings,
		r.Pension,
		r.HousingFund,
		r.HealthInsurance,
		r.GrossIncome,
		r.ReliefAllowance,
		r.TotalRelief,
		r.TaxableIncome,
		r.TaxDue,
	}
}

// AssessmentReport is the result table for one payroll period: one row per
// input row plus a synthetic total row holding column sums, with the
// non-numeric name column left blank on that row.
type AssessmentReport struct {
	Period Period          `json:"period"`
	Regime ReliefRegime    `json:"regime"`
	Rows   []AssessmentRow `json:"rows"`
	Total  AssessmentRow   `json:"total"`
}

// NewAssessmentReport assembles the result table and computes the synthetic
// total row.
func NewAssessmentReport(period Period, regime ReliefRegime, rows []AssessmentRow) *AssessmentReport {
	rep := &AssessmentReport{Period: period, Regime: regime, Rows: rows}
	for _, row := range rows {
		rep.Total.GrossEarnings = rep.Total.GrossEarnings.Add(row.GrossEarnings)
		rep.Total.Pension = rep.Total.Pension.Add(row.Pension)
		rep.Total.HousingFund = rep.Total.HousingFund.Add(row.HousingFund)
		rep.Total.HealthInsurance = rep.Total.HealthInsurance.Add(row.HealthInsurance)
		rep.Total.GrossIncome = rep.Total.GrossIncome.Add(row.GrossIncome)
		rep.Total.ReliefAllowance = rep.Total.ReliefAllowance.Add(row.ReliefAllowance)
		rep.Total.TotalRelief = rep.Total.TotalRelief.Add(row.TotalRelief)
		rep.Total.TaxableIncome = rep.Total.TaxableIncome.Add(row.TaxableIncome)
		rep.Total.TaxDue = rep.Total.TaxDue.Add(row.TaxDue)
	}
	return rep
}

// Columns returns the result-table header in presentation order. The first
// column is the employee name; the rest line up with AssessmentRow.Cells.
func (rep *AssessmentReport) Columns() []string {
	return []string{
		"Employee",
		"Gross Earnings",
		"Pension",
		"Housing Fund",
		"Health Insurance",
		"Gross Income",
		"Relief Allowance",
		"Total Relief",
		"Taxable Income",
		"Tax Due",
	}
}
