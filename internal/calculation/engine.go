package calculation

import (
	"fmt"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// AuditEngine orchestrates the full per-employee tax waterfall: gross
// earnings, statutory deductions, gross income, relief, taxable income and
// tax due. Every stage is a pure function, so the engine carries no state
// beyond its calculators and logger.
type AuditEngine struct {
	PensionCalc     *PensionCalculator
	HousingFundCalc *HousingFundCalculator
	HealthCalc      *HealthInsuranceCalculator
	ReliefCalc      *ConsolidatedReliefCalculator
	RentReliefCalc  *RentReliefCalculator
	TaxCalc         *TaxCalculator
	Logger          Logger
}

// NewAuditEngine creates an audit engine with the built-in statutory defaults.
func NewAuditEngine() *AuditEngine {
	return &AuditEngine{
		PensionCalc:     NewPensionCalculator(),
		HousingFundCalc: NewHousingFundCalculator(),
		HealthCalc:      NewHealthInsuranceCalculator(),
		ReliefCalc:      NewConsolidatedReliefCalculator(),
		RentReliefCalc:  NewRentReliefCalculator(),
		TaxCalc:         NewTaxCalculator(),
		Logger:          NopLogger{},
	}
}

// NewAuditEngineWithConfig creates an audit engine from a loaded statutory config.
func NewAuditEngineWithConfig(sc domain.StatutoryConfig) *AuditEngine {
	return &AuditEngine{
		PensionCalc:     NewPensionCalculatorWithConfig(sc),
		HousingFundCalc: NewHousingFundCalculatorWithConfig(sc),
		HealthCalc:      NewHealthInsuranceCalculatorWithConfig(sc),
		ReliefCalc:      NewConsolidatedReliefCalculatorWithConfig(sc),
		RentReliefCalc:  NewRentReliefCalculatorWithConfig(sc),
		TaxCalc:         NewTaxCalculatorWithConfig(sc),
		Logger:          NopLogger{},
	}
}

// SetLogger replaces the engine's logger; nil restores the no-op logger.
func (ae *AuditEngine) SetLogger(l Logger) {
	if l == nil {
		ae.Logger = NopLogger{}
		return
	}
	ae.Logger = l
}

// AssessmentOptions selects the period and relief regime for an assessment
// run. The two regimes are mutually exclusive: the engine computes exactly
// one relief component per row.
type AssessmentOptions struct {
	Period domain.Period
	Regime domain.ReliefRegime
}

// AssessEmployee runs the waterfall for one employee-period row. Earnings
// components with missing cells aggregate as zero; pension and health
// insurance are charged on gross earnings while the housing fund is charged
// on basic pay. Validation failures at any stage abort the row.
func (ae *AuditEngine) AssessEmployee(rec domain.EmployeeRecord, opts AssessmentOptions) (domain.AssessmentRow, error) {
	gross, err := GrossEarningsRow(rec.EarningsComponents()...)
	if err != nil {
		return domain.AssessmentRow{}, err
	}

	pension, err := ae.PensionCalc.Contribution(gross)
	if err != nil {
		return domain.AssessmentRow{}, err
	}
	housing, err := ae.HousingFundCalc.Contribution(rec.BasicPay())
	if err != nil {
		return domain.AssessmentRow{}, err
	}
	health, err := ae.HealthCalc.Contribution(gross)
	if err != nil {
		return domain.AssessmentRow{}, err
	}

	grossIncome := GrossIncome(gross, pension, health, housing)
	ae.Logger.Debugf("%s: gross earnings %s, deductions %s, gross income %s",
		rec.Name, gross, pension.Add(housing).Add(health), grossIncome)

	var relief decimal.Decimal
	switch opts.Regime {
	case domain.RegimeConsolidated:
		relief, err = ae.ReliefCalc.Relief(grossIncome, opts.Period)
	case domain.RegimeRent:
		rent := decimal.Zero
		if rec.RentPaid.Valid {
			rent = rec.RentPaid.Decimal
		}
		relief, err = ae.RentReliefCalc.Relief(rent)
	default:
		err = fmt.Errorf("%w: unrecognized relief regime %q (want consolidated or rent)", domain.ErrInvalidInput, string(opts.Regime))
	}
	if err != nil {
		return domain.AssessmentRow{}, err
	}

	totalRelief, err := TotalRelief(domain.ReliefSet{
		ReliefComponent: relief,
		Pension:         pension,
		HousingFund:     housing,
		HealthInsurance: health,
	})
	if err != nil {
		return domain.AssessmentRow{}, err
	}

	taxable, err := TaxableIncome(gross, totalRelief)
	if err != nil {
		return domain.AssessmentRow{}, err
	}

	taxDue, err := ae.TaxCalc.Liability(taxable, opts.Period)
	if err != nil {
		return domain.AssessmentRow{}, err
	}
	ae.Logger.Debugf("%s: relief %s, taxable income %s, tax due %s", rec.Name, totalRelief, taxable, taxDue)

	return domain.AssessmentRow{
		Name:            rec.Name,
		GrossEarnings:   gross,
		Pension:         pension,
		HousingFund:     housing,
		HealthInsurance: health,
		GrossIncome:     grossIncome,
		ReliefAllowance: relief,
		TotalRelief:     totalRelief,
		TaxableIncome:   taxable,
		TaxDue:          taxDue,
	}, nil
}

// AssessTable runs the waterfall over a whole payroll table. One invalid row
// invalidates the entire call: no report is returned unless every row
// computes cleanly. Rows are independent of each other, so the loop is a
// plain sequential pass.
func (ae *AuditEngine) AssessTable(recs []domain.EmployeeRecord, opts AssessmentOptions) (*domain.AssessmentReport, error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: payroll table is empty", domain.ErrInvalidInput)
	}

	rows := make([]domain.AssessmentRow, 0, len(recs))
	for i, rec := range recs {
		row, err := ae.AssessEmployee(rec, opts)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, rec.Name, err)
		}
		rows = append(rows, row)
	}

	ae.Logger.Infof("assessed %d employees for the %s period", len(rows), opts.Period)
	return domain.NewAssessmentReport(opts.Period, opts.Regime, rows), nil
}
