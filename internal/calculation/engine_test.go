package calculation

import (
	"fmt"
	"testing"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger records engine log lines for assertion.
type captureLogger struct {
	debugs []string
	infos  []string
}

func (c *captureLogger) Debugf(format string, args ...any) {
	c.debugs = append(c.debugs, fmt.Sprintf(format, args...))
}
func (c *captureLogger) Infof(format string, args ...any) {
	c.infos = append(c.infos, fmt.Sprintf(format, args...))
}
func (c *captureLogger) Warnf(format string, args ...any)  {}
func (c *captureLogger) Errorf(format string, args ...any) {}

func sampleEmployee() domain.EmployeeRecord {
	return domain.EmployeeRecord{
		Name:               "Musa Ibrahim",
		BasicSalary:        domain.Cell(decimal.NewFromInt(500000)),
		HousingAllowance:   domain.Cell(decimal.NewFromInt(150000)),
		TransportAllowance: domain.Cell(decimal.NewFromInt(200000)),
	}
}

func TestNewAuditEngine_Defaults(t *testing.T) {
	ae := NewAuditEngine()

	require.NotNil(t, ae.PensionCalc)
	require.NotNil(t, ae.HousingFundCalc)
	require.NotNil(t, ae.HealthCalc)
	require.NotNil(t, ae.ReliefCalc)
	require.NotNil(t, ae.RentReliefCalc)
	require.NotNil(t, ae.TaxCalc)
	assert.IsType(t, NopLogger{}, ae.Logger)
}

func TestAuditEngine_SetLogger(t *testing.T) {
	ae := NewAuditEngine()

	logger := &captureLogger{}
	ae.SetLogger(logger)
	assert.Equal(t, logger, ae.Logger)

	ae.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ae.Logger, "nil should restore the no-op logger")
}

func TestAssessEmployee_ConsolidatedYearly(t *testing.T) {
	ae := NewAuditEngine()

	row, err := ae.AssessEmployee(sampleEmployee(), AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeConsolidated,
	})
	require.NoError(t, err)

	assert.Equal(t, "Musa Ibrahim", row.Name)
	expected := map[string][2]decimal.Decimal{
		"gross earnings":   {decimal.NewFromInt(850000), row.GrossEarnings},
		"pension":          {decimal.NewFromInt(68000), row.Pension},
		"housing fund":     {decimal.NewFromInt(12500), row.HousingFund},
		"health insurance": {decimal.NewFromInt(42500), row.HealthInsurance},
		"gross income":     {decimal.NewFromInt(727000), row.GrossIncome},
		"relief allowance": {decimal.NewFromInt(345400), row.ReliefAllowance},
		"total relief":     {decimal.NewFromInt(468400), row.TotalRelief},
		"taxable income":   {decimal.NewFromInt(381600), row.TaxableIncome},
		"tax due":          {decimal.NewFromInt(29976), row.TaxDue},
	}
	for field, pair := range expected {
		assert.True(t, pair[1].Equal(pair[0]), "%s: expected %s, got %s", field, pair[0], pair[1])
	}
}

func TestAssessEmployee_ConsolidatedMonthly(t *testing.T) {
	ae := NewAuditEngine()

	row, err := ae.AssessEmployee(sampleEmployee(), AssessmentOptions{
		Period: domain.PeriodMonthly,
		Regime: domain.RegimeConsolidated,
	})
	require.NoError(t, err)

	// Monthly floor 200000/12 beats 1% of gross income here.
	relief := decimal.NewFromFloat(162066.67)
	assert.True(t, row.ReliefAllowance.Equal(relief), "Expected relief %s, got %s", relief, row.ReliefAllowance)

	totalRelief := decimal.NewFromFloat(285066.67)
	assert.True(t, row.TotalRelief.Equal(totalRelief), "Expected total relief %s, got %s", totalRelief, row.TotalRelief)

	taxable := decimal.NewFromFloat(564933.33)
	assert.True(t, row.TaxableIncome.Equal(taxable), "Expected taxable income %s, got %s", taxable, row.TaxableIncome)

	taxDue := decimal.NewFromFloat(118250.63)
	assert.True(t, row.TaxDue.Equal(taxDue), "Expected tax due %s, got %s", taxDue, row.TaxDue)
}

func TestAssessEmployee_RentRegime(t *testing.T) {
	ae := NewAuditEngine()

	rec := sampleEmployee()
	rec.RentPaid = domain.Cell(decimal.NewFromInt(1200000))

	row, err := ae.AssessEmployee(rec, AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeRent,
	})
	require.NoError(t, err)

	// 20% of 1.2m rent exceeds the cap, so relief pins at 200000.
	relief := decimal.NewFromInt(200000)
	assert.True(t, row.ReliefAllowance.Equal(relief), "Expected relief %s, got %s", relief, row.ReliefAllowance)

	taxable := decimal.NewFromInt(527000)
	assert.True(t, row.TaxableIncome.Equal(taxable), "Expected taxable income %s, got %s", taxable, row.TaxableIncome)

	taxDue := decimal.NewFromInt(45970) // 21000 + 227000 * 0.11
	assert.True(t, row.TaxDue.Equal(taxDue), "Expected tax due %s, got %s", taxDue, row.TaxDue)
}

func TestAssessEmployee_RentRegimeMissingRent(t *testing.T) {
	ae := NewAuditEngine()

	row, err := ae.AssessEmployee(sampleEmployee(), AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeRent,
	})
	require.NoError(t, err)

	assert.True(t, row.ReliefAllowance.IsZero(), "missing rent cell should yield zero relief, got %s", row.ReliefAllowance)

	taxable := decimal.NewFromInt(727000)
	assert.True(t, row.TaxableIncome.Equal(taxable), "Expected taxable income %s, got %s", taxable, row.TaxableIncome)

	taxDue := decimal.NewFromInt(73050) // 21000 + 33000 + 127000 * 0.15
	assert.True(t, row.TaxDue.Equal(taxDue), "Expected tax due %s, got %s", taxDue, row.TaxDue)
}

func TestAssessEmployee_UnknownRegime(t *testing.T) {
	ae := NewAuditEngine()

	_, err := ae.AssessEmployee(sampleEmployee(), AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.ReliefRegime("flat"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssessEmployee_NegativeComponent(t *testing.T) {
	ae := NewAuditEngine()

	rec := sampleEmployee()
	rec.Bonus = domain.Cell(decimal.NewFromInt(-1))

	_, err := ae.AssessEmployee(rec, AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeConsolidated,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssessEmployee_Idempotent(t *testing.T) {
	ae := NewAuditEngine()
	opts := AssessmentOptions{Period: domain.PeriodYearly, Regime: domain.RegimeConsolidated}

	first, err := ae.AssessEmployee(sampleEmployee(), opts)
	require.NoError(t, err)
	second, err := ae.AssessEmployee(sampleEmployee(), opts)
	require.NoError(t, err)

	firstCells, secondCells := first.Cells(), second.Cells()
	require.Len(t, secondCells, len(firstCells))
	for i := range firstCells {
		assert.True(t, firstCells[i].Equal(secondCells[i]),
			"column %d: first run %s, second run %s", i, firstCells[i], secondCells[i])
	}
}

func TestAssessEmployee_DebugLogging(t *testing.T) {
	ae := NewAuditEngine()
	logger := &captureLogger{}
	ae.SetLogger(logger)

	_, err := ae.AssessEmployee(sampleEmployee(), AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeConsolidated,
	})
	require.NoError(t, err)

	require.Len(t, logger.debugs, 2)
	assert.Contains(t, logger.debugs[0], "Musa Ibrahim")
}

func TestAuditEngineWithConfig(t *testing.T) {
	sc := domain.DefaultStatutory()
	sc.Deductions.Pension = decimal.NewFromFloat(0.10)

	ae := NewAuditEngineWithConfig(sc)
	row, err := ae.AssessEmployee(sampleEmployee(), AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeConsolidated,
	})
	require.NoError(t, err)

	pension := decimal.NewFromInt(85000)
	assert.True(t, row.Pension.Equal(pension), "Expected pension %s, got %s", pension, row.Pension)
}

func TestAssessTable(t *testing.T) {
	ae := NewAuditEngine()
	logger := &captureLogger{}
	ae.SetLogger(logger)

	recs := []domain.EmployeeRecord{
		sampleEmployee(),
		{
			Name:        "Adaeze Okafor",
			BasicSalary: domain.Cell(decimal.NewFromInt(200000)),
		},
	}

	report, err := ae.AssessTable(recs, AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeConsolidated,
	})
	require.NoError(t, err)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, domain.PeriodYearly, report.Period)
	assert.Equal(t, domain.RegimeConsolidated, report.Regime)

	// Relief for the second employee exceeds earnings, so tax floors at zero.
	assert.True(t, report.Rows[1].TaxableIncome.IsZero(),
		"Expected zero taxable income, got %s", report.Rows[1].TaxableIncome)
	assert.True(t, report.Rows[1].TaxDue.IsZero(),
		"Expected zero tax due, got %s", report.Rows[1].TaxDue)

	totalGross := decimal.NewFromInt(1050000)
	assert.True(t, report.Total.GrossEarnings.Equal(totalGross),
		"Expected total gross %s, got %s", totalGross, report.Total.GrossEarnings)
	totalTax := decimal.NewFromInt(29976)
	assert.True(t, report.Total.TaxDue.Equal(totalTax),
		"Expected total tax %s, got %s", totalTax, report.Total.TaxDue)

	require.Len(t, logger.infos, 1)
	assert.Contains(t, logger.infos[0], "assessed 2 employees")
}

func TestAssessTable_EmptyTable(t *testing.T) {
	ae := NewAuditEngine()

	_, err := ae.AssessTable(nil, AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeConsolidated,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssessTable_OneBadRowFailsBatch(t *testing.T) {
	ae := NewAuditEngine()

	bad := sampleEmployee()
	bad.Name = "Bad Row"
	bad.Arrears = domain.Cell(decimal.NewFromInt(-500))

	report, err := ae.AssessTable([]domain.EmployeeRecord{sampleEmployee(), bad}, AssessmentOptions{
		Period: domain.PeriodYearly,
		Regime: domain.RegimeConsolidated,
	})
	require.Error(t, err)
	assert.Nil(t, report, "no report should be produced when any row is invalid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "row 2 (Bad Row)")
}
