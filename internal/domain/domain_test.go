package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateSpec_Normalize(t *testing.T) {
	testCases := []struct {
		name     string
		spec     RateSpec
		expected decimal.Decimal
	}{
		{
			name:     "proportion passes through",
			spec:     Proportion(decimal.NewFromFloat(0.08)),
			expected: decimal.NewFromFloat(0.08),
		},
		{
			name:     "whole percent divides by 100",
			spec:     WholePercent(decimal.NewFromInt(8)),
			expected: decimal.NewFromFloat(0.08),
		},
		{
			name:     "percent string divides by 100",
			spec:     PercentString("8%"),
			expected: decimal.NewFromFloat(0.08),
		},
		{
			name:     "percent string with spaces",
			spec:     PercentString(" 2.5 % "),
			expected: decimal.NewFromFloat(0.025),
		},
		{
			name:     "zero rate is valid",
			spec:     Proportion(decimal.Zero),
			expected: decimal.Zero,
		},
		{
			name:     "parsed proportion text",
			spec:     ParseRate("0.21"),
			expected: decimal.NewFromFloat(0.21),
		},
		{
			name:     "parsed percent text",
			spec:     ParseRate("21%"),
			expected: decimal.NewFromFloat(0.21),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.spec.Normalize()
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.expected), "Expected %s, got %s", tc.expected, got)
		})
	}
}

func TestRateSpec_Normalize_Equivalence(t *testing.T) {
	// 0.08, 8 and "8%" are three spellings of the same rate.
	proportion, err := Proportion(decimal.NewFromFloat(0.08)).Normalize()
	require.NoError(t, err)
	whole, err := WholePercent(decimal.NewFromInt(8)).Normalize()
	require.NoError(t, err)
	text, err := PercentString("8%").Normalize()
	require.NoError(t, err)

	assert.True(t, proportion.Equal(whole), "Expected %s, got %s", proportion, whole)
	assert.True(t, proportion.Equal(text), "Expected %s, got %s", proportion, text)
}

func TestRateSpec_Normalize_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		spec RateSpec
	}{
		{name: "negative proportion", spec: Proportion(decimal.NewFromFloat(-0.05))},
		{name: "negative whole percent", spec: WholePercent(decimal.NewFromInt(-8))},
		{name: "negative percent string", spec: PercentString("-8%")},
		{name: "missing percent sign", spec: PercentString("8")},
		{name: "non numeric percent string", spec: PercentString("eight%")},
		{name: "non numeric proportion text", spec: ParseRate("abc")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.spec.Normalize()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("yearly")
	require.NoError(t, err)
	assert.Equal(t, PeriodYearly, p)

	p, err = ParsePeriod("Monthly")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonthly, p)

	_, err = ParsePeriod("weekly")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParsePeriod("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseEmployerClass(t *testing.T) {
	testCases := []struct {
		token    string
		expected EmployerClass
		wantErr  bool
	}{
		{token: "individual", expected: EmployerIndividual},
		{token: "INDIVIDUAL", expected: EmployerIndividual},
		{token: "Corporate", expected: EmployerCorporate},
		{token: "", expected: EmployerCorporate}, // empty defaults to corporate
		{token: "partnership", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run("token_"+tc.token, func(t *testing.T) {
			got, err := ParseEmployerClass(tc.token)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseReliefRegime(t *testing.T) {
	r, err := ParseReliefRegime("consolidated")
	require.NoError(t, err)
	assert.Equal(t, RegimeConsolidated, r)

	r, err = ParseReliefRegime("Rent")
	require.NoError(t, err)
	assert.Equal(t, RegimeRent, r)

	_, err = ParseReliefRegime("flat")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStatutoryConfig_ScheduleFor(t *testing.T) {
	sc := DefaultStatutory()

	annual, err := sc.ScheduleFor(PeriodYearly)
	require.NoError(t, err)
	assert.Len(t, annual.Bands, 5)
	assert.True(t, annual.Bands[0].Width.Equal(decimal.NewFromInt(300000)))

	monthly, err := sc.ScheduleFor(PeriodMonthly)
	require.NoError(t, err)
	assert.Len(t, monthly.Bands, 5)
	assert.True(t, monthly.Bands[0].Width.Equal(decimal.NewFromInt(25000)))

	_, err = sc.ScheduleFor(Period("quarterly"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDefaultStatutory_MonthlyScheduleIsNotAnnualDividedBy12(t *testing.T) {
	// The published monthly table is a schedule of its own: 500,000/12 would
	// be 41,666.67 but the table carries 41,667, while 1,600,000/12 would be
	// 133,333.33 but the table carries 133,333. Guards against "fixing" the
	// table by recomputing it.
	sc := DefaultStatutory()
	twelve := decimal.NewFromInt(12)

	exactThird := sc.AnnualSchedule.Bands[2].Width.Div(twelve)
	assert.False(t, sc.MonthlySchedule.Bands[2].Width.Equal(exactThird),
		"monthly third band should not equal annual/12 (%s)", exactThird)

	exactFifth := sc.AnnualSchedule.Bands[4].Width.Div(twelve)
	assert.False(t, sc.MonthlySchedule.Bands[4].Width.Equal(exactFifth),
		"monthly fifth band should not equal annual/12 (%s)", exactFifth)

	// First two bands do divide exactly.
	assert.True(t, sc.MonthlySchedule.Bands[0].Width.Equal(sc.AnnualSchedule.Bands[0].Width.Div(twelve)))
	assert.True(t, sc.MonthlySchedule.Bands[1].Width.Equal(sc.AnnualSchedule.Bands[1].Width.Div(twelve)))
}

func TestEmployeeRecord_EarningsComponents(t *testing.T) {
	rec := EmployeeRecord{
		Name:        "Adebayo",
		BasicSalary: Cell(decimal.NewFromInt(500000)),
		Bonus:       Cell(decimal.NewFromInt(50000)),
	}

	components := rec.EarningsComponents()
	assert.Len(t, components, len(EarningsColumnNames()))
	assert.True(t, components[0].Valid)
	assert.False(t, components[1].Valid, "unset allowance should stay missing")

	assert.True(t, rec.BasicPay().Equal(decimal.NewFromInt(500000)))
	assert.True(t, EmployeeRecord{}.BasicPay().IsZero(), "missing basic salary reads as zero")
}

func TestSeries_Decimals(t *testing.T) {
	s := Series{Cell(decimal.NewFromInt(100)), MissingCell(), Cell(decimal.NewFromInt(300))}

	out := s.Decimals()
	assert.Len(t, out, 3)
	assert.True(t, out[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, out[1].IsZero(), "missing cell should unwrap to zero")
	assert.True(t, out[2].Equal(decimal.NewFromInt(300)))
}

func TestNewAssessmentReport_TotalRow(t *testing.T) {
	rows := []AssessmentRow{
		{Name: "Adebayo", GrossEarnings: decimal.NewFromInt(850000), TaxDue: decimal.NewFromFloat(29976)},
		{Name: "Chioma", GrossEarnings: decimal.NewFromInt(400000), TaxDue: decimal.NewFromFloat(11000)},
	}

	rep := NewAssessmentReport(PeriodYearly, RegimeConsolidated, rows)

	assert.Equal(t, "", rep.Total.Name, "total row leaves the name column blank")
	assert.True(t, rep.Total.GrossEarnings.Equal(decimal.NewFromInt(1250000)),
		"Expected 1250000, got %s", rep.Total.GrossEarnings)
	assert.True(t, rep.Total.TaxDue.Equal(decimal.NewFromFloat(40976)),
		"Expected 40976, got %s", rep.Total.TaxDue)

	cols := rep.Columns()
	require.NotEmpty(t, cols)
	assert.Equal(t, "Employee", cols[0])
	assert.Len(t, rows[0].Cells(), len(cols)-1, "cells should line up with the numeric columns")
}
