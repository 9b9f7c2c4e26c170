package calculation

import (
	"sort"
	"testing"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithholdingDeduct(t *testing.T) {
	wc := NewWithholdingCalculator()

	tests := []struct {
		name     string
		amount   decimal.Decimal
		category string
		payee    domain.EmployerClass
		expected decimal.Decimal
	}{
		{
			name:     "dividends individual",
			amount:   decimal.NewFromInt(100000),
			category: "dividends",
			payee:    domain.EmployerIndividual,
			expected: decimal.NewFromInt(10000),
		},
		{
			name:     "consultancy individual at reduced rate",
			amount:   decimal.NewFromInt(100000),
			category: "consultancy",
			payee:    domain.EmployerIndividual,
			expected: decimal.NewFromInt(5000),
		},
		{
			name:     "consultancy corporate at full rate",
			amount:   decimal.NewFromInt(100000),
			category: "consultancy",
			payee:    domain.EmployerCorporate,
			expected: decimal.NewFromInt(10000),
		},
		{
			name:     "category matching ignores case",
			amount:   decimal.NewFromInt(200000),
			category: "RENT",
			payee:    domain.EmployerCorporate,
			expected: decimal.NewFromInt(20000),
		},
		{
			name:     "category matching reads spaces as underscores",
			amount:   decimal.NewFromInt(400000),
			category: "Technical Services",
			payee:    domain.EmployerIndividual,
			expected: decimal.NewFromInt(20000),
		},
		{
			name:     "empty payee class defaults to corporate",
			amount:   decimal.NewFromInt(100000),
			category: "royalties",
			payee:    domain.EmployerClass(""),
			expected: decimal.NewFromInt(10000),
		},
		{
			name:     "construction is flat across classes",
			amount:   decimal.NewFromInt(1000000),
			category: "construction",
			payee:    domain.EmployerCorporate,
			expected: decimal.NewFromInt(50000),
		},
		{
			name:     "zero amount",
			amount:   decimal.Zero,
			category: "interest",
			payee:    domain.EmployerIndividual,
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wc.Deduct(tt.amount, tt.category, tt.payee)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "Expected %s, got %s", tt.expected, got)
		})
	}
}

func TestWithholdingDeduct_UnknownCategory(t *testing.T) {
	wc := NewWithholdingCalculator()

	_, err := wc.Deduct(decimal.NewFromInt(1000), "salaries", domain.EmployerIndividual)
	assert.ErrorIs(t, err, domain.ErrUnknownTransactionType)
	assert.Contains(t, err.Error(), "salaries")
}

func TestWithholdingDeduct_NegativeAmount(t *testing.T) {
	wc := NewWithholdingCalculator()

	_, err := wc.Deduct(decimal.NewFromInt(-1), "dividends", domain.EmployerIndividual)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWithholdingDeduct_UnknownPayeeClass(t *testing.T) {
	wc := NewWithholdingCalculator()

	_, err := wc.Deduct(decimal.NewFromInt(1000), "dividends", domain.EmployerClass("partnership"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWithholdingCategories(t *testing.T) {
	wc := NewWithholdingCalculator()

	categories := wc.Categories()
	require.NotEmpty(t, categories)
	assert.True(t, sort.StringsAreSorted(categories), "categories should be sorted")
	assert.Contains(t, categories, "dividends")
	assert.Contains(t, categories, "directors_fees")
	assert.Len(t, categories, len(domain.DefaultStatutory().Withholding))
}

func TestWithholdingCalculatorWithConfig(t *testing.T) {
	sc := domain.DefaultStatutory()
	sc.Withholding = map[string]domain.WithholdingRate{
		"dividends": {Individual: decimal.NewFromFloat(0.15), Corporate: decimal.NewFromFloat(0.15)},
	}

	wc := NewWithholdingCalculatorWithConfig(sc)

	got, err := wc.Deduct(decimal.NewFromInt(100000), "dividends", domain.EmployerIndividual)
	require.NoError(t, err)
	expected := decimal.NewFromInt(15000)
	assert.True(t, got.Equal(expected), "Expected %s, got %s", expected, got)

	_, err = wc.Deduct(decimal.NewFromInt(100000), "rent", domain.EmployerIndividual)
	assert.ErrorIs(t, err, domain.ErrUnknownTransactionType)
}

func TestVATTax(t *testing.T) {
	vc := NewVATCalculator()

	got, err := vc.Tax(decimal.NewFromInt(100000))
	require.NoError(t, err)
	expected := decimal.NewFromInt(7500)
	assert.True(t, got.Equal(expected), "Expected %s, got %s", expected, got)

	got, err = vc.Tax(decimal.NewFromFloat(1333.33))
	require.NoError(t, err)
	expected = decimal.NewFromFloat(100.00)
	assert.True(t, got.Equal(expected), "Expected %s, got %s", expected, got)

	_, err = vc.Tax(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVATCalculatorWithConfig(t *testing.T) {
	sc := domain.DefaultStatutory()
	sc.VATRate = decimal.NewFromFloat(0.10)

	vc := NewVATCalculatorWithConfig(sc)
	got, err := vc.Tax(decimal.NewFromInt(500))
	require.NoError(t, err)
	expected := decimal.NewFromInt(50)
	assert.True(t, got.Equal(expected), "Expected %s, got %s", expected, got)
}
