package calculation

import (
	"testing"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrossEarnings_RowWiseSum(t *testing.T) {
	basic := domain.NewSeries(decimal.NewFromInt(500000), decimal.NewFromInt(300000))
	housing := domain.NewSeries(decimal.NewFromInt(150000), decimal.NewFromInt(90000))
	transport := domain.NewSeries(decimal.NewFromInt(200000), decimal.NewFromInt(60000))

	got, err := GrossEarnings(basic, housing, transport)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(decimal.NewFromInt(850000)), "Expected 850000, got %s", got[0])
	assert.True(t, got[1].Equal(decimal.NewFromInt(450000)), "Expected 450000, got %s", got[1])
}

func TestGrossEarnings_MissingCellsSumToZero(t *testing.T) {
	// Row 2 is missing in every component: it must aggregate to zero, not
	// fail and not stay missing.
	basic := domain.Series{domain.Cell(decimal.NewFromInt(500000)), domain.MissingCell()}
	housing := domain.Series{domain.Cell(decimal.NewFromInt(200000)), domain.MissingCell()}
	transport := domain.Series{domain.Cell(decimal.NewFromInt(100000)), domain.MissingCell()}

	got, err := GrossEarnings(basic, housing, transport)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(decimal.NewFromInt(800000)), "Expected 800000, got %s", got[0])
	assert.True(t, got[1].IsZero(), "all-missing row should sum to zero, got %s", got[1])
}

func TestGrossEarnings_PartiallyMissingRow(t *testing.T) {
	basic := domain.Series{domain.Cell(decimal.NewFromInt(500000))}
	bonus := domain.Series{domain.MissingCell()}

	got, err := GrossEarnings(basic, bonus)
	require.NoError(t, err)
	assert.True(t, got[0].Equal(decimal.NewFromInt(500000)), "missing cell should count as zero")
}

func TestGrossEarnings_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		components []domain.Series
	}{
		{
			name:       "no components",
			components: nil,
		},
		{
			name: "length mismatch",
			components: []domain.Series{
				domain.NewSeries(decimal.NewFromInt(1), decimal.NewFromInt(2)),
				domain.NewSeries(decimal.NewFromInt(3)),
			},
		},
		{
			name: "negative value",
			components: []domain.Series{
				domain.NewSeries(decimal.NewFromInt(500000), decimal.NewFromInt(-1)),
				domain.NewSeries(decimal.NewFromInt(150000), decimal.NewFromInt(90000)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GrossEarnings(tt.components...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGrossEarningsRow(t *testing.T) {
	got, err := GrossEarningsRow(
		domain.Cell(decimal.NewFromInt(500000)),
		domain.Cell(decimal.NewFromInt(150000)),
		domain.MissingCell(),
		domain.Cell(decimal.NewFromInt(200000)),
	)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(850000)), "Expected 850000, got %s", got)

	allMissing, err := GrossEarningsRow(domain.MissingCell(), domain.MissingCell())
	require.NoError(t, err)
	assert.True(t, allMissing.IsZero(), "all-missing row should sum to zero")

	_, err = GrossEarningsRow(domain.Cell(decimal.NewFromInt(-5)))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
