package main

import (
	"fmt"

	"github.com/laws2020/nigeriaPITaudit/internal/calculation"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

func main() {
	sc := domain.DefaultStatutory()

	fmt.Println("Annual schedule:")
	printSchedule(sc.AnnualSchedule)

	fmt.Println("\nMonthly schedule (fixed statutory table):")
	printSchedule(sc.MonthlySchedule)

	fmt.Println("\nMonthly band widths vs annual/12:")
	for i, band := range sc.MonthlySchedule.Bands {
		derived := sc.AnnualSchedule.Bands[i].Width.Div(twelve).Round(2)
		diff := band.Width.Sub(derived)
		marker := ""
		if !diff.IsZero() {
			marker = "  <- diverges"
		}
		fmt.Printf("  band %d: table %12s, annual/12 %12s, diff %8s%s\n",
			i+1, band.Width.StringFixed(2), derived.StringFixed(2), diff.StringFixed(2), marker)
	}

	tableCalc := calculation.NewTaxCalculator()
	derivedCalc := &calculation.TaxCalculator{
		Annual:  sc.AnnualSchedule,
		Monthly: derivedMonthly(sc),
	}

	fmt.Println("\nMonthly liability: fixed table vs annual/12 rendition:")
	samples := []decimal.Decimal{
		decimal.NewFromInt(50000),
		decimal.NewFromInt(100000),
		decimal.NewFromInt(150000),
		decimal.NewFromInt(266667),
		decimal.NewFromInt(500000),
	}
	for _, taxable := range samples {
		fromTable, err := tableCalc.Liability(taxable, domain.PeriodMonthly)
		if err != nil {
			panic(err)
		}
		fromDerived, err := derivedCalc.Liability(taxable, domain.PeriodMonthly)
		if err != nil {
			panic(err)
		}
		fmt.Printf("  taxable %12s: table %12s, derived %12s, diff %s\n",
			taxable.StringFixed(2), fromTable.StringFixed(2), fromDerived.StringFixed(2),
			fromTable.Sub(fromDerived).StringFixed(2))
	}
}

func printSchedule(s domain.Schedule) {
	cum := decimal.Zero
	for i, band := range s.Bands {
		lower := cum
		cum = cum.Add(band.Width)
		fmt.Printf("  band %d: %12s - %12s  @ %s%%\n",
			i+1, lower.StringFixed(2), cum.StringFixed(2), band.Rate.Mul(hundred).StringFixed(0))
	}
	fmt.Printf("  above %12s               @ %s%%\n", cum.StringFixed(2), s.TopRate.Mul(hundred).StringFixed(0))
}

func derivedMonthly(sc domain.StatutoryConfig) domain.Schedule {
	bands := make([]domain.Band, len(sc.AnnualSchedule.Bands))
	for i, b := range sc.AnnualSchedule.Bands {
		bands[i] = domain.Band{Width: b.Width.Div(twelve), Rate: b.Rate}
	}
	return domain.Schedule{Bands: bands, TopRate: sc.AnnualSchedule.TopRate}
}
