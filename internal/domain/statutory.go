package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatutoryConfig contains every statutory constant the computation engines
// consume: default deduction rates, relief rules, both progressive schedules,
// remittance accrual terms, and the withholding/VAT tables. It is loaded once
// at startup (or taken from DefaultStatutory) and never mutated; per-call
// overrides travel through explicit parameters instead.
type StatutoryConfig struct {
	Metadata           StatutoryMetadata          `yaml:"metadata" json:"metadata"`
	Deductions         DeductionRates             `yaml:"deductions" json:"deductions"`
	ConsolidatedRelief ConsolidatedReliefRules    `yaml:"consolidated_relief" json:"consolidated_relief"`
	RentRelief         RentReliefRules            `yaml:"rent_relief" json:"rent_relief"`
	AnnualSchedule     Schedule                   `yaml:"annual_schedule" json:"annual_schedule"`
	MonthlySchedule    Schedule                   `yaml:"monthly_schedule" json:"monthly_schedule"`
	Remittance         RemittanceRules            `yaml:"remittance" json:"remittance"`
	Withholding        map[string]WithholdingRate `yaml:"withholding" json:"withholding"`
	VATRate            decimal.Decimal            `yaml:"vat_rate" json:"vat_rate"`
}

// StatutoryMetadata records where the loaded statutory data came from.
type StatutoryMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// DeductionRates carries the default statutory deduction rates as proportions.
type DeductionRates struct {
	Pension         decimal.Decimal `yaml:"pension" json:"pension"`
	HousingFund     decimal.Decimal `yaml:"housing_fund" json:"housing_fund"`
	HealthInsurance decimal.Decimal `yaml:"health_insurance" json:"health_insurance"`
}

// ConsolidatedReliefRules parameterize the consolidated relief allowance:
// relief = max(ComparisonRate * gross income, period floor) + FlatRate *
// gross income, where the monthly floor is YearlyFloor / 12.
type ConsolidatedReliefRules struct {
	YearlyFloor    decimal.Decimal `yaml:"yearly_floor" json:"yearly_floor"`
	ComparisonRate decimal.Decimal `yaml:"comparison_rate" json:"comparison_rate"`
	FlatRate       decimal.Decimal `yaml:"flat_rate" json:"flat_rate"`
}

// RentReliefRules parameterize the alternative rent-based relief:
// relief = min(Cap, Rate * annual rent paid).
type RentReliefRules struct {
	Cap  decimal.Decimal `yaml:"cap" json:"cap"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Band is one fixed-width step of a progressive schedule.
type Band struct {
	Width decimal.Decimal `yaml:"width" json:"width"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Schedule is a progressive tax schedule: fixed-width bands consumed in
// order, with all income beyond the last band taxed at TopRate.
type Schedule struct {
	Bands   []Band          `yaml:"bands" json:"bands"`
	TopRate decimal.Decimal `yaml:"top_rate" json:"top_rate"`
}

// RemittanceRules carries the late-remittance accrual terms.
type RemittanceRules struct {
	AnnualInterestRate      decimal.Decimal `yaml:"annual_interest_rate" json:"annual_interest_rate"`
	FixedPenaltyIndividual  decimal.Decimal `yaml:"fixed_penalty_individual" json:"fixed_penalty_individual"`
	FixedPenaltyCorporate   decimal.Decimal `yaml:"fixed_penalty_corporate" json:"fixed_penalty_corporate"`
	ProportionalPenaltyRate decimal.Decimal `yaml:"proportional_penalty_rate" json:"proportional_penalty_rate"`
}

// WithholdingRate holds the deduction-at-source rates for one transaction
// category, split by payee class.
type WithholdingRate struct {
	Individual decimal.Decimal `yaml:"individual" json:"individual"`
	Corporate  decimal.Decimal `yaml:"corporate" json:"corporate"`
}

// ScheduleFor returns the schedule matching the assessment period.
func (sc StatutoryConfig) ScheduleFor(p Period) (Schedule, error) {
	switch p {
	case PeriodYearly:
		return sc.AnnualSchedule, nil
	case PeriodMonthly:
		return sc.MonthlySchedule, nil
	default:
		return Schedule{}, fmt.Errorf("%w: unrecognized period %q (want yearly or monthly)", ErrInvalidInput, string(p))
	}
}

// DefaultStatutory returns the built-in statutory tables used when no config
// file is supplied.
//
// The monthly schedule is a fixed statutory table of its own, not a runtime
// division of the annual one: the third and fourth bands carry 41,667 (500,000
// / 12 rounded up) while the fifth carries 133,333 (1,600,000 / 12 rounded
// down). Both tables are reproduced verbatim from the published schedule.
func DefaultStatutory() StatutoryConfig {
	return StatutoryConfig{
		Metadata: StatutoryMetadata{
			DataYear:    2024,
			LastUpdated: "2024-06-30",
			Description: "Personal Income Tax Act rates with FIRS deduction-at-source schedule",
		},
		Deductions: DeductionRates{
			Pension:         decimal.NewFromFloat(0.08),
			HousingFund:     decimal.NewFromFloat(0.025),
			HealthInsurance: decimal.NewFromFloat(0.05),
		},
		ConsolidatedRelief: ConsolidatedReliefRules{
			YearlyFloor:    decimal.NewFromInt(200000),
			ComparisonRate: decimal.NewFromFloat(0.01),
			FlatRate:       decimal.NewFromFloat(0.20),
		},
		RentRelief: RentReliefRules{
			Cap:  decimal.NewFromInt(200000),
			Rate: decimal.NewFromFloat(0.20),
		},
		AnnualSchedule: Schedule{
			Bands: []Band{
				{decimal.NewFromInt(300000), decimal.NewFromFloat(0.07)},
				{decimal.NewFromInt(300000), decimal.NewFromFloat(0.11)},
				{decimal.NewFromInt(500000), decimal.NewFromFloat(0.15)},
				{decimal.NewFromInt(500000), decimal.NewFromFloat(0.19)},
				{decimal.NewFromInt(1600000), decimal.NewFromFloat(0.21)},
			},
			TopRate: decimal.NewFromFloat(0.24),
		},
		MonthlySchedule: Schedule{
			Bands: []Band{
				{decimal.NewFromInt(25000), decimal.NewFromFloat(0.07)},
				{decimal.NewFromInt(25000), decimal.NewFromFloat(0.11)},
				{decimal.NewFromInt(41667), decimal.NewFromFloat(0.15)},
				{decimal.NewFromInt(41667), decimal.NewFromFloat(0.19)},
				{decimal.NewFromInt(133333), decimal.NewFromFloat(0.21)},
			},
			TopRate: decimal.NewFromFloat(0.24),
		},
		Remittance: RemittanceRules{
			AnnualInterestRate:      decimal.NewFromFloat(0.21),
			FixedPenaltyIndividual:  decimal.NewFromInt(50000),
			FixedPenaltyCorporate:   decimal.NewFromInt(500000),
			ProportionalPenaltyRate: decimal.NewFromFloat(0.10),
		},
		Withholding: map[string]WithholdingRate{
			"dividends":          {Individual: decimal.NewFromFloat(0.10), Corporate: decimal.NewFromFloat(0.10)},
			"interest":           {Individual: decimal.NewFromFloat(0.10), Corporate: decimal.NewFromFloat(0.10)},
			"rent":               {Individual: decimal.NewFromFloat(0.10), Corporate: decimal.NewFromFloat(0.10)},
			"royalties":          {Individual: decimal.NewFromFloat(0.05), Corporate: decimal.NewFromFloat(0.10)},
			"commission":         {Individual: decimal.NewFromFloat(0.05), Corporate: decimal.NewFromFloat(0.10)},
			"consultancy":        {Individual: decimal.NewFromFloat(0.05), Corporate: decimal.NewFromFloat(0.10)},
			"technical_services": {Individual: decimal.NewFromFloat(0.05), Corporate: decimal.NewFromFloat(0.10)},
			"management_fees":    {Individual: decimal.NewFromFloat(0.05), Corporate: decimal.NewFromFloat(0.10)},
			"construction":       {Individual: decimal.NewFromFloat(0.05), Corporate: decimal.NewFromFloat(0.05)},
			"contract_supply":    {Individual: decimal.NewFromFloat(0.05), Corporate: decimal.NewFromFloat(0.05)},
			"directors_fees":     {Individual: decimal.NewFromFloat(0.10), Corporate: decimal.NewFromFloat(0.10)},
		},
		VATRate: decimal.NewFromFloat(0.075),
	}
}
