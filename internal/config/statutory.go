package config

import (
	"fmt"
	"os"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// StatutoryParser handles parsing of statutory configuration files
type StatutoryParser struct{}

// NewStatutoryParser creates a new statutory parser
func NewStatutoryParser() *StatutoryParser {
	return &StatutoryParser{}
}

// LoadFromFile loads a statutory configuration from a YAML file. The file is
// read over the built-in defaults, so a partial file overrides only the
// sections it names and inherits the rest.
func (sp *StatutoryParser) LoadFromFile(filename string) (domain.StatutoryConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.StatutoryConfig{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := domain.DefaultStatutory()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return domain.StatutoryConfig{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := sp.ValidateStatutory(config); err != nil {
		return domain.StatutoryConfig{}, fmt.Errorf("statutory validation failed: %w", err)
	}

	return config, nil
}

// LoadOrDefault returns the built-in statutory tables when no path is given,
// otherwise loads and validates the named file.
func (sp *StatutoryParser) LoadOrDefault(filename string) (domain.StatutoryConfig, error) {
	if filename == "" {
		return domain.DefaultStatutory(), nil
	}
	return sp.LoadFromFile(filename)
}

// ValidateStatutory validates a loaded statutory configuration
func (sp *StatutoryParser) ValidateStatutory(config domain.StatutoryConfig) error {
	if err := sp.validateDeductions(config.Deductions); err != nil {
		return fmt.Errorf("deduction rates validation failed: %w", err)
	}
	if err := sp.validateConsolidatedRelief(config.ConsolidatedRelief); err != nil {
		return fmt.Errorf("consolidated relief validation failed: %w", err)
	}
	if err := sp.validateRentRelief(config.RentRelief); err != nil {
		return fmt.Errorf("rent relief validation failed: %w", err)
	}
	if err := sp.validateSchedule("annual", config.AnnualSchedule); err != nil {
		return fmt.Errorf("annual schedule validation failed: %w", err)
	}
	if err := sp.validateSchedule("monthly", config.MonthlySchedule); err != nil {
		return fmt.Errorf("monthly schedule validation failed: %w", err)
	}
	if err := sp.validateRemittance(config.Remittance); err != nil {
		return fmt.Errorf("remittance rules validation failed: %w", err)
	}
	if err := sp.validateWithholding(config.Withholding); err != nil {
		return fmt.Errorf("withholding table validation failed: %w", err)
	}
	if !isProportion(config.VATRate) {
		return fmt.Errorf("vat rate must be between 0 and 1, got %s", config.VATRate)
	}
	return nil
}

// validateDeductions validates the default statutory deduction rates
func (sp *StatutoryParser) validateDeductions(d domain.DeductionRates) error {
	if !isProportion(d.Pension) {
		return fmt.Errorf("pension rate must be between 0 and 1, got %s", d.Pension)
	}
	if !isProportion(d.HousingFund) {
		return fmt.Errorf("housing fund rate must be between 0 and 1, got %s", d.HousingFund)
	}
	if !isProportion(d.HealthInsurance) {
		return fmt.Errorf("health insurance rate must be between 0 and 1, got %s", d.HealthInsurance)
	}
	return nil
}

// validateConsolidatedRelief validates the consolidated relief rule
func (sp *StatutoryParser) validateConsolidatedRelief(r domain.ConsolidatedReliefRules) error {
	if r.YearlyFloor.IsNegative() {
		return fmt.Errorf("yearly floor cannot be negative, got %s", r.YearlyFloor)
	}
	if !isProportion(r.ComparisonRate) {
		return fmt.Errorf("comparison rate must be between 0 and 1, got %s", r.ComparisonRate)
	}
	if !isProportion(r.FlatRate) {
		return fmt.Errorf("flat rate must be between 0 and 1, got %s", r.FlatRate)
	}
	return nil
}

// validateRentRelief validates the rent relief rule
func (sp *StatutoryParser) validateRentRelief(r domain.RentReliefRules) error {
	if r.Cap.IsNegative() {
		return fmt.Errorf("cap cannot be negative, got %s", r.Cap)
	}
	if !isProportion(r.Rate) {
		return fmt.Errorf("rate must be between 0 and 1, got %s", r.Rate)
	}
	return nil
}

// validateSchedule validates one progressive schedule
func (sp *StatutoryParser) validateSchedule(name string, s domain.Schedule) error {
	if len(s.Bands) == 0 {
		return fmt.Errorf("%s schedule needs at least one band", name)
	}
	for i, band := range s.Bands {
		if !band.Width.IsPositive() {
			return fmt.Errorf("%s schedule band %d width must be positive, got %s", name, i+1, band.Width)
		}
		if !isProportion(band.Rate) {
			return fmt.Errorf("%s schedule band %d rate must be between 0 and 1, got %s", name, i+1, band.Rate)
		}
	}
	if !isProportion(s.TopRate) {
		return fmt.Errorf("%s schedule top rate must be between 0 and 1, got %s", name, s.TopRate)
	}
	return nil
}

// validateRemittance validates the late-remittance accrual terms
func (sp *StatutoryParser) validateRemittance(r domain.RemittanceRules) error {
	if r.AnnualInterestRate.IsNegative() {
		return fmt.Errorf("annual interest rate cannot be negative, got %s", r.AnnualInterestRate)
	}
	if r.FixedPenaltyIndividual.IsNegative() {
		return fmt.Errorf("individual fixed penalty cannot be negative, got %s", r.FixedPenaltyIndividual)
	}
	if r.FixedPenaltyCorporate.IsNegative() {
		return fmt.Errorf("corporate fixed penalty cannot be negative, got %s", r.FixedPenaltyCorporate)
	}
	if !isProportion(r.ProportionalPenaltyRate) {
		return fmt.Errorf("proportional penalty rate must be between 0 and 1, got %s", r.ProportionalPenaltyRate)
	}
	return nil
}

// validateWithholding validates the deduction-at-source rate table
func (sp *StatutoryParser) validateWithholding(table map[string]domain.WithholdingRate) error {
	if len(table) == 0 {
		return fmt.Errorf("withholding table is empty")
	}
	for category, rate := range table {
		if !isProportion(rate.Individual) {
			return fmt.Errorf("category %q individual rate must be between 0 and 1, got %s", category, rate.Individual)
		}
		if !isProportion(rate.Corporate) {
			return fmt.Errorf("category %q corporate rate must be between 0 and 1, got %s", category, rate.Corporate)
		}
	}
	return nil
}

var one = decimal.NewFromInt(1)

func isProportion(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(one)
}
