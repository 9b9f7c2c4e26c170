package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	filePrefix = "pitaudit_"
	fileExt    = ".json"
)

// Container is one period's assessment run as persisted on disk: the result
// table plus the run metadata and the statutory tables that were in force
// when it was produced.
type Container struct {
	RunID     string                   `json:"run_id"`
	Period    string                   `json:"period"`
	CreatedAt time.Time                `json:"created_at"`
	Statutory domain.StatutoryConfig   `json:"statutory"`
	Report    *domain.AssessmentReport `json:"report"`
}

// PeriodSummary is the cross-period view of one stored container: the total
// row's designated columns plus the run metadata, without the per-employee
// rows.
type PeriodSummary struct {
	Period        string          `json:"period"`
	RunID         string          `json:"run_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Employees     int             `json:"employees"`
	GrossEarnings decimal.Decimal `json:"gross_earnings"`
	TotalRelief   decimal.Decimal `json:"total_relief"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	TaxDue        decimal.Decimal `json:"tax_due"`
}

// Store reads and writes dated period containers under a single directory.
// The computation core never touches this package; it consumes reports
// through their serialization-agnostic accessors.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// SavePeriod persists one period's report as a dated JSON container named
// after the period token and returns the written container. An existing
// container for the same period is overwritten.
func (s *Store) SavePeriod(period string, report *domain.AssessmentReport, statutory domain.StatutoryConfig) (*Container, error) {
	if err := validatePeriodToken(period); err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("%w: report is required", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", s.Dir, err)
	}

	container := &Container{
		RunID:     uuid.NewString(),
		Period:    period,
		CreatedAt: time.Now().UTC(),
		Statutory: statutory,
		Report:    report,
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode period container: %w", err)
	}

	path := s.periodPath(period)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write period container %s: %w", path, err)
	}
	return container, nil
}

// LoadPeriod reads one period's container back from disk.
func (s *Store) LoadPeriod(period string) (*Container, error) {
	if err := validatePeriodToken(period); err != nil {
		return nil, err
	}

	path := s.periodPath(period)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read period container %s: %w", path, err)
	}

	var container Container
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, fmt.Errorf("failed to decode period container %s: %w", path, err)
	}
	return &container, nil
}

// Periods lists the period tokens stored in the directory, sorted.
func (s *Store) Periods() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory %s: %w", s.Dir, err)
	}

	var periods []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if period, ok := PeriodFromFilename(entry.Name()); ok {
			periods = append(periods, period)
		}
	}
	sort.Strings(periods)
	return periods, nil
}

// Summaries loads every stored container and reduces each to its
// cross-period summary, sorted by period token.
func (s *Store) Summaries() ([]PeriodSummary, error) {
	periods, err := s.Periods()
	if err != nil {
		return nil, err
	}

	summaries := make([]PeriodSummary, 0, len(periods))
	for _, period := range periods {
		container, err := s.LoadPeriod(period)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, Summarize(container))
	}
	return summaries, nil
}

// Summarize reduces a container to its cross-period summary.
func Summarize(c *Container) PeriodSummary {
	sum := PeriodSummary{
		Period:    c.Period,
		RunID:     c.RunID,
		CreatedAt: c.CreatedAt,
	}
	if c.Report != nil {
		sum.Employees = len(c.Report.Rows)
		sum.GrossEarnings = c.Report.Total.GrossEarnings
		sum.TotalRelief = c.Report.Total.TotalRelief
		sum.TaxableIncome = c.Report.Total.TaxableIncome
		sum.TaxDue = c.Report.Total.TaxDue
	}
	return sum
}

// PeriodFromFilename extracts the period token from a container filename,
// e.g. "pitaudit_2024-06.json" yields "2024-06".
func PeriodFromFilename(name string) (string, bool) {
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
		return "", false
	}
	period := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	if period == "" {
		return "", false
	}
	return period, true
}

func (s *Store) periodPath(period string) string {
	return filepath.Join(s.Dir, filePrefix+period+fileExt)
}

func validatePeriodToken(period string) error {
	if strings.TrimSpace(period) == "" {
		return fmt.Errorf("%w: period token is required", domain.ErrInvalidInput)
	}
	if strings.ContainsAny(period, `/\`) {
		return fmt.Errorf("%w: period token %q must not contain path separators", domain.ErrInvalidInput, period)
	}
	return nil
}
