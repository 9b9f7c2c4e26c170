package output

import (
	"strings"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders an assessment report in one output format. Formatters
// consume the report through its serialization-agnostic accessors (Columns,
// Cells), so adding a pipeline column never touches this package's callers.
type Formatter interface {
	Name() string
	Format(report *domain.AssessmentReport) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil when the name is unknown. Names are matched case-insensitively;
// "console" is an alias for the table formatter.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table", "console", "":
		return TableFormatter{}
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "pdf":
		return PDFFormatter{}
	}
	return nil
}

// FormatterNames lists the registered formatter names for CLI help text.
func FormatterNames() []string {
	return []string{"table", "csv", "json", "pdf"}
}

// FormatCurrency formats an amount in naira for display.
func FormatCurrency(amount decimal.Decimal) string {
	return "₦" + amount.StringFixed(2)
}

// FormatPercentage formats a proportion as a percentage for display.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
