package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
)

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableTotalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

const (
	nameColWidth = 22
	numColWidth  = 16
)

// TableFormatter renders the report as a styled console table: one row per
// employee plus the synthetic total row, the name column blank on that row.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(report *domain.AssessmentReport) ([]byte, error) {
	var buf bytes.Buffer

	columns := report.Columns()
	width := nameColWidth + numColWidth*(len(columns)-1)

	title := fmt.Sprintf("PERSONAL INCOME TAX ASSESSMENT (%s period, %s relief)", report.Period, report.Regime)
	fmt.Fprintln(&buf, tableTitleStyle.Render(title))
	fmt.Fprintln(&buf, strings.Repeat("=", width))

	fmt.Fprintln(&buf, tableHeaderStyle.Render(formatTableRow(columns[0], columns[1:])))
	fmt.Fprintln(&buf, strings.Repeat("-", width))

	for _, row := range report.Rows {
		fmt.Fprintln(&buf, formatTableRow(row.Name, cellStrings(row)))
	}

	fmt.Fprintln(&buf, strings.Repeat("-", width))
	fmt.Fprintln(&buf, tableTotalStyle.Render(formatTableRow("", cellStrings(report.Total))))
	fmt.Fprintln(&buf, strings.Repeat("=", width))

	return buf.Bytes(), nil
}

func formatTableRow(name string, cells []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s", nameColWidth, truncate(name, nameColWidth-1)))
	for _, cell := range cells {
		sb.WriteString(fmt.Sprintf("%*s", numColWidth, cell))
	}
	return sb.String()
}

func cellStrings(row domain.AssessmentRow) []string {
	cells := row.Cells()
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.StringFixed(2)
	}
	return out
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
