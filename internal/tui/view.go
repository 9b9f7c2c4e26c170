package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/laws2020/nigeriaPITaudit/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}
	if m.loading {
		return LoadingStyle.Render("Loading payroll table...")
	}

	sections := []string{
		m.renderTitleBar(),
		m.table.View(),
		m.renderTotals(),
	}
	if m.showDetail {
		sections = append(sections, m.renderDetail())
	}
	sections = append(sections, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTitleBar renders the application title and the active options
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("PITAUDIT - Personal Income Tax Browser")
	subtitle := SubtitleStyle.Render(
		fmt.Sprintf("%s • %s period • %s relief", m.payrollPath, m.period, m.regime),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// renderTotals renders the report's synthetic total row as a one-line footer
func (m Model) renderTotals() string {
	if m.report == nil {
		return ""
	}
	t := m.report.Total
	return TotalsStyle.Render(fmt.Sprintf(
		"TOTAL  gross %s  relief %s  taxable %s  tax due %s",
		output.FormatCurrency(t.GrossEarnings),
		output.FormatCurrency(t.TotalRelief),
		output.FormatCurrency(t.TaxableIncome),
		output.FormatCurrency(t.TaxDue),
	))
}

// renderDetail renders the relief waterfall for the selected employee
func (m Model) renderDetail() string {
	row, ok := m.selectedRow()
	if !ok {
		return ""
	}

	lines := []string{
		DetailTitleStyle.Render(row.Name),
		detailLine("Gross Earnings", row.GrossEarnings, ""),
		detailLine("Pension", row.Pension, "-"),
		detailLine("Housing Fund", row.HousingFund, "-"),
		detailLine("Health Insurance", row.HealthInsurance, "-"),
		detailLine("Gross Income", row.GrossIncome, "="),
		detailLine(reliefLabel(m.regime), row.ReliefAllowance, ""),
		detailLine("Total Relief", row.TotalRelief, ""),
		detailLine("Taxable Income", row.TaxableIncome, ""),
		detailLine("Tax Due", row.TaxDue, ""),
	}

	return DetailBorderStyle.Render(strings.Join(lines, "\n"))
}

func detailLine(label string, v decimal.Decimal, op string) string {
	return fmt.Sprintf("%2s %s %s",
		op,
		DetailLabelStyle.Render(label),
		DetailValueStyle.Render(output.FormatCurrency(v)),
	)
}

func reliefLabel(regime domain.ReliefRegime) string {
	if regime == domain.RegimeRent {
		return "Rent Relief"
	}
	return "Consolidated Relief"
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("↑/↓", "select"),
		formatShortcut("enter", "detail"),
		formatShortcut("m", "monthly"),
		formatShortcut("y", "yearly"),
		formatShortcut("r", "regime"),
		formatShortcut("q", "quit"),
	}
	return StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(keyName, desc string) string {
	return StatusKeyStyle.Render(keyName) + " " + desc
}

func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
		StatusBarStyle.Render(formatShortcut("q", "quit"))
}
