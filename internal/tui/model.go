package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laws2020/nigeriaPITaudit/internal/calculation"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
	"github.com/laws2020/nigeriaPITaudit/internal/ingest"
)

// Model represents the entire application state: the loaded payroll table,
// the active assessment options and the result browser.
type Model struct {
	payrollPath string

	engine  *calculation.AuditEngine
	records []domain.EmployeeRecord

	period domain.Period
	regime domain.ReliefRegime
	report *domain.AssessmentReport

	table      table.Model
	showDetail bool

	// Terminal dimensions
	width  int
	height int

	loading bool
	err     error
}

// NewModel creates a new application model
func NewModel(payrollPath string) Model {
	return Model{
		payrollPath: payrollPath,
		engine:      calculation.NewAuditEngine(),
		period:      domain.PeriodYearly,
		regime:      domain.RegimeConsolidated,
		table:       newResultsTable(),
		loading:     true,
		width:       80,
		height:      24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadPayrollCmd(m.payrollPath, m.engine, m.options())
}

func (m Model) options() calculation.AssessmentOptions {
	return calculation.AssessmentOptions{Period: m.period, Regime: m.regime}
}

// loadPayrollCmd returns a command that loads the payroll CSV and runs the
// first assessment.
func loadPayrollCmd(path string, engine *calculation.AuditEngine, opts calculation.AssessmentOptions) tea.Cmd {
	return func() tea.Msg {
		rows, err := ingest.NewLoader().LoadFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		records := ingest.EmployeeRecords(rows)
		report, err := engine.AssessTable(records, opts)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return PayrollLoadedMsg{Records: records, Report: report}
	}
}

// assessCmd returns a command that re-runs the assessment with the current
// options over the already-loaded records.
func assessCmd(engine *calculation.AuditEngine, records []domain.EmployeeRecord, opts calculation.AssessmentOptions) tea.Cmd {
	return func() tea.Msg {
		report, err := engine.AssessTable(records, opts)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ReportMsg{Report: report}
	}
}

func newResultsTable() table.Model {
	columns := []table.Column{
		{Title: "Employee", Width: 22},
		{Title: "Gross Earnings", Width: 15},
		{Title: "Gross Income", Width: 15},
		{Title: "Total Relief", Width: 15},
		{Title: "Taxable Income", Width: 15},
		{Title: "Tax Due", Width: 15},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resultRows converts the report into browser table rows.
func resultRows(report *domain.AssessmentReport) []table.Row {
	rows := make([]table.Row, len(report.Rows))
	for i, r := range report.Rows {
		rows[i] = table.Row{
			r.Name,
			r.GrossEarnings.StringFixed(2),
			r.GrossIncome.StringFixed(2),
			r.TotalRelief.StringFixed(2),
			r.TaxableIncome.StringFixed(2),
			r.TaxDue.StringFixed(2),
		}
	}
	return rows
}

// selectedRow returns the assessment row under the cursor.
func (m Model) selectedRow() (domain.AssessmentRow, bool) {
	if m.report == nil {
		return domain.AssessmentRow{}, false
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.report.Rows) {
		return domain.AssessmentRow{}, false
	}
	return m.report.Rows[idx], true
}
