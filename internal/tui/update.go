package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case PayrollLoadedMsg:
		m.loading = false
		m.records = msg.Records
		m.report = msg.Report
		m.table.SetRows(resultRows(msg.Report))
		return m, nil

	case ReportMsg:
		m.loading = false
		m.report = msg.Report
		m.table.SetRows(resultRows(msg.Report))
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "q"))):
		return m, tea.Quit

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		m.showDetail = !m.showDetail
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("m"))):
		return m.switchPeriod(domain.PeriodMonthly)

	case key.Matches(msg, key.NewBinding(key.WithKeys("y"))):
		return m.switchPeriod(domain.PeriodYearly)

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		return m.toggleRegime()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) switchPeriod(period domain.Period) (tea.Model, tea.Cmd) {
	if m.period == period || m.records == nil {
		return m, nil
	}
	m.period = period
	m.loading = true
	return m, assessCmd(m.engine, m.records, m.options())
}

func (m Model) toggleRegime() (tea.Model, tea.Cmd) {
	if m.records == nil {
		return m, nil
	}
	if m.regime == domain.RegimeConsolidated {
		m.regime = domain.RegimeRent
	} else {
		m.regime = domain.RegimeConsolidated
	}
	m.loading = true
	return m, assessCmd(m.engine, m.records, m.options())
}

// tableHeight sizes the browser table to the terminal, leaving room for the
// title, totals and status bars plus the detail pane when it is open.
func (m Model) tableHeight() int {
	reserved := 7
	if m.showDetail {
		reserved += 13
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	return h
}
