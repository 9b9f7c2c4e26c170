package tui

import (
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
)

// Message types for the Bubble Tea update cycle

// PayrollLoadedMsg signals the payroll table has been loaded and the first
// assessment has completed.
type PayrollLoadedMsg struct {
	Records []domain.EmployeeRecord
	Report  *domain.AssessmentReport
}

// ReportMsg carries a recomputed report after a period or regime switch.
type ReportMsg struct {
	Report *domain.AssessmentReport
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
