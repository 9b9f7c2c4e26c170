package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
)

var (
	remitTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	remitOnTimeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	remitOverdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// FormatRemittanceResult renders one remittance accrual outcome for the
// console. On-time cases collapse to a single confirmation line; overdue
// cases show the full liability breakdown.
func FormatRemittanceResult(result domain.RemittanceResult) string {
	var b strings.Builder

	b.WriteString(remitTitleStyle.Render("REMITTANCE AUDIT"))
	b.WriteString("\n\n")

	if result.PaidOnTime {
		b.WriteString(remitOnTimeStyle.Render("Remitted on time."))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-18s %s\n", "Unpaid tax:", FormatCurrency(result.UnpaidTax)))
		b.WriteString(fmt.Sprintf("%-18s %s\n", "Total liability:", FormatCurrency(result.UnpaidTax)))
		return b.String()
	}

	b.WriteString(remitOverdueStyle.Render(fmt.Sprintf("Overdue by %d day(s).", result.DaysOverdue)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-18s %s\n", "Unpaid tax:", FormatCurrency(result.UnpaidTax)))
	b.WriteString(fmt.Sprintf("%-18s %s\n", "Interest:", FormatCurrency(result.Interest)))
	b.WriteString(fmt.Sprintf("%-18s %s\n", "Penalty:", FormatCurrency(result.Penalty)))
	b.WriteString(fmt.Sprintf("%-18s %s\n", "Total liability:", FormatCurrency(result.TotalLiability)))
	return b.String()
}
