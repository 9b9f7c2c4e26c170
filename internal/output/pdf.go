package output

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
)

// PDFFormatter renders the report as a landscape A4 audit table. Core PDF
// fonts cannot carry the naira sign, so amounts are plain numbers and the
// subtitle names the currency.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(report *domain.AssessmentReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Personal Income Tax Assessment")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s   Relief regime: %s   Employees: %d   All amounts in NGN",
		report.Period, report.Regime, len(report.Rows)))
	pdf.Ln(10)

	columns := report.Columns()
	widths := make([]float64, len(columns))
	widths[0] = 43
	for i := 1; i < len(widths); i++ {
		widths[i] = 26
	}

	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range report.Rows {
		writePDFRow(pdf, widths, row.Name, row)
	}

	pdf.SetFont("Helvetica", "B", 8)
	writePDFRow(pdf, widths, "", report.Total)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFRow(pdf *gofpdf.Fpdf, widths []float64, name string, row domain.AssessmentRow) {
	pdf.CellFormat(widths[0], 6, truncate(name, 28), "1", 0, "L", false, 0, "")
	for i, cell := range row.Cells() {
		pdf.CellFormat(widths[i+1], 6, cell.StringFixed(2), "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}
