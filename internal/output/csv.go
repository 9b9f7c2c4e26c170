package output

import (
	"bytes"
	"encoding/csv"

	"github.com/laws2020/nigeriaPITaudit/internal/domain"
)

// CSVFormatter writes the report as plain CSV: a header row, one row per
// employee, and the total row last with a blank name cell.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.AssessmentReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(report.Columns()); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		if err := w.Write(csvRow(row.Name, row)); err != nil {
			return nil, err
		}
	}
	if err := w.Write(csvRow("", report.Total)); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvRow(name string, row domain.AssessmentRow) []string {
	return append([]string{name}, cellStrings(row)...)
}
