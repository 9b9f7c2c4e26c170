package output

import (
	json "github.com/goccy/go-json"
	"github.com/laws2020/nigeriaPITaudit/internal/domain"
)

// JSONFormatter writes the full report document, rows and total row
// included, as JSON.
type JSONFormatter struct {
	Pretty bool
}

func (JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(report *domain.AssessmentReport) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
