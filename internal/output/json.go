package output

import (
	"encoding/json"
	"io"

	"github.com/garagon/yacare/internal/types"
)

// JSONFormatter outputs results as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) FormatDiagnosis(w io.Writer, d *Diagnosis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func (f *JSONFormatter) FormatChecks(w io.Writer, result *types.CheckResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
