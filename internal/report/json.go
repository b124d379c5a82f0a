// Package report provides output formatters for Declint diagnostics
// in JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/declint/internal/lint"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version     string            `json:"version"`
	Diagnostics []lint.Diagnostic `json:"diagnostics"`
}

// WriteJSON writes diagnostics as formatted JSON to the writer.
func WriteJSON(w io.Writer, diags []lint.Diagnostic) error {
	if diags == nil {
		diags = []lint.Diagnostic{}
	}
	report := JSONReport{
		Version:     "0.1.0",
		Diagnostics: diags,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
