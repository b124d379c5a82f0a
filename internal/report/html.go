package report

import (
	"fmt"
	"io"

	"github.com/unbound-force/declint/internal/lint"
)

// WriteHTML writes diagnostics as a self-contained HTML report.
//
// Planned features:
//   - Per-file diagnostic table with sortable columns
//   - Kind breakdown chart
//   - Self-contained single-file HTML (embedded CSS/JS)
//
// This is not yet implemented. Use text or json format instead.
func WriteHTML(_ io.Writer, _ []lint.Diagnostic) error {
	return fmt.Errorf("HTML report format is not yet implemented")
}
