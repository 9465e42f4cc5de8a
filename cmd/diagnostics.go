package cmd

import (
	"fmt"
	"io"

	"github.com/eykd/zk/internal/note"
)

// DoctorDiagnosticJSON is the JSON output type for a single doctor diagnostic.
type DoctorDiagnosticJSON struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Path     string `json:"path"`
}

// writeDiagnostics renders diags to w as a JSON array or as one
// "CODE severity path: message" line each.
func writeDiagnostics(w io.Writer, diags []note.AuditDiagnostic, jsonMode bool) error {
	if jsonMode {
		out := make([]DoctorDiagnosticJSON, len(diags))
		for i, d := range diags {
			out[i] = DoctorDiagnosticJSON{
				Code:     string(d.Code),
				Severity: string(d.Severity),
				Message:  d.Message,
				Path:     d.Path,
			}
		}
		return writeJSON(w, out)
	}
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s %s: %s\n",
			string(d.Code),
			string(d.Severity),
			sanitizeText(d.Path),
			sanitizeText(d.Message),
		)
	}
	return nil
}
