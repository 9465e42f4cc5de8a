package note

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/eykd/zk/internal/zid"
)

// DoctorData holds pre-loaded note files for a doctor audit pass.
type DoctorData struct {
	// Files maps each note path to its raw bytes. An empty value is reported
	// as an unparseable note.
	Files map[string][]byte
}

// RunDoctor performs all audit checks on the provided pre-loaded notes and
// returns diagnostics sorted by severity (errors first) then path.
// It is a pure function and performs no IO. If ctx is cancelled the audit
// stops and the diagnostics gathered so far are returned.
func RunDoctor(ctx context.Context, data DoctorData) []AuditDiagnostic {
	var diags []AuditDiagnostic

	paths := make([]string, 0, len(data.Files))
	for p := range data.Files {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	ids := make(map[string]zid.ID)
	byKey := make(map[string][]string)

	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}

		fm, body, err := ParseFrontmatter(data.Files[path])
		if err != nil {
			diags = append(diags, errDiag(ZK001, path, fmt.Sprintf("frontmatter is missing or invalid: %v", err)))
			continue
		}

		id, noteDiags := ValidateNote(fm, body)
		for _, d := range noteDiags {
			d.Path = path
			diags = append(diags, d)
		}
		if id.IsZero() || id.IsScratch() {
			continue
		}
		ids[path] = id
		byKey[id.Key()] = append(byKey[id.Key()], path)
	}

	// ZK004: identifiers that compare equal, reported on every note after the first.
	for _, path := range paths {
		id, ok := ids[path]
		if !ok {
			continue
		}
		owners := byKey[id.Key()]
		if owners[0] != path {
			diags = append(diags, errDiag(ZK004, path,
				fmt.Sprintf("identifier %q duplicates %q in %s", id, ids[owners[0]], owners[0])))
		}
	}

	// ZKW001: the immediate parent has no note.
	for _, path := range paths {
		id, ok := ids[path]
		if !ok || !id.HasParent() {
			continue
		}
		parent, err := id.Parent()
		if err != nil {
			continue
		}
		if _, found := byKey[parent.Key()]; !found {
			diags = append(diags, warnDiag(ZKW001, path,
				fmt.Sprintf("parent identifier %q of %q has no note", parent, id)))
		}
	}

	// Sort: errors before warnings, then alphabetically by path within each tier.
	sort.SliceStable(diags, func(i, j int) bool {
		si := severityRank(diags[i].Severity)
		sj := severityRank(diags[j].Severity)
		if si != sj {
			return si < sj
		}
		return diags[i].Path < diags[j].Path
	})

	return diags
}

// HasErrors reports whether any diagnostic in diags has error severity.
func HasErrors(diags []AuditDiagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// severityRank returns a numeric rank for sorting: errors (0) sort before warnings (1).
func severityRank(s AuditSeverity) int {
	if s == SeverityError {
		return 0
	}
	return 1
}

// errDiag constructs an error-severity AuditDiagnostic.
func errDiag(code AuditCode, path, message string) AuditDiagnostic {
	return AuditDiagnostic{Code: code, Severity: SeverityError, Message: message, Path: path}
}

// warnDiag constructs a warning-severity AuditDiagnostic.
func warnDiag(code AuditCode, path, message string) AuditDiagnostic {
	return AuditDiagnostic{Code: code, Severity: SeverityWarning, Message: message, Path: path}
}
