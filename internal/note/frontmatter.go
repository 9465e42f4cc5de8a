package note

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eykd/zk/internal/zid"
)

// frontmatterRE matches a complete YAML frontmatter block at the start of a
// file. The closing "---" must appear unindented (at column 0); "---" inside
// YAML block scalars is always indented, so this is unambiguous. The captured
// YAML keeps its final newline so a trailing "|" block scalar stays intact.
var frontmatterRE = regexp.MustCompile(`(?s)^---\r?\n(.*?\r?\n)---\r?\n`)

// unquotedAliasIDRE spots an id value starting with "*", which YAML reads as
// an alias rather than the scratch literal.
var unquotedAliasIDRE = regexp.MustCompile(`(?m)^id:[ \t]*\*`)

// ParseFrontmatter splits a note file's content into its Frontmatter and body.
// Identifiers are decoded as their literal scalar text, so "0012" keeps its
// leading zeros even though YAML would resolve it as an integer.
func ParseFrontmatter(content []byte) (Frontmatter, []byte, error) {
	loc := frontmatterRE.FindSubmatchIndex(content)
	if loc == nil {
		return Frontmatter{}, nil, errors.New("no valid frontmatter block found")
	}

	var fm Frontmatter
	block := content[loc[2]:loc[3]]
	if err := yaml.Unmarshal(block, &fm); err != nil {
		if unquotedAliasIDRE.Match(block) {
			return Frontmatter{}, nil, fmt.Errorf("parse frontmatter: %w (quote the id, e.g. id: %q)", err, zid.ScratchValue)
		}
		return Frontmatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return fm, append([]byte(nil), content[loc[1]:]...), nil
}

// ValidateNote checks a single note for ZK002, ZK003, ZK005, ZK006, ZKW002
// and ZKW003 violations. It returns the parsed identifier when the note has
// a valid one, and the diagnostics found; nil when the note is valid.
func ValidateNote(fm Frontmatter, body []byte) (zid.ID, []AuditDiagnostic) {
	var diags []AuditDiagnostic
	var id zid.ID

	switch fm.ID {
	case "":
		diags = append(diags, AuditDiagnostic{
			Code:     ZK002,
			Severity: SeverityError,
			Message:  "frontmatter has no id",
		})
	default:
		parsed, err := zid.New(fm.ID)
		if err != nil {
			diags = append(diags, AuditDiagnostic{
				Code:     ZK003,
				Severity: SeverityError,
				Message:  fmt.Sprintf("invalid identifier: %v", err),
			})
			break
		}
		id = parsed
		if id.IsScratch() {
			diags = append(diags, AuditDiagnostic{
				Code:     ZKW002,
				Severity: SeverityWarning,
				Message:  "note has not been assigned an identifier",
			})
		}
	}

	if msg := checkTimestamps(fm.Created, fm.Updated); msg != "" {
		diags = append(diags, AuditDiagnostic{Code: ZK005, Severity: SeverityError, Message: msg})
	}

	if err := ValidateFieldValue(fm.Title); err != nil {
		diags = append(diags, AuditDiagnostic{
			Code:     ZK006,
			Severity: SeverityError,
			Message:  "title " + err.Error(),
		})
	}

	if strings.TrimSpace(string(body)) == "" {
		diags = append(diags, AuditDiagnostic{
			Code:     ZKW003,
			Severity: SeverityWarning,
			Message:  "note body is empty or whitespace-only",
		})
	}

	return id, diags
}

// checkTimestamps returns a ZK005 message, or "" when both optional
// timestamps are absent or valid and ordered.
func checkTimestamps(created, updated string) string {
	var ct, ut time.Time
	var ok bool
	if created != "" {
		if ct, ok = parseRFC3339Z(created); !ok {
			return fmt.Sprintf("created %q is not an RFC3339 UTC timestamp", created)
		}
	}
	if updated != "" {
		if ut, ok = parseRFC3339Z(updated); !ok {
			return fmt.Sprintf("updated %q is not an RFC3339 UTC timestamp", updated)
		}
	}
	if created != "" && updated != "" && ct.After(ut) {
		return fmt.Sprintf("created %s is later than updated %s", created, updated)
	}
	return ""
}

// parseRFC3339Z parses s as an RFC3339 timestamp with a Z suffix.
func parseRFC3339Z(s string) (time.Time, bool) {
	if !strings.HasSuffix(s, "Z") {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}
