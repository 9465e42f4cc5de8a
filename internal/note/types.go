// Package note audits Zettelkasten note files: it reads their YAML
// frontmatter and checks the identifiers they carry.
package note

// Frontmatter holds the YAML front matter of a note file.
type Frontmatter struct {
	// ID is the note's Zettelkasten identifier, e.g. "200010111223.a".
	ID string `yaml:"id"`
	// Title is the optional human-readable title for the note.
	Title string `yaml:"title,omitempty"`
	// Created is the optional RFC3339 timestamp when the note was first created.
	Created string `yaml:"created,omitempty"`
	// Updated is the optional RFC3339 timestamp when the note was last modified.
	Updated string `yaml:"updated,omitempty"`
}

// AuditCode identifies a specific audit rule that was evaluated.
type AuditCode string

const (
	// ZK001 indicates a note file has no frontmatter block or its YAML is syntactically unparseable.
	ZK001 AuditCode = "ZK001"
	// ZK002 indicates a note file frontmatter has no id field.
	ZK002 AuditCode = "ZK002"
	// ZK003 indicates a note id is not a valid Zettelkasten identifier.
	ZK003 AuditCode = "ZK003"
	// ZK004 indicates two notes carry identifiers that compare equal (duplicate identifier).
	ZK004 AuditCode = "ZK004"
	// ZK005 indicates a created or updated timestamp is malformed, or created is later than updated.
	ZK005 AuditCode = "ZK005"
	// ZK006 indicates a note title contains control characters.
	ZK006 AuditCode = "ZK006"
	// ZKW001 is a warning indicating the parent identifier of a note has no note of its own (orphaned note).
	ZKW001 AuditCode = "ZKW001"
	// ZKW002 is a warning indicating a note still carries the scratch identifier.
	ZKW002 AuditCode = "ZKW002"
	// ZKW003 is a warning indicating a note has valid frontmatter but empty or whitespace-only body.
	ZKW003 AuditCode = "ZKW003"
)

// AuditSeverity classifies the impact level of an audit diagnostic.
type AuditSeverity string

const (
	// SeverityError indicates a condition that must be resolved.
	SeverityError AuditSeverity = "error"
	// SeverityWarning indicates a condition that should be reviewed.
	SeverityWarning AuditSeverity = "warning"
)

// AuditDiagnostic is a single finding produced by the doctor command.
type AuditDiagnostic struct {
	// Code is the rule identifier that produced this diagnostic.
	Code AuditCode
	// Severity indicates whether this is an error or warning.
	Severity AuditSeverity
	// Message is a human-readable description of the finding.
	Message string
	// Path is the note file the finding refers to.
	Path string
}
