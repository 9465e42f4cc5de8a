package note_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eykd/zk/internal/note"
)

const testDoctorTS = "2026-02-28T15:04:05Z"

// noteFileBytes returns valid note file bytes carrying id.
func noteFileBytes(id string) []byte {
	return []byte("---\n" +
		"id: " + id + "\n" +
		"created: " + testDoctorTS + "\n" +
		"updated: " + testDoctorTS + "\n" +
		"---\n" +
		"\nBody content here.\n")
}

// diagSummary is a comparable projection of an AuditDiagnostic.
type diagSummary struct {
	Code note.AuditCode
	Path string
}

func summarize(diags []note.AuditDiagnostic) []diagSummary {
	var out []diagSummary
	for _, d := range diags {
		out = append(out, diagSummary{Code: d.Code, Path: d.Path})
	}
	return out
}

func TestRunDoctor(t *testing.T) {
	tests := []struct {
		name  string
		files map[string][]byte
		want  []diagSummary
	}{
		{
			name:  "empty directory",
			files: map[string][]byte{},
		},
		{
			name: "clean hierarchy",
			files: map[string][]byte{
				"1.md":   noteFileBytes("1"),
				"1a.md":  noteFileBytes("1a"),
				"1a1.md": noteFileBytes("1a1"),
				"2.md":   noteFileBytes("2"),
			},
		},
		{
			name: "missing parent",
			files: map[string][]byte{
				"1.md":    noteFileBytes("1"),
				"1a2.md":  noteFileBytes("1a2"),
				"1.b.md":  noteFileBytes("1.b"),
				"7..c.md": noteFileBytes("7..c"),
			},
			want: []diagSummary{
				{note.ZKW001, "1a2.md"},
				{note.ZKW001, "7..c.md"},
			},
		},
		{
			name: "duplicate text",
			files: map[string][]byte{
				"a.md":      noteFileBytes("a"),
				"a-copy.md": noteFileBytes("a"),
			},
			want: []diagSummary{{note.ZK004, "a.md"}},
		},
		{
			name: "identifiers that compare equal are duplicates",
			files: map[string][]byte{
				"letter.md": noteFileBytes("a"),
				"digit.md":  noteFileBytes("0"),
			},
			want: []diagSummary{{note.ZK004, "letter.md"}},
		},
		{
			name: "unparseable and oversized notes",
			files: map[string][]byte{
				"bad.md":  []byte("---\nid: [unclosed\n---\nBody.\n"),
				"huge.md": {},
				"ok.md":   noteFileBytes("a"),
			},
			want: []diagSummary{
				{note.ZK001, "bad.md"},
				{note.ZK001, "huge.md"},
			},
		},
		{
			name: "errors sort before warnings",
			files: map[string][]byte{
				"a.md":       noteFileBytes(`"**SCRATCH**"`),
				"b.md":       []byte("---\nid: b\n---\n"),
				"z-noid.md":  []byte("---\ntitle: untitled\n---\nBody.\n"),
				"y-weird.md": noteFileBytes("y_1"),
			},
			want: []diagSummary{
				{note.ZK003, "y-weird.md"},
				{note.ZK002, "z-noid.md"},
				{note.ZKW002, "a.md"},
				{note.ZKW003, "b.md"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := note.RunDoctor(context.Background(), note.DoctorData{Files: tt.files})
			if diff := cmp.Diff(tt.want, summarize(diags)); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunDoctor_DuplicateMessageNamesFirstOwner(t *testing.T) {
	diags := note.RunDoctor(context.Background(), note.DoctorData{Files: map[string][]byte{
		"first.md":  noteFileBytes("2000"),
		"second.md": noteFileBytes("2000"),
	}})
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	want := `identifier "2000" duplicates "2000" in first.md`
	if diags[0].Message != want {
		t.Errorf("message = %q, want %q", diags[0].Message, want)
	}
	if diags[0].Path != "second.md" {
		t.Errorf("path = %q, want second.md", diags[0].Path)
	}
}

func TestRunDoctor_UnquotedScratchIsUnparseable(t *testing.T) {
	diags := note.RunDoctor(context.Background(), note.DoctorData{Files: map[string][]byte{
		"draft.md": noteFileBytes("**SCRATCH**"),
	}})
	if len(diags) != 1 || diags[0].Code != note.ZK001 {
		t.Fatalf("got %+v, want a single ZK001", diags)
	}
	if !strings.Contains(diags[0].Message, `"**SCRATCH**"`) {
		t.Errorf("message %q should show the quoted scratch id", diags[0].Message)
	}
}

func TestRunDoctor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	diags := note.RunDoctor(ctx, note.DoctorData{Files: map[string][]byte{
		"bad.md": []byte("no frontmatter"),
	}})
	if len(diags) != 0 {
		t.Errorf("cancelled audit returned %d diagnostics, want 0", len(diags))
	}
}

func TestHasErrors(t *testing.T) {
	warn := note.AuditDiagnostic{Code: note.ZKW003, Severity: note.SeverityWarning}
	fail := note.AuditDiagnostic{Code: note.ZK001, Severity: note.SeverityError}
	if note.HasErrors(nil) {
		t.Error("HasErrors(nil) = true")
	}
	if note.HasErrors([]note.AuditDiagnostic{warn}) {
		t.Error("HasErrors(warning only) = true")
	}
	if !note.HasErrors([]note.AuditDiagnostic{warn, fail}) {
		t.Error("HasErrors(with error) = false")
	}
}
