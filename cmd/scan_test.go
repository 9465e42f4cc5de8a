package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListNoteFilesImpl(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"a.md",
		"b.txt",
		"sub/c.md",
		"sub/deeper/d.md",
		".git/e.md",
		"sub/.hidden/f.md",
	)

	tests := []struct {
		name      string
		ext       string
		recursive bool
		want      []string
	}{
		{"recursive skips hidden dirs", ".md", true, []string{"a.md", "sub/c.md", "sub/deeper/d.md"}},
		{"flat", ".md", false, []string{"a.md"}},
		{"other extension", ".txt", true, []string{"b.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := listNoteFilesImpl(root, tt.ext, tt.recursive)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("files mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListNoteFilesImpl_MissingDir(t *testing.T) {
	if _, err := listNoteFilesImpl(filepath.Join(t.TempDir(), "absent"), ".md", true); err == nil {
		t.Error("expected error for missing directory")
	}
}
