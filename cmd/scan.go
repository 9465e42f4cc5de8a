package cmd

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// listNoteFilesImpl walks dir collecting files that end in ext, returned as
// slash-separated paths relative to dir. Hidden directories are skipped, and
// subdirectories are only entered when recursive is set. It performs OS
// filesystem operations and is excluded from unit test coverage calculations.
func listNoteFilesImpl(dir, ext string, recursive bool) ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if !recursive || strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	return files, err
}
