package note

import "errors"

// ValidateFieldValue returns an error if s contains any control character not
// permitted in frontmatter field values. The range 0x09–0x0D (TAB, LF, VT,
// FF, CR) is allowed; all other characters below U+0020 and DEL (0x7F) are
// rejected.
func ValidateFieldValue(s string) error {
	if containsControlChars(s) {
		return errors.New("contains invalid control character")
	}
	return nil
}

func containsControlChars(s string) bool {
	for _, r := range s {
		if (r < 0x20 && (r < 0x09 || r > 0x0D)) || r == 0x7F {
			return true
		}
	}
	return false
}
