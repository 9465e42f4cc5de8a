package zid

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ScratchValue is the reserved literal of the scratch identifier.
const ScratchValue = "**SCRATCH**"

// Scratch is the identifier of a note that has not been assigned a real
// identifier yet. It compares like any other identifier but has no successor.
var Scratch = ID{raw: ScratchValue, scratch: true, segments: segment(ScratchValue)}

// ID is a parsed Zettelkasten identifier. The zero value is not a valid
// identifier; construct IDs with New.
type ID struct {
	raw      string
	scratch  bool
	segments []Segment
}

// New parses s into an ID. It fails with ErrInvalidCharacter when s contains
// anything other than ASCII letters, digits and separators, and with
// ErrMalformed when s is empty or starts or ends with a separator. The
// scratch literal is accepted as is.
func New(s string) (ID, error) {
	if s == ScratchValue {
		return Scratch, nil
	}
	if err := validate(s); err != nil {
		return ID{}, err
	}
	return ID{raw: s, segments: segment(s)}, nil
}

// MustNew is like New but panics if s is not a valid identifier.
func MustNew(s string) ID {
	id, err := New(s)
	if err != nil {
		panic(err)
	}
	return id
}

func validate(s string) error {
	if s == "" {
		return malformed(s, "empty", -1)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) || isLetter(c) || isSeparator(c) {
			continue
		}
		r, _ := utf8.DecodeRuneInString(s[i:])
		return &Error{
			Op:     "parse",
			Value:  s,
			Pos:    i,
			Detail: fmt.Sprintf("%q at offset %d", r, i),
			Err:    ErrInvalidCharacter,
		}
	}
	if isSeparator(s[0]) {
		return malformed(s, "leading separator", 0)
	}
	if isSeparator(s[len(s)-1]) {
		return malformed(s, "trailing separator", len(s)-1)
	}
	return nil
}

// String returns the identifier exactly as it was given to New.
func (id ID) String() string { return id.raw }

// IsScratch reports whether id is the scratch identifier.
func (id ID) IsScratch() bool { return id.scratch }

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return len(id.segments) == 0 }

// Depth returns the number of segments.
func (id ID) Depth() int { return len(id.segments) }

// HasParent reports whether id has more than one segment.
func (id ID) HasParent() bool { return len(id.segments) > 1 }

// Segments returns a copy of the parsed segments.
func (id ID) Segments() []Segment { return slices.Clone(id.segments) }

// Next returns the identifier that immediately follows id, obtained by
// incrementing its final segment.
func (id ID) Next() (ID, error) {
	if id.scratch {
		return ID{}, &Error{Op: "next", Value: id.raw, Pos: -1, Detail: "scratch identifier has no successor", Err: ErrUnsupportedOperation}
	}
	if id.IsZero() {
		return ID{}, &Error{Op: "next", Value: id.raw, Pos: -1, Detail: "zero identifier", Err: ErrMalformed}
	}
	return New(id.segments[len(id.segments)-1].successor())
}

// Parent returns id without its final segment and the separator preceding
// it. Root identifiers fail with ErrNoParent.
func (id ID) Parent() (ID, error) {
	if !id.HasParent() {
		return ID{}, &Error{Op: "parent", Value: id.raw, Pos: -1, Err: ErrNoParent}
	}
	return New(id.raw[:id.segments[len(id.segments)-2].end])
}

// Ancestors returns the chain of parents of id, root first. It is empty for
// root identifiers.
func (id ID) Ancestors() []ID {
	var out []ID
	for cur := id; cur.HasParent(); {
		p, err := cur.Parent()
		if err != nil {
			break
		}
		out = append(out, p)
		cur = p
	}
	slices.Reverse(out)
	return out
}

// Compare returns -1, 0 or 1 depending on whether id sorts before, with or
// after other. Segments are compared pairwise; when all shared positions tie,
// the identifier with fewer segments sorts first.
//
// Ranks are shared between digits and letters, so identifiers with different
// text can compare equal ("a" and "0"). Use Key when such identifiers must
// collide as map keys.
func (id ID) Compare(other ID) int {
	for i := range min(len(id.segments), len(other.segments)) {
		if r := id.segments[i].Compare(other.segments[i]); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(id.segments), len(other.segments))
}

// Equal reports whether id and other compare equal.
func (id ID) Equal(other ID) bool { return id.Compare(other) == 0 }

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool { return id.Compare(other) < 0 }

// LessOrEqual reports whether id sorts before or with other.
func (id ID) LessOrEqual(other ID) bool { return id.Compare(other) <= 0 }

// Greater reports whether id sorts after other.
func (id ID) Greater(other ID) bool { return id.Compare(other) > 0 }

// GreaterOrEqual reports whether id sorts after or with other.
func (id ID) GreaterOrEqual(other ID) bool { return id.Compare(other) >= 0 }

// Key returns a canonical key for id. Two identifiers have the same key
// exactly when they compare equal, so Key is the hashing counterpart of
// Equal.
func (id ID) Key() string {
	var b strings.Builder
	for i, s := range id.segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Itoa(s.end))
		b.WriteByte(':')
		v := s.Value()
		for j := 0; j < len(v); j++ {
			b.WriteByte(byte('A' + rank(v[j], s.numeric)))
		}
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Compare is the function form of ID.Compare, for use with slices.SortFunc.
func Compare(a, b ID) int { return a.Compare(b) }

// Sort sorts ids in place, keeping the input order of identifiers that
// compare equal.
func Sort(ids []ID) {
	slices.SortStableFunc(ids, Compare)
}
