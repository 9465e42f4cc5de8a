package zid

import (
	"cmp"
	"strings"
)

// Separators lists the characters that delimit segments.
const Separators = `.-/\`

const noSeparator = -1

// Segment is one digit-run or letter-run of an identifier plus the separator
// run that follows it, if any. Offsets index into the owning identifier.
type Segment struct {
	src      string
	start    int
	end      int
	sepStart int
	sepEnd   int
	numeric  bool
}

// Numeric reports whether the segment is a run of digits.
func (s Segment) Numeric() bool { return s.numeric }

// Start returns the offset of the segment's first character.
func (s Segment) Start() int { return s.start }

// End returns the offset just past the segment's last character, excluding
// any separator.
func (s Segment) End() int { return s.end }

// SeparatorStart returns the offset of the trailing separator run, or -1 if
// the segment is not followed by a separator.
func (s Segment) SeparatorStart() int { return s.sepStart }

// Value returns the segment's characters without its separator.
func (s Segment) Value() string { return s.src[s.start:s.end] }

// Separator returns the trailing separator run, or "" if there is none.
func (s Segment) Separator() string {
	if s.sepStart == noSeparator {
		return ""
	}
	return s.src[s.sepStart:s.sepEnd]
}

// String returns the segment's characters.
func (s Segment) String() string { return s.Value() }

// Compare orders two segments. A segment ending earlier in its identifier
// sorts first; segments ending at the same offset compare by character rank,
// and when one is a prefix of the other by rank the shorter sorts first.
func (s Segment) Compare(other Segment) int {
	if s.end != other.end {
		return cmp.Compare(s.end, other.end)
	}
	a, b := s.Value(), other.Value()
	for i := range min(len(a), len(b)) {
		if r := cmp.Compare(rank(a[i], s.numeric), rank(b[i], other.numeric)); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(a), len(b))
}

// rank maps a character onto the shared ordering space: digits 0-9,
// lowercase letters 0-25, uppercase letters 26-51.
func rank(c byte, numeric bool) int {
	switch {
	case numeric:
		return int(c) - '0'
	case c >= 'a':
		return int(c) - 'a'
	default:
		return int(c) - 'A' + 26
	}
}

func (s Segment) rollover() byte {
	if s.numeric {
		return '9'
	}
	return 'Z'
}

func (s Segment) low() string {
	if s.numeric {
		return "0"
	}
	return "a"
}

func (s Segment) bump(c byte) byte {
	if !s.numeric && c == 'z' {
		return 'A'
	}
	return c + 1
}

// successor returns the full identifier text with this segment incremented.
func (s Segment) successor() string {
	last := s.end - 1
	run := s.end
	for run > s.start && s.src[run-1] == s.rollover() {
		run--
	}

	var b strings.Builder
	b.Grow(len(s.src) + 1)
	b.WriteString(s.src[:s.start])
	switch run {
	case s.end:
		b.WriteString(s.src[s.start:last])
		b.WriteByte(s.bump(s.src[last]))
	case s.start:
		b.WriteString(strings.Repeat(s.low(), s.end-s.start+1))
	default:
		b.WriteString(s.src[s.start : run-1])
		b.WriteByte(s.bump(s.src[run-1]))
		b.WriteString(strings.Repeat(s.low(), s.end-run))
	}
	b.WriteString(s.src[s.end:])
	return b.String()
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isSeparator(c byte) bool { return strings.IndexByte(Separators, c) >= 0 }

// segment splits raw into segments in a single left-to-right pass. raw must
// be non-empty and must not start with a separator.
func segment(raw string) []Segment {
	segs := make([]Segment, 0, 4)
	cur := Segment{src: raw, numeric: isDigit(raw[0]), sepStart: noSeparator}
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if isSeparator(c) {
			j := i + 1
			for j < len(raw) && isSeparator(raw[j]) {
				j++
			}
			cur.end, cur.sepStart, cur.sepEnd = i, i, j
			segs = append(segs, cur)
			if j == len(raw) {
				return segs
			}
			cur = Segment{src: raw, start: j, numeric: isDigit(raw[j]), sepStart: noSeparator}
			i = j
			continue
		}
		if isDigit(c) != cur.numeric {
			cur.end, cur.sepEnd = i, i
			segs = append(segs, cur)
			cur = Segment{src: raw, start: i, numeric: isDigit(c), sepStart: noSeparator}
		}
	}
	cur.end, cur.sepEnd = len(raw), len(raw)
	return append(segs, cur)
}
