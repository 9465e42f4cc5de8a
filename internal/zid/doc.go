// Package zid implements Zettelkasten identifiers: hierarchical, sortable,
// human-typeable note names such as "200010111223", "a.b9" or "0..a".
//
// An identifier is a sequence of segments. Each segment is a run of digits or
// a run of ASCII letters, optionally followed by a run of separators (one of
// '.', '-', '/', '\'). A change from digits to letters (or back) starts a new
// segment without a separator, so "a0" has two segments, "a" and "0".
//
// Identifiers have a total order: segments are compared pairwise by their end
// offset in the identifier, then character by character using a shared rank
// where digits rank 0-9, lowercase letters 0-25 and uppercase letters 26-51.
// When all compared segments tie, the identifier with fewer segments sorts
// first, so a parent always sorts before its children.
//
// Next increments the final segment. The rollover character is '9' for digits
// and 'Z' for letters; a segment made entirely of rollover characters grows by
// one character ("9" → "00", "Z" → "aa"), and a trailing run of rollover
// characters resets to the low character after the preceding character is
// bumped ("09" → "10", "aZ" → "ba"). Lowercase 'z' bumps to 'A'.
//
// ID values are immutable and safe for concurrent use.
package zid
