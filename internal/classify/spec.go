// Package classify implements the byte-level line classifier: a single
// generic state machine driven by a declarative SourceSpec, plus the
// handler dispatch table and extension classifier that feed it.
package classify

// BlockComment is a balanced comment opener/closer pair, e.g. "/*" and "*/".
type BlockComment struct {
	Open  []byte
	Close []byte
}

// SourceSpec is the declarative grammar Classify needs to tell code apart
// from comments and strings in one family of languages: an optional block
// comment pair, an ordered list of line-comment prefixes (first match
// wins), and whether double-quoted strings suppress comment recognition.
type SourceSpec struct {
	Block   *BlockComment
	Line    [][]byte
	Strings bool
}
