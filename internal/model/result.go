package model

// LocResult is the additive triple of line buckets plus a file count,
// rolled up from a single FileResult all the way to the tree root.
type LocResult struct {
	Files      uint32
	Code       uint32
	Comment    uint32
	Whitespace uint32
}

// Add accumulates o into r in place.
func (r *LocResult) Add(o LocResult) {
	r.Files += o.Files
	r.Code += o.Code
	r.Comment += o.Comment
	r.Whitespace += o.Whitespace
}

// FileResult is the outcome of classifying a single source buffer: its
// display name, kind, line buckets, and whether the dedup pass flagged its
// content digest as a repeat of an earlier file in the same run.
type FileResult struct {
	Name       string
	Kind       FileKind
	Code       uint32
	Comment    uint32
	Whitespace uint32
	Duplicate  bool
}

// Loc returns this file's contribution to an aggregate: one file and its
// real line counts, regardless of whether the dedup pass flagged it a
// duplicate. A reporter that wants to exclude duplicates from a summed
// total does that itself, by consulting Duplicate.
func (f FileResult) Loc() LocResult {
	return LocResult{Files: 1, Code: f.Code, Comment: f.Comment, Whitespace: f.Whitespace}
}
