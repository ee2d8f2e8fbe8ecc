// Package source enumerates the bytes a scan needs to classify, from
// either a filesystem subtree or a Git revision's tree, behind one
// interface so the engine never has to know which it is walking.
package source

// Entry is one blob a Walker hands to the engine: its path (relative to
// the walk root, forward-slash separated) and its content. DedupKey, when
// non-empty, overrides the content digest the engine would otherwise
// compute — a Git walk already has a stable content-addressed blob id and
// reuses it instead of hashing the blob a second time.
type Entry struct {
	Path     string
	Data     []byte
	DedupKey string
}

// Walker yields every blob under a single argument (a filesystem path or a
// Git revision). Walk calls visit once per blob; a non-nil error from
// visit stops the walk and propagates, while a blob Walk cannot read is
// skipped without being passed to visit and without being logged, rather
// than aborting the whole argument.
type Walker interface {
	// Root is the display name for this argument, used as the label of
	// the top-level report and as the root DirNode's name.
	Root() string
	Walk(visit func(Entry) error) error
}
