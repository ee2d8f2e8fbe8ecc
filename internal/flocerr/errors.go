// Package flocerr collects the sentinel errors a run needs to tell apart:
// a bad argument should be logged and skipped, not abort the whole scan.
package flocerr

import "errors"

// ErrPathNotFound means a filesystem argument does not resolve to anything
// on disk. An unresolvable --git revision is ErrRevisionNotFound instead.
var ErrPathNotFound = errors.New("flocc: path not found")

// ErrNotARepository means --git was requested but the target directory is
// not inside a Git work tree.
var ErrNotARepository = errors.New("flocc: not a git repository")

// ErrRevisionNotFound means a --git argument did not resolve to a
// dereferenceable commit.
var ErrRevisionNotFound = errors.New("flocc: revision not found")

// ErrConfigInvalid means a discovered .flocc.toml could not be parsed.
// It never aborts a run: the offending config is skipped and logged.
var ErrConfigInvalid = errors.New("flocc: invalid configuration file")

// PathError wraps an underlying error with the argument that triggered it,
// so callers that must continue past a single bad argument can log once
// and move on while still supporting errors.Is/errors.As against the
// sentinels above.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return "flocc: " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
