// Package aggregate builds the deduplicated directory tree a run reports
// from the stream of classified files each Walker produces.
package aggregate

import (
	"path"
	"sort"
	"strings"
	"sync"

	"flocc/internal/digest"
	"flocc/internal/model"
)

// DedupTable remembers every content digest seen so far in a run. The
// first file with a given digest is the original; every later file with
// the same digest is a duplicate. How duplicates are counted is left to
// the tree and the reporters (see Tree.Insert and UniqueTotals). It is
// safe for concurrent use.
type DedupTable struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewDedupTable returns an empty table.
func NewDedupTable() *DedupTable {
	return &DedupTable{seen: make(map[string]struct{})}
}

// Observe records key and reports whether this is the first time the
// table has seen it. key is either a dedup key supplied by the walker
// (a Git blob id) or a content digest computed from the file's bytes.
func (d *DedupTable) Observe(key string) (isDuplicate bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// KeyFor returns the dedup key for a file's bytes: the walker-supplied key
// if it already has one (a Git walk's blob id), or a freshly computed
// content digest otherwise.
func KeyFor(suppliedKey string, data []byte) string {
	if suppliedKey != "" {
		return suppliedKey
	}
	return string(digest.Of(data))
}

// Tree accumulates the classified files of one argument into a DirNode
// tree under a single root, matching directories lazily as file paths are
// inserted. It is safe for concurrent use; callers insert results as they
// arrive from worker goroutines and read the finished tree once all
// workers have finished.
type Tree struct {
	mu   sync.Mutex
	root *model.DirNode
}

// NewTree creates a tree whose single root node represents rootName (the
// argument being scanned) and is of kind model.Directory.
func NewTree(rootName string) *Tree {
	return &Tree{root: model.NewDirNode(rootName, model.Directory)}
}

// Root returns the tree's root node. Safe to call only after every
// Insert for this tree has returned.
func (t *Tree) Root() *model.DirNode {
	return t.root
}

// Insert places a classified file at relPath (forward-slash separated,
// relative to the tree's root) into the tree, creating any missing
// ancestor directories, and rolls its LocResult up into every ancestor
// including the root. A duplicate file is still classified and keeps its
// real code/comment/whitespace counts here — the tree is meant to show
// every file's own work. Reporters that need to exclude duplicates from a
// summed total (the tabular report) do that exclusion themselves.
func (t *Tree) Insert(relPath string, result model.FileResult) {
	loc := result.Loc()

	t.mu.Lock()
	defer t.mu.Unlock()

	dir, base := splitPath(relPath)
	node := t.root
	node.AddResult(result.Kind, loc)

	if dir != "" {
		for _, part := range strings.Split(dir, "/") {
			node = node.Child(part)
			node.AddResult(result.Kind, loc)
		}
	}

	file := model.NewDirNode(base, result.Kind)
	file.AddResult(result.Kind, loc)
	file.Duplicate = result.Duplicate
	if node.Children == nil {
		node.Children = make(map[string]*model.DirNode)
	}
	node.Children[base] = file
}

func splitPath(relPath string) (dir, base string) {
	clean := path.Clean(relPath)
	dir, base = path.Split(clean)
	return strings.TrimSuffix(dir, "/"), base
}

// SortedKinds returns the FileKind set present in results, ordered
// alphabetically by each kind's report label, filtering out any kind that
// never actually occurred.
func SortedKinds(results *model.ResultSet) []model.FileKind {
	present := make(map[model.FileKind]bool)
	for _, e := range results.Entries() {
		present[e.Kind] = true
	}
	var out []model.FileKind
	for _, k := range model.Kinds() {
		if present[k] {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// UniqueTotals walks root's subtree and sums each leaf's own LocResult by
// kind, skipping leaves flagged Duplicate. Unlike a DirNode's own Results
// (which rolls up every file's real counts regardless of duplication, for
// the JSON tree's sake), this gives a reporter the non-duplicate-only sums
// the tabular report's "Code"/"Comment"/"Blank" columns need.
func UniqueTotals(root *model.DirNode) map[model.FileKind]model.LocResult {
	totals := make(map[model.FileKind]model.LocResult)
	var walk func(node *model.DirNode)
	walk = func(node *model.DirNode) {
		if node.Kind != model.Directory {
			if !node.Duplicate {
				for _, e := range node.Results.Entries() {
					cur := totals[e.Kind]
					cur.Add(e.Loc)
					totals[e.Kind] = cur
				}
			}
			return
		}
		for _, name := range node.SortedChildNames() {
			walk(node.Children[name])
		}
	}
	walk(root)
	return totals
}
