package source

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"flocc/internal/flocerr"
)

// DefaultGitTimeout bounds every git subprocess this walker spawns, so a
// hung or oversized repository can't stall a scan indefinitely.
const DefaultGitTimeout = 30 * time.Second

// GitWalker walks the tree of a single revision in a Git repository by
// shelling out to the system git binary, the same approach used elsewhere
// in this codebase for talking to Git rather than binding a Git
// object-database library.
type GitWalker struct {
	RepoDir string
	Rev     string
	Timeout time.Duration
}

// Root implements Walker.
func (w *GitWalker) Root() string {
	return w.Rev
}

// Walk implements Walker. It resolves Rev to a commit — dereferencing an
// annotated tag if Rev names one — then lists that commit's tree and
// visits every blob with its path and content. The blob's 40-hex object
// id is used as Entry.DedupKey, bypassing a fresh content hash since Git
// already content-addresses every blob.
func (w *GitWalker) Walk(visit func(Entry) error) error {
	commit, err := w.resolveCommit()
	if err != nil {
		return err
	}

	entries, err := w.listTree(commit)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if isDotComponent(e.path) {
			continue
		}
		data, err := w.catFile(e.oid)
		if err != nil {
			continue
		}
		if visitErr := visit(Entry{Path: e.path, Data: data, DedupKey: e.oid}); visitErr != nil {
			return visitErr
		}
	}
	return nil
}

// resolveCommit turns Rev into a commit object id. The "^{commit}" peel
// suffix makes git itself walk through an annotated tag (or a chain of
// them) to the commit it ultimately points at, which is what an
// equivalent tag-dereferencing loop against the object database would do
// by hand.
func (w *GitWalker) resolveCommit() (string, error) {
	out, err := w.run("rev-parse", "--verify", w.Rev+"^{commit}")
	if err != nil {
		return "", &flocerr.PathError{Path: w.Rev, Err: flocerr.ErrRevisionNotFound}
	}
	return strings.TrimSpace(out), nil
}

type treeEntry struct {
	path string
	oid  string
}

// listTree lists every blob (recursively, excluding submodules and trees
// themselves) reachable from commit.
func (w *GitWalker) listTree(commit string) ([]treeEntry, error) {
	out, err := w.run("ls-tree", "-r", "-z", commit)
	if err != nil {
		return nil, &flocerr.PathError{Path: w.Rev, Err: err}
	}

	var entries []treeEntry
	for _, record := range strings.Split(out, "\x00") {
		if record == "" {
			continue
		}
		// "<mode> <type> <oid>\t<path>"
		tab := strings.IndexByte(record, '\t')
		if tab < 0 {
			continue
		}
		meta, path := record[:tab], record[tab+1:]
		fields := strings.Fields(meta)
		if len(fields) != 3 || fields[1] != "blob" {
			continue
		}
		entries = append(entries, treeEntry{path: path, oid: fields[2]})
	}
	return entries, nil
}

func (w *GitWalker) catFile(oid string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", w.RepoDir, "cat-file", "-p", oid)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git cat-file %s: %w", oid, err)
	}
	return out, nil
}

func (w *GitWalker) run(args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", w.RepoDir}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("git %s: timed out: %w", strings.Join(args, " "), ctx.Err())
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

func (w *GitWalker) timeout() time.Duration {
	if w.Timeout > 0 {
		return w.Timeout
	}
	return DefaultGitTimeout
}

// IsRepository reports whether dir is inside a Git work tree, by asking
// git itself rather than hand-probing for a .git directory (which misses
// worktrees and bare-repo setups).
func IsRepository(dir string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultGitTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}
