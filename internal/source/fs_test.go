package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFSWalkerSkipsDotDirectoriesAndDotfiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "main.go"), "package main\n")
	mustWrite(t, filepath.Join(dir, ".hidden"), "secret\n")
	mustWrite(t, filepath.Join(dir, ".git", "HEAD"), "ref: refs/heads/main\n")
	mustWrite(t, filepath.Join(dir, "pkg", "lib.go"), "package pkg\n")

	w := &FSWalker{Path: dir}
	var seen []string
	if err := w.Walk(func(e Entry) error {
		seen = append(seen, e.Path)
		return nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("got %d entries %v, want 2 (dotfiles and dot-directories excluded)", len(seen), seen)
	}
}

func TestFSWalkerSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.go")
	mustWrite(t, path, "package main\n")

	w := &FSWalker{Path: path}
	var count int
	if err := w.Walk(func(e Entry) error {
		count++
		if e.Path != "single.go" {
			t.Errorf("Path = %q, want single.go", e.Path)
		}
		return nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d entries, want 1", count)
	}
}

func TestFSWalkerMissingPath(t *testing.T) {
	w := &FSWalker{Path: filepath.Join(t.TempDir(), "nope")}
	if err := w.Walk(func(Entry) error { return nil }); err == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
