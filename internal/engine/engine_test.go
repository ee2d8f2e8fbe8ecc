package engine

import (
	"os"
	"path/filepath"
	"testing"

	"flocc/internal/aggregate"
	"flocc/internal/model"
)

func writeFixtureFile(t *testing.T, dir, relPath, content string) string {
	t.Helper()
	full := filepath.Join(dir, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}
	return full
}

func TestScanSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, dir, "main.go", "package main\n\nfunc main() {}\n// trailing\n")

	eng := New(Options{Workers: 1})
	result, err := eng.Scan(filepath.Join(dir, "main.go"))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.Files != 1 {
		t.Fatalf("Files = %d, want 1", result.Files)
	}
}

func TestScanDirectoryAggregatesByKind(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, dir, "pkg/a.go", "package pkg\nvar x = 1 // c\n")
	writeFixtureFile(t, dir, "web/app.js", "const x = 1; // c\n")
	writeFixtureFile(t, dir, ".git/HEAD", "ref: refs/heads/main\n")

	eng := New(Options{Workers: 4})
	result, err := eng.Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	var sawGo, sawJS bool
	for _, e := range result.Root.Results.Entries() {
		switch e.Kind {
		case model.Go:
			sawGo = true
		case model.JavaScript:
			sawJS = true
		}
	}
	if !sawGo || !sawJS {
		t.Fatalf("expected both Go and JavaScript kinds in results, got %+v", result.Root.Results.Entries())
	}

	if result.Files != 2 {
		t.Fatalf("Files = %d, want 2 (dotfiles under .git must be skipped)", result.Files)
	}
}

func TestScanDeduplicatesIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, dir, "a.go", "package p\nvar x = 1\n")
	writeFixtureFile(t, dir, "b.go", "package p\nvar x = 1\n")

	eng := New(Options{Workers: 2})
	result, err := eng.Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	entries := result.Root.Results.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d kinds, want 1", len(entries))
	}
	if entries[0].Loc.Files != 2 {
		t.Fatalf("Files = %d, want 2", entries[0].Loc.Files)
	}
	if entries[0].Loc.Code != 4 {
		t.Fatalf("Code = %d, want 4 (a duplicate is still classified and keeps its own real counts)", entries[0].Loc.Code)
	}

	unique := aggregate.UniqueTotals(result.Root)
	if got := unique[model.Go]; got.Files != 1 || got.Code != 2 {
		t.Fatalf("unique totals = %+v, want Files=1 Code=2 (the duplicate excluded from a summed total)", got)
	}
}

func TestScanMissingPathFails(t *testing.T) {
	eng := New(Options{Workers: 1})
	if _, err := eng.Scan(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("expected an error scanning a missing path")
	}
}

func TestFormatTimingHandlesZeroElapsed(t *testing.T) {
	s := FormatTiming(10, 100, 0)
	if s == "" {
		t.Fatal("FormatTiming returned an empty string")
	}
}
