package config

import (
	"os"
	"path/filepath"
	"testing"

	"flocc/internal/model"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error for a missing config: %v", err)
	}
	if len(cfg.Ignore.Globs) != 0 || len(cfg.Extensions) != 0 {
		t.Fatalf("got non-empty zero-value config: %+v", cfg)
	}
}

func TestLoadParsesIgnoreAndExtensions(t *testing.T) {
	dir := t.TempDir()
	contents := `
[ignore]
globs = ["vendor/**", "*.min.js"]

[extensions]
".proto" = "Text"
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Ignore.Globs) != 2 {
		t.Fatalf("got %d globs, want 2", len(cfg.Ignore.Globs))
	}

	kind, ok := cfg.ResolveExtension(".proto")
	if !ok || kind != model.Text {
		t.Fatalf("ResolveExtension(.proto) = (%v, %v), want (Text, true)", kind, ok)
	}

	if _, ok := cfg.ResolveExtension(".unmapped"); ok {
		t.Fatal("ResolveExtension(.unmapped) should report false")
	}
}

func TestLoadInvalidTOMLIsAnError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("Load should reject malformed TOML")
	}
}

func TestIgnoreConfigMatchesDirectoryGlob(t *testing.T) {
	ic := IgnoreConfig{Globs: []string{"vendor/**", "*.min.js"}}

	cases := []struct {
		path string
		want bool
	}{
		{"vendor/pkg/file.go", true},
		{"vendor", true},
		{"src/app.min.js", true},
		{"src/app.js", false},
		{"main.go", false},
	}
	for _, tc := range cases {
		if got := ic.Matches(tc.path); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
