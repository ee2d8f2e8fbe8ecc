package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"flocc/internal/engine"
	"flocc/internal/model"
)

func sampleResult() *engine.Result {
	root := model.NewDirNode("project", model.Directory)

	a := model.NewDirNode("a.go", model.Go)
	a.AddResult(model.Go, model.LocResult{Files: 1, Code: 6, Comment: 1, Whitespace: 1})
	b := model.NewDirNode("b.go", model.Go)
	b.AddResult(model.Go, model.LocResult{Files: 1, Code: 4, Comment: 0, Whitespace: 0})
	b.Duplicate = true

	root.Children = map[string]*model.DirNode{"a.go": a, "b.go": b}
	root.AddResult(model.Go, a.Results.Entries()[0].Loc)
	root.AddResult(model.Go, b.Results.Entries()[0].Loc)

	return &engine.Result{
		RootLabel:   "project",
		Root:        root,
		Files:       2,
		UniqueFiles: 1,
		Lines:       12,
		Elapsed:     time.Second,
	}
}

func TestPrintTableRendersLanguageAndTotalRows(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintTable(&buf, sampleResult()); err != nil {
		t.Fatalf("PrintTable failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Go") {
		t.Fatalf("table output missing Go row:\n%s", out)
	}
	if !strings.Contains(out, "Total") {
		t.Fatalf("table output missing Total row:\n%s", out)
	}
	if !strings.Contains(out, "Scanned 1 unique files (2 total)") {
		t.Fatalf("table output missing unique/total summary line:\n%s", out)
	}
	var goLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Go") {
			goLine = line
		}
	}
	fields := strings.Fields(goLine)
	if len(fields) != 5 || fields[1] != "2" || fields[2] != "6" || fields[3] != "1" || fields[4] != "1" {
		t.Fatalf("Go row = %q, want Files=2 (duplicate included) Code=6 Comment=1 Blank=1 (duplicate excluded)", goLine)
	}
}

func TestPrintDumpUnknownListsSortedExtensions(t *testing.T) {
	result := &engine.Result{UnknownExts: map[string]uint32{".zz": 3, ".aa": 1}}
	var buf bytes.Buffer
	PrintDumpUnknown(&buf, result)

	out := buf.String()
	aa := strings.Index(out, ".aa")
	zz := strings.Index(out, ".zz")
	if aa == -1 || zz == -1 || aa > zz {
		t.Fatalf("expected sorted extensions, got:\n%s", out)
	}
}

func TestPrintDumpUnknownSkipsEmptyTally(t *testing.T) {
	var buf bytes.Buffer
	PrintDumpUnknown(&buf, &engine.Result{})
	if buf.Len() != 0 {
		t.Fatalf("expected no output for an empty tally, got %q", buf.String())
	}
}

func TestToJSONNodeOmitsResultsForFiles(t *testing.T) {
	file := model.NewDirNode("main.go", model.Go)
	file.AddResult(model.Go, model.LocResult{Files: 1, Code: 3})

	node := toJSONNode(file)
	if node.Type != "Go" {
		t.Fatalf("Type = %q, want Go", node.Type)
	}
	if node.Results != nil {
		t.Fatal("a non-directory node must not emit a Results list")
	}
}

func TestToJSONNodeIncludesDirectoryResults(t *testing.T) {
	dir := model.NewDirNode("project", model.Directory)
	dir.AddResult(model.Go, model.LocResult{Files: 1, Code: 5, Comment: 1, Whitespace: 2})

	node := toJSONNode(dir)
	if len(node.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(node.Results))
	}
	if node.Results[0].Code != 5 || node.Results[0].Blank != 2 {
		t.Fatalf("got %+v, want Code=5 Blank=2", node.Results[0])
	}
}

func TestMarshalResultSetsRootLabel(t *testing.T) {
	node := MarshalResult(sampleResult())
	if node.Root != "project" {
		t.Fatalf("Root = %q, want %q", node.Root, "project")
	}
}
