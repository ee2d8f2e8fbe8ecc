// Package report renders a scanned directory tree as either a tabular
// summary or a hierarchical JSON document, and can export the JSON form
// to a file.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"flocc/internal/aggregate"
	"flocc/internal/engine"
	"flocc/internal/model"
)

// PrintTable writes the per-kind summary table for result to w, following
// the reference tool's layout: a header naming the argument and the
// unique/total file counts, a timing line, then a tab-aligned table with
// one row per kind in alphabetic order, a separator, and a Total row.
// Unknown never gets its own row — an unclassified file contributes
// nothing a human would want totalled — but every file the walk visited
// still counts toward the unique/total counts and the timing line. Each
// row's Files column counts every file of that kind, duplicates included;
// its Code/Comment/Blank columns sum only non-duplicate files, matching
// the rule that re-encountering identical content should not inflate a
// project's reported size (the JSON reporter, unlike this one, keeps
// every file's real counts — see aggregate.UniqueTotals).
func PrintTable(w io.Writer, result *engine.Result) error {
	fmt.Fprintf(w, "Results for %s:\n", result.RootLabel)
	fmt.Fprintf(w, "  Scanned %d unique files (%d total)\n", result.UniqueFiles, result.Files)
	fmt.Fprintf(w, "  %s\n", engine.FormatTiming(result.Files, result.Lines, result.Elapsed))

	const separator = "  --------------------------------------------------------------------"

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintln(tw, "  \tFiles\tCode\tComment\tBlank")
	fmt.Fprintln(tw, separator)

	unique := aggregate.UniqueTotals(result.Root)
	var totalFiles, totalCode, totalComment, totalBlank uint32
	for _, kind := range aggregate.SortedKinds(&result.Root.Results) {
		if kind == model.Unknown {
			continue
		}
		files := lookup(&result.Root.Results, kind).Files
		u := unique[kind]
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\t%d\n", kind, files, u.Code, u.Comment, u.Whitespace)
		totalFiles += files
		totalCode += u.Code
		totalComment += u.Comment
		totalBlank += u.Whitespace
	}
	fmt.Fprintln(tw, separator)
	fmt.Fprintf(tw, "  Total\t%d\t%d\t%d\t%d\n", totalFiles, totalCode, totalComment, totalBlank)
	return tw.Flush()
}

func lookup(rs *model.ResultSet, kind model.FileKind) model.LocResult {
	for _, e := range rs.Entries() {
		if e.Kind == kind {
			return e.Loc
		}
	}
	return model.LocResult{}
}

// PrintDumpUnknown writes the sorted list of extensions (or bare
// basenames, for extension-less files) that no handler recognized, one
// per line with its occurrence count.
func PrintDumpUnknown(w io.Writer, result *engine.Result) {
	if len(result.UnknownExts) == 0 {
		return
	}
	keys := make([]string, 0, len(result.UnknownExts))
	for k := range result.UnknownExts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "UNKNOWN EXTENSIONS")
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%d\n", k, result.UnknownExts[k])
	}
}

// jsonResult and jsonNode mirror model.DirNode into the plain struct
// shape encoding/json should emit: {"Type","Results","Entries"} for
// directories.
type jsonResult struct {
	Type    string `json:"Type"`
	Files   uint32 `json:"Files"`
	Code    uint32 `json:"Code"`
	Comment uint32 `json:"Comment"`
	Blank   uint32 `json:"Blank"`
}

type jsonNode struct {
	Root    string              `json:"Root,omitempty"`
	Type    string              `json:"Type"`
	Results []jsonResult        `json:"Results,omitempty"`
	Entries map[string]jsonNode `json:"Entries,omitempty"`
}

func toJSONNode(node *model.DirNode) jsonNode {
	out := jsonNode{Type: node.Kind.String()}
	if node.Kind != model.Directory {
		return out
	}

	for _, e := range node.Results.Entries() {
		out.Results = append(out.Results, jsonResult{
			Type:    e.Kind.String(),
			Files:   e.Loc.Files,
			Code:    e.Loc.Code,
			Comment: e.Loc.Comment,
			Blank:   e.Loc.Whitespace,
		})
	}

	names := node.SortedChildNames()
	if len(names) > 0 {
		out.Entries = make(map[string]jsonNode, len(names))
		for _, name := range names {
			out.Entries[name] = toJSONNode(node.Children[name])
		}
	}
	return out
}

// MarshalResult renders result's tree as a JSON document carrying the
// argument's display name alongside the usual tree shape.
func MarshalResult(result *engine.Result) jsonNode {
	node := toJSONNode(result.Root)
	node.Root = result.RootLabel
	return node
}

// PrintJSON writes the JSON document for every result in results as a
// single top-level array, one element per scanned argument.
func PrintJSON(w io.Writer, results []*engine.Result) error {
	docs := make([]jsonNode, 0, len(results))
	for _, r := range results {
		docs = append(docs, MarshalResult(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

// WriteJSONFile marshals results and writes them to path, creating the
// parent directory if necessary.
func WriteJSONFile(path string, results []*engine.Result) error {
	docs := make([]jsonNode, 0, len(results))
	for _, r := range results {
		docs = append(docs, MarshalResult(r))
	}

	content, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
