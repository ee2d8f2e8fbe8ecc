package classify

import (
	"path"
	"strings"

	"flocc/internal/model"
)

// basenameKinds maps exact basenames (no extension involved) to a kind.
var basenameKinds = map[string]model.FileKind{
	"Makefile": model.Makefile,
	"Kconfig":  model.Kconfig,
}

// extKinds maps a case-sensitive extension (including the leading dot) to
// a kind. C and C++ share several extensions that differ only by case or
// by a handful of conventional suffixes; this table mirrors the reference
// classifier's if-chain one entry at a time.
var extKinds = map[string]model.FileKind{
	".c":     model.C,
	".h":     model.CHeader,
	".hh":    model.CHeader,
	".cc":    model.CPP,
	".cpp":   model.CPP,
	".C":     model.CPP,
	".c++":   model.CPP,
	".S":     model.Assembly,
	".py":    model.Python,
	".pl":    model.Perl,
	".pm":    model.Perl,
	".xml":   model.XML,
	".htm":   model.HTML,
	".html":  model.HTML,
	".xhtml": model.HTML,
	".svg":   model.SVG,
	".xsl":   model.XSLT,
	".xslt":  model.XSLT,
	".java":  model.Java,
	".y":     model.Yacc,
	".dts":   model.DeviceTree,
	".dtsi":  model.DeviceTree,
	".sh":    model.Shell,
	".yaml":  model.YAML,
	".tex":   model.LaTeX,
	".txt":   model.Text,
	".rst":   model.Text,
	".cocci": model.Coccinelle,
	".asn1":  model.ASN1,
	".sed":   model.Sed,
	".awk":   model.Awk,
	".rs":    model.Rust,
	".go":    model.Go,
	".json":  model.JSON,
	".js":    model.JavaScript,
	".css":   model.CSS,
	".l":     model.Lex,
	".rb":    model.Ruby,
	".ts":    model.TypeScript,
	".tsx":   model.TypeScript,
}

// ClassifyPath assigns a FileKind to name (a basename or path), matching
// well-known basenames first and falling back to extension lookup.
// Extensions it has never seen are tallied into unknownExts (keyed by the
// extension including its dot, or by the whole basename for extension-less
// names) so a run
// can later report which unclassified suffixes it skipped; the caller
// supplies the map explicitly rather than this package owning mutable
// global state, so concurrent classification across goroutines stays safe
// as long as each goroutine uses its own map and results are merged after.
func ClassifyPath(name string, unknownExts map[string]uint32) model.FileKind {
	base := path.Base(name)
	if kind, ok := basenameKinds[base]; ok {
		return kind
	}

	ext := extOf(base)
	if ext == "" {
		if unknownExts != nil {
			unknownExts[base]++
		}
		return model.Unknown
	}
	if kind, ok := extKinds[ext]; ok {
		return kind
	}
	if unknownExts != nil {
		unknownExts[ext]++
	}
	return model.Unknown
}

// extOf returns the final dotted extension of base, including the dot, or
// "" if base has no extension or begins with a dot and has no further dot
// (a dotfile is not treated as having an extension of its whole name).
func extOf(base string) string {
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return base[idx:]
}
