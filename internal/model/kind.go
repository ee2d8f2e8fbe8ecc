// Package model holds the data types shared by the classifier, walkers,
// aggregator and reporters: file kinds and the per-file and per-tree
// result shapes.
package model

// FileKind is the closed set of classifications a path or buffer can be
// assigned. Directory, Unknown and Ignore never reach the line classifier;
// every other value selects a SourceSpec through the handler dispatch table.
type FileKind int

const (
	Unknown FileKind = iota
	Directory
	Ignore
	C
	CHeader
	CPP
	Assembly
	Python
	Perl
	XML
	HTML
	SVG
	XSLT
	Java
	Yacc
	DeviceTree
	Makefile
	Kconfig
	Shell
	YAML
	LaTeX
	Text
	Coccinelle
	ASN1
	Sed
	Awk
	Rust
	Go
	JSON
	JavaScript
	CSS
	Lex
	Ruby
	TypeScript
)

var kindLabels = map[FileKind]string{
	Unknown:    "Unknown",
	Directory:  "Directory",
	Ignore:     "Ignore",
	C:          "C",
	CHeader:    "C/C++ Header",
	CPP:        "C++",
	Assembly:   "Assembly",
	Python:     "Python",
	Perl:       "Perl",
	XML:        "XML",
	HTML:       "HTML",
	SVG:        "SVG",
	XSLT:       "XSLT",
	Java:       "Java",
	Yacc:       "Yacc",
	DeviceTree: "Device-Tree",
	Makefile:   "Makefile",
	Kconfig:    "Kconfig",
	Shell:      "Shell",
	YAML:       "YAML",
	LaTeX:      "LaTeX",
	Text:       "Text",
	Coccinelle: "Coccinelle",
	ASN1:       "ASN.1",
	Sed:        "Sed",
	Awk:        "Awk",
	Rust:       "Rust",
	Go:         "Go",
	JSON:       "JSON",
	JavaScript: "JavaScript",
	CSS:        "CSS",
	Lex:        "Lex",
	Ruby:       "Ruby",
	TypeScript: "TypeScript",
}

// String renders the human-readable label used in reports.
func (k FileKind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "Unknown"
}

// Kinds lists every non-structural FileKind (excludes Directory/Ignore) in
// declaration order, with Unknown last. Reporters re-sort per-kind rows by
// label (see aggregate.SortedKinds).
func Kinds() []FileKind {
	return []FileKind{
		C, CHeader, CPP, Assembly, Python, Perl, XML, HTML, SVG, XSLT, Java,
		Yacc, DeviceTree, Makefile, Kconfig, Shell, YAML, LaTeX, Text,
		Coccinelle, ASN1, Sed, Awk, Rust, Go, JSON, JavaScript, CSS, Lex,
		Ruby, TypeScript, Unknown,
	}
}
