package classify

import (
	"flocc/internal/model"
)

var (
	cSpec = SourceSpec{
		Block:   &BlockComment{Open: []byte("/*"), Close: []byte("*/")},
		Line:    [][]byte{[]byte("//")},
		Strings: true,
	}
	asmSpec = SourceSpec{
		Block:   &BlockComment{Open: []byte("/*"), Close: []byte("*/")},
		Line:    [][]byte{[]byte("#")},
		Strings: true,
	}
	pythonSpec = SourceSpec{
		Block:   &BlockComment{Open: []byte(`"""`), Close: []byte(`"""`)},
		Line:    [][]byte{[]byte("#")},
		Strings: true,
	}
	shellSpec = SourceSpec{
		Line:    [][]byte{[]byte("#")},
		Strings: true,
	}
	xmlSpec = SourceSpec{
		Block: &BlockComment{Open: []byte("<!--"), Close: []byte("-->")},
	}
	latexSpec = SourceSpec{
		Line: [][]byte{[]byte("%")},
	}
	textSpec = SourceSpec{}
	asn1Spec = SourceSpec{
		Line: [][]byte{[]byte("--")},
	}
	rustSpec = SourceSpec{
		Line:    [][]byte{[]byte("//")},
		Strings: true,
	}
	cssSpec = SourceSpec{
		Block: &BlockComment{Open: []byte("/*"), Close: []byte("*/")},
	}
	rubySpec = SourceSpec{
		Block:   &BlockComment{Open: []byte("=begin"), Close: []byte("=end")},
		Line:    [][]byte{[]byte("#")},
		Strings: true,
	}
)

// handlers maps every classifiable FileKind onto the SourceSpec that
// governs it. Kinds sharing a comment/string grammar share one entry, the
// same grouping the original handler-dispatch table used: C-family
// languages, markup languages, and shell-family languages all reduce to a
// handful of specs rather than one per extension.
var handlers = map[model.FileKind]SourceSpec{
	model.C:          cSpec,
	model.CHeader:    cSpec,
	model.CPP:        cSpec,
	model.Java:       cSpec,
	model.Yacc:       cSpec,
	model.DeviceTree: cSpec,
	model.Coccinelle: cSpec,
	model.Go:         cSpec,
	model.JavaScript: cSpec,
	model.Lex:        cSpec,
	model.TypeScript: cSpec,

	model.Assembly: asmSpec,

	model.Python: pythonSpec,

	model.Makefile: shellSpec,
	model.Kconfig:  shellSpec,
	model.Shell:    shellSpec,
	model.YAML:     shellSpec,
	model.Sed:      shellSpec,
	model.Awk:      shellSpec,

	model.XML:  xmlSpec,
	model.HTML: xmlSpec,
	model.SVG:  xmlSpec,
	model.XSLT: xmlSpec,

	model.LaTeX: latexSpec,

	model.Text: textSpec,
	model.JSON: textSpec,

	model.ASN1: asn1Spec,

	model.Rust: rustSpec,

	model.CSS: cssSpec,

	model.Ruby: rubySpec,
}

// SpecFor returns the SourceSpec registered for kind and true, or the zero
// SourceSpec and false for structural kinds (Directory, Unknown, Ignore,
// Perl) that never go through the generic spec table directly.
func SpecFor(kind model.FileKind) (SourceSpec, bool) {
	spec, ok := handlers[kind]
	return spec, ok
}

// HasHandler reports whether kind has any line-counting behaviour at all,
// i.e. whether it is worth reading the file's bytes.
func HasHandler(kind model.FileKind) bool {
	if kind == model.Perl {
		return true
	}
	_, ok := handlers[kind]
	return ok
}

// Buffer runs the classifier appropriate for kind over buffer, applying
// any kind-specific preprocessing first. Perl is the one kind that isn't a
// direct SourceSpec lookup: it drops the first line that starts with
// "__END__", everything after it, and the last byte of the line before it
// (see trimPerlEnd), then classifies what remains with the shell grammar,
// because Perl's line-comment/string syntax is shell-compatible.
func Buffer(kind model.FileKind, buffer []byte) (code, comment, whitespace uint32) {
	if kind == model.Perl {
		return Classify(shellSpec, trimPerlEnd(buffer))
	}
	spec, ok := handlers[kind]
	if !ok {
		return 0, 0, 0
	}
	return Classify(spec, buffer)
}

var perlEndMarker = []byte("__END__")

// trimPerlEnd drops everything from the first "\n__END__" onward, along
// with the one byte that precedes that newline — Perl's __END__ token ends
// the program text and starts an opaque data section that must not be
// scanned for lines at all.
func trimPerlEnd(buf []byte) []byte {
	for i := 0; i < len(buf); i++ {
		if buf[i] != '\n' {
			continue
		}
		if !hasPrefixAt(buf, i+1, perlEndMarker) {
			continue
		}
		if i == 0 {
			return buf[:0]
		}
		return buf[:i-1]
	}
	return buf
}
