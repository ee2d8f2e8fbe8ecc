package classify

import (
	"testing"

	"flocc/internal/model"
)

func TestClassifyPathByExtension(t *testing.T) {
	cases := []struct {
		name string
		want model.FileKind
	}{
		{"main.go", model.Go},
		{"lib.rs", model.Rust},
		{"index.ts", model.TypeScript},
		{"index.tsx", model.TypeScript},
		{"style.css", model.CSS},
		{"data.json", model.JSON},
		{"script.py", model.Python},
		{"run.pl", model.Perl},
		{"page.html", model.HTML},
		{"icon.svg", model.SVG},
		{"README.txt", model.Text},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyPath(tc.name, nil)
			if got != tc.want {
				t.Fatalf("ClassifyPath(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestClassifyPathBasenames(t *testing.T) {
	cases := []struct {
		name string
		want model.FileKind
	}{
		{"Makefile", model.Makefile},
		{"Kconfig", model.Kconfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyPath(tc.name, nil)
			if got != tc.want {
				t.Fatalf("ClassifyPath(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestClassifyPathTalliesUnknownExtensions(t *testing.T) {
	unknown := make(map[string]uint32)

	if got := ClassifyPath("image.png", unknown); got != model.Unknown {
		t.Fatalf("ClassifyPath(image.png) = %v, want Unknown", got)
	}
	if got := ClassifyPath("photo.png", unknown); got != model.Unknown {
		t.Fatalf("ClassifyPath(photo.png) = %v, want Unknown", got)
	}
	if unknown[".png"] != 2 {
		t.Fatalf("unknown[.png] = %d, want 2", unknown[".png"])
	}
}

func TestClassifyPathExtensionlessTalliesByBasename(t *testing.T) {
	unknown := make(map[string]uint32)
	if got := ClassifyPath("LICENSE", unknown); got != model.Unknown {
		t.Fatalf("ClassifyPath(LICENSE) = %v, want Unknown", got)
	}
	if unknown["LICENSE"] != 1 {
		t.Fatalf("unknown[LICENSE] = %d, want 1", unknown["LICENSE"])
	}
}

func TestHasHandlerCoversPerlSpecially(t *testing.T) {
	if !HasHandler(model.Perl) {
		t.Fatal("Perl must have a handler even though it has no direct SourceSpec entry")
	}
	if HasHandler(model.Unknown) {
		t.Fatal("Unknown must not have a handler")
	}
	if HasHandler(model.Directory) {
		t.Fatal("Directory must not have a handler")
	}
}

func TestBufferDispatchesPerlThroughShellGrammar(t *testing.T) {
	code, comment, _ := Buffer(model.Perl, []byte("print 1; # c\n__END__\nnot perl at all {{{\n"))
	if code != 1 || comment != 0 {
		t.Fatalf("got code=%d comment=%d, want the __END__ tail excluded from the count", code, comment)
	}
}
