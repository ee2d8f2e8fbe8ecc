package classify

// lineState is the classifier's current parse mode, carried across byte
// boundaries and across line boundaries within a single Classify call.
type lineState int

const (
	stateBegin lineState = iota
	stateString
	stateLineComment
	stateBlockComment
)

// Classify scans buffer once and buckets every non-empty logical line into
// exactly one of code, comment or whitespace, per spec. A line is
// non-empty if at least one byte appears before its terminator; an empty
// line (bare "\n") contributes to none of the three counters, in any
// state. When both code and comment tokens appear on the same line, code
// wins. Unterminated strings and block comments at end-of-buffer implicitly
// carry their classification into the trailing partial line.
func Classify(spec SourceSpec, buffer []byte) (code, comment, whitespace uint32) {
	n := len(buffer)
	if n == 0 {
		return 0, 0, 0
	}

	state := stateBegin
	var lineCode, lineComment, sawByte bool
	var lastByte byte

	finish := func() {
		if !sawByte {
			return
		}
		switch {
		case lineCode:
			code++
		case lineComment:
			comment++
		default:
			whitespace++
		}
	}

	i := 0
	for i < n {
		b := buffer[i]
		if b != '\n' {
			sawByte = true
		}

		switch state {
		case stateBegin:
			if spec.Block != nil && hasPrefixAt(buffer, i, spec.Block.Open) {
				lineComment = true
				state = stateBlockComment
				lastByte = spec.Block.Open[len(spec.Block.Open)-1]
				i += len(spec.Block.Open)
				continue
			}
			if tok := matchLineComment(spec.Line, buffer, i); tok != nil {
				lineComment = true
				state = stateLineComment
				lastByte = tok[len(tok)-1]
				i += len(tok)
				continue
			}
			if spec.Strings && b == '"' {
				lineCode = true
				state = stateString
				lastByte = b
				i++
				continue
			}
			if b == '\n' {
				finish()
				lineCode, lineComment, sawByte = false, false, false
				lastByte = b
				i++
				continue
			}
			if !isBlank(b) {
				lineCode = true
			}
			lastByte = b
			i++

		case stateString:
			if b == '"' && lastByte != '\\' {
				state = stateBegin
				lastByte = b
				i++
				continue
			}
			if b == '\n' {
				finish()
				lineComment, lineCode, sawByte = false, true, false
				lastByte = b
				i++
				continue
			}
			lastByte = b
			i++

		case stateLineComment:
			if b == '\n' {
				finish()
				lineCode, lineComment, sawByte = false, false, false
				state = stateBegin
				lastByte = b
				i++
				continue
			}
			lastByte = b
			i++

		case stateBlockComment:
			if spec.Block != nil && hasPrefixAt(buffer, i, spec.Block.Close) {
				state = stateBegin
				lastByte = spec.Block.Close[len(spec.Block.Close)-1]
				i += len(spec.Block.Close)
				continue
			}
			if b == '\n' {
				finish()
				lineCode, lineComment, sawByte = false, true, false
				lastByte = b
				i++
				continue
			}
			lastByte = b
			i++
		}
	}

	if buffer[n-1] != '\n' {
		finish()
	}

	return code, comment, whitespace
}

// hasPrefixAt reports whether buffer[i:] begins with tok, without
// allocating a subslice when the comparison is going to fail on length.
func hasPrefixAt(buffer []byte, i int, tok []byte) bool {
	if len(tok) == 0 || i+len(tok) > len(buffer) {
		return false
	}
	for j, t := range tok {
		if buffer[i+j] != t {
			return false
		}
	}
	return true
}

// matchLineComment returns the first configured line-comment prefix found
// at position i, or nil. Order matters: earlier entries take priority.
func matchLineComment(prefixes [][]byte, buffer []byte, i int) []byte {
	for _, p := range prefixes {
		if hasPrefixAt(buffer, i, p) {
			return p
		}
	}
	return nil
}

func isBlank(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
