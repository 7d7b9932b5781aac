package jsoncedit

import "strings"

// FormatOptions controls Format and the re-indentation applied around edits.
// The zero value means: 2-space indent, line terminator detected from the
// document (falling back to "\n").
type FormatOptions struct {
	TabSize    int    // indent width, default 2
	InsertTabs bool   // indent with tabs instead of spaces
	EOL        string // line terminator; empty means detect from document
}

func (o *FormatOptions) tabSize() int {
	if o == nil || o.TabSize <= 0 {
		return 2
	}
	return o.TabSize
}

func (o *FormatOptions) indentValue() string {
	if o != nil && o.InsertTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.tabSize())
}

// Format re-renders whitespace and indentation over the whole document,
// keeping every comment token at its structural position. Empty containers
// stay on one line; non-empty containers get one entry per line.
func Format(text string, opts *FormatOptions) string {
	return applyEdits(text, formatEdits(text, nil, opts))
}

type editSpan struct {
	offset int
	length int
}

// formatEdits computes the minimal whitespace replacements that bring text
// into formatted shape. When rng is non-nil only edits intersecting the range
// are produced, with the surrounding lines used to seed the indent level.
func formatEdits(text string, rng *editSpan, opts *FormatOptions) []edit {
	formatStart := 0
	rangeStart, rangeEnd := 0, len(text)
	formatText := text
	initialIndentLevel := 0
	if rng != nil {
		rangeStart = rng.offset
		rangeEnd = rng.offset + rng.length
		formatStart = rangeStart
		for formatStart > 0 && !isEOLChar(text[formatStart-1]) {
			formatStart--
		}
		end := rangeEnd
		for end < len(text) && !isEOLChar(text[end]) {
			end++
		}
		formatText = text[formatStart:end]
		initialIndentLevel = computeIndentLevel(formatText, opts)
	}

	eol := detectEOL(opts, text)
	indentValue := opts.indentValue()

	sc := newScanner(formatText)
	hasError := false
	lineBreak := false
	indentLevel := 0
	var edits []edit

	newLinesAndIndent := func() string {
		return eol + strings.Repeat(indentValue, initialIndentLevel+indentLevel)
	}
	scanNext := func() token {
		t := sc.next()
		lineBreak = false
		for t.kind == tokenWhitespace || t.kind == tokenLineBreak {
			if t.kind == tokenLineBreak {
				lineBreak = true
			}
			t = sc.next()
		}
		hasError = t.kind == tokenUnknown || sc.tokenErr
		return t
	}
	addEdit := func(content string, start, end int) {
		if !hasError && start < rangeEnd && end > rangeStart && text[start:end] != content {
			edits = append(edits, edit{offset: start, length: end - start, content: content})
		}
	}

	first := scanNext()
	if first.kind != tokenEOF {
		addEdit(strings.Repeat(indentValue, initialIndentLevel), formatStart, first.offset+formatStart)
	}

	for first.kind != tokenEOF {
		firstTokenEnd := first.end() + formatStart
		second := scanNext()
		replace := ""
		needsLineBreak := false

		// comments that follow the previous token on its own line stay there
		for !lineBreak && second.kind.isComment() {
			addEdit(" ", firstTokenEnd, second.offset+formatStart)
			firstTokenEnd = second.end() + formatStart
			needsLineBreak = second.kind == tokenLineComment
			if needsLineBreak {
				replace = newLinesAndIndent()
			} else {
				replace = ""
			}
			second = scanNext()
		}

		switch second.kind {
		case tokenCloseBrace:
			if first.kind != tokenOpenBrace {
				indentLevel--
				replace = newLinesAndIndent()
			}
		case tokenCloseBracket:
			if first.kind != tokenOpenBracket {
				indentLevel--
				replace = newLinesAndIndent()
			}
		default:
			switch first.kind {
			case tokenOpenBrace, tokenOpenBracket:
				indentLevel++
				replace = newLinesAndIndent()
			case tokenComma, tokenLineComment:
				replace = newLinesAndIndent()
			case tokenBlockComment:
				if lineBreak {
					replace = newLinesAndIndent()
				} else if !needsLineBreak {
					replace = " "
				}
			case tokenColon:
				if !needsLineBreak {
					replace = " "
				}
			case tokenString:
				if second.kind == tokenColon {
					if !needsLineBreak {
						replace = ""
					}
					break
				}
				replace = afterScalar(second, needsLineBreak, replace, &hasError)
			default:
				replace = afterScalar(second, needsLineBreak, replace, &hasError)
			}
			if second.kind == tokenEOF {
				replace = ""
			}
		}
		addEdit(replace, firstTokenEnd, second.offset+formatStart)
		first = second
	}
	return edits
}

// afterScalar decides the gap after a scalar value token.
func afterScalar(second token, needsLineBreak bool, replace string, hasError *bool) string {
	if second.kind.isComment() {
		if !needsLineBreak {
			return " "
		}
		return replace
	}
	if second.kind != tokenComma && second.kind != tokenEOF {
		*hasError = true
	}
	return replace
}

func computeIndentLevel(content string, opts *FormatOptions) int {
	n := 0
	tabSize := opts.tabSize()
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case ' ':
			n++
		case '\t':
			n += tabSize
		default:
			return n / tabSize
		}
	}
	return n / tabSize
}

func detectEOL(opts *FormatOptions, text string) string {
	if opts != nil && opts.EOL != "" {
		return opts.EOL
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return "\r\n"
			}
			return "\r"
		case '\n':
			return "\n"
		}
	}
	return "\n"
}

func isEOLChar(c byte) bool { return c == '\n' || c == '\r' }
