package jsoncedit

import "strings"

// propertyRange describes the text span a property occupies for deletion
// purposes.
type propertyRange struct {
	// singleLine is true when the property shares its source line with the
	// opening brace of its container.
	singleLine bool
	// lineStart is the offset of the first character of the property's line.
	lineStart int
	// deleteStart..deleteEnd is the span Remove cuts: leading comment (unless
	// detached), indentation, key, value, one trailing comma, trailing
	// comment (unless detached), trailing whitespace and, in multi-line
	// context, one line terminator.
	deleteStart int
	deleteEnd   int
}

// resolvePropertyRange computes the deletion span for a property node.
func resolvePropertyRange(text string, prop *Node) propertyRange {
	r := propertyRange{lineStart: lineStartOffset(text, prop.Offset)}
	r.singleLine = strings.ContainsRune(text[r.lineStart:prop.Offset], '{')

	switch {
	case r.singleLine:
		r.deleteStart = prop.Offset
	default:
		r.deleteStart = r.lineStart
		if c := findLeadingComment(text, prop.Offset); c != nil && !c.Detached() {
			if c.ownsLine(text) {
				r.deleteStart = lineStartOffset(text, c.Start)
			} else {
				// the brace before the comment stays
				r.deleteStart = c.Start
			}
		}
	}

	i := prop.end()
	if i < len(text) && text[i] == ',' {
		i++
	}
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if c := findTrailingComment(text, prop.end()); c != nil {
		if c.Detached() {
			// leave the comment and its line in place
			r.deleteEnd = i
			return r
		}
		i = c.End
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
	}
	if !r.singleLine {
		if i < len(text) && text[i] == '\r' {
			i++
		}
		if i < len(text) && text[i] == '\n' {
			i++
		}
	}
	r.deleteEnd = i
	return r
}
