package jsoncedit

import (
	"strings"
)

// Comment is a located comment with delimiters stripped and content trimmed.
// Start and End are the byte range of the raw comment including delimiters.
type Comment struct {
	Start int
	End   int
	Text  string
	Block bool
}

// DetachMarker prefixes a comment that must survive deletion of the property
// it documents.
const DetachMarker = "**"

// Detached reports whether the comment is exempt from deletion-with-property.
func (c *Comment) Detached() bool {
	return c != nil && strings.HasPrefix(c.Text, DetachMarker)
}

// findLeadingComment scans backward from the start offset of a property key
// for a comment on the line(s) immediately above. The property must not share
// its line with preceding content; callers check single-line context first.
// A blank line between the comment and the property breaks the association.
// A comment sharing its line with the container's opening brace still counts;
// one following a value or a comma belongs to the property before it.
//
// The rule order matters: skip spaces/tabs, require a newline, skip one CR,
// skip the prior line's trailing whitespace, then try a block comment end
// before a line comment. Reordering changes behavior on edge cases such as a
// block comment followed by blank space.
func findLeadingComment(text string, propertyOffset int) *Comment {
	i := propertyOffset - 1
	for i >= 0 && (text[i] == ' ' || text[i] == '\t') {
		i--
	}
	if i < 0 || text[i] != '\n' {
		return nil
	}
	i--
	if i >= 0 && text[i] == '\r' {
		i--
	}
	for i >= 0 && (text[i] == ' ' || text[i] == '\t') {
		i--
	}
	if i < 0 {
		return nil
	}
	if isEOLChar(text[i]) {
		// blank line above: whatever sits beyond it is not attached
		return nil
	}

	if i >= 1 && text[i] == '/' && text[i-1] == '*' {
		end := i + 1
		for j := i - 1; j > 0; j-- {
			if text[j-1] == '/' && text[j] == '*' {
				start := j - 1
				if !attachableBefore(text, start) {
					return nil
				}
				return &Comment{
					Start: start,
					End:   end,
					Text:  strings.TrimSpace(text[start+2 : end-2]),
					Block: true,
				}
			}
		}
		return nil
	}

	lineEnd := i + 1
	lineStart := lineStartOffset(text, i)
	line := text[lineStart:lineEnd]
	idx := lineCommentStart(line)
	if idx < 0 {
		return nil
	}
	markerStart := lineStart + idx
	if !attachableBefore(text, markerStart) {
		return nil
	}
	return &Comment{
		Start: markerStart,
		End:   lineEnd,
		Text:  strings.TrimSpace(line[idx+2:]),
	}
}

// lineCommentStart returns the offset within line of the first // marker that
// is not inside a string literal, or -1.
func lineCommentStart(line string) int {
	inString := false
	for i := 0; i+1 < len(line); i++ {
		switch {
		case inString:
			switch line[i] {
			case '\\':
				i++
			case '"':
				inString = false
			}
		case line[i] == '"':
			inString = true
		case line[i] == '/' && line[i+1] == '/':
			return i
		}
	}
	return -1
}

// attachableBefore reports whether a comment starting at offset may lead the
// property below it, given what precedes the comment on its own line: nothing,
// or the container's opening brace.
func attachableBefore(text string, offset int) bool {
	before := strings.TrimSpace(text[lineStartOffset(text, offset):offset])
	return before == "" || strings.HasSuffix(before, "{")
}

// ownsLine reports whether the comment is the first non-whitespace content on
// its line. Comments that share a line with the opening brace are deleted or
// replaced without touching the brace.
func (c *Comment) ownsLine(text string) bool {
	start := lineStartOffset(text, c.Start)
	return strings.TrimSpace(text[start:c.Start]) == ""
}

// findTrailingComment scans forward from the end offset of a property's value
// past an optional comma for a comment on the same physical line.
func findTrailingComment(text string, valueEnd int) *Comment {
	i := valueEnd
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i < len(text) && text[i] == ',' {
		i++
	}
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i+1 >= len(text) || text[i] != '/' {
		return nil
	}
	switch text[i+1] {
	case '/':
		end := i
		for end < len(text) && !isEOLChar(text[end]) {
			end++
		}
		return &Comment{
			Start: i,
			End:   end,
			Text:  strings.TrimSpace(text[i+2 : end]),
		}
	case '*':
		close := strings.Index(text[i+2:], "*/")
		if close < 0 {
			return nil
		}
		end := i + 2 + close + 2
		return &Comment{
			Start: i,
			End:   end,
			Text:  strings.TrimSpace(text[i+2 : end-2]),
			Block: true,
		}
	}
	return nil
}

// lineStartOffset returns the offset of the first character of the line
// containing offset.
func lineStartOffset(text string, offset int) int {
	i := offset
	for i > 0 && text[i-1] != '\n' {
		i--
	}
	return i
}

// GetComment returns the leading comment content at path, falling back to the
// trailing comment: the nearest documentation wins. The boolean is false when
// the path does not resolve or neither comment exists. Never fails on
// unparsable input.
func GetComment(text string, path Path) (string, bool) {
	prop, rng := locateProperty(text, path)
	if prop == nil {
		return "", false
	}
	if !rng.singleLine {
		if c := findLeadingComment(text, prop.Offset); c != nil {
			return c.Text, true
		}
	}
	if c := findTrailingComment(text, prop.end()); c != nil {
		return c.Text, true
	}
	return "", false
}

// GetTrailingComment returns only the trailing comment content at path.
func GetTrailingComment(text string, path Path) (string, bool) {
	prop, _ := locateProperty(text, path)
	if prop == nil {
		return "", false
	}
	if c := findTrailingComment(text, prop.end()); c != nil {
		return c.Text, true
	}
	return "", false
}

// SetComment writes or replaces the leading comment of the property at path.
// Single-line properties are left untouched: a line comment cannot be placed
// inside a single-line container without restructuring it.
func SetComment(text string, path Path, content string) (string, error) {
	prop, rng := locateProperty(text, path)
	if prop == nil || rng.singleLine {
		return text, nil
	}
	indent := text[rng.lineStart:prop.Offset]
	rendered := indent + "// " + content + detectEOL(nil, text)
	if c := findLeadingComment(text, prop.Offset); c != nil {
		if !c.ownsLine(text) {
			return text[:c.Start] + "// " + content + text[c.End:], nil
		}
		start := lineStartOffset(text, c.Start)
		return text[:start] + rendered + text[rng.lineStart:], nil
	}
	return text[:rng.lineStart] + rendered + text[rng.lineStart:], nil
}

// SetTrailingComment writes or replaces the trailing comment of the property
// at path. Single-line properties are left untouched.
func SetTrailingComment(text string, path Path, content string) (string, error) {
	prop, rng := locateProperty(text, path)
	if prop == nil || rng.singleLine {
		return text, nil
	}
	if c := findTrailingComment(text, prop.end()); c != nil {
		return text[:c.Start] + "// " + content + text[c.End:], nil
	}
	// insert after the value and its optional comma
	i := prop.end()
	if i < len(text) && text[i] == ',' {
		i++
	}
	return text[:i] + " // " + content + text[i:], nil
}

// RemoveComment deletes the leading comment line(s) of the property at path.
// Missing comment or unresolvable path is a no-op.
func RemoveComment(text string, path Path) (string, error) {
	prop, rng := locateProperty(text, path)
	if prop == nil || rng.singleLine {
		return text, nil
	}
	c := findLeadingComment(text, prop.Offset)
	if c == nil {
		return text, nil
	}
	if !c.ownsLine(text) {
		start := c.Start
		for start > 0 && (text[start-1] == ' ' || text[start-1] == '\t') {
			start--
		}
		return text[:start] + text[c.End:], nil
	}
	start := lineStartOffset(text, c.Start)
	return text[:start] + text[rng.lineStart:], nil
}

// RemoveTrailingComment deletes the trailing comment of the property at path
// through end of line. Missing comment is a no-op.
func RemoveTrailingComment(text string, path Path) (string, error) {
	prop, _ := locateProperty(text, path)
	if prop == nil {
		return text, nil
	}
	c := findTrailingComment(text, prop.end())
	if c == nil {
		return text, nil
	}
	start := c.Start
	for start > 0 && (text[start-1] == ' ' || text[start-1] == '\t') {
		start--
	}
	return text[:start] + text[c.End:], nil
}

// locateProperty parses text and resolves path to its property node plus the
// resolved deletion range. Returns nil on parse failure or a miss.
func locateProperty(text string, path Path) (*Node, propertyRange) {
	root, _ := parseTree(text)
	if root == nil {
		return nil, propertyRange{}
	}
	prop := findPropertyAtPath(root, path)
	if prop == nil {
		return nil, propertyRange{}
	}
	return prop, resolvePropertyRange(text, prop)
}
