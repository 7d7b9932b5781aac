// Package jsoncedit edits JSON-with-comments documents by byte surgery,
// guaranteeing that every byte outside the edited region is preserved exactly:
// comments, whitespace, indentation style and trailing commas all survive.
// Each operation is a pure function from document text to document text and
// reparses from scratch, so paths stay valid across successive edits even
// though offsets do not.
package jsoncedit

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a location in the logical value tree. Segments are property
// names (string) or array indices (int).
type Path []any

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		switch s := seg.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", s)
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			fmt.Fprintf(&b, "%v", s)
		}
	}
	return b.String()
}

// ParsePath parses dot-and-bracket notation: "a.b.2" and "a.b[2]" are the
// same path. A segment of bare digits is an array index; anything else is a
// key.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var path Path
	for _, part := range strings.Split(s, ".") {
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				break
			}
			head := part[:open]
			closing := strings.IndexByte(part[open:], ']')
			if closing < 0 {
				return nil, fmt.Errorf("jsoncedit: unterminated index in path segment %q", part)
			}
			idx, err := strconv.Atoi(part[open+1 : open+closing])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("jsoncedit: invalid array index in path segment %q", part)
			}
			if head != "" {
				path = append(path, segmentOf(head))
			}
			path = append(path, idx)
			part = part[open+closing+1:]
			if part == "" {
				break
			}
			if part[0] != '[' {
				return nil, fmt.Errorf("jsoncedit: unexpected content after index in path segment %q", part)
			}
		}
		if part != "" {
			path = append(path, segmentOf(part))
		}
	}
	return path, nil
}

func segmentOf(tok string) any {
	if n, err := strconv.Atoi(tok); err == nil && n >= 0 && tok[0] != '+' {
		return n
	}
	return tok
}

// Parse decodes the document into plain Go values (map[string]any, []any,
// float64, bool, string, nil).
func Parse(text string) (any, error) {
	root, err := parseTree(text)
	if err != nil {
		return nil, err
	}
	return nodeValue(root), nil
}

// Get returns the decoded value at path. The boolean is false when the path
// does not resolve or the document does not parse. Never fails.
func Get(text string, path Path) (any, bool) {
	root, _ := parseTree(text)
	if root == nil {
		return nil, false
	}
	n := findNodeAtPath(root, path)
	if n == nil {
		return nil, false
	}
	return nodeValue(n), true
}

// Has reports whether path resolves in the document. Never fails.
func Has(text string, path Path) bool {
	_, ok := Get(text, path)
	return ok
}

// Set writes value at path, creating intermediate containers as needed:
// string segments create objects, integer segments create or extend arrays.
func Set(text string, path Path, value any) (string, error) {
	edits, err := setValueEdits(text, path, value, nil, false)
	if err != nil {
		return text, err
	}
	return applyEdits(text, edits), nil
}

// SetWithComment writes value at path and attaches a leading comment when the
// resulting property sits on its own line. Single-line properties get no
// comment, by convention.
func SetWithComment(text string, path Path, value any, comment string) (string, error) {
	out, err := Set(text, path, value)
	if err != nil {
		return text, err
	}
	if comment == "" {
		return out, nil
	}
	return SetComment(out, path, comment)
}

// Remove deletes the property or array element at path together with its
// non-detached comments and its slot in the container. A path that does not
// resolve is a no-op.
func Remove(text string, path Path) (string, error) {
	root, _ := parseTree(text)
	if root == nil {
		return text, nil
	}
	target := findNodeAtPath(root, path)
	if target == nil {
		return text, nil
	}
	if target.Parent == nil || target.Parent.Type != NodeProperty {
		// array element or root: fall back to the structural editor
		edits, err := setValueEdits(text, path, removeValue, nil, false)
		if err != nil {
			return text, err
		}
		return applyEdits(text, edits), nil
	}

	prop := target.Parent
	r := resolvePropertyRange(text, prop)
	out := text[:r.deleteStart] + text[r.deleteEnd:]
	return removeDanglingComma(out, r.deleteStart), nil
}

// removeDanglingComma drops a comma left hanging before a closing brace after
// the last property of an object was removed.
func removeDanglingComma(text string, gap int) string {
	i := gap - 1
	for i >= 0 && isSpaceChar(text[i]) {
		i--
	}
	if i < 0 || text[i] != ',' {
		return text
	}
	j := gap
	for j < len(text) && isSpaceChar(text[j]) {
		j++
	}
	if j >= len(text) || text[j] != '}' {
		return text
	}
	return text[:i] + text[i+1:]
}

func isSpaceChar(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Rename moves the value at path to a sibling key. The leading comment
// survives under the new key; trailing comments do not carry across.
func Rename(text string, path Path, newKey string) (string, error) {
	if len(path) == 0 {
		return text, fmt.Errorf("jsoncedit: cannot rename the document root")
	}
	if _, ok := path[len(path)-1].(string); !ok {
		return text, fmt.Errorf("jsoncedit: cannot rename an array element")
	}
	value, ok := Get(text, path)
	if !ok {
		return text, nil
	}
	comment, detached := savedLeadingComment(text, path)

	out, err := Remove(text, path)
	if err != nil {
		return text, err
	}
	newPath := append(append(Path(nil), path[:len(path)-1]...), newKey)
	out, err = Set(out, newPath, value)
	if err != nil {
		return text, err
	}
	if comment != "" && !detached {
		// detached comments stayed in place during Remove
		return SetComment(out, newPath, comment)
	}
	return out, nil
}

// Move reads the value at fromPath, removes it, and writes it at toPath.
// Comments at the source belong to the removed block and are not
// transplanted.
func Move(text string, fromPath, toPath Path) (string, error) {
	value, ok := Get(text, fromPath)
	if !ok {
		return text, nil
	}
	out, err := Remove(text, fromPath)
	if err != nil {
		return text, err
	}
	return Set(out, toPath, value)
}

func savedLeadingComment(text string, path Path) (string, bool) {
	prop, rng := locateProperty(text, path)
	if prop == nil || rng.singleLine {
		return "", false
	}
	c := findLeadingComment(text, prop.Offset)
	if c == nil {
		return "", false
	}
	return c.Text, c.Detached()
}
