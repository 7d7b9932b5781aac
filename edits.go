package jsoncedit

import (
	"encoding/json"
	"fmt"
	"sort"
)

// edit is a single byte-range replacement against the original text.
type edit struct {
	offset  int
	length  int
	content string
}

// applyEdits applies non-overlapping edits. Later offsets are applied first so
// earlier offsets stay valid.
func applyEdits(text string, edits []edit) string {
	sorted := make([]edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].offset == sorted[j].offset {
			return sorted[i].length < sorted[j].length
		}
		return sorted[i].offset < sorted[j].offset
	})
	for i := len(sorted) - 1; i >= 0; i-- {
		e := sorted[i]
		text = text[:e.offset] + e.content + text[e.offset+e.length:]
	}
	return text
}

// removeMarker requests deletion when passed as the value to setValueEdits.
type removeMarker struct{}

var removeValue = removeMarker{}

// setValueEdits computes the edit that writes value at path, creating
// intermediate containers as needed: string segments create objects, integer
// segments create or extend arrays (index -1 appends). Passing removeValue
// deletes the addressed array element; property deletion is comment-aware and
// lives in Remove. The affected lines are re-indented through formatEdits so
// insertions pick up the document style.
func setValueEdits(text string, path Path, value any, opts *FormatOptions, arrayInsertion bool) ([]edit, error) {
	root, err := parseTree(text)
	if err != nil && root == nil {
		if !isBlank(text) {
			return nil, err
		}
	}

	_, remove := value.(removeMarker)
	path = append(Path(nil), path...)
	var parent *Node
	var lastSegment any
	for len(path) > 0 {
		lastSegment = path[len(path)-1]
		path = path[:len(path)-1]
		parent = findNodeAtPath(root, path)
		if parent != nil || remove {
			break
		}
		// wrap the value so the missing container gets created with it
		if key, ok := lastSegment.(string); ok {
			value = map[string]any{key: value}
		} else {
			value = []any{value}
		}
	}

	if parent == nil {
		if remove {
			return nil, fmt.Errorf("jsoncedit: cannot delete in empty document")
		}
		content, err := encodeValue(value)
		if err != nil {
			return nil, err
		}
		e := edit{content: content}
		if root != nil {
			e.offset, e.length = root.Offset, root.Length
		}
		return withFormatting(text, e, opts), nil
	}

	switch key := lastSegment.(type) {
	case string:
		if parent.Type != NodeObject {
			return nil, fmt.Errorf("jsoncedit: cannot set key %q on non-object", key)
		}
		if remove {
			return nil, fmt.Errorf("jsoncedit: cannot delete property %q by value edit", key)
		}
		return objectEdit(text, parent, key, value, opts)
	case int:
		if parent.Type != NodeArray {
			return nil, fmt.Errorf("jsoncedit: cannot index non-array with %d", key)
		}
		return arrayEdit(text, parent, key, value, remove, arrayInsertion, opts)
	default:
		return nil, fmt.Errorf("jsoncedit: invalid path segment %v", lastSegment)
	}
}

func objectEdit(text string, parent *Node, key string, value any, opts *FormatOptions) ([]edit, error) {
	var existing *Node
	for _, prop := range parent.Children {
		if prop.key() == key {
			existing = prop
			break
		}
	}

	content, err := encodeValue(value)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		val := existing.valueNode()
		return withFormatting(text, edit{offset: val.Offset, length: val.Length, content: content}, opts), nil
	}

	keyJSON, _ := json.Marshal(key)
	newProperty := string(keyJSON) + ": " + content
	var e edit
	switch {
	case len(parent.Children) == 0:
		e = edit{offset: parent.Offset + 1, content: newProperty}
	default:
		previous := parent.Children[len(parent.Children)-1]
		e = edit{offset: previous.end(), content: "," + newProperty}
	}
	return withFormatting(text, e, opts), nil
}

func arrayEdit(text string, parent *Node, index int, value any, remove, insertion bool, opts *FormatOptions) ([]edit, error) {
	if remove {
		if index < 0 || index >= len(parent.Children) {
			return nil, nil
		}
		var e edit
		switch {
		case len(parent.Children) == 1:
			e = edit{offset: parent.Offset + 1, length: parent.Length - 2}
		case index == len(parent.Children)-1:
			previous := parent.Children[index-1]
			e = edit{offset: previous.end(), length: parent.end() - 1 - previous.end()}
		default:
			toRemove := parent.Children[index]
			e = edit{offset: toRemove.Offset, length: parent.Children[index+1].Offset - toRemove.Offset}
		}
		return withFormatting(text, e, opts), nil
	}

	content, err := encodeValue(value)
	if err != nil {
		return nil, err
	}
	var e edit
	switch {
	case index >= 0 && index < len(parent.Children) && !insertion:
		toModify := parent.Children[index]
		e = edit{offset: toModify.Offset, length: toModify.Length, content: content}
	case index >= 0 && index < len(parent.Children):
		// insert before index, shifting the rest
		e = edit{offset: parent.Children[index].Offset, content: content + ","}
	case len(parent.Children) == 0:
		e = edit{offset: parent.Offset + 1, content: content}
	default:
		// append (index -1 or past the end)
		previous := parent.Children[len(parent.Children)-1]
		e = edit{offset: previous.end(), content: "," + content}
	}
	return withFormatting(text, e, opts), nil
}

// withFormatting applies e, re-formats the changed region (whole lines for
// insertions and removals, just the new content for replacements) and folds
// the result back into a single edit against the original text.
func withFormatting(text string, e edit, opts *FormatOptions) []edit {
	newText := applyEdits(text, []edit{e})

	begin := e.offset
	end := e.offset + len(e.content)
	if e.length == 0 || len(e.content) == 0 {
		for begin > 0 && !isEOLChar(newText[begin-1]) {
			begin--
		}
		for end < len(newText) && !isEOLChar(newText[end]) {
			end++
		}
	}

	fmtEdits := formatEdits(newText, &editSpan{offset: begin, length: end - begin}, opts)
	// apply backwards and widen the changed region as offsets shift
	sort.SliceStable(fmtEdits, func(i, j int) bool { return fmtEdits[i].offset < fmtEdits[j].offset })
	for i := len(fmtEdits) - 1; i >= 0; i-- {
		fe := fmtEdits[i]
		newText = applyEdits(newText, []edit{fe})
		begin = min(begin, fe.offset)
		end = max(end, fe.offset+fe.length)
		end += len(fe.content) - fe.length
	}
	editLength := len(text) - (len(newText) - end) - begin
	return []edit{{offset: begin, length: editLength, content: newText[begin:end]}}
}

// isBlank reports whether text holds only whitespace and comments.
func isBlank(text string) bool {
	return newScanner(text).nextNonTrivia().kind == tokenEOF
}

// encodeValue renders a value as single-line JSON, the shape insertions take
// before line formatting re-indents them.
func encodeValue(value any) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("jsoncedit: cannot encode value: %w", err)
	}
	return string(b), nil
}
