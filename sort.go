package jsoncedit

import (
	"sort"
	"strings"
)

// SortOptions configures Sort. The zero value sorts lexicographically and
// recurses into nested object values.
type SortOptions struct {
	// Compare orders two property keys; nil means lexicographic.
	Compare func(a, b string) int
	// Shallow disables recursion into nested object values.
	Shallow bool
}

func (o *SortOptions) compare() func(a, b string) int {
	if o == nil || o.Compare == nil {
		return strings.Compare
	}
	return o.Compare
}

// Sort reorders the properties of the object at path (nil path means the
// document root) by key. Each property moves as one atomic text block
// together with its leading and trailing comments, comma and line
// terminator; block interiors are never edited. A path that does not resolve
// to an object is a no-op.
func Sort(text string, path Path, opts *SortOptions) (string, error) {
	root, _ := parseTree(text)
	if root == nil {
		return text, nil
	}
	node := findNodeAtPath(root, path)
	if node == nil || node.Type != NodeObject {
		return text, nil
	}

	if opts == nil || !opts.Shallow {
		// sort nested objects first; reparse after every rewrite so offsets
		// stay correct even though paths do not move
		for _, key := range objectKeys(node) {
			childPath := append(append(Path(nil), path...), key)
			child := findNodeAtPath(root, childPath)
			if child == nil || child.Type != NodeObject {
				continue
			}
			var err error
			if text, err = Sort(text, childPath, opts); err != nil {
				return text, err
			}
			if root, _ = parseTree(text); root == nil {
				return text, nil
			}
		}
		node = findNodeAtPath(root, path)
		if node == nil || node.Type != NodeObject {
			return text, nil
		}
	}
	return reorderBlocks(text, node, opts.compare()), nil
}

type propBlock struct {
	key      string
	text     string
	valueEnd int // where a comma would be inserted, relative to text
	commaPos int // position of the property's comma in text, or -1
}

func reorderBlocks(text string, obj *Node, cmp func(a, b string) int) string {
	props := obj.Children
	if len(props) < 2 {
		return text
	}

	starts := make([]int, len(props))
	for i, prop := range props {
		starts[i] = blockStart(text, prop)
	}
	lastEnd := blockEnd(text, props[len(props)-1])

	blocks := make([]propBlock, len(props))
	for i, prop := range props {
		end := lastEnd
		if i+1 < len(props) {
			// the gap up to the next block travels with this block
			end = starts[i+1]
		}
		b := propBlock{
			key:      prop.key(),
			text:     text[starts[i]:end],
			valueEnd: prop.end() - starts[i],
			commaPos: -1,
		}
		if c := commaOffset(text, prop.end()); c >= 0 {
			b.commaPos = c - starts[i]
		}
		blocks[i] = b
	}
	trailingComma := blocks[len(blocks)-1].commaPos >= 0

	sort.SliceStable(blocks, func(i, j int) bool {
		return cmp(blocks[i].key, blocks[j].key) < 0
	})

	var out strings.Builder
	out.WriteString(text[:starts[0]])
	for i, b := range blocks {
		last := i == len(blocks)-1
		switch {
		case !last || trailingComma:
			out.WriteString(withComma(b))
		default:
			out.WriteString(withoutComma(b))
		}
	}
	out.WriteString(text[lastEnd:])
	return out.String()
}

func withComma(b propBlock) string {
	if b.commaPos >= 0 {
		return b.text
	}
	return b.text[:b.valueEnd] + "," + b.text[b.valueEnd:]
}

func withoutComma(b propBlock) string {
	if b.commaPos < 0 {
		return b.text
	}
	return b.text[:b.commaPos] + b.text[b.commaPos+1:]
}

// blockStart is where a property's atomic block begins: its leading comment's
// line when one exists, its own line in multi-line context, or the key offset
// when the property shares a line with its container's brace. A comment on
// the brace line leads the first property but stays put during reorders.
func blockStart(text string, prop *Node) int {
	lineStart := lineStartOffset(text, prop.Offset)
	if strings.ContainsRune(text[lineStart:prop.Offset], '{') {
		return prop.Offset
	}
	if c := findLeadingComment(text, prop.Offset); c != nil && c.ownsLine(text) {
		return lineStartOffset(text, c.Start)
	}
	return lineStart
}

// blockEnd is where a property's block ends: past its comma, trailing
// comment, trailing whitespace and, in multi-line context, its line
// terminator.
func blockEnd(text string, prop *Node) int {
	lineStart := lineStartOffset(text, prop.Offset)
	singleLine := strings.ContainsRune(text[lineStart:prop.Offset], '{')

	i := prop.end()
	if c := commaOffset(text, i); c >= 0 {
		i = c + 1
	}
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if c := findTrailingComment(text, prop.end()); c != nil {
		i = c.End
		for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
			i++
		}
	}
	if !singleLine {
		if i < len(text) && text[i] == '\r' {
			i++
		}
		if i < len(text) && text[i] == '\n' {
			i++
		}
	}
	return i
}

// commaOffset finds the comma following a value, allowing whitespace between
// the value and the comma. Returns -1 when the value has no comma.
func commaOffset(text string, valueEnd int) int {
	i := valueEnd
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i < len(text) && text[i] == ',' {
		return i
	}
	return -1
}

func objectKeys(obj *Node) []string {
	keys := make([]string, 0, len(obj.Children))
	for _, prop := range obj.Children {
		keys = append(keys, prop.key())
	}
	return keys
}
