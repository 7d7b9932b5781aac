package jsoncedit

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NodeType identifies the kind of a parse-tree node.
type NodeType int

const (
	NodeObject NodeType = iota
	NodeArray
	NodeProperty
	NodeString
	NodeNumber
	NodeBoolean
	NodeNull
)

// Node is one element of the structural parse tree. Offset and Length are byte
// positions in the source text. A property node's offset is the offset of its
// key token and its length runs through the end of its value (excluding any
// trailing comma). Property children are [key, value]. Trees are rebuilt from
// scratch on every operation and never mutated in place.
type Node struct {
	Type     NodeType
	Offset   int
	Length   int
	Parent   *Node
	Children []*Node
	Value    any // decoded scalar; key string for property nodes
}

func (n *Node) end() int { return n.Offset + n.Length }

// key returns the property key for property nodes.
func (n *Node) key() string {
	s, _ := n.Value.(string)
	return s
}

// valueNode returns the value child of a property node.
func (n *Node) valueNode() *Node {
	if n.Type == NodeProperty && len(n.Children) == 2 {
		return n.Children[1]
	}
	return nil
}

// ParseError reports a syntax error with its byte offset.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsoncedit: parse error at offset %d: %s", e.Offset, e.Msg)
}

type treeParser struct {
	src string
	sc  *scanner
	tok token
}

// parseTree parses JSONC text into an offset-carrying tree. Line and block
// comments and trailing commas are accepted anywhere trivia is allowed.
func parseTree(text string) (*Node, error) {
	p := &treeParser{src: text, sc: newScanner(text)}
	p.advance()
	if p.tok.kind == tokenEOF {
		return nil, &ParseError{Offset: 0, Msg: "empty document"}
	}
	root, err := p.parseValue(nil)
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return root, &ParseError{Offset: p.tok.offset, Msg: "unexpected trailing content"}
	}
	return root, nil
}

func (p *treeParser) advance() {
	p.tok = p.sc.nextNonTrivia()
}

func (p *treeParser) parseValue(parent *Node) (*Node, error) {
	switch p.tok.kind {
	case tokenOpenBrace:
		return p.parseObject(parent)
	case tokenOpenBracket:
		return p.parseArray(parent)
	case tokenString:
		v, err := decodeString(p.src[p.tok.offset:p.tok.end()])
		if err != nil {
			return nil, &ParseError{Offset: p.tok.offset, Msg: err.Error()}
		}
		n := &Node{Type: NodeString, Offset: p.tok.offset, Length: p.tok.length, Parent: parent, Value: v}
		p.advance()
		return n, nil
	case tokenNumber:
		f, err := strconv.ParseFloat(p.src[p.tok.offset:p.tok.end()], 64)
		if err != nil {
			return nil, &ParseError{Offset: p.tok.offset, Msg: "invalid number"}
		}
		n := &Node{Type: NodeNumber, Offset: p.tok.offset, Length: p.tok.length, Parent: parent, Value: f}
		p.advance()
		return n, nil
	case tokenTrue, tokenFalse:
		n := &Node{Type: NodeBoolean, Offset: p.tok.offset, Length: p.tok.length, Parent: parent, Value: p.tok.kind == tokenTrue}
		p.advance()
		return n, nil
	case tokenNull:
		n := &Node{Type: NodeNull, Offset: p.tok.offset, Length: p.tok.length, Parent: parent}
		p.advance()
		return n, nil
	default:
		return nil, &ParseError{Offset: p.tok.offset, Msg: "value expected"}
	}
}

func (p *treeParser) parseObject(parent *Node) (*Node, error) {
	obj := &Node{Type: NodeObject, Offset: p.tok.offset, Parent: parent}
	p.advance() // '{'
	for p.tok.kind != tokenCloseBrace {
		if p.tok.kind == tokenEOF {
			return nil, &ParseError{Offset: p.tok.offset, Msg: "unterminated object"}
		}
		if p.tok.kind != tokenString {
			return nil, &ParseError{Offset: p.tok.offset, Msg: "property key expected"}
		}
		key, err := decodeString(p.src[p.tok.offset:p.tok.end()])
		if err != nil {
			return nil, &ParseError{Offset: p.tok.offset, Msg: err.Error()}
		}
		prop := &Node{Type: NodeProperty, Offset: p.tok.offset, Parent: obj, Value: key}
		keyNode := &Node{Type: NodeString, Offset: p.tok.offset, Length: p.tok.length, Parent: prop, Value: key}
		p.advance()
		if p.tok.kind != tokenColon {
			return nil, &ParseError{Offset: p.tok.offset, Msg: "colon expected"}
		}
		p.advance()
		val, err := p.parseValue(prop)
		if err != nil {
			return nil, err
		}
		prop.Children = []*Node{keyNode, val}
		prop.Length = val.end() - prop.Offset
		obj.Children = append(obj.Children, prop)

		if p.tok.kind == tokenComma {
			p.advance() // trailing comma before '}' is fine
			continue
		}
		if p.tok.kind != tokenCloseBrace {
			return nil, &ParseError{Offset: p.tok.offset, Msg: "comma or closing brace expected"}
		}
	}
	obj.Length = p.tok.end() - obj.Offset
	p.advance() // '}'
	return obj, nil
}

func (p *treeParser) parseArray(parent *Node) (*Node, error) {
	arr := &Node{Type: NodeArray, Offset: p.tok.offset, Parent: parent}
	p.advance() // '['
	for p.tok.kind != tokenCloseBracket {
		if p.tok.kind == tokenEOF {
			return nil, &ParseError{Offset: p.tok.offset, Msg: "unterminated array"}
		}
		el, err := p.parseValue(arr)
		if err != nil {
			return nil, err
		}
		arr.Children = append(arr.Children, el)

		if p.tok.kind == tokenComma {
			p.advance()
			continue
		}
		if p.tok.kind != tokenCloseBracket {
			return nil, &ParseError{Offset: p.tok.offset, Msg: "comma or closing bracket expected"}
		}
	}
	arr.Length = p.tok.end() - arr.Offset
	p.advance() // ']'
	return arr, nil
}

func decodeString(quoted string) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(quoted), &s); err != nil {
		return "", fmt.Errorf("invalid string literal")
	}
	return s, nil
}

// findNodeAtPath resolves a path against the tree and returns the value node,
// or nil when any segment fails to resolve.
func findNodeAtPath(root *Node, path Path) *Node {
	cur := root
	for _, seg := range path {
		if cur == nil {
			return nil
		}
		switch s := seg.(type) {
		case string:
			if cur.Type != NodeObject {
				return nil
			}
			var next *Node
			for _, prop := range cur.Children {
				if prop.key() == s {
					next = prop.valueNode()
					break
				}
			}
			cur = next
		case int:
			if cur.Type != NodeArray || s < 0 || s >= len(cur.Children) {
				return nil
			}
			cur = cur.Children[s]
		default:
			return nil
		}
	}
	return cur
}

// findPropertyAtPath returns the property node owning the value at path.
func findPropertyAtPath(root *Node, path Path) *Node {
	val := findNodeAtPath(root, path)
	if val == nil || val.Parent == nil || val.Parent.Type != NodeProperty {
		return nil
	}
	return val.Parent
}

// nodeValue decodes a node into plain Go values: map[string]any for objects
// (last duplicate wins), []any for arrays, float64/bool/string/nil for
// scalars.
func nodeValue(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case NodeObject:
		m := make(map[string]any, len(n.Children))
		for _, prop := range n.Children {
			m[prop.key()] = nodeValue(prop.valueNode())
		}
		return m
	case NodeArray:
		out := make([]any, 0, len(n.Children))
		for _, el := range n.Children {
			out = append(out, nodeValue(el))
		}
		return out
	case NodeProperty:
		return nodeValue(n.valueNode())
	default:
		return n.Value
	}
}
