package jsoncedit

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a YAML document into JSONC text. Head comments become
// leading // comments, line comments become trailing // comments, so YAML
// files bring their documentation with them.
func FromYAML(data []byte) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("jsoncedit: failed to parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return "", fmt.Errorf("jsoncedit: empty YAML document")
	}

	var b strings.Builder
	if err := renderYAMLNode(&b, doc.Content[0], 0); err != nil {
		return "", err
	}
	b.WriteByte('\n')
	return b.String(), nil
}

func renderYAMLNode(b *strings.Builder, n *yaml.Node, depth int) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{\n")
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			writeYAMLComments(b, key.HeadComment, depth+1)
			writeIndent(b, depth+1)
			kj, _ := json.Marshal(key.Value)
			b.Write(kj)
			b.WriteString(": ")
			if err := renderYAMLNode(b, val, depth+1); err != nil {
				return err
			}
			if i+2 < len(n.Content) {
				b.WriteByte(',')
			}
			writeYAMLLineComment(b, key.LineComment, val.LineComment)
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		for i, el := range n.Content {
			writeYAMLComments(b, el.HeadComment, depth+1)
			writeIndent(b, depth+1)
			if err := renderYAMLNode(b, el, depth+1); err != nil {
				return err
			}
			if i+1 < len(n.Content) {
				b.WriteByte(',')
			}
			writeYAMLLineComment(b, el.LineComment)
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		return renderYAMLScalar(b, n)
	default:
		return fmt.Errorf("jsoncedit: unsupported YAML node kind %v", n.Kind)
	}
}

func renderYAMLScalar(b *strings.Builder, n *yaml.Node) error {
	switch n.Tag {
	case "!!null":
		b.WriteString("null")
	case "!!bool":
		b.WriteString(n.Value)
	case "!!int", "!!float":
		// YAML allows number spellings JSON does not (0x1A, 1_000)
		var v any
		if err := n.Decode(&v); err == nil {
			if j, err := json.Marshal(v); err == nil {
				b.Write(j)
				return nil
			}
		}
		fallthrough
	default:
		j, err := json.Marshal(n.Value)
		if err != nil {
			return fmt.Errorf("jsoncedit: cannot encode YAML scalar: %w", err)
		}
		b.Write(j)
	}
	return nil
}

// writeYAMLComments renders a YAML head comment ("# ..." lines) as leading
// // comment lines at the given depth.
func writeYAMLComments(b *strings.Builder, comment string, depth int) {
	if comment == "" {
		return
	}
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
		if line == "" {
			continue
		}
		writeIndent(b, depth)
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// writeYAMLLineComment renders the first non-empty YAML line comment as a
// trailing // comment.
func writeYAMLLineComment(b *strings.Builder, comments ...string) {
	for _, c := range comments {
		c = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(c), "#"))
		if c == "" {
			continue
		}
		b.WriteString(" // ")
		b.WriteString(c)
		return
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
