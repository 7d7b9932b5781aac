package jsoncedit

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Change describes a nested modification: set a value, delete a key, or
// recurse into an object. It is a closed variant set, decided when the change
// is built rather than by runtime type tests during flattening.
type Change interface{ isChange() }

// Leaf sets the addressed key to Value. The value is written atomically, even
// when it is a map or a slice.
type Leaf struct{ Value any }

func (Leaf) isChange() {}

type deletion struct{}

func (deletion) isChange() {}

// Delete marks a key for removal inside a change description.
var Delete Change = deletion{}

// Nested recurses into an object one level deeper.
type Nested map[string]Change

func (Nested) isChange() {}

// ChangeLeaf is one flattened instruction.
type ChangeLeaf struct {
	Path   Path
	Value  any
	Delete bool
}

// ChangeOf builds a Change from plain Go values: maps recurse, Delete passes
// through, Change values pass through, everything else becomes a Leaf.
func ChangeOf(v any) Change {
	switch t := v.(type) {
	case Change:
		return t
	case map[string]any:
		n := make(Nested, len(t))
		for k, sub := range t {
			n[k] = ChangeOf(sub)
		}
		return n
	default:
		return Leaf{Value: v}
	}
}

// ChangeFromJSON decodes a JSON change description. JSON null means delete,
// following the merge-patch convention; objects recurse, everything else sets.
func ChangeFromJSON(b []byte) (Change, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("jsoncedit: invalid change description: %w", err)
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, fmt.Errorf("jsoncedit: change description must be an object")
	}
	return changeFromDecoded(v), nil
}

func changeFromDecoded(v any) Change {
	switch t := v.(type) {
	case nil:
		return Delete
	case map[string]any:
		n := make(Nested, len(t))
		for k, sub := range t {
			n[k] = changeFromDecoded(sub)
		}
		return n
	default:
		return Leaf{Value: t}
	}
}

// Flatten converts a change description into a flat list of per-path
// instructions, in deterministic (sorted-key) order.
func Flatten(c Change) []ChangeLeaf {
	var out []ChangeLeaf
	flattenInto(c, nil, &out)
	return out
}

func flattenInto(c Change, prefix Path, out *[]ChangeLeaf) {
	switch t := c.(type) {
	case Nested:
		for _, k := range sortedKeys(t) {
			flattenInto(t[k], append(prefix, k), out)
		}
	case deletion:
		*out = append(*out, ChangeLeaf{Path: append(Path(nil), prefix...), Delete: true})
	case Leaf:
		*out = append(*out, ChangeLeaf{Path: append(Path(nil), prefix...), Value: t.Value})
	}
}

// Merge applies a change description leaf by leaf. Keys not mentioned in the
// change are left untouched. A delete of a missing key is a no-op, so later
// leaves still apply.
func Merge(text string, change Change) (string, error) {
	return applyLeaves(text, Flatten(change))
}

// Replace applies a change description and additionally deletes every key,
// at each object level present on both sides, that the change does not
// mention. Deletions go deepest first: each one is computed against the
// original structure but applied via an independent reparse, and paths stay
// valid across edits as long as no shallower sibling vanished earlier.
func Replace(text string, change Change) (string, error) {
	doc, err := Parse(text)
	if err != nil {
		return text, err
	}
	var deletions []Path
	omissionDeletions(doc, change, nil, &deletions)
	sort.SliceStable(deletions, func(i, j int) bool {
		return len(deletions[i]) > len(deletions[j])
	})
	for _, p := range deletions {
		if text, err = Remove(text, p); err != nil {
			return text, err
		}
	}
	return applyLeaves(text, Flatten(change))
}

func omissionDeletions(doc any, change Change, prefix Path, out *[]Path) {
	nested, ok := change.(Nested)
	if !ok {
		return
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p := append(append(Path(nil), prefix...), k)
		sub, present := nested[k]
		if !present {
			*out = append(*out, p)
			continue
		}
		omissionDeletions(m[k], sub, p, out)
	}
}

func applyLeaves(text string, leaves []ChangeLeaf) (string, error) {
	var err error
	for _, leaf := range leaves {
		if leaf.Delete {
			text, err = Remove(text, leaf.Path)
		} else {
			text, err = Set(text, leaf.Path, leaf.Value)
		}
		if err != nil {
			return text, err
		}
	}
	return text, nil
}

func sortedKeys(n Nested) []string {
	keys := make([]string, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
