package jsoncedit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// JSON Patch (RFC-6902) public API
// --------------------------------------------------------------------------------------

// ApplyJSONPatch applies a github.com/evanphx/json-patch/v5 Patch to a JSONC
// document. Each op is translated into the surgical core operations, so
// comments and layout outside the touched regions survive.
func ApplyJSONPatch(text string, patch jsonpatch.Patch) (string, error) {
	b, err := json.Marshal(patch)
	if err != nil {
		return text, fmt.Errorf("jsoncedit: cannot marshal jsonpatch.Patch; pass bytes instead: %w", err)
	}
	return ApplyJSONPatchBytes(text, b)
}

// ApplyJSONPatchBytes applies a JSON Patch given as raw JSON.
func ApplyJSONPatchBytes(text string, patchJSON []byte) (string, error) {
	return ApplyJSONPatchAtPathBytes(text, patchJSON, nil)
}

// ApplyJSONPatchAtPath applies a patch with each op's path resolved relative
// to basePath.
func ApplyJSONPatchAtPath(text string, patch jsonpatch.Patch, basePath Path) (string, error) {
	b, err := json.Marshal(patch)
	if err != nil {
		return text, fmt.Errorf("jsoncedit: cannot marshal jsonpatch.Patch; pass bytes instead: %w", err)
	}
	return ApplyJSONPatchAtPathBytes(text, b, basePath)
}

// ApplyJSONPatchAtPathBytes is the raw-JSON variant of ApplyJSONPatchAtPath.
func ApplyJSONPatchAtPathBytes(text string, patchJSON []byte, basePath Path) (string, error) {
	ops, err := decodePatchOps(patchJSON)
	if err != nil {
		return text, err
	}
	for _, op := range ops {
		if text, err = applyPatchOp(text, op, basePath); err != nil {
			return text, err
		}
	}
	return text, nil
}

// --------------------------------------------------------------------------------------
// JSON Patch internals
// --------------------------------------------------------------------------------------

type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
	From  string          `json:"from,omitempty"`
}

func decodePatchOps(b []byte) ([]patchOp, error) {
	var ops []patchOp
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ops); err != nil {
		return nil, fmt.Errorf("jsoncedit: invalid JSON Patch: %w", err)
	}
	if len(ops) == 0 {
		return nil, errors.New("jsoncedit: empty JSON Patch")
	}
	return ops, nil
}

func applyPatchOp(text string, op patchOp, basePath Path) (string, error) {
	path, err := pointerPath(text, basePath, op.Path)
	if err != nil {
		return text, err
	}
	switch strings.ToLower(op.Op) {
	case "test":
		want, err := decodePatchValue(op.Value)
		if err != nil {
			return text, err
		}
		got, ok := Get(text, path)
		if !ok {
			return text, fmt.Errorf("jsoncedit: test: path %q not found", op.Path)
		}
		if !reflect.DeepEqual(got, want) {
			return text, fmt.Errorf("jsoncedit: test operation failed at %q: expected %v, got %v", op.Path, want, got)
		}
		return text, nil
	case "add":
		value, err := decodePatchValue(op.Value)
		if err != nil {
			return text, err
		}
		return setForPatch(text, path, value)
	case "remove":
		if !Has(text, path) {
			return text, fmt.Errorf("jsoncedit: remove: path %q not found", op.Path)
		}
		return Remove(text, path)
	case "replace":
		if !Has(text, path) {
			return text, fmt.Errorf("jsoncedit: replace: path %q not found", op.Path)
		}
		value, err := decodePatchValue(op.Value)
		if err != nil {
			return text, err
		}
		return Set(text, path, value)
	case "move":
		from, err := pointerPath(text, basePath, op.From)
		if err != nil {
			return text, err
		}
		value, ok := Get(text, from)
		if !ok {
			return text, fmt.Errorf("jsoncedit: move: path %q not found", op.From)
		}
		out, err := Remove(text, from)
		if err != nil {
			return text, err
		}
		return setForPatch(out, path, value)
	case "copy":
		from, err := pointerPath(text, basePath, op.From)
		if err != nil {
			return text, err
		}
		value, ok := Get(text, from)
		if !ok {
			return text, fmt.Errorf("jsoncedit: copy: path %q not found", op.From)
		}
		return setForPatch(text, path, value)
	default:
		return text, fmt.Errorf("jsoncedit: unsupported op %q", op.Op)
	}
}

// setForPatch honors RFC-6902 add semantics: inserting before an existing
// array index shifts the rest, while object keys are set in place.
func setForPatch(text string, path Path, value any) (string, error) {
	insertion := false
	if len(path) > 0 {
		_, insertion = path[len(path)-1].(int)
	}
	edits, err := setValueEdits(text, path, value, nil, insertion)
	if err != nil {
		return text, err
	}
	return applyEdits(text, edits), nil
}

func decodePatchValue(raw json.RawMessage) (any, error) {
	if raw == nil {
		return nil, errors.New("jsoncedit: missing 'value' for operation")
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("jsoncedit: invalid JSON value: %w", err)
	}
	return v, nil
}

// pointerPath converts a JSON Pointer into a Path, consulting the document
// structure to decide whether a digits-only segment addresses an array index
// or an object key. "-" appends to an array.
func pointerPath(text string, basePath Path, pointer string) (Path, error) {
	path := append(Path(nil), basePath...)
	if pointer == "" {
		return path, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("jsoncedit: JSON Pointer must start with '/': %q", pointer)
	}
	doc, _ := Parse(text)
	cur, _ := Get(text, path)
	if len(path) == 0 {
		cur = doc
	}
	for _, part := range strings.Split(pointer, "/")[1:] {
		seg := strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		switch t := cur.(type) {
		case []any:
			if seg == "-" {
				path = append(path, -1)
				cur = nil
				continue
			}
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("jsoncedit: expected array index, got %q", seg)
			}
			path = append(path, idx)
			if idx >= 0 && idx < len(t) {
				cur = t[idx]
			} else {
				cur = nil
			}
		case map[string]any:
			path = append(path, seg)
			cur = t[seg]
		default:
			// structure runs out; fall back to token shape
			if seg == "-" {
				path = append(path, -1)
			} else if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 && !strings.HasPrefix(seg, "+") {
				path = append(path, idx)
			} else {
				path = append(path, seg)
			}
			cur = nil
		}
	}
	return path, nil
}
