package jsoncedit

import (
	"encoding/json"
	"testing"
)

func TestDiffIgnoresCommentsAndLayout(t *testing.T) {
	before := `{
  // irrelevant
  "a": 1
}`
	after := `{"a":1}`
	patch, err := Diff(before, after)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(patch) != 0 {
		t.Fatalf("expected empty patch, got %v", patch)
	}
}

func TestDiffProducesApplicablePatch(t *testing.T) {
	before := `{
  // stays
  "a": 1,
  "b": {
    "c": 2
  }
}`
	after := `{"a": 1, "b": {"c": 3}, "d": true}`
	patch, err := Diff(before, after)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		t.Fatalf("marshal patch: %v", err)
	}
	out, err := ApplyJSONPatchBytes(before, raw)
	if err != nil {
		t.Fatalf("ApplyJSONPatchBytes error: %v", err)
	}
	got, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want, err := Parse(after)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !jsonEqual(got, want) {
		t.Fatalf("patched document does not match:\n got %#v\nwant %#v", got, want)
	}
	// the comment outside the edited regions survives
	if c, ok := GetComment(out, Path{"a"}); !ok || c != "stays" {
		t.Fatalf("comment lost after patching: %q, %v", c, ok)
	}
}

func TestDiffErrorsOnBadInput(t *testing.T) {
	if _, err := Diff(`{`, `{}`); err == nil {
		t.Fatalf("expected error for bad before document")
	}
	if _, err := Diff(`{}`, `]`); err == nil {
		t.Fatalf("expected error for bad after document")
	}
}

func jsonEqual(a, b any) bool {
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	return string(ja) == string(jb)
}
