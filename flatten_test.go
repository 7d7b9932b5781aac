package jsoncedit

import (
	"reflect"
	"testing"
)

func TestFlattenIsDeterministic(t *testing.T) {
	change := Nested{
		"b": Leaf{Value: 2},
		"a": Nested{
			"y": Delete,
			"x": Leaf{Value: 1},
		},
	}
	got := Flatten(change)
	want := []ChangeLeaf{
		{Path: Path{"a", "x"}, Value: 1},
		{Path: Path{"a", "y"}, Delete: true},
		{Path: Path{"b"}, Value: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %#v, want %#v", got, want)
	}
}

func TestChangeOfRecursesMaps(t *testing.T) {
	c := ChangeOf(map[string]any{
		"a": map[string]any{"b": 1},
		"d": Delete,
	})
	leaves := Flatten(c)
	want := []ChangeLeaf{
		{Path: Path{"a", "b"}, Value: 1},
		{Path: Path{"d"}, Delete: true},
	}
	if !reflect.DeepEqual(leaves, want) {
		t.Fatalf("leaves = %#v, want %#v", leaves, want)
	}
}

func TestChangeFromJSONNullMeansDelete(t *testing.T) {
	c, err := ChangeFromJSON([]byte(`{"a": {"b": null}, "c": 1}`))
	if err != nil {
		t.Fatalf("ChangeFromJSON error: %v", err)
	}
	leaves := Flatten(c)
	want := []ChangeLeaf{
		{Path: Path{"a", "b"}, Delete: true},
		{Path: Path{"c"}, Value: float64(1)},
	}
	if !reflect.DeepEqual(leaves, want) {
		t.Fatalf("leaves = %#v, want %#v", leaves, want)
	}
}

func TestChangeFromJSONRejectsNonObject(t *testing.T) {
	for _, in := range []string{`[1]`, `"s"`, `1`, `null`, `not json`} {
		if _, err := ChangeFromJSON([]byte(in)); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

func TestMergeTouchesOnlyMentionedKeys(t *testing.T) {
	in := `{
  // section
  "a": 1,
  "b": {
    "c": 2
  }
}`
	change, err := ChangeFromJSON([]byte(`{"b": {"c": 3}, "d": 4}`))
	if err != nil {
		t.Fatalf("ChangeFromJSON error: %v", err)
	}
	out, err := Merge(in, change)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	want := `{
  // section
  "a": 1,
  "b": {
    "c": 3
  },
  "d": 4
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestMergeDeleteOfMissingKeyIsNoop(t *testing.T) {
	in := `{"a": 1}`
	out, err := Merge(in, Nested{"ghost": Delete})
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if out != in {
		t.Fatalf("expected no-op, got %q", out)
	}
}

func TestReplaceRemovesOmittedKeys(t *testing.T) {
	in := `{
  "a": 1,
  "b": {
    "c": 2,
    "d": 3
  }
}`
	change, err := ChangeFromJSON([]byte(`{"b": {"c": 9}}`))
	if err != nil {
		t.Fatalf("ChangeFromJSON error: %v", err)
	}
	out, err := Replace(in, change)
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	want := `{
  "b": {
    "c": 9
  }
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestReplaceLeafValueIsAtomic(t *testing.T) {
	// a Leaf holding a map replaces the whole subtree, no recursion
	in := `{
  "a": {
    "b": 1,
    "c": 2
  }
}`
	out, err := Merge(in, Nested{"a": Leaf{Value: map[string]any{"x": 1}}})
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	want := `{
  "a": {
    "x": 1
  }
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}
