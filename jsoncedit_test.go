package jsoncedit

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func TestSetReplacesOnlyTheValueBytes(t *testing.T) {
	in := `{
  // the port we listen on
  "port": 8080,
  "host": "localhost" // trailing
}`
	out, err := Set(in, Path{"port"}, 9090)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := `{
  // the port we listen on
  "port": 9090,
  "host": "localhost" // trailing
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestSetAppendsPropertyWithDocumentIndentation(t *testing.T) {
	in := `{
  "a": 1,
  "b": 2
}`
	out, err := Set(in, Path{"c"}, 3)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := `{
  "a": 1,
  "b": 2,
  "c": 3
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestSetCreatesIntermediateContainers(t *testing.T) {
	in := `{
  "a": 1
}`
	out, err := Set(in, Path{"b", "c"}, true)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := `{
  "a": 1,
  "b": {
    "c": true
  }
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestSetOnBlankDocumentBuildsIt(t *testing.T) {
	out, err := Set("", Path{"a"}, 1)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := "{\n  \"a\": 1\n}"
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestSetPreservesCRLF(t *testing.T) {
	in := "{\r\n  \"a\": 1\r\n}"
	out, err := Set(in, Path{"b"}, 2)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := "{\r\n  \"a\": 1,\r\n  \"b\": 2\r\n}"
	if out != want {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSetArrayAppendWithMinusOne(t *testing.T) {
	in := `{
  "xs": [
    1,
    2
  ]
}`
	out, err := Set(in, Path{"xs", -1}, 3)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	want := `{
  "xs": [
    1,
    2,
    3
  ]
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestSetErrorsOnTypeMismatch(t *testing.T) {
	in := `{"a": [1]}`
	if _, err := Set(in, Path{"a", "key"}, 1); err == nil {
		t.Fatalf("expected error setting a key on an array")
	}
	if _, err := Set(in, Path{0}, 1); err == nil {
		t.Fatalf("expected error indexing an object")
	}
}

func TestGetAndHas(t *testing.T) {
	in := `{
  // doc
  "a": {"b": [10, 20]}
}`
	v, ok := Get(in, Path{"a", "b", 1})
	if !ok || v != float64(20) {
		t.Fatalf("Get = %v, %v", v, ok)
	}
	if Has(in, Path{"a", "missing"}) {
		t.Fatalf("Has should be false for a missing key")
	}
	if _, ok := Get("not json", Path{"a"}); ok {
		t.Fatalf("Get on unparsable input must not report ok")
	}
}

func TestRemoveDeletesWholeLineAndComment(t *testing.T) {
	in := `{
  // the port we listen on
  "port": 8080,
  "host": "localhost"
}`
	out, err := Remove(in, Path{"port"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	want := `{
  "host": "localhost"
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestRemoveKeepsDetachedComment(t *testing.T) {
	in := `{
  // ** section: network
  "port": 8080,
  "host": "localhost"
}`
	out, err := Remove(in, Path{"port"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	want := `{
  // ** section: network
  "host": "localhost"
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestRemoveDeletesBraceLineComment(t *testing.T) {
	out, err := Remove("{ // drop\n \"a\": 1, \"b\": 2 }", Path{"a"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if want := `{ "b": 2 }`; out != want {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRemoveKeepsDetachedBraceLineComment(t *testing.T) {
	out, err := Remove("{ // ** keep\n \"a\": 1, \"b\": 2 }", Path{"a"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if want := "{ // ** keep\n\"b\": 2 }"; out != want {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRemoveLeavesPreviousTrailingComment(t *testing.T) {
	in := `{
  "a": 1, // about a
  "b": 2
}`
	out, err := Remove(in, Path{"b"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	want := `{
  "a": 1, // about a
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestRemoveLastPropertyCleansDanglingComma(t *testing.T) {
	in := `{
  "a": 1,
  "b": 2
}`
	out, err := Remove(in, Path{"b"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	want := `{
  "a": 1
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestRemoveSingleLineProperty(t *testing.T) {
	out, err := Remove(`{ "a": 1, "b": 2 }`, Path{"a"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if out != `{ "b": 2 }` {
		t.Fatalf("unexpected output: %q", out)
	}
	out, err = Remove(`{ "a": 1, "b": 2 }`, Path{"b"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if out != `{ "a": 1 }` {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRemoveMissingPathIsNoop(t *testing.T) {
	in := `{"a": 1}`
	out, err := Remove(in, Path{"nope"})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if out != in {
		t.Fatalf("expected no-op, got %q", out)
	}
}

func TestRemoveArrayElement(t *testing.T) {
	in := `{
  "xs": [
    1,
    2,
    3
  ]
}`
	out, err := Remove(in, Path{"xs", 2})
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	want := `{
  "xs": [
    1,
    2
  ]
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestRenameCarriesLeadingComment(t *testing.T) {
	in := `{
  // where we listen
  "host": "x",
  "port": 1
}`
	out, err := Rename(in, Path{"host"}, "hostname")
	if err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	want := `{
  "port": 1,
  // where we listen
  "hostname": "x"
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestRenameLeavesDetachedCommentInPlace(t *testing.T) {
	in := `{
  // ** section: network
  "host": "x",
  "port": 1
}`
	out, err := Rename(in, Path{"host"}, "hostname")
	if err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	want := `{
  // ** section: network
  "port": 1,
  "hostname": "x"
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestRenameRejectsRootAndArrayElements(t *testing.T) {
	if _, err := Rename(`{"a": 1}`, Path{}, "x"); err == nil {
		t.Fatalf("expected error renaming the root")
	}
	if _, err := Rename(`{"xs": [1]}`, Path{"xs", 0}, "x"); err == nil {
		t.Fatalf("expected error renaming an array element")
	}
}

func TestMoveValueBetweenObjects(t *testing.T) {
	in := `{
  "a": 1,
  "b": {}
}`
	out, err := Move(in, Path{"a"}, Path{"b", "c"})
	if err != nil {
		t.Fatalf("Move error: %v", err)
	}
	want := `{
  "b": {
    "c": 1
  }
}`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestMoveMissingSourceIsNoop(t *testing.T) {
	in := `{"a": 1}`
	out, err := Move(in, Path{"x"}, Path{"y"})
	if err != nil {
		t.Fatalf("Move error: %v", err)
	}
	if out != in {
		t.Fatalf("expected no-op, got %q", out)
	}
}

func TestEditsLeaveUnrelatedLinesUntouched(t *testing.T) {
	in := `{
  /* block
     comment */
  "keep": [1, 2, 3], // stays
  "victim": 0,
  "also": {"kept": true}
}`
	out, err := Set(in, Path{"victim"}, 7)
	if err != nil {
		t.Fatalf("Set error: %v", err)
	}
	diff := unifiedDiff(in, out)
	adds, removes := diffStats(diff)
	if adds != 1 || removes != 1 {
		t.Fatalf("expected a single-line change, got %d additions / %d removals:\n%s", adds, removes, diff)
	}
}

// --- helpers for tests ---

func unifiedDiff(before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func diffStats(diff string) (adds, removes int) {
	for _, line := range strings.Split(diff, "\n") {
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '+':
			if !strings.HasPrefix(line, "+++") {
				adds++
			}
		case '-':
			if !strings.HasPrefix(line, "---") {
				removes++
			}
		}
	}
	return
}
