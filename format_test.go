package jsoncedit

import (
	"reflect"
	"testing"
)

func TestFormatExpandsContainers(t *testing.T) {
	in := `{"a":1,"b":[1,2]}`
	want := `{
  "a": 1,
  "b": [
    1,
    2
  ]
}`
	if got := Format(in, nil); got != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, got))
	}
}

func TestFormatKeepsEmptyContainersOnOneLine(t *testing.T) {
	in := `{
  "a": {},
  "b": []
}`
	if got := Format(in, nil); got != in {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(in, got))
	}
}

func TestFormatKeepsCommentsOnTheirLines(t *testing.T) {
	in := `{"a":1, // one
"b":2}`
	want := `{
  "a": 1, // one
  "b": 2
}`
	if got := Format(in, nil); got != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, got))
	}
}

func TestFormatCommentAfterOpenBrace(t *testing.T) {
	in := `{ // settings
"a":1}`
	want := `{ // settings
  "a": 1
}`
	if got := Format(in, nil); got != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, got))
	}
}

func TestFormatWithTabs(t *testing.T) {
	in := `{"a":{"b":1}}`
	want := "{\n\t\"a\": {\n\t\t\"b\": 1\n\t}\n}"
	if got := Format(in, &FormatOptions{InsertTabs: true}); got != want {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	in := `{"a":1,/* note */"b":[true,null], // tail
"c":{"d":"x"}}`
	once := Format(in, nil)
	twice := Format(once, nil)
	if once != twice {
		t.Fatalf("format not idempotent:\n%s", unifiedDiff(once, twice))
	}
}

func TestFormatPreservesValueSemantics(t *testing.T) {
	in := `{"a":1,"b":[1,{"c":null}],"d":"x"}`
	before, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	after, err := Parse(Format(in, nil))
	if err != nil {
		t.Fatalf("Parse of formatted text error: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("formatting changed the value:\n before %#v\n after %#v", before, after)
	}
}

func TestDetectEOL(t *testing.T) {
	if got := detectEOL(nil, "{\r\n}"); got != "\r\n" {
		t.Fatalf("detectEOL = %q", got)
	}
	if got := detectEOL(nil, "{\n}"); got != "\n" {
		t.Fatalf("detectEOL = %q", got)
	}
	if got := detectEOL(&FormatOptions{EOL: "\n"}, "{\r\n}"); got != "\n" {
		t.Fatalf("explicit EOL not honored: %q", got)
	}
}
