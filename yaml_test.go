package jsoncedit

import (
	"reflect"
	"testing"
)

func TestFromYAMLCarriesComments(t *testing.T) {
	in := `# which port to listen on
port: 8080
host: localhost # inline note
`
	out, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatalf("FromYAML error: %v", err)
	}
	want := `{
  // which port to listen on
  "port": 8080,
  "host": "localhost" // inline note
}
`
	if out != want {
		t.Fatalf("unexpected output:\n%s", unifiedDiff(want, out))
	}
}

func TestFromYAMLNestedStructures(t *testing.T) {
	in := `server:
  ports:
    - 80
    - 443
  tls: true
empty: {}
none: null
`
	out, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatalf("FromYAML error: %v", err)
	}
	v, err := Parse(out)
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	want := map[string]any{
		"server": map[string]any{
			"ports": []any{float64(80), float64(443)},
			"tls":   true,
		},
		"empty": map[string]any{},
		"none":  nil,
	}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("value mismatch:\n got %#v\nwant %#v", v, want)
	}
}

func TestFromYAMLNumberSpellings(t *testing.T) {
	in := "hex: 0x1A\nfloat: 1.5\n"
	out, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatalf("FromYAML error: %v", err)
	}
	v, err := Parse(out)
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	m := v.(map[string]any)
	if m["hex"] != float64(26) {
		t.Fatalf("hex = %v, want 26", m["hex"])
	}
	if m["float"] != 1.5 {
		t.Fatalf("float = %v, want 1.5", m["float"])
	}
}

func TestFromYAMLQuotesStrings(t *testing.T) {
	in := "s: plain words\nq: \"quoted\"\n"
	out, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatalf("FromYAML error: %v", err)
	}
	v, err := Parse(out)
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	m := v.(map[string]any)
	if m["s"] != "plain words" || m["q"] != "quoted" {
		t.Fatalf("unexpected values: %#v", m)
	}
}

func TestFromYAMLRejectsEmpty(t *testing.T) {
	if _, err := FromYAML([]byte("")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}
