package format

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type sample struct {
	SectionID string   `json:"sectionId"`
	Rows      []string `json:"rows"`
	Count     int      `json:"count"`
	Ratio     float64  `json:"ratio"`
	Hidden    *string  `json:"hidden"`
}

func TestWrite_JSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	env := Envelope{Data: sample{SectionID: "s1", Rows: []string{"a"}, Count: 2}, Meta: map[string]any{"rows": 1}}
	if err := Write(&buf, env, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{"data":{"sectionId":"s1","rows":["a"],"count":2,"ratio":0,"hidden":null},"meta":{"rows":1}}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestWrite_YAMLUsesJSONNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample{SectionID: "s1", Rows: []string{"a", "b"}}, "yaml", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var back map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if back["sectionId"] != "s1" {
		t.Fatalf("expected sectionId key, got %v", back)
	}
	rows, _ := back["rows"].([]any)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %v", back["rows"])
	}
}

func TestWrite_EDN(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample{SectionID: "s1", Rows: []string{"a", "b"}, Count: 3, Ratio: 0.5}, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got := strings.TrimSpace(buf.String())
	want := `{:count 3 :hidden nil :ratio 0.5 :rows ["a" "b"] :sectionId "s1"}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a b": []any{}, "n": []int{1}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "{\n  :a-b []\n  :n [\n    1\n  ]\n}\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "xml", false); err == nil {
		t.Fatalf("expected error")
	}
	if Valid("xml") || !Valid("") || !Valid("YAML") {
		t.Fatalf("unexpected Valid results")
	}
}
