package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	got := Topics()
	want := []string{"outline", "quickfill", "tabular"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGet(t *testing.T) {
	s, ok := Get("Outline")
	if !ok || !strings.HasPrefix(s, "# Outline text") {
		t.Fatalf("expected outline topic, got ok=%v %q", ok, s)
	}
	if _, ok := Get("../docs"); ok {
		t.Fatalf("expected path-like topic to be rejected")
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
}
