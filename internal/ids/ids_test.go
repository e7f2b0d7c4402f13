package ids

import (
	"regexp"
	"strings"
	"testing"
)

func TestNewRowID_MatchesPattern(t *testing.T) {
	strict := regexp.MustCompile(`^[BCDFGHJKLMNPQRSTVWXYZ][AEIOU][BCDFGHJKLMNPQRSTVWXYZ]\d$`)
	for i := 0; i < 500; i++ {
		id := NewRowID()
		if !strict.MatchString(id) {
			t.Fatalf("expected uppercase CVCD id, got %q", id)
		}
	}
}

func TestIsRowID_CaseInsensitive(t *testing.T) {
	if !IsRowID("zek3") {
		t.Fatalf("expected lowercase id to be accepted")
	}
	if IsRowID("ZAE3") {
		t.Fatalf("expected vowel in third position to be rejected")
	}
	if IsRowID("ZEK") {
		t.Fatalf("expected short id to be rejected")
	}
}

func TestNewUniqueRowID_AvoidsTaken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NewUniqueRowID(func(id string) bool { return seen[id] })
		if seen[id] {
			t.Fatalf("expected unique id, got duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestNewSectionID_Format(t *testing.T) {
	id := NewSectionID("rowSection")
	if !strings.HasPrefix(id, "rowSection-") {
		t.Fatalf("expected prefix, got %q", id)
	}
	suffix := strings.TrimPrefix(id, "rowSection-")
	if got, want := len(suffix), 6; got != want {
		t.Fatalf("expected suffix len %d, got %d (%q)", want, got, suffix)
	}
	if !regexp.MustCompile(`^[0-9a-z]+$`).MatchString(suffix) {
		t.Fatalf("expected base36 suffix, got %q", suffix)
	}
}

func TestDerivedSectionIDs_AreDeterministic(t *testing.T) {
	if got, want := RowSectionID("Sec A"), "rowSection-Sec_A"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if RowSectionID("Sec  A") != RowSectionID("Sec\tA") {
		t.Fatalf("expected whitespace runs to collapse to one underscore")
	}
	if got, want := ColSectionID("Q1 plan"), "colSection-Q1_plan"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
