package quickfill

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"aboutliner/internal/model"
)

// column builds a one-column table whose rows hold values.
func column(header string, values ...string) model.SectionData {
	rows := make([]model.Row, 0, len(values))
	for i, v := range values {
		rows = append(rows, model.Row{
			ID:    string(rune('A'+i)) + "AB1",
			Cells: []model.SubCell{{ColSectionID: model.DefaultColSectionID, Name: header, Value: v}},
		})
	}
	return model.SectionData{
		RowSections: []model.RowSection{{SectionID: model.DefaultRowSectionID, Rows: rows}},
		ColSections: []model.ColSection{{SectionID: model.DefaultColSectionID, Cols: []model.ColDescriptor{{Idx: 0, Name: header, ColIndex: 1}}}},
	}
}

func TestQuickfill_HeaderMatchReturnsFullSet(t *testing.T) {
	got := GetQuickfillOptions(Request{SectionData: column("Severity", "Critical", "High"), ColIdx: 0, RowIdx: -1})
	want := []string{"Critical", "High", "Medium", "Low"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestQuickfill_HeaderAliasAndEmptyColumn(t *testing.T) {
	s := New(nil).Suggest(Request{SectionData: column("prio"), ColIdx: 0, RowIdx: -1})
	if s.Rule != RuleHeader || s.Set != "Priority" {
		t.Fatalf("expected header rule on Priority, got %#v", s)
	}
	if !reflect.DeepEqual(s.Values, []string{"P0", "P1", "P2", "P3"}) {
		t.Fatalf("unexpected values %v", s.Values)
	}
}

func TestQuickfill_HeaderMatchRequiresAllValues(t *testing.T) {
	s := New(nil).Suggest(Request{SectionData: column("Severity", "Critical", "banana"), ColIdx: 0, RowIdx: -1})
	if s.Rule != RuleObserved {
		t.Fatalf("expected observed fallback, got %#v", s)
	}
	if !reflect.DeepEqual(s.Values, []string{"Critical", "banana"}) {
		t.Fatalf("unexpected values %v", s.Values)
	}
}

func TestQuickfill_MajorityThroughAliases(t *testing.T) {
	got := GetQuickfillOptions(Request{SectionData: column("Notes", "Yes", "No", "Y"), ColIdx: 0, RowIdx: -1})
	if !reflect.DeepEqual(got, []string{"Yes", "No"}) {
		t.Fatalf("expected [Yes No], got %v", got)
	}
}

func TestQuickfill_MajorityNeedsTwoMatches(t *testing.T) {
	got := GetQuickfillOptions(Request{SectionData: column("Notes", "High", "foo"), ColIdx: 0, RowIdx: -1})
	if !reflect.DeepEqual(got, []string{"High", "foo"}) {
		t.Fatalf("expected observed values, got %v", got)
	}
}

func TestQuickfill_ExactMatchShortCircuits(t *testing.T) {
	// "Medium" is a Size alias too, but Severity matches every value verbatim first.
	s := New(nil).Suggest(Request{SectionData: column("Notes", "medium", "Low"), ColIdx: 0, RowIdx: -1})
	if s.Set != "Severity" {
		t.Fatalf("expected Severity, got %#v", s)
	}
}

func TestQuickfill_PlainFallbackDedups(t *testing.T) {
	got := GetQuickfillOptions(Request{SectionData: column("Notes", "foo", "bar", "foo", " ", ""), ColIdx: 0, RowIdx: -1})
	if !reflect.DeepEqual(got, []string{"foo", "bar"}) {
		t.Fatalf("expected [foo bar], got %v", got)
	}
}

func TestQuickfill_ExcludesCurrentRow(t *testing.T) {
	got := GetQuickfillOptions(Request{SectionData: column("Notes", "foo", "bar"), ColIdx: 0, RowIdx: 1})
	if !reflect.DeepEqual(got, []string{"foo"}) {
		t.Fatalf("expected current row excluded, got %v", got)
	}
}

func TestQuickfill_HeaderCallback(t *testing.T) {
	req := Request{
		SectionData:     column("Notes", "Done"),
		ColIdx:          0,
		RowIdx:          -1,
		GetColumnHeader: func(int) string { return " state " },
	}
	s := New(nil).Suggest(req)
	if s.Set != "Status" || len(s.Values) != 4 {
		t.Fatalf("expected Status from header callback, got %#v", s)
	}
}

func TestNormalizeToSet(t *testing.T) {
	set := []string{"Critical", "High"}
	aliases := map[string]string{"Urgent": "Critical"}
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{" high ", "High", true},
		{"urgent", "Critical", true},
		{"low", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeToSet(c.in, set, aliases)
		if got != c.want || ok != c.ok {
			t.Fatalf("NormalizeToSet(%q): expected (%q, %v), got (%q, %v)", c.in, c.want, c.ok, got, ok)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := "sets:\n  - name: Team\n    values: [Core, Ops]\n    aliases: {SRE: Ops}\n    headers: [Squad]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	got := New(c).Options(Request{SectionData: column("squad", "sre"), ColIdx: 0, RowIdx: -1})
	if !reflect.DeepEqual(got, []string{"Core", "Ops"}) {
		t.Fatalf("expected custom set, got %v", got)
	}
}

func TestParseCatalog_Invalid(t *testing.T) {
	for _, body := range []string{
		"sets: []",
		"sets:\n  - values: [a]",
		"sets:\n  - name: X\n    values: [a]\n    aliases: {b: c}",
		"sets: [",
	} {
		if _, err := ParseCatalog([]byte(body)); err == nil {
			t.Fatalf("expected error for %q", body)
		}
	}
}
