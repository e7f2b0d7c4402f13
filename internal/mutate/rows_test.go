package mutate

import (
	"errors"
	"testing"

	"aboutliner/internal/model"
	"aboutliner/internal/sections"
)

func sampleData() model.SectionData {
	team := &model.SectionRef{SectionID: "rowSection-Team", SectionName: "Team"}
	ops := &model.SectionRef{SectionID: "rowSection-Ops", SectionName: "Ops"}
	q1 := &model.SectionRef{SectionID: "colSection-Q1", SectionName: "Q1"}
	return sections.FromGrid(model.Grid{
		{{ID: "ZEK3", Name: "Alice", Section: team}, {Name: "Jan", Value: "1", Section: q1}, {Name: "Feb", Value: "2", Section: q1}, {Name: "Notes", Value: "a"}},
		{{ID: "BAF1", Name: "Bob", Section: team}, {Name: "Jan", Value: "3", Section: q1}, {Name: "Feb", Value: "4", Section: q1}, {Name: "Notes", Value: "b"}},
		{{ID: "MOP7", Name: "Carol", Section: ops}, {Name: "Jan", Value: "5", Section: q1}, {Name: "Feb", Value: "6", Section: q1}, {Name: "Notes", Value: "c"}},
	})
}

func TestInsertRow_FitsCellsAndGeneratesID(t *testing.T) {
	d := sampleData()
	row, err := InsertRow(&d, "rowSection-Team", 1, model.Row{Name: "Dave", Cells: []model.SubCell{{Value: "7"}}})
	if err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	if row.ID == "" {
		t.Fatalf("expected generated id")
	}
	got := d.RowSections[0].Rows[1]
	if got.Name != "Dave" || len(got.Cells) != 3 {
		t.Fatalf("unexpected inserted row %#v", got)
	}
	if got.Cells[0].Value != "7" || got.Cells[0].Name != "Jan" || got.Cells[0].ColSectionID != "colSection-Q1" {
		t.Fatalf("expected fitted first cell, got %#v", got.Cells[0])
	}
	if got.Cells[2].ColSectionID != model.DefaultColSectionID {
		t.Fatalf("expected default col section on notes cell, got %q", got.Cells[2].ColSectionID)
	}
	if err := sections.Check(d); err != nil {
		t.Fatalf("expected valid tree: %v", err)
	}
}

func TestInsertRow_DefaultSectionCreated(t *testing.T) {
	d := sampleData()
	if _, err := InsertRow(&d, "", 0, model.Row{Name: "Loose"}); err != nil {
		t.Fatalf("InsertRow: %v", err)
	}
	last := d.RowSections[len(d.RowSections)-1]
	if last.SectionID != model.DefaultRowSectionID || len(last.Rows) != 1 {
		t.Fatalf("expected default section with one row, got %#v", last)
	}
}

func TestInsertRow_Errors(t *testing.T) {
	d := sampleData()
	if _, err := InsertRow(&d, "nope", 0, model.Row{}); err == nil {
		t.Fatalf("expected not found error")
	} else {
		var nf NotFoundError
		if !errors.As(err, &nf) || nf.Kind != "row section" {
			t.Fatalf("expected NotFoundError for row section, got %v", err)
		}
	}
	if _, err := InsertRow(&d, "", 0, model.Row{ID: "zek3"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if _, err := InsertRow(nil, "", 0, model.Row{}); !errors.Is(err, ErrNilData) {
		t.Fatalf("expected ErrNilData, got %v", err)
	}
}

func TestDeleteAndUpdateRow(t *testing.T) {
	d := sampleData()
	if err := UpdateRow(&d, "BAF1", "Robert", "dev"); err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}
	if err := UpdateCell(&d, "BAF1", 2, "bb"); err != nil {
		t.Fatalf("UpdateCell: %v", err)
	}
	_, _, row, _ := d.FindRow("BAF1")
	if row.Name != "Robert" || row.Value != "dev" || row.Cells[2].Value != "bb" {
		t.Fatalf("unexpected row after update %#v", row)
	}
	if err := UpdateCell(&d, "BAF1", 9, "x"); err == nil {
		t.Fatalf("expected column out of range error")
	}
	if err := DeleteRow(&d, "BAF1"); err != nil {
		t.Fatalf("DeleteRow: %v", err)
	}
	if _, _, _, ok := d.FindRow("BAF1"); ok {
		t.Fatalf("expected row removed")
	}
	if got := d.RowCount(); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if err := DeleteRow(&d, "BAF1"); err == nil {
		t.Fatalf("expected not found on second delete")
	}
}
