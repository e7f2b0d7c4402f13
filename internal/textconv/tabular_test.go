package textconv

import (
	"errors"
	"strings"
	"testing"

	"aboutliner/internal/model"
)

func TestExportTSV_Layout(t *testing.T) {
	got := ExportTSV(exportFixture(), DefaultOptions())
	want := strings.Join([]string{
		"ID\tSection\tName\tValue\tQ1 ## Jan\tNotes",
		"ZEK3\tTeam\tAlice\tlead\t1\\n\\n- a\t",
		"BAF1\t\t\tsolo\t2\tx::y",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected tsv:\n%q\nwant:\n%q", got, want)
	}
}

func TestParseImportTSV_RoundTrip(t *testing.T) {
	g, err := ParseImportTSV(ExportTSV(exportFixture(), DefaultOptions()), DefaultOptions())
	if err != nil {
		t.Fatalf("ParseImportTSV: %v", err)
	}
	if len(g) != 2 || len(g[0]) != 3 {
		t.Fatalf("unexpected shape %d x %d", len(g), len(g[0]))
	}
	if g[0][0].ID != "ZEK3" || sectionNameOf(g[0][0]) != "Team" || g[0][0].Name != "Alice" {
		t.Fatalf("unexpected first title %#v", g[0][0])
	}
	if g[0][1].Value != "1\n\n- a" || sectionNameOf(g[0][1]) != "Q1" || g[0][1].Name != "Jan" {
		t.Fatalf("unexpected first data cell %#v", g[0][1])
	}
	if g[1][0].Section != nil {
		t.Fatalf("expected empty section field to mean no section")
	}
	if g[1][2].Name != "Notes" || g[1][2].Section != nil {
		t.Fatalf("unexpected notes cell %#v", g[1][2])
	}
}

func TestParseImportTSV_EscapedBackslash(t *testing.T) {
	g, err := ParseImportTSV("Name\tValue\npath\t"+`C:\\new`, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseImportTSV: %v", err)
	}
	if g[0][0].Value != `C:\new` {
		t.Fatalf("expected literal backslash, got %q", g[0][0].Value)
	}
}

func TestParseImportTSV_PlainSpreadsheet(t *testing.T) {
	g, err := ParseImportTSV("Task\tOwner\tStatus\nWrite docs\tAnn\tDone\n\nShip\tBo\t", DefaultOptions())
	if err != nil {
		t.Fatalf("ParseImportTSV: %v", err)
	}
	if len(g) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(g))
	}
	if g[0][0].Name != "Task" || g[0][0].Value != "Write docs" {
		t.Fatalf("expected first column to be the row value, got %#v", g[0][0])
	}
	if g[1][0].Value != "" || g[2][0].Value != "Ship" {
		t.Fatalf("expected the blank line kept as an empty row, got %#v", g[1:])
	}
	if g[0][2].Name != "Status" || g[0][2].Value != "Done" || g[2][2].Value != "" {
		t.Fatalf("unexpected status cells %#v %#v", g[0][2], g[2][2])
	}
	if g[0][0].ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestParseImportTSV_WithoutHeaders(t *testing.T) {
	opts := Options{IncludeIDs: true}
	g, err := ParseImportTSV("zek3\tvalue\tc1", opts)
	if err != nil {
		t.Fatalf("ParseImportTSV: %v", err)
	}
	if g[0][0].ID != "zek3" || g[0][0].Value != "value" || len(g[0]) != 2 || g[0][1].Value != "c1" {
		t.Fatalf("unexpected row %#v", g[0])
	}
}

func TestParseImportTSV_KeepsInteriorEmptyRows(t *testing.T) {
	opts := Options{}
	grid := model.Grid{
		{{ID: "ZEK3", Value: "first"}, {Value: "a"}},
		{{ID: "BAF1"}, {}},
		{{ID: "MOP7", Value: "last"}, {Value: "c"}},
	}
	text := ExportTSV(grid, opts)
	g, err := ParseImportTSV("\n"+text+"\n\n", opts)
	if err != nil {
		t.Fatalf("ParseImportTSV: %v", err)
	}
	if len(g) != 3 {
		t.Fatalf("expected 3 rows from %q, got %d", text, len(g))
	}
	if g[1][0].Value != "" || g[1][1].Value != "" || g[2][0].Value != "last" || g[2][1].Value != "c" {
		t.Fatalf("unexpected rows %#v", g)
	}
}

func TestParseImportTSV_HeaderOnly(t *testing.T) {
	if _, err := ParseImportTSV("ID\tName\tValue\n", DefaultOptions()); !errors.Is(err, ErrNothingToImport) {
		t.Fatalf("expected ErrNothingToImport, got %v", err)
	}
}

func TestExportTSVRich_QuotesMultilineCells(t *testing.T) {
	got, err := ExportTSVRich(exportFixture(), DefaultOptions())
	if err != nil {
		t.Fatalf("ExportTSVRich: %v", err)
	}
	if !strings.Contains(got, "\"1\n\n- a\"") {
		t.Fatalf("expected quoted multi-line cell, got %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("expected no trailing newline")
	}
}

func TestParsePipeTable(t *testing.T) {
	in := strings.Join([]string{
		"Feature: x",
		"| ID | Name | Value | Status |",
		"|---|:---|---:|---|",
		`| ZEK3 | Alice | dev \| ops | Done |`,
		`| BAF1 | Bob | line1\nline2 | |`,
		"",
		"| other | table |",
	}, "\n")
	g, err := ParsePipeTable(in, DefaultOptions())
	if err != nil {
		t.Fatalf("ParsePipeTable: %v", err)
	}
	if len(g) != 2 {
		t.Fatalf("expected the first table only, got %d rows", len(g))
	}
	if g[0][0].ID != "ZEK3" || g[0][0].Name != "Alice" || g[0][0].Value != "dev | ops" {
		t.Fatalf("unexpected first row %#v", g[0][0])
	}
	if g[0][1].Name != "Status" || g[0][1].Value != "Done" {
		t.Fatalf("unexpected status cell %#v", g[0][1])
	}
	if g[1][0].Value != "line1\nline2" || g[1][1].Value != "" {
		t.Fatalf("unexpected second row %#v", g[1])
	}
}

func TestParseImportHTML(t *testing.T) {
	in := `<table><thead><tr><th>Name</th><th>Value</th><th>Status</th></tr></thead>` +
		`<tbody><tr><td>Alice</td><td>dev</td><td>Done</td></tr></tbody></table>`
	g, err := ParseImportHTML(in, DefaultOptions())
	if err != nil {
		t.Fatalf("ParseImportHTML: %v", err)
	}
	if len(g) != 1 {
		t.Fatalf("expected 1 row, got %d", len(g))
	}
	if g[0][0].Name != "Alice" || g[0][0].Value != "dev" {
		t.Fatalf("unexpected title %#v", g[0][0])
	}
	if len(g[0]) != 2 || g[0][1].Name != "Status" || g[0][1].Value != "Done" {
		t.Fatalf("unexpected data cells %#v", g[0][1:])
	}
}

func TestParseImportHTML_NoTable(t *testing.T) {
	if _, err := ParseImportHTML("<p>hello</p>", DefaultOptions()); !errors.Is(err, ErrNothingToImport) {
		t.Fatalf("expected ErrNothingToImport, got %v", err)
	}
}
