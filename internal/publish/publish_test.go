package publish

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aboutliner/internal/model"
	"aboutliner/internal/textconv"
)

func fixture() model.Grid {
	team := &model.SectionRef{SectionID: "rowSection-Team", SectionName: "Team"}
	q1 := &model.SectionRef{SectionID: "colSection-Q1", SectionName: "Q1"}
	return model.Grid{
		{{ID: "ZEK3", Name: "Alice", Value: "**bold**", Section: team}, {Name: "Jan", Value: "1\n\n- a", Section: q1}, {Name: "Notes"}},
		{{ID: "BAF1", Value: "<script>alert(1)</script>"}, {Name: "Jan", Value: "2", Section: q1}, {Name: "Notes", Value: "x::y"}},
	}
}

func allOptions() RenderOptions {
	return RenderOptions{Options: textconv.DefaultOptions()}
}

func TestRenderHTML_SectionsAndMarkdown(t *testing.T) {
	out := RenderHTML(fixture(), allOptions())
	for _, want := range []string{"<table>", `class="section"`, ">Team</th>", ">Q1</th>", "<th>Notes</th>", "<strong>bold</strong>", "<li>a</li>", "<td>ZEK3</td>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<script") {
		t.Fatalf("expected script stripped, got:\n%s", out)
	}
}

func TestRenderHTML_TogglesOff(t *testing.T) {
	out := RenderHTML(fixture(), RenderOptions{})
	if strings.Contains(out, "<thead>") || strings.Contains(out, "ZEK3") || strings.Contains(out, "Team") {
		t.Fatalf("expected no headers, ids or sections, got:\n%s", out)
	}
}

func TestRenderASCII_PlainBorders(t *testing.T) {
	opt := RenderOptions{Options: textconv.Options{IncludeHeaders: true}}
	out := RenderASCII(fixture(), opt)
	if !strings.Contains(out, "Alice") || !strings.Contains(out, "Name") || !strings.Contains(out, "+") {
		t.Fatalf("unexpected ascii table:\n%s", out)
	}
	if strings.ContainsRune(out, '│') || strings.ContainsRune(out, '─') {
		t.Fatalf("expected ASCII-only border, got:\n%s", out)
	}
}

func TestRenderASCII_WrapsCells(t *testing.T) {
	grid := model.Grid{{{Value: "alpha beta gamma"}}}
	out := RenderASCII(grid, RenderOptions{MaxCellWidth: 5})
	if strings.Contains(out, "alpha beta") {
		t.Fatalf("expected wrapped cell, got:\n%s", out)
	}
	if !strings.Contains(out, "gamma") {
		t.Fatalf("expected all words kept, got:\n%s", out)
	}
}

func TestRenderCucumber_AlignedAndEscaped(t *testing.T) {
	grid := model.Grid{
		{{Name: "a", Value: "x|y"}, {Name: "Status", Value: "Done"}},
		{{Name: "bb", Value: "line1\nline2"}, {Name: "Status"}},
	}
	opt := RenderOptions{Options: textconv.Options{IncludeHeaders: true}}
	got := RenderCucumber(grid, opt)
	want := strings.Join([]string{
		`| Name | Value        | Status |`,
		`| a    | x\|y         | Done   |`,
		`| bb   | line1\nline2 |        |`,
	}, "\n")
	if got != want {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, want)
	}

	back, err := textconv.ParsePipeTable(got, opt.Options)
	if err != nil {
		t.Fatalf("ParsePipeTable: %v", err)
	}
	if back[0][0].Value != "x|y" || back[1][0].Value != "line1\nline2" || back[0][1].Value != "Done" {
		t.Fatalf("expected cucumber table to parse back, got %#v", back)
	}
}

func TestXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, fixture(), textconv.DefaultOptions()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	g, err := ReadXLSX(bytes.NewReader(buf.Bytes()), textconv.DefaultOptions())
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if len(g) != 2 || len(g[0]) != 3 {
		t.Fatalf("unexpected shape %#v", g)
	}
	if g[0][0].ID != "ZEK3" || g[0][0].Section == nil || g[0][0].Section.SectionName != "Team" {
		t.Fatalf("unexpected first title %#v", g[0][0])
	}
	if g[0][1].Value != "1\n\n- a" || g[0][1].Section == nil || g[0][1].Section.SectionName != "Q1" {
		t.Fatalf("unexpected first data cell %#v", g[0][1])
	}
	if g[1][2].Name != "Notes" || g[1][2].Value != "x::y" {
		t.Fatalf("unexpected notes cell %#v", g[1][2])
	}
}

func TestRender_Dispatch(t *testing.T) {
	f, ok := ParseFormat("Gherkin")
	if !ok || f != FormatCucumber {
		t.Fatalf("expected cucumber alias, got %q %v", f, ok)
	}
	if _, err := Render(FormatXLSX, fixture(), allOptions()); err == nil {
		t.Fatalf("expected xlsx to be rejected as text")
	}
	if _, ok := ParseFormat("pdf"); ok {
		t.Fatalf("expected unknown format")
	}
}

func TestWriteFile_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteFile(path, []byte("a"), false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFile(path, []byte("b"), false); err == nil {
		t.Fatalf("expected refusal without overwrite")
	}
	if err := WriteFile(path, []byte("c"), true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "c" {
		t.Fatalf("expected overwritten content, got %q", b)
	}
}
