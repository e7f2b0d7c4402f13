package tui

import (
	"reflect"
	"strings"
	"testing"

	"aboutliner/internal/model"
	"aboutliner/internal/textconv"

	tea "github.com/charmbracelet/bubbletea"
)

const sampleOutline = `- ## Team ZEK3 | Alice::lead
  - Severity::High
- BAF1 | Bob::member
  - Severity::Low
- ## Ops MOP7 | Carol::oncall
  - Severity::Critical`

func newTestModel(t *testing.T) appModel {
	t.Helper()
	opts := textconv.DefaultOptions()
	data, err := textconv.ParseTextToSectionModel(sampleOutline, opts)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := newAppModel(Options{Title: "sample", Data: data, TextOptions: opts, Style: "notty", MaxCellWidth: 20})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return next.(appModel)
}

func press(m appModel, keys ...tea.KeyMsg) appModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(appModel)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func rowIDs(m appModel) []string {
	out := make([]string, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.ID
	}
	return out
}

func TestMoveRowDown_WithinSection(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("J"))
	if got := rowIDs(m); !reflect.DeepEqual(got, []string{"BAF1", "ZEK3", "MOP7"}) {
		t.Fatalf("expected ZEK3 after BAF1, got %v", got)
	}
	if m.table.Cursor() != 1 {
		t.Fatalf("expected cursor to follow the row, got %d", m.table.Cursor())
	}
	if m.statusErr || !strings.Contains(m.status, "moved ZEK3") {
		t.Fatalf("expected moved status, got %q (err=%v)", m.status, m.statusErr)
	}
}

func TestMoveRowUp_SoleSectionMemberRejected(t *testing.T) {
	m := newTestModel(t)
	before := m.data
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.table.Cursor() != 2 {
		t.Fatalf("expected cursor on MOP7, got %d", m.table.Cursor())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftUp})
	if !m.statusErr || !strings.Contains(m.status, "only row in its section") {
		t.Fatalf("expected rejection status, got %q", m.status)
	}
	if !reflect.DeepEqual(m.data, before) {
		t.Fatalf("expected data unchanged after rejection")
	}
}

func TestMoveRowDown_AcrossSectionsJoinsTarget(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, runes("J"))
	if got := rowIDs(m); !reflect.DeepEqual(got, []string{"ZEK3", "MOP7", "BAF1"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if m.rowSection[2] != "Ops" {
		t.Fatalf("expected BAF1 to join Ops, got %q", m.rowSection[2])
	}
}

func TestTab_CyclesViews(t *testing.T) {
	m := newTestModel(t)
	want := []viewMode{viewOutline, viewText, viewTable}
	for _, w := range want {
		m = press(m, tea.KeyMsg{Type: tea.KeyTab})
		if m.mode != w {
			t.Fatalf("expected %s, got %s", w, m.mode)
		}
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.mode != viewText {
		t.Fatalf("expected shift+tab to go back to text, got %s", m.mode)
	}
}

func TestTextView_ShowsOutlineText(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "Team ## ZEK3 | Alice::lead") {
		t.Fatalf("expected outline text in view, got:\n%s", m.View())
	}
}

func TestOutlineView_MarksCursorRow(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})
	if m.table.Cursor() != 1 {
		t.Fatalf("expected down to move the cursor in outline view, got %d", m.table.Cursor())
	}
	content, lines := renderOutline(m.data, m.table.Cursor(), m.opts, m.st)
	got := strings.Split(content, "\n")[lines[1]]
	if !strings.Contains(got, "▸") || !strings.Contains(got, "Bob") {
		t.Fatalf("expected cursor marker on Bob, got %q", got)
	}
}

func TestCopy_WritesOutlineText(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(t)
	m = press(m, runes("y"))
	want := textconv.SectionModelToText(m.data, m.opts.TextOptions)
	if copied != want {
		t.Fatalf("expected clipboard:\n%s\ngot:\n%s", want, copied)
	}
	if !strings.HasPrefix(m.status, "copied outline") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestQuickfillLine_FocusedColumn(t *testing.T) {
	m := newTestModel(t)
	got := m.quickfillLine()
	want := "quickfill [Severity]: Critical · High · Medium · Low"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFocusColumn_Clamps(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("l"), runes("l"))
	if m.col != 0 {
		t.Fatalf("expected col clamped to 0, got %d", m.col)
	}
	m = press(m, runes("h"))
	if m.col != 0 {
		t.Fatalf("expected col clamped to 0, got %d", m.col)
	}
}

func TestDetail_OpensAndCloses(t *testing.T) {
	m := newTestModel(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detail {
		t.Fatalf("expected detail open")
	}
	md := m.detailMarkdown()
	for _, want := range []string{"# Alice", "lead", "## Severity", "High"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected detail to contain %q, got:\n%s", want, md)
		}
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail {
		t.Fatalf("expected detail closed")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestEmptyDocument(t *testing.T) {
	m := newAppModel(Options{Data: model.SectionData{}, TextOptions: textconv.DefaultOptions(), Style: "notty"})
	m = press(m, runes("J"), tea.KeyMsg{Type: tea.KeyEnter}, runes("l"))
	if m.detail || m.quickfillLine() != "" {
		t.Fatalf("expected no-ops on an empty document")
	}
	_ = m.View()
}

func TestTableLayout_TruncatesAndMarksFocus(t *testing.T) {
	m := newTestModel(t)
	cols, rows := tableLayout(m.data, m.rows, m.rowSection, 0, Options{TextOptions: textconv.DefaultOptions(), MaxCellWidth: 5})
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
		if c.Width > 5 {
			t.Fatalf("expected width <= 5, got %d for %q", c.Width, c.Title)
		}
	}
	if !reflect.DeepEqual(titles, []string{"ID", "Section", "Name", "Value", "▸ Severity"}) {
		t.Fatalf("unexpected titles %v", titles)
	}
	if rows[2][4] != "Crit…" {
		t.Fatalf("expected truncated cell, got %q", rows[2][4])
	}
}
