package tui

import (
	"strconv"
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/sections"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const minColWidth = 4

func (m appModel) View() string {
	tabs := make([]string, 0, viewCount)
	for v := viewTable; v < viewCount; v++ {
		if v == m.mode {
			tabs = append(tabs, m.st.tabActive.Render(v.String()))
		} else {
			tabs = append(tabs, m.st.tab.Render(v.String()))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, m.st.title.Render(m.opts.Title)+"  ", strings.Join(tabs, ""))

	var body string
	switch {
	case m.detail:
		body = m.viewport.View()
	case m.mode == viewTable:
		body = m.table.View()
	default:
		body = m.viewport.View()
	}

	status := m.status
	statusStyle := m.st.status
	if m.statusErr {
		statusStyle = m.st.statusError
	}
	if status == "" {
		status = m.quickfillLine()
	}

	help := "tab view · ←/→ column · K/J move row · enter detail · y copy · q quit"
	if m.detail {
		help = "↑/↓ scroll · esc close · q quit"
	}

	bodyHeight := max(m.height-chromeLines, 1)
	return strings.Join([]string{
		fitPane(header, m.width, 1),
		fitPane(body, m.width, bodyHeight),
		statusStyle.Render(fitPane(status, m.width, 1)),
		m.st.help.Render(fitPane(help, m.width, 1)),
	}, "\n")
}

// tableLayout builds the bubbles table columns and rows. The focused data column is
// marked in its header.
func tableLayout(data model.SectionData, rows []model.Row, rowSection []string, focus int, opts Options) ([]table.Column, []table.Row) {
	limit := opts.MaxCellWidth
	if limit <= 0 {
		limit = 32
	}
	showSection := false
	if opts.TextOptions.IncludeSections {
		for _, s := range rowSection {
			if s != "" {
				showSection = true
				break
			}
		}
	}

	var titles []string
	var cells [][]string // per column
	add := func(title string, values []string) {
		titles = append(titles, title)
		cells = append(cells, values)
	}
	pick := func(f func(i int) string) []string {
		out := make([]string, len(rows))
		for i := range rows {
			out[i] = firstLine(f(i))
		}
		return out
	}

	if opts.TextOptions.IncludeIDs {
		add("ID", pick(func(i int) string { return rows[i].ID }))
	}
	if showSection {
		add("Section", pick(func(i int) string { return rowSection[i] }))
	}
	if opts.TextOptions.IncludeHeaders {
		add("Name", pick(func(i int) string { return rows[i].Name }))
	}
	add("Value", pick(func(i int) string { return rows[i].Value }))
	for c := 0; c < data.ColCount(); c++ {
		title := columnTitle(data, c)
		if c == focus {
			title = "▸ " + title
		}
		add(title, pick(func(i int) string {
			if c < len(rows[i].Cells) {
				return rows[i].Cells[c].Value
			}
			return ""
		}))
	}

	cols := make([]table.Column, len(titles))
	for i, t := range titles {
		w := xansi.StringWidth(t)
		for _, v := range cells[i] {
			w = max(w, xansi.StringWidth(v))
		}
		cols[i] = table.Column{Title: t, Width: min(max(w, minColWidth), limit)}
	}
	out := make([]table.Row, len(rows))
	for r := range rows {
		row := make(table.Row, len(titles))
		for c := range titles {
			row[c] = xansi.Truncate(cells[c][r], cols[c].Width, "…")
		}
		out[r] = row
	}
	return cols, out
}

// columnTitle names data column c, prefixed with its section when it has one.
func columnTitle(data model.SectionData, c int) string {
	for _, v := range sections.FlattenedColumns(data) {
		if v.Idx != c {
			continue
		}
		name := v.Name
		if strings.TrimSpace(name) == "" {
			name = "#" + strconv.Itoa(c+1)
		}
		if v.SectionName != "" && v.SectionID != model.DefaultColSectionID {
			return v.SectionName + " / " + name
		}
		return name
	}
	return "#" + strconv.Itoa(c+1)
}

// renderOutline draws the document as styled bullets and returns the first line of
// each row, in display order.
func renderOutline(data model.SectionData, cursor int, opts Options, st styles) (string, []int) {
	var lines []string
	var rowLine []int
	i := 0
	for _, s := range data.RowSections {
		if len(s.Rows) == 0 {
			continue
		}
		if opts.TextOptions.IncludeSections && !s.IsDefault() && s.SectionName != "" {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, st.section.Render("## "+s.SectionName))
		}
		for _, r := range s.Rows {
			rowLine = append(rowLine, len(lines))
			var b strings.Builder
			b.WriteString("• ")
			if opts.TextOptions.IncludeIDs {
				b.WriteString(st.rowID.Render(r.ID) + " ")
			}
			if opts.TextOptions.IncludeHeaders && r.Name != "" {
				b.WriteString(st.name.Render(r.Name) + ": ")
			}
			b.WriteString(firstLine(r.Value))
			line := b.String()
			if i == cursor {
				line = st.selected.Render("▸ " + line)
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
			for c, sub := range r.Cells {
				if sub.Name == "" && sub.Value == "" {
					continue
				}
				name := sub.Name
				if name == "" {
					name = columnTitle(data, c)
				}
				prefix := "    ◦ "
				if opts.TextOptions.IncludeHeaders {
					prefix += st.muted.Render(name+":") + " "
				}
				lines = append(lines, prefix+firstLine(sub.Value))
			}
			i++
		}
	}
	return strings.Join(lines, "\n"), rowLine
}

func firstLine(s string) string {
	first, _, multi := strings.Cut(s, "\n")
	if multi {
		return first + " …"
	}
	return first
}

// fitPane forces s to exactly width columns (ANSI-aware) and height lines, so the frame
// does not jump as content changes.
func fitPane(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			ln = xansi.Truncate(ln, width, "…")
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}
