package tui

import (
	"errors"
	"fmt"
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/mutate"
	"aboutliner/internal/quickfill"
	"aboutliner/internal/textconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type viewMode int

const (
	viewTable viewMode = iota
	viewOutline
	viewText
	viewCount
)

func (v viewMode) String() string {
	switch v {
	case viewTable:
		return "table"
	case viewOutline:
		return "outline"
	case viewText:
		return "text"
	default:
		return "?"
	}
}

// chromeLines is the header, status and help lines around the body.
const chromeLines = 3

type appModel struct {
	opts   Options
	style  string
	st     styles
	engine *quickfill.Engine

	data model.SectionData
	// rows is data.AllRows(); rowSection holds each row's section name.
	rows       []model.Row
	rowSection []string

	mode     viewMode
	table    table.Model
	viewport viewport.Model
	col      int
	detail   bool

	// outlineLine is the first outline line of each row, for scrolling the cursor into view.
	outlineLine []int

	width, height int

	status    string
	statusErr bool
}

func newAppModel(opts Options) appModel {
	style := resolveStyle(opts.Style)
	m := appModel{
		opts:     opts,
		style:    style,
		st:       newStyles(style != "light"),
		engine:   quickfill.New(opts.Catalog),
		data:     opts.Data,
		table:    table.New(table.WithFocused(true)),
		viewport: viewport.New(80, 24-chromeLines),
		width:    80,
		height:   24,
	}
	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).Foreground(colorAccent)
	ts.Selected = m.st.selected
	m.table.SetStyles(ts)
	m.rebuild()
	m.resize(m.width, m.height)
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.status, m.statusErr = "", false

	if m.detail {
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "enter":
			m.detail = false
			m.refreshViewport()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.mode = (m.mode + 1) % viewCount
		m.refreshViewport()
		return m, nil
	case "shift+tab":
		m.mode = (m.mode + viewCount - 1) % viewCount
		m.refreshViewport()
		return m, nil
	case "left", "h":
		m.focusColumn(m.col - 1)
		return m, nil
	case "right", "l":
		m.focusColumn(m.col + 1)
		return m, nil
	case "K", "shift+up":
		m.moveRow(-1)
		return m, nil
	case "J", "shift+down":
		m.moveRow(1)
		return m, nil
	case "enter":
		m.openDetail()
		return m, nil
	case "y":
		m.copyText()
		return m, nil
	}

	switch m.mode {
	case viewTable:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	case viewOutline:
		switch key {
		case "up", "k":
			m.table.MoveUp(1)
			m.refreshViewport()
			return m, nil
		case "down", "j":
			m.table.MoveDown(1)
			m.refreshViewport()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// rebuild derives everything shown from m.data. Call it after every change to the data.
func (m *appModel) rebuild() {
	m.rows = make([]model.Row, 0, m.data.RowCount())
	m.rowSection = make([]string, 0, m.data.RowCount())
	for _, s := range m.data.RowSections {
		for _, r := range s.Rows {
			m.rows = append(m.rows, r)
			m.rowSection = append(m.rowSection, s.SectionName)
		}
	}
	if n := m.data.ColCount(); m.col >= n {
		m.col = n - 1
	}
	if m.col < 0 && m.data.ColCount() > 0 {
		m.col = 0
	}

	cursor := m.table.Cursor()
	cols, rows := tableLayout(m.data, m.rows, m.rowSection, m.col, m.opts)
	// Rows first when shrinking, columns first when growing: table rows must never be
	// wider than the column set.
	if len(cols) < len(m.table.Columns()) {
		m.table.SetRows(rows)
		m.table.SetColumns(cols)
	} else {
		m.table.SetColumns(cols)
		m.table.SetRows(rows)
	}
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	m.table.SetCursor(max(cursor, 0))
	m.refreshViewport()
}

func (m *appModel) resize(width, height int) {
	m.width, m.height = width, height
	body := max(height-chromeLines, 1)
	m.table.SetWidth(width)
	m.table.SetHeight(body)
	m.viewport.Width = width
	m.viewport.Height = body
	m.refreshViewport()
}

func (m *appModel) refreshViewport() {
	switch {
	case m.detail:
		m.viewport.SetContent(renderMarkdown(m.detailMarkdown(), m.style, m.width-2))
	case m.mode == viewOutline:
		content, lines := renderOutline(m.data, m.table.Cursor(), m.opts, m.st)
		m.outlineLine = lines
		m.viewport.SetContent(content)
		if c := m.table.Cursor(); c >= 0 && c < len(lines) {
			line := lines[c]
			if line < m.viewport.YOffset {
				m.viewport.SetYOffset(line)
			} else if line >= m.viewport.YOffset+m.viewport.Height {
				m.viewport.SetYOffset(line - m.viewport.Height + 1)
			}
		}
	case m.mode == viewText:
		m.viewport.SetContent(textconv.SectionModelToText(m.data, m.opts.TextOptions))
	}
}

func (m *appModel) focusColumn(c int) {
	n := m.data.ColCount()
	if n == 0 {
		return
	}
	m.col = min(max(c, 0), n-1)
	m.rebuild()
}

// moveRow moves the cursor row past its neighbour in display order. The row joins the
// neighbour's section; a row that is alone in its section cannot be moved out of it.
func (m *appModel) moveRow(delta int) {
	cur := m.table.Cursor()
	to := cur + delta
	if cur < 0 || cur >= len(m.rows) || to < 0 || to >= len(m.rows) {
		return
	}
	id := m.rows[cur].ID
	target := mutate.RowTarget{Placement: mutate.PlaceBefore, RowID: m.rows[to].ID}
	if delta > 0 {
		target.Placement = mutate.PlaceAfter
	}
	res, err := mutate.MoveRow(m.data, id, target)
	if err != nil {
		if errors.Is(err, mutate.ErrSoleSectionMember) {
			m.setError(fmt.Sprintf("cannot move %s: it is the only row in its section", id))
		} else {
			m.setError(fmt.Sprintf("cannot move %s: %v", id, err))
		}
		return
	}
	m.data = res.Data
	m.table.SetCursor(to)
	m.rebuild()
	m.setStatus("moved " + id)
}

func (m *appModel) openDetail() {
	if len(m.rows) == 0 {
		return
	}
	m.detail = true
	m.viewport.GotoTop()
	m.refreshViewport()
}

func (m appModel) detailMarkdown() string {
	cur := m.table.Cursor()
	if cur < 0 || cur >= len(m.rows) {
		return ""
	}
	r := m.rows[cur]
	var b strings.Builder
	title := strings.TrimSpace(r.Name)
	if title == "" {
		title = r.ID
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if m.rowSection[cur] != "" {
		fmt.Fprintf(&b, "*%s* · `%s`\n\n", m.rowSection[cur], r.ID)
	}
	if v := strings.TrimSpace(r.Value); v != "" {
		b.WriteString(v + "\n\n")
	}
	if m.col >= 0 && m.col < len(r.Cells) {
		c := r.Cells[m.col]
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = columnTitle(m.data, m.col)
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n", name, c.Value)
	}
	return b.String()
}

func (m *appModel) copyText() {
	text := textconv.SectionModelToText(m.data, m.opts.TextOptions)
	if err := copyToClipboard(text); err != nil {
		m.setError("copy failed: " + err.Error())
		return
	}
	m.setStatus(fmt.Sprintf("copied outline (%d lines)", strings.Count(text, "\n")+1))
}

func (m *appModel) setStatus(s string) { m.status, m.statusErr = s, false }

func (m *appModel) setError(s string) { m.status, m.statusErr = s, true }

func (m appModel) quickfillLine() string {
	if len(m.rows) == 0 || m.col < 0 || m.col >= m.data.ColCount() {
		return ""
	}
	s := m.engine.Suggest(quickfill.Request{SectionData: m.data, ColIdx: m.col, RowIdx: m.table.Cursor()})
	label := "quickfill"
	if s.Set != "" {
		label += " [" + s.Set + "]"
	}
	if len(s.Values) == 0 {
		return label + ": -"
	}
	return label + ": " + strings.Join(s.Values, " · ")
}
