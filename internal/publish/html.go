package publish

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"sync"

	"aboutliner/internal/model"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("colspan").Matching(bluemonday.Integer).OnElements("th", "td")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^section$`)).OnElements("tr")
	return p
})

// RenderHTML renders the grid as an HTML table. Column sections become a grouped
// header row and row sections become full-width rows above their first row. Cell values
// are Markdown.
func RenderHTML(grid model.Grid, opt RenderOptions) string {
	cols := columnCells(grid)
	lead := 1
	if opt.IncludeIDs {
		lead++
	}
	if opt.IncludeHeaders {
		lead++
	}
	total := lead + len(cols)

	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("<table>")
	if opt.IncludeHeaders {
		writeLn("<thead>")
		if opt.IncludeSections {
			if groups := groupColumns(cols); len(groups) > 0 {
				var b bytes.Buffer
				fmt.Fprintf(&b, `<tr><th colspan="%d"></th>`, lead)
				for _, g := range groups {
					fmt.Fprintf(&b, `<th colspan="%d">%s</th>`, g.span, html.EscapeString(g.name))
				}
				b.WriteString("</tr>")
				writeLn(b.String())
			}
		}
		var b bytes.Buffer
		b.WriteString("<tr>")
		if opt.IncludeIDs {
			b.WriteString("<th>ID</th>")
		}
		b.WriteString("<th>Name</th><th>Value</th>")
		for _, c := range cols {
			b.WriteString("<th>" + html.EscapeString(c.Name) + "</th>")
		}
		b.WriteString("</tr>")
		writeLn(b.String())
		writeLn("</thead>")
	}

	writeLn("<tbody>")
	current := ""
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		title := row[0]
		if opt.IncludeSections && title.SectionIDOf() != current {
			current = title.SectionIDOf()
			if name := sectionName(title.Section); name != "" {
				writeLn(fmt.Sprintf(`<tr class="section"><th colspan="%d">%s</th></tr>`, total, html.EscapeString(name)))
			}
		}
		var b bytes.Buffer
		b.WriteString("<tr>")
		if opt.IncludeIDs {
			b.WriteString("<td>" + html.EscapeString(title.ID) + "</td>")
		}
		if opt.IncludeHeaders {
			b.WriteString("<td>" + html.EscapeString(title.Name) + "</td>")
		}
		b.WriteString("<td>" + renderMarkdownHTML(title.Value) + "</td>")
		for c := range cols {
			v := ""
			if c+1 < len(row) {
				v = row[c+1].Value
			}
			b.WriteString("<td>" + renderMarkdownHTML(v) + "</td>")
		}
		b.WriteString("</tr>")
		writeLn(b.String())
	}
	writeLn("</tbody>")
	writeLn("</table>")
	return htmlPolicy().Sanitize(buf.String())
}

type columnGroup struct {
	name string
	span int
}

// groupColumns merges adjacent columns of the same section. It returns nil when no
// column has a named section.
func groupColumns(cols []model.Cell) []columnGroup {
	var groups []columnGroup
	named := false
	lastID := ""
	for _, c := range cols {
		id := c.SectionIDOf()
		if len(groups) > 0 && id == lastID {
			groups[len(groups)-1].span++
			continue
		}
		lastID = id
		name := sectionName(c.Section)
		named = named || name != ""
		groups = append(groups, columnGroup{name: name, span: 1})
	}
	if !named {
		return nil
	}
	return groups
}
