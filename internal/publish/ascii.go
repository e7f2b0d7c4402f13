package publish

import (
	"aboutliner/internal/model"
	"aboutliner/internal/textconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/wordwrap"
)

// RenderASCII draws the tabular layout with a plain ASCII border, so it survives
// terminals, emails and code comments.
func RenderASCII(grid model.Grid, opt RenderOptions) string {
	records := textconv.Records(grid, opt.Options)
	if len(records) == 0 {
		return ""
	}
	wrap := func(rec []string) []string {
		out := make([]string, len(rec))
		for i, v := range rec {
			if opt.MaxCellWidth > 0 {
				v = wordwrap.String(v, opt.MaxCellWidth)
			}
			out[i] = v
		}
		return out
	}

	t := table.New().Border(lipgloss.ASCIIBorder())
	if opt.IncludeHeaders {
		t = t.Headers(records[0]...)
		records = records[1:]
	}
	for _, rec := range records {
		t = t.Row(wrap(rec)...)
	}
	return t.String()
}
