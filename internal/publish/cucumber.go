package publish

import (
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/textconv"

	"github.com/charmbracelet/x/ansi"
)

var cucumberEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, "\n", `\n`)

// RenderCucumber writes a Gherkin data table with aligned columns. Pipes, backslashes
// and newlines are escaped the way Gherkin parsers expect.
func RenderCucumber(grid model.Grid, opt RenderOptions) string {
	records := textconv.Records(grid, opt.Options)
	widths := []int{}
	for r, rec := range records {
		for c, v := range rec {
			v = cucumberEscaper.Replace(v)
			records[r][c] = v
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], ansi.StringWidth(v))
		}
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		var b strings.Builder
		b.WriteString("|")
		for c, w := range widths {
			v := ""
			if c < len(rec) {
				v = rec[c]
			}
			b.WriteString(" ")
			b.WriteString(v)
			b.WriteString(strings.Repeat(" ", w-ansi.StringWidth(v)))
			b.WriteString(" |")
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
