package textconv

import (
	"regexp"
	"strings"

	"aboutliner/internal/model"
)

var (
	separatorCellRe = regexp.MustCompile(`^:?-+:?$`)
	lineBreakTags   = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")
)

// ParsePipeTable reads the first Markdown or Cucumber pipe table in text. Lines before
// the table and separator rows are skipped; the table ends at the first line that does
// not start with "|". Cells unescape `\|`, `\\` and `\n`, and <br>
// tags become newlines.
func ParsePipeTable(text string, opts Options) (model.Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var records [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			if len(records) > 0 {
				break
			}
			continue
		}
		cells := splitPipeRow(line)
		if isSeparatorRow(cells) {
			continue
		}
		records = append(records, cells)
	}
	// Converters emit an empty header row for tables without <th> cells.
	if len(records) > 1 && blankRecord(records[0]) {
		records = records[1:]
	}
	return FromRecords(records, opts)
}

func splitPipeRow(line string) []string {
	line = strings.TrimPrefix(line, "|")
	var cells []string
	var cur strings.Builder
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '\\' && i+1 < len(line):
			i++
			switch line[i] {
			case 'n':
				cur.WriteByte('\n')
			case '|', '\\':
				cur.WriteByte(line[i])
			default:
				cur.WriteByte('\\')
				cur.WriteByte(line[i])
			}
		case ch == '|':
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		cells = append(cells, cur.String())
	}
	for i, c := range cells {
		cells[i] = lineBreakTags.Replace(strings.TrimSpace(c))
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !separatorCellRe.MatchString(strings.TrimSpace(c)) {
			return false
		}
	}
	return true
}
