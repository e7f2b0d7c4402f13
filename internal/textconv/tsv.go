package textconv

import (
	"bytes"
	"encoding/csv"
	"strings"

	"aboutliner/internal/model"
)

var (
	tsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)
)

// ExportTSV writes one line per record with tabs, newlines and backslashes escaped, so
// every record stays on one physical line and reimports losslessly.
func ExportTSV(grid model.Grid, opts Options) string {
	records := Records(grid, opts)
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		fields := make([]string, len(rec))
		for i, f := range rec {
			fields[i] = tsvEscaper.Replace(f)
		}
		lines = append(lines, strings.Join(fields, "\t"))
	}
	return strings.Join(lines, "\n")
}

// ExportTSVRich writes real newlines inside quoted fields. Spreadsheets paste it as
// multi-line cells; strict TSV consumers cannot read it.
func ExportTSVRich(grid model.Grid, opts Options) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	if err := w.WriteAll(Records(grid, opts)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ParseImportTSV reads the escaped TSV variant.
func ParseImportTSV(text string, opts Options) (model.Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var records [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Split(line, "\t")
		for i, f := range fields {
			fields[i] = unescapeTSV(f)
		}
		records = append(records, fields)
	}
	return FromRecords(records, opts)
}

func unescapeTSV(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
