package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"aboutliner/internal/model"
	"aboutliner/internal/publish"
	"aboutliner/internal/sections"
	"aboutliner/internal/textconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// readInput reads the named file, or stdin when path is "" or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// readDoc reads a section model document. Both a bare SectionData object and a
// command envelope ({"data": ...}) are accepted, so commands can be piped together.
func readDoc(cmd *cobra.Command, path string) (model.SectionData, error) {
	b, err := readInput(cmd, path)
	if err != nil {
		return model.SectionData{}, err
	}
	return decodeDoc(b, path)
}

func decodeDoc(b []byte, path string) (model.SectionData, error) {
	name := path
	if name == "" || name == "-" {
		name = "stdin"
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(b, &probe); err != nil {
		return model.SectionData{}, fmt.Errorf("%s: expected a JSON document: %w", name, err)
	}
	if raw, ok := probe["data"]; ok {
		b = raw
	}
	var data model.SectionData
	if err := json.Unmarshal(b, &data); err != nil {
		return model.SectionData{}, fmt.Errorf("%s: %w", name, err)
	}
	if err := sections.Check(data); err != nil {
		return model.SectionData{}, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}

// docEnvelope wraps a section model with the counts every document-returning command reports.
func docEnvelope(data model.SectionData, meta map[string]any) map[string]any {
	m := map[string]any{
		"rows":        data.RowCount(),
		"cols":        data.ColCount(),
		"rowSections": len(data.RowSections),
		"colSections": len(data.ColSections),
	}
	for k, v := range meta {
		m[k] = v
	}
	return map[string]any{"data": data, "meta": m}
}

// toggleFlags binds --headers/--ids/--sections. Unset flags fall back to the config.
type toggleFlags struct {
	headers  bool
	ids      bool
	sections bool
}

func addToggleFlags(fs *pflag.FlagSet, t *toggleFlags) {
	fs.BoolVar(&t.headers, "headers", true, "Read/write cell names (Name::Value)")
	fs.BoolVar(&t.ids, "ids", true, "Read/write row ids")
	fs.BoolVar(&t.sections, "sections", true, "Read/write section tokens")
}

func (t toggleFlags) options(fs *pflag.FlagSet, base textconv.Options) textconv.Options {
	if fs.Changed("headers") {
		base.IncludeHeaders = t.headers
	}
	if fs.Changed("ids") {
		base.IncludeIDs = t.ids
	}
	if fs.Changed("sections") {
		base.IncludeSections = t.sections
	}
	return base
}

// formatFromPath guesses an import format from a file extension.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return string(textconv.FormatTSV)
	case ".html", ".htm":
		return string(textconv.FormatHTML)
	case ".feature":
		return string(textconv.FormatPipe)
	case ".xlsx":
		return string(publish.FormatXLSX)
	default:
		return string(textconv.FormatOutline)
	}
}

// importGrid decodes b in the named format into a flat grid.
func importGrid(from string, b []byte, opts textconv.Options) (model.Grid, error) {
	if f, ok := publish.ParseFormat(from); ok && f == publish.FormatXLSX {
		return publish.ReadXLSX(bytes.NewReader(b), opts)
	}
	f, err := textconv.ParseFormat(from)
	if err != nil {
		return nil, err
	}
	return textconv.Import(f, string(b), opts)
}

// exportGrid encodes grid in the named format. Presentation formats take precedence
// over the text formats that share an alias (e.g. "cucumber").
func exportGrid(to string, grid model.Grid, opts publish.RenderOptions) ([]byte, error) {
	if f, ok := publish.ParseFormat(to); ok {
		if f == publish.FormatXLSX {
			var buf bytes.Buffer
			if err := publish.WriteXLSX(&buf, grid, opts.Options); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}
		s, err := publish.Render(f, grid, opts)
		return []byte(s), err
	}
	f, err := textconv.ParseFormat(to)
	if err != nil {
		return nil, err
	}
	s, err := textconv.Export(f, grid, opts.Options)
	return []byte(s), err
}

// emit writes an export either to --out (reporting the written path) or raw to stdout.
// Text output to stdout is newline-terminated.
func emit(cmd *cobra.Command, app *App, b []byte, text bool, out string, overwrite bool) error {
	out = strings.TrimSpace(out)
	if out == "" || out == "-" {
		w := cmd.OutOrStdout()
		if _, err := w.Write(b); err != nil {
			return err
		}
		if text && len(b) > 0 && !bytes.HasSuffix(b, []byte("\n")) {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}
	if err := publish.WriteFile(out, b, overwrite); err != nil {
		return err
	}
	return writeOut(cmd, app, map[string]any{"data": publish.WriteResult{Written: []string{out}}})
}

func isBinaryFormat(name string) bool {
	f, ok := publish.ParseFormat(name)
	return ok && f == publish.FormatXLSX
}
