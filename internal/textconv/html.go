package textconv

import (
	"fmt"
	"sync"

	"aboutliner/internal/model"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

var htmlConverter = sync.OnceValue(func() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
})

// ParseImportHTML reads the first table of an HTML fragment, as pasted from a browser
// or spreadsheet. Cell markup is kept as Markdown.
func ParseImportHTML(html string, opts Options) (model.Grid, error) {
	md, err := htmlConverter().ConvertString(html)
	if err != nil {
		return nil, fmt.Errorf("convert html: %w", err)
	}
	return ParsePipeTable(md, opts)
}
