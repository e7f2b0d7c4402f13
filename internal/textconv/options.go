// Package textconv reads and writes the line-oriented encodings of the flat grid:
// the outline bullet syntax, TSV, pipe tables and pasted HTML tables.
package textconv

import "errors"

// ErrNothingToImport is returned when the input contains no recognizable rows.
// Callers must treat it as a no-op and never apply a partial result.
var ErrNothingToImport = errors.New("nothing to import")

// Options toggles which categories of information survive a conversion. Each toggle
// applies symmetrically: an option that is off is neither written on export nor
// interpreted on import.
type Options struct {
	IncludeHeaders  bool `json:"includeHeaders"`
	IncludeIDs      bool `json:"includeIds"`
	IncludeSections bool `json:"includeSections"`
}

func DefaultOptions() Options {
	return Options{IncludeHeaders: true, IncludeIDs: true, IncludeSections: true}
}
