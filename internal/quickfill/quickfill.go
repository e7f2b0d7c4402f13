// Package quickfill suggests values for a table cell from its column.
//
// The decision is a fixed priority order: a catalog set selected by the column header,
// then a catalog set that most of the column's values belong to, then the column's own
// distinct values. All comparisons are case-insensitive.
package quickfill

import (
	"strings"

	"aboutliner/internal/model"
)

// Rule names the step that produced a suggestion.
type Rule string

const (
	RuleHeader   Rule = "header"
	RuleMajority Rule = "majority"
	RuleObserved Rule = "observed"
)

// majorityThreshold is the minimum number of normalized matches for a value set to be
// suggested without a header match.
const majorityThreshold = 2

type Request struct {
	SectionData model.SectionData
	// ColIdx is the 0-based data column.
	ColIdx int
	// RowIdx is the row being edited, in AllRows order. Its value is ignored; -1 keeps all rows.
	RowIdx int
	// GetColumnHeader overrides the column header. Nil uses the column descriptor name.
	GetColumnHeader func(colIdx int) string
}

type Suggestion struct {
	Values []string `json:"values"`
	Set    string   `json:"set,omitempty"`
	Rule   Rule     `json:"rule"`
}

type Engine struct {
	catalog Catalog
}

// New returns an engine over catalog; a nil catalog uses DefaultCatalog.
func New(catalog Catalog) *Engine {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

var defaultEngine = New(nil)

// GetQuickfillOptions returns the ordered suggestions for a cell using the built-in catalog.
func GetQuickfillOptions(req Request) []string {
	return defaultEngine.Options(req)
}

func (e *Engine) Options(req Request) []string {
	return e.Suggest(req).Values
}

func (e *Engine) Suggest(req Request) Suggestion {
	values := columnValues(req)
	header := strings.TrimSpace(columnHeader(req))

	if header != "" {
		for _, set := range e.catalog {
			if headerSelects(set, header) && allNormalize(values, set) {
				return Suggestion{Values: cloneValues(set.Values), Set: set.Name, Rule: RuleHeader}
			}
		}
	}

	best, bestCount := -1, 0
	for i, set := range e.catalog {
		count, exact := 0, 0
		for _, v := range values {
			if _, ok := NormalizeToSet(v, set.Values, set.Aliases); ok {
				count++
			}
			if _, ok := NormalizeToSet(v, set.Values, nil); ok {
				exact++
			}
		}
		if exact >= majorityThreshold && exact == len(values) {
			return Suggestion{Values: cloneValues(set.Values), Set: set.Name, Rule: RuleMajority}
		}
		if count >= majorityThreshold && count > bestCount {
			best, bestCount = i, count
		}
	}
	if best >= 0 {
		set := e.catalog[best]
		return Suggestion{Values: cloneValues(set.Values), Set: set.Name, Rule: RuleMajority}
	}

	seen := map[string]bool{}
	out := []string{}
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return Suggestion{Values: out, Rule: RuleObserved}
}

// NormalizeToSet maps value onto its canonical spelling in set, directly or through
// aliases. Matching ignores case and surrounding whitespace.
func NormalizeToSet(value string, set []string, aliases map[string]string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return s, true
		}
	}
	for alias, target := range aliases {
		if !strings.EqualFold(alias, value) {
			continue
		}
		for _, s := range set {
			if strings.EqualFold(s, target) {
				return s, true
			}
		}
	}
	return "", false
}

func headerSelects(set ValueSet, header string) bool {
	if strings.EqualFold(set.Name, header) {
		return true
	}
	for _, list := range [][]string{set.Values, set.HeaderAliases} {
		for _, s := range list {
			if strings.EqualFold(s, header) {
				return true
			}
		}
	}
	for alias := range set.Aliases {
		if strings.EqualFold(alias, header) {
			return true
		}
	}
	return false
}

func allNormalize(values []string, set ValueSet) bool {
	for _, v := range values {
		if _, ok := NormalizeToSet(v, set.Values, set.Aliases); !ok {
			return false
		}
	}
	return true
}

// columnValues collects the trimmed, non-empty values of the column, skipping RowIdx.
func columnValues(req Request) []string {
	var out []string
	for i, row := range req.SectionData.AllRows() {
		if i == req.RowIdx || req.ColIdx < 0 || req.ColIdx >= len(row.Cells) {
			continue
		}
		if v := strings.TrimSpace(row.Cells[req.ColIdx].Value); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func columnHeader(req Request) string {
	if req.GetColumnHeader != nil {
		return req.GetColumnHeader(req.ColIdx)
	}
	data := req.SectionData
	if si, ci, ok := data.FindColumn(req.ColIdx); ok {
		return data.ColSections[si].Cols[ci].Name
	}
	return ""
}

func cloneValues(v []string) []string {
	return append([]string(nil), v...)
}
