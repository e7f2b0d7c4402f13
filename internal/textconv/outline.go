package textconv

import (
	"regexp"
	"strings"

	"aboutliner/internal/ids"
	"aboutliner/internal/model"
)

// UnsectionedToken is the section written for rows that have no section but follow a
// sectioned row, and the synthetic section given to rows that precede the first section
// of a document. ToSectionModel folds it back into the default sections.
const UnsectionedToken = "_"

// continuationIndent prefixes every line of a multi-line value after the first.
const continuationIndent = "      "

var (
	bulletRe = regexp.MustCompile(`^[*-](?:\s+(.*))?$`)
	// "## Token rest": the token is a single word.
	leadingTokenRe = regexp.MustCompile(`^##\s+(\S+)\s*(.*)$`)
	// "Section Name ## rest": the form written by ExportText.
	trailingTokenRe = regexp.MustCompile(`^([^:|#]+?)\s+##(?:\s+(.*))?$`)
	titleIDRe       = regexp.MustCompile(`(?i)^([BCDFGHJKLMNPQRSTVWXYZ][AEIOU][BCDFGHJKLMNPQRSTVWXYZ]\d)\s*\|\s*(.*)$`)
)

// Names and section tokens are written with ":", "#", "|" and "\" backslash-escaped so
// they cannot be mistaken for the "::", "##" and "|" separators. While a line is split,
// escape sequences are shielded as private-use runes; names and sections then unescape
// to the literal character and values get their original text back.
var (
	tokenEscaper  = strings.NewReplacer(`\`, `\\`, `:`, `\:`, `#`, `\#`, `|`, `\|`)
	escapeShield  = strings.NewReplacer(`\\`, "\uE000", `\:`, "\uE001", `\#`, "\uE002", `\|`, "\uE003")
	shieldLiteral = strings.NewReplacer("\uE000", `\`, "\uE001", ":", "\uE002", "#", "\uE003", "|")
	shieldRaw     = strings.NewReplacer("\uE000", `\\`, "\uE001", `\:`, "\uE002", `\#`, "\uE003", `\|`)
)

type outlineCell struct {
	id      string
	name    string
	value   string
	section string
	breaks  int
}

type outlineRow struct {
	title outlineCell
	subs  []outlineCell
}

type outlineParser struct {
	opts       Options
	rows       []*outlineRow
	rowSection string
	sawSection bool
	colSection []string
}

// ParseOutline parses the bullet outline syntax into a rectangular flat grid.
//
// Level-1 bullets ("- ") start rows; level-2 bullets ("  - ") are the row's data cells in
// column order. A body may start with a section token ("## Token" or "Name ## ") and is
// split on the first "::" into name and value. Row sections fill down across rows and
// column sections fill down per column position. Deeper bullets and indented lines extend
// the value of the latest cell.
//
// ErrNothingToImport is returned when the text has no level-1 bullet.
func ParseOutline(text string, opts Options) (model.Grid, error) {
	p := &outlineParser{opts: opts}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		p.line(line)
	}
	if len(p.rows) == 0 {
		return nil, ErrNothingToImport
	}
	return p.grid(), nil
}

func (p *outlineParser) line(raw string) {
	line := expandIndent(strings.TrimRight(raw, "\r"))
	rest := strings.TrimLeft(line, " ")
	indent := len(line) - len(rest)

	switch {
	case strings.TrimSpace(rest) == "":
		if indent >= len(continuationIndent) {
			p.appendText("", true)
		} else {
			p.blank()
		}
	case indent == 0 && bulletRe.MatchString(line):
		p.startRow(bulletBody(line))
	case indent == 2 && bulletRe.MatchString(rest):
		p.startSub(bulletBody(rest))
	case indent >= len(continuationIndent):
		p.appendText(line[len(continuationIndent):], true)
	case indent >= 4 && bulletRe.MatchString(rest):
		p.appendText("- "+bulletBody(rest), false)
	default:
		p.appendText(strings.TrimSpace(rest), false)
	}
}

func (p *outlineParser) startRow(body string) {
	c, hasToken := p.split(body, true)
	if hasToken {
		if !p.sawSection {
			for _, r := range p.rows {
				if r.title.section == "" {
					r.title.section = UnsectionedToken
				}
			}
			p.sawSection = true
		}
		p.rowSection = c.section
	} else {
		c.section = p.rowSection
	}
	p.rows = append(p.rows, &outlineRow{title: c})
}

func (p *outlineParser) startSub(body string) {
	if len(p.rows) == 0 {
		return
	}
	r := p.rows[len(p.rows)-1]
	c, hasToken := p.split(body, false)
	idx := len(r.subs)
	for len(p.colSection) <= idx {
		p.colSection = append(p.colSection, "")
	}
	if hasToken {
		p.colSection[idx] = c.section
	} else {
		c.section = p.colSection[idx]
	}
	r.subs = append(r.subs, c)
}

// split breaks a bullet body into section token, id, name and value.
func (p *outlineParser) split(body string, title bool) (c outlineCell, hasToken bool) {
	body = escapeShield.Replace(body)
	if p.opts.IncludeSections {
		if m := leadingTokenRe.FindStringSubmatch(body); m != nil {
			c.section, body, hasToken = m[1], m[2], true
		} else if m := trailingTokenRe.FindStringSubmatch(body); m != nil {
			c.section, body, hasToken = strings.TrimSpace(m[1]), m[2], true
		}
	}

	var name string
	value := body
	if p.opts.IncludeHeaders {
		if before, after, ok := strings.Cut(body, "::"); ok {
			name, value = before, after
		}
	}
	if title && p.opts.IncludeIDs {
		// Without headers there is no name part, so the id prefixes the value.
		target := &name
		if !p.opts.IncludeHeaders {
			target = &value
		}
		if m := titleIDRe.FindStringSubmatch(strings.TrimSpace(*target)); m != nil {
			c.id = strings.ToUpper(m[1])
			*target = m[2]
		}
	}
	c.section = shieldLiteral.Replace(c.section)
	c.name = strings.TrimSpace(shieldLiteral.Replace(name))
	c.value = strings.TrimSpace(shieldRaw.Replace(value))
	return c, hasToken
}

func (p *outlineParser) target() *outlineCell {
	if len(p.rows) == 0 {
		return nil
	}
	r := p.rows[len(p.rows)-1]
	if n := len(r.subs); n > 0 {
		return &r.subs[n-1]
	}
	return &r.title
}

// appendText extends the latest cell's value. Verbatim lines come from the continuation
// indent and always start a new line, even on an empty value.
func (p *outlineParser) appendText(text string, verbatim bool) {
	c := p.target()
	if c == nil {
		return
	}
	switch {
	case c.breaks > 0 && c.value != "":
		c.value += "\n\n" + text
	case verbatim || c.value != "":
		c.value += "\n" + text
	default:
		c.value = text
	}
	c.breaks = 0
}

// blank records a paragraph break on the latest sub-bullet. Breaks only materialize
// when more text follows, so trailing blank lines never leak into values.
func (p *outlineParser) blank() {
	if len(p.rows) == 0 {
		return
	}
	r := p.rows[len(p.rows)-1]
	if n := len(r.subs); n > 0 {
		r.subs[n-1].breaks++
	}
}

func (p *outlineParser) grid() model.Grid {
	width := 0
	for _, r := range p.rows {
		width = max(width, len(r.subs))
	}

	rowRefs := map[string]*model.SectionRef{}
	colRefs := map[string]*model.SectionRef{}
	grid := make(model.Grid, 0, len(p.rows))
	for _, r := range p.rows {
		line := make([]model.Cell, 0, width+1)
		line = append(line, model.Cell{
			ID:      r.title.id,
			Name:    r.title.name,
			Value:   r.title.value,
			Section: promoteSection(rowRefs, r.title.section, ids.RowSectionID),
		})
		for i := 0; i < width; i++ {
			if i >= len(r.subs) {
				line = append(line, model.Cell{})
				continue
			}
			s := r.subs[i]
			line = append(line, model.Cell{
				Name:    s.name,
				Value:   s.value,
				Section: promoteSection(colRefs, s.section, ids.ColSectionID),
			})
		}
		grid = append(grid, line)
	}

	// Padded cells take the column section of the first row that has the column, so
	// the first row stays a valid source of column sections.
	for c := 1; c <= width; c++ {
		var canon *model.SectionRef
		for ri, r := range p.rows {
			if c-1 < len(r.subs) {
				canon = grid[ri][c].Section
				break
			}
		}
		for ri, r := range p.rows {
			if c-1 >= len(r.subs) {
				grid[ri][c].Section = canon
			}
		}
	}

	assignRowIDs(grid)
	return grid
}

// ExportText writes the grid in the outline syntax read by ParseOutline.
func ExportText(grid model.Grid, opts Options) string {
	var lines []string
	rowSectioned := false
	var colSectioned []bool
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		title := row[0]
		id := ""
		if opts.IncludeIDs {
			id = title.ID
		}
		lines = append(lines, cellLines("- ", sectionPrefix(opts, title.Section, &rowSectioned), id, title, opts)...)
		for c := 1; c < len(row); c++ {
			for len(colSectioned) < c {
				colSectioned = append(colSectioned, false)
			}
			prefix := sectionPrefix(opts, row[c].Section, &colSectioned[c-1])
			lines = append(lines, cellLines("  - ", prefix, "", row[c], opts)...)
		}
	}
	return strings.Join(lines, "\n")
}

// sectionPrefix returns the escaped "Name ## " token for a cell. An unsectioned cell that
// follows a sectioned one is written as "_ ## " so fill-down does not pull it into that section.
func sectionPrefix(opts Options, s *model.SectionRef, prevSectioned *bool) string {
	if !opts.IncludeSections {
		return ""
	}
	if s != nil && s.SectionName != "" {
		*prevSectioned = true
		return tokenEscaper.Replace(s.SectionName) + " ## "
	}
	if *prevSectioned {
		*prevSectioned = false
		return UnsectionedToken + " ## "
	}
	return ""
}

func cellLines(marker, prefix, id string, c model.Cell, opts Options) []string {
	first, rest, multi := strings.Cut(c.Value, "\n")

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(prefix)
	if id != "" {
		b.WriteString(id)
		b.WriteString(" | ")
	}
	if opts.IncludeHeaders && (c.Name != "" || id != "" || strings.Contains(first, "::") || strings.Contains(first, "##")) {
		b.WriteString(tokenEscaper.Replace(c.Name))
		b.WriteString("::")
	}
	b.WriteString(first)

	out := []string{b.String()}
	if multi {
		for _, l := range strings.Split(rest, "\n") {
			out = append(out, continuationIndent+l)
		}
	}
	return out
}

func bulletBody(line string) string {
	m := bulletRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// expandIndent counts each leading tab as two spaces.
func expandIndent(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if !strings.Contains(s[:i], "\t") {
		return s
	}
	return strings.ReplaceAll(s[:i], "\t", "  ") + s[i:]
}

// promoteSection resolves a section token to a shared SectionRef. The id is derived from
// the token, so repeated tokens resolve to the same ref.
func promoteSection(refs map[string]*model.SectionRef, token string, derive func(string) string) *model.SectionRef {
	if token == "" {
		return nil
	}
	id := derive(token)
	if ref, ok := refs[id]; ok {
		return ref
	}
	ref := &model.SectionRef{SectionID: id, SectionName: token}
	refs[id] = ref
	return ref
}

// assignRowIDs gives every title cell a document-unique id. Explicit ids are kept on
// first occurrence; later duplicates are replaced.
func assignRowIDs(grid model.Grid) {
	taken := map[string]bool{}
	for _, row := range grid {
		if len(row) > 0 && row[0].ID != "" {
			taken[row[0].ID] = true
		}
	}
	seen := map[string]bool{}
	isTaken := func(id string) bool { return taken[id] }
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		id := row[0].ID
		if id != "" && !seen[id] {
			seen[id] = true
			continue
		}
		id = ids.NewUniqueRowID(isTaken)
		taken[id] = true
		seen[id] = true
		row[0].ID = id
	}
}
