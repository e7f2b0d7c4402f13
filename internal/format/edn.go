package format

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const ednIndent = 2

var ednKeywordUnsafe = regexp.MustCompile(`[^A-Za-z0-9*+!_?<>=./-]+`)

// WriteEDN writes v as EDN: maps with keyword keys, vectors, strings, numbers,
// booleans and nil.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	x, err := plain(v)
	if err != nil {
		return err
	}
	var b strings.Builder
	e := ednWriter{b: &b, pretty: pretty}
	e.value(x, 0)
	b.WriteByte('\n')
	_, err = io.WriteString(w, b.String())
	return err
}

type ednWriter struct {
	b      *strings.Builder
	pretty bool
}

func (e ednWriter) value(v any, level int) {
	switch t := v.(type) {
	case nil:
		e.b.WriteString("nil")
	case bool:
		e.b.WriteString(strconv.FormatBool(t))
	case string:
		e.b.WriteString(strconv.Quote(t))
	case float64:
		if t == float64(int64(t)) {
			e.b.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			e.b.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		e.collection('[', ']', len(t), level, func(i int) {
			e.value(t[i], level+1)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.collection('{', '}', len(keys), level, func(i int) {
			e.b.WriteString(ednKeyword(keys[i]))
			e.b.WriteByte(' ')
			e.value(t[keys[i]], level+1)
		})
	default:
		e.b.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

// collection writes n elements between open and close, one per line when pretty.
func (e ednWriter) collection(open, close byte, n, level int, elem func(i int)) {
	e.b.WriteByte(open)
	if n == 0 {
		e.b.WriteByte(close)
		return
	}
	for i := 0; i < n; i++ {
		switch {
		case e.pretty:
			e.b.WriteByte('\n')
			e.b.WriteString(strings.Repeat(" ", (level+1)*ednIndent))
		case i > 0:
			e.b.WriteByte(' ')
		}
		elem(i)
	}
	if e.pretty {
		e.b.WriteByte('\n')
		e.b.WriteString(strings.Repeat(" ", level*ednIndent))
	}
	e.b.WriteByte(close)
}

// ednKeyword turns a JSON key into a keyword; characters EDN does not allow become "-".
func ednKeyword(k string) string {
	k = ednKeywordUnsafe.ReplaceAllString(strings.TrimSpace(k), "-")
	if k == "" {
		k = "_"
	}
	return ":" + k
}
