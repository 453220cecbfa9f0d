package format

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
)

// WriteEDN writes an EDN rendering of v. Structs go through JSON first so field names
// follow the json tags; map keys become kebab-case keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := ednEncoder{pretty: pretty, indent: 2}
	enc.value(&buf, x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednEncoder struct {
	pretty bool
	indent int
}

func (e ednEncoder) value(buf *bytes.Buffer, v any, level int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.seq(buf, '[', ']', len(t), level, func(i int) {
			e.value(buf, t[i], level+1)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.seq(buf, '{', '}', len(keys), level, func(i int) {
			buf.WriteByte(':')
			buf.WriteString(ednKeyword(keys[i]))
			buf.WriteByte(' ')
			e.value(buf, t[keys[i]], level+1)
		})
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

// seq writes n elements between start/end, one per line when pretty.
func (e ednEncoder) seq(buf *bytes.Buffer, start, end byte, n, level int, elem func(i int)) {
	buf.WriteByte(start)
	if n == 0 {
		buf.WriteByte(end)
		return
	}
	for i := 0; i < n; i++ {
		switch {
		case e.pretty:
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", (level+1)*e.indent))
		case i > 0:
			buf.WriteByte(' ')
		}
		elem(i)
	}
	if e.pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*e.indent))
	}
	buf.WriteByte(end)
}

// ednKeyword turns a json field name into a kebab-case keyword ("fooBar" -> "foo-bar").
func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
