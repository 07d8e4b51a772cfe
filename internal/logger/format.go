package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// markupTag matches colour and style tags such as <green>, </level> or
// <light-blue>. They only make sense on a terminal and are removed.
var markupTag = regexp.MustCompile(`</?[a-z][a-z-]*>`)

// placeholder fields with a dedicated meaning; everything else is looked up
// by name in the record.
var placeholderFields = map[string]string{
	"time":     zerolog.TimestampFieldName,
	"level":    zerolog.LevelFieldName,
	"message":  zerolog.MessageFieldName,
	"name":     "role",
	"function": "func",
}

const extraPlaceholder = "extra"

func isJSONFormat(format string) bool {
	f := strings.TrimSpace(format)
	return f == "" || strings.EqualFold(f, "json")
}

type segment struct {
	literal string
	field   string
}

// formatWriter renders every JSON record it receives through a line template
// like "{time} | {level} | {message}" and passes the result to out.
type formatWriter struct {
	mu       sync.Mutex
	out      io.Writer
	segments []segment
	used     map[string]struct{}
}

func newFormatWriter(format string, out io.Writer) *formatWriter {
	w := &formatWriter{
		out:  out,
		used: make(map[string]struct{}),
	}
	w.segments = parseTemplate(markupTag.ReplaceAllString(format, ""))

	for _, s := range w.segments {
		if s.field == "" || s.field == extraPlaceholder {
			continue
		}
		w.used[fieldName(s.field)] = struct{}{}
	}

	return w
}

// parseTemplate splits a template into literals and {field} placeholders.
// "{field:spec}" is treated as "{field}". An unterminated brace is taken
// literally.
func parseTemplate(format string) []segment {
	var segments []segment
	var literal strings.Builder

	for len(format) > 0 {
		start := strings.IndexByte(format, '{')
		if start < 0 {
			literal.WriteString(format)
			break
		}

		end := strings.IndexByte(format[start:], '}')
		if end < 0 {
			literal.WriteString(format)
			break
		}
		end += start

		literal.WriteString(format[:start])
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}

		field := format[start+1 : end]
		if i := strings.IndexByte(field, ':'); i >= 0 {
			field = field[:i]
		}
		segments = append(segments, segment{field: strings.TrimSpace(field)})

		format = format[end+1:]
	}

	if literal.Len() > 0 {
		segments = append(segments, segment{literal: literal.String()})
	}

	return segments
}

func fieldName(placeholder string) string {
	if name, ok := placeholderFields[placeholder]; ok {
		return name
	}
	return placeholder
}

func (w *formatWriter) Write(p []byte) (int, error) {
	record := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		// not a zerolog record, keep it as is
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.out.Write(p)
	}

	line := w.render(record)

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := io.WriteString(w.out, line); err != nil {
		return 0, err
	}

	return len(p), nil
}

func (w *formatWriter) render(record map[string]any) string {
	var b strings.Builder

	for _, s := range w.segments {
		switch {
		case s.field == "":
			b.WriteString(s.literal)
		case s.field == extraPlaceholder:
			b.WriteString(w.extra(record))
		case s.field == "level":
			b.WriteString(strings.ToUpper(stringify(record[zerolog.LevelFieldName])))
		default:
			b.WriteString(stringify(record[fieldName(s.field)]))
		}
	}
	b.WriteByte('\n')

	return b.String()
}

// extra renders the fields no other placeholder consumed as a JSON object.
func (w *formatWriter) extra(record map[string]any) string {
	rest := make(map[string]any)
	for k, v := range record {
		if _, ok := w.used[k]; ok {
			continue
		}
		rest[k] = v
	}

	data, err := json.Marshal(rest)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func (w *formatWriter) Close() error {
	if c, ok := w.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
