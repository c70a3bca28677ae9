// Package debug formats internal structures for human inspection.
package debug

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented tree of lines.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" line. Strings are quoted, zero values and nil
// pointers are not written at all so dumps only show what is set.
func (tw TreeWriter) Field(depth int, label string, value any) {
	if isZero(value) {
		return
	}
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeValue(value))
	tw.w.WriteByte('\n')
}

func isZero(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return v.IsZero()
}

func encodeValue(value any) string {
	switch v := value.(type) {
	case string:
		return encodeText(v)
	case fmt.Stringer:
		return v.String()
	}
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		return encodeValue(v.Elem().Interface())
	}
	return fmt.Sprint(value)
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
