// Package escape makes untrusted values safe for interpolation into HTML
// text content and quoted attribute values.
package escape

import (
	"fmt"
	"reflect"
	"strings"
)

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// String replaces & < > " ' with their HTML entities.
func String(s string) string {
	return replacer.Replace(s)
}

// HTML escapes any value. Falsy values (nil, "", false, numeric zero) yield
// the empty string; everything else is converted to its string form first.
func HTML(v any) string {
	if isFalsy(v) {
		return ""
	}
	switch s := v.(type) {
	case string:
		return String(s)
	case fmt.Stringer:
		return String(s.String())
	default:
		return String(fmt.Sprint(v))
	}
}

func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || f != f
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
