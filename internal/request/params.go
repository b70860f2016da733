// Package request turns endpoint descriptors into HTTP calls and HTTP
// responses into decoded values or errors. It is the pipeline every endpoint
// method in package lol runs through:
//
//	Encode + BuildURL -> Call -> Normalize
package request

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Params maps query parameter names to optional values. A nil value, or a
// nil pointer, means the parameter is absent and is left out of the query.
type Params map[string]any

// Encode converts p to url.Values, dropping absent entries. p is not
// modified. Slices become comma-separated lists, which is how the API takes
// multi-valued filters.
func Encode(p Params) url.Values {
	values := make(url.Values, len(p))
	for name, raw := range p {
		if s, ok := encodeValue(raw); ok {
			values.Set(name, s)
		}
	}
	return values
}

// encodeValue renders v as a query string value. ok is false when v is absent.
func encodeValue(v any) (s string, ok bool) {
	if isNil(v) {
		return "", false
	}

	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	case bool:
		return strconv.FormatBool(x), true
	case *bool:
		if x == nil {
			return "", false
		}
		return strconv.FormatBool(*x), true
	case int:
		return strconv.Itoa(x), true
	case *int:
		if x == nil {
			return "", false
		}
		return strconv.Itoa(*x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case *int64:
		if x == nil {
			return "", false
		}
		return strconv.FormatInt(*x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case *float64:
		return strconv.FormatFloat(*x, 'f', -1, 64), true
	case []string:
		if x == nil {
			return "", false
		}
		return strings.Join(x, ","), true
	case []int:
		if x == nil {
			return "", false
		}
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ","), true
	case []int64:
		if x == nil {
			return "", false
		}
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ","), true
	case fmt.Stringer:
		return x.String(), true
	default:
		return fmt.Sprint(x), true
	}
}

// isNil reports whether v is nil or a nil pointer, slice, map or interface
// of any type.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
