package filter

import (
	"fmt"
	"reflect"
	"strings"
)

// MatchesQuery reports whether the case-insensitive query substring occurs
// in the string representation of any field of record. Empty queries match
// everything. Struct pointers are dereferenced; non-structs are compared
// against their own string form.
func MatchesQuery(record any, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return strings.Contains(strings.ToLower(fmt.Sprint(record)), query)
	}

	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanInterface() {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(f.Interface())), query) {
			return true
		}
	}
	return false
}

// Search returns the records whose string representation contains the
// query substring, preserving order.
func Search[T any](records []T, query string) []T {
	if strings.TrimSpace(query) == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if MatchesQuery(r, query) {
			out = append(out, r)
		}
	}
	return out
}
