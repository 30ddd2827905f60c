// Package hashkey names list-query cache entries. The same logical query must
// hash to the same key regardless of field declaration order or map
// iteration order, so cached pages are found again on the next request.
package hashkey

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Generator produces deterministic, order-independent hashes of
// query-parameter objects.
type Generator struct{}

// NewGenerator returns a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Execute hashes the exported state of params into a short hex string.
func (g *Generator) Execute(params any) string {
	pairs := collectPairs(params)
	sort.Strings(pairs)
	return fmt.Sprintf("%016x", xxhash.Sum64String(strings.Join(pairs, "&")))
}

// collectPairs flattens params into "name=value" strings. Structs contribute
// their exported fields, maps their entries; everything else contributes a
// single formatted value.
func collectPairs(v any) []string {
	if v == nil {
		return []string{"nil"}
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return []string{"nil"}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		rt := rv.Type()
		pairs := make([]string, 0, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			pairs = append(pairs, field.Name+"="+formatValue(rv.Field(i)))
		}
		return pairs
	case reflect.Map:
		pairs := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			pairs = append(pairs, fmt.Sprintf("%v", iter.Key().Interface())+"="+formatValue(iter.Value()))
		}
		return pairs
	default:
		return []string{formatValue(rv)}
	}
}

func formatValue(rv reflect.Value) string {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "nil"
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = formatValue(rv.Index(i))
		}
		return "[" + strings.Join(parts, ",") + "]"
	case reflect.Map:
		parts := collectPairs(rv.Interface())
		sort.Strings(parts)
		return "{" + strings.Join(parts, ",") + "}"
	case reflect.Struct:
		parts := collectPairs(rv.Interface())
		sort.Strings(parts)
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("%v", rv.Interface())
	}
}
