// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package fieldpath resolves JSON field names against typed Go values.

Content records are typed structs, but callers (query strings, remote APIs)
address their fields by the JSON names used on the wire. This package bridges
the two: a dotted path such as "prix.amount" is walked through struct fields
by their `json` tag, the same way encoding/json would name them.

Resolved values are normalized into a small scalar universe:

  - string (including named string types)
  - float64 (every integer and float kind)
  - bool
  - nil (nil pointer, nil interface, JSON null)

Slices, maps and structs are returned unchanged and reported as non-scalar by
[IsScalar].
*/
package fieldpath

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// # Kinds

// Kind classifies the value found at a path.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindObject
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// # Lookup

// Lookup returns the normalized value found at path inside v.
//
// The boolean reports whether the path names an existing field. A field that
// exists but holds a nil pointer is returned as (nil, true), and so is an
// `omitempty` field holding its empty value, since encoding/json would leave
// it out of the document.
func Lookup(v any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	segments := strings.Split(path, ".")
	current := reflect.ValueOf(v)
	for position, segment := range segments {
		current = indirect(current)
		if !current.IsValid() {
			// Walking through a nil intermediate: the leaf is absent.
			return nil, false
		}

		switch current.Kind() {
		case reflect.Struct:
			info, ok := fieldIndex(current.Type(), segment)
			if !ok {
				return nil, false
			}
			current = current.FieldByIndex(info.index)
			if info.omitEmpty && isEmptyValue(current) {
				// Omitted from the JSON form: a null leaf, or an absent path below it.
				return nil, position == len(segments)-1
			}
		case reflect.Map:
			if current.Type().Key().Kind() != reflect.String {
				return nil, false
			}
			entry := current.MapIndex(reflect.ValueOf(segment).Convert(current.Type().Key()))
			if !entry.IsValid() {
				return nil, false
			}
			current = entry
		default:
			return nil, false
		}
	}

	return normalizeValue(current), true
}

// Normalize converts a Go value into the scalar universe used by [Lookup].
func Normalize(v any) any {
	return normalizeValue(reflect.ValueOf(v))
}

// IsScalar reports whether v (after normalization) is nil, a string, a number or a bool.
func IsScalar(v any) bool {
	switch Normalize(v).(type) {
	case nil, string, float64, bool:
		return true
	}
	return false
}

// # Type Introspection

// KindOf reports the [Kind] of the field addressed by path on type t.
//
// It works on the static type, so optional (pointer) fields still report the
// kind of their element.
func KindOf(t reflect.Type, path string) (Kind, bool) {
	if t == nil || path == "" {
		return KindUnknown, false
	}

	current := t
	for _, segment := range strings.Split(path, ".") {
		for current.Kind() == reflect.Pointer {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return KindUnknown, false
		}
		info, ok := fieldIndex(current, segment)
		if !ok {
			return KindUnknown, false
		}
		current = current.FieldByIndex(info.index).Type
	}

	for current.Kind() == reflect.Pointer {
		current = current.Elem()
	}

	switch current.Kind() {
	case reflect.String:
		return KindString, true
	case reflect.Bool:
		return KindBool, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber, true
	case reflect.Slice, reflect.Array:
		return KindList, true
	default:
		return KindObject, true
	}
}

// Coerce parses a raw string (typically a query parameter) into the scalar
// type of the field addressed by path on type t.
//
// Unknown paths keep the raw string. List and object fields cannot be
// coerced and report ok=false.
func Coerce(t reflect.Type, path, raw string) (any, bool) {
	kind, found := KindOf(t, path)
	if !found {
		return raw, true
	}

	switch kind {
	case KindBool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return raw, true
		}
		return parsed, true
	case KindNumber:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return raw, true
		}
		return parsed, true
	case KindString:
		return raw, true
	default:
		return nil, false
	}
}

// # Internal Helpers

// fieldCache maps a struct type to its JSON name → field table.
var fieldCache sync.Map

// fieldInfo locates one JSON field of a struct type.
type fieldInfo struct {
	index     []int
	omitEmpty bool
}

// fieldIndex resolves a JSON field name on a struct type, honouring embedded
// structs the way encoding/json flattens them.
func fieldIndex(t reflect.Type, name string) (fieldInfo, bool) {
	cached, ok := fieldCache.Load(t)
	if !ok {
		cached, _ = fieldCache.LoadOrStore(t, buildIndex(t))
	}
	info, found := cached.(map[string]fieldInfo)[name]
	return info, found
}

func buildIndex(t reflect.Type) map[string]fieldInfo {
	table := make(map[string]fieldInfo)
	collectFields(t, nil, table)
	return table
}

func collectFields(t reflect.Type, prefix []int, table map[string]fieldInfo) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int{}, prefix...), i)

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, options, _ := strings.Cut(tag, ",")

		// Untagged embedded structs are flattened into the parent.
		if field.Anonymous && name == "" {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, index, table)
				continue
			}
		}

		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}

		// Shallower fields win over promoted ones.
		if existing, ok := table[name]; ok && len(existing.index) <= len(index) {
			continue
		}
		table[name] = fieldInfo{
			index:     index,
			omitEmpty: slices.Contains(strings.Split(options, ","), "omitempty"),
		}
	}
}

// isEmptyValue mirrors the emptiness rule of encoding/json's omitempty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func normalizeValue(v reflect.Value) any {
	v = indirect(v)
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Slice, reflect.Map:
		if v.IsNil() {
			return nil
		}
		return v.Interface()
	default:
		if v.CanInterface() {
			return v.Interface()
		}
		return nil
	}
}
