// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package fieldpath_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scable-inc/syloma/pkg/fieldpath"
)

type level string

type price struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type base struct {
	ID   string `json:"id"`
	Slug string `json:"slug,omitempty"`
}

type course struct {
	base
	Title    string   `json:"titre"`
	Level    level    `json:"niveau"`
	Price    price    `json:"prix"`
	Order    *int     `json:"ordre,omitempty"`
	Active   bool     `json:"active"`
	Modes    []string `json:"modalites"`
	Internal string   `json:"-"`
}

func sampleCourse() course {
	order := 3
	return course{
		base:   base{ID: "c-1", Slug: "leadership"},
		Title:  "Leadership",
		Level:  "Avancé",
		Price:  price{Amount: 2400, Currency: "EUR"},
		Order:  &order,
		Active: true,
		Modes:  []string{"Présentiel"},
	}
}

/*
TestLookup_Scalars verifies that struct fields are resolved by JSON name and normalized.
*/
func TestLookup_Scalars(t *testing.T) {
	item := sampleCourse()

	tests := []struct {
		name  string
		path  string
		want  any
		found bool
	}{
		{"embedded_id", "id", "c-1", true},
		{"embedded_slug", "slug", "leadership", true},
		{"string", "titre", "Leadership", true},
		{"named_string", "niveau", "Avancé", true},
		{"bool", "active", true, true},
		{"pointer_int", "ordre", float64(3), true},
		{"nested_int", "prix.amount", float64(2400), true},
		{"nested_string", "prix.currency", "EUR", true},
		{"ignored_field", "Internal", nil, false},
		{"unknown_field", "missing", nil, false},
		{"unknown_nested", "prix.unknown", nil, false},
		{"through_scalar", "titre.length", nil, false},
		{"empty_path", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := fieldpath.Lookup(item, tt.path)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestLookup_NilPointer reports an existing but unset optional field as present and nil.
*/
func TestLookup_NilPointer(t *testing.T) {
	item := sampleCourse()
	item.Order = nil

	got, found := fieldpath.Lookup(item, "ordre")
	assert.True(t, found)
	assert.Nil(t, got)

	got, found = fieldpath.Lookup(&item, "titre")
	assert.True(t, found)
	assert.Equal(t, "Leadership", got)
}

/*
TestLookup_OmittedEmpty reads an empty omitempty field as absent, like its JSON form.
*/
func TestLookup_OmittedEmpty(t *testing.T) {
	item := sampleCourse()
	item.Slug = ""
	item.Title = ""

	got, found := fieldpath.Lookup(item, "slug")
	assert.True(t, found)
	assert.Nil(t, got)

	_, found = fieldpath.Lookup(item, "slug.suffix")
	assert.False(t, found)

	got, found = fieldpath.Lookup(item, "titre")
	assert.True(t, found)
	assert.Equal(t, "", got)

	got, found = fieldpath.Lookup(sampleCourse(), "slug")
	assert.True(t, found)
	assert.Equal(t, "leadership", got)
}

/*
TestLookup_Maps walks loosely-typed decoded JSON as well.
*/
func TestLookup_Maps(t *testing.T) {
	doc := map[string]any{
		"id":   "x",
		"prix": map[string]any{"amount": 12.5},
		"tags": []any{"a", "b"},
		"note": nil,
	}

	got, found := fieldpath.Lookup(doc, "prix.amount")
	assert.True(t, found)
	assert.Equal(t, 12.5, got)

	got, found = fieldpath.Lookup(doc, "note")
	assert.True(t, found)
	assert.Nil(t, got)

	got, found = fieldpath.Lookup(doc, "tags")
	assert.True(t, found)
	assert.False(t, fieldpath.IsScalar(got))
}

/*
TestIsScalar classifies normalized values.
*/
func TestIsScalar(t *testing.T) {
	assert.True(t, fieldpath.IsScalar(nil))
	assert.True(t, fieldpath.IsScalar("a"))
	assert.True(t, fieldpath.IsScalar(3))
	assert.True(t, fieldpath.IsScalar(int64(3)))
	assert.True(t, fieldpath.IsScalar(false))
	assert.False(t, fieldpath.IsScalar([]string{"a"}))
	assert.False(t, fieldpath.IsScalar(map[string]any{}))
	assert.False(t, fieldpath.IsScalar(price{}))
}

/*
TestKindOf and TestCoerce exercise type introspection used to parse query parameters.
*/
func TestKindOf(t *testing.T) {
	typ := reflect.TypeOf(course{})

	tests := []struct {
		path string
		want fieldpath.Kind
	}{
		{"id", fieldpath.KindString},
		{"niveau", fieldpath.KindString},
		{"active", fieldpath.KindBool},
		{"ordre", fieldpath.KindNumber},
		{"prix.amount", fieldpath.KindNumber},
		{"prix", fieldpath.KindObject},
		{"modalites", fieldpath.KindList},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kind, found := fieldpath.KindOf(typ, tt.path)
			require.True(t, found)
			assert.Equal(t, tt.want, kind)
		})
	}

	_, found := fieldpath.KindOf(typ, "nope")
	assert.False(t, found)
}

func TestCoerce(t *testing.T) {
	typ := reflect.TypeOf(course{})

	value, ok := fieldpath.Coerce(typ, "active", "true")
	require.True(t, ok)
	assert.Equal(t, true, value)

	value, ok = fieldpath.Coerce(typ, "ordre", "2")
	require.True(t, ok)
	assert.Equal(t, float64(2), value)

	value, ok = fieldpath.Coerce(typ, "niveau", "Débutant")
	require.True(t, ok)
	assert.Equal(t, "Débutant", value)

	value, ok = fieldpath.Coerce(typ, "unknown", "x")
	require.True(t, ok)
	assert.Equal(t, "x", value)

	_, ok = fieldpath.Coerce(typ, "modalites", "Présentiel")
	assert.False(t, ok)
}
