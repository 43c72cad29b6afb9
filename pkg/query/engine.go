// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/scable-inc/syloma/pkg/fieldpath"
)

// DefaultLanguage drives string collation. Catalogue content is written in French.
var DefaultLanguage = language.French

// # Pipeline

// Apply filters, sorts and paginates items according to opts.
//
// The input slice is never modified. The result is always non-nil.
func Apply[T any](items []T, opts Options) []T {
	result := Filter(items, opts.Filters)

	if opts.SortBy != "" {
		Sort(result, opts.SortBy, opts.SortOrder)
	}

	if opts.Paginated() {
		result = Paginate(result, opts.Page, opts.PageSize)
	}

	return result
}

// # Stages

// Filter returns a new slice holding the items that match every filter.
func Filter[T any](items []T, filters map[string]any) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, filters) {
			result = append(result, item)
		}
	}
	return result
}

// Matches reports whether item satisfies every filter.
//
// A nil expected value places no constraint on the field. List and object
// values on either side never match.
func Matches(item any, filters map[string]any) bool {
	for key, expected := range filters {
		want := fieldpath.Normalize(expected)
		if want == nil {
			continue
		}
		if !fieldpath.IsScalar(want) {
			return false
		}

		got, found := fieldpath.Lookup(item, key)
		if !found || got == nil || !fieldpath.IsScalar(got) {
			return false
		}

		if got != want {
			return false
		}
	}
	return true
}

// Sort orders items in place by field. The sort is stable and nil values
// always come last, whatever the direction.
func Sort[T any](items []T, field string, order SortOrder) {
	collator := collate.New(DefaultLanguage)

	slices.SortStableFunc(items, func(a, b T) int {
		left, _ := fieldpath.Lookup(a, field)
		right, _ := fieldpath.Lookup(b, field)

		switch {
		case left == nil && right == nil:
			return 0
		case left == nil:
			return 1
		case right == nil:
			return -1
		}

		comparison := compareValues(collator, left, right)
		if order == SortDesc {
			return -comparison
		}
		return comparison
	})
}

// Paginate returns the 1-based page of the given size. Pages past the end are
// empty, never an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return items
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := min(start+pageSize, len(items))
	return items[start:end]
}

// compareValues compares two non-nil normalized values.
func compareValues(collator *collate.Collator, left, right any) int {
	switch l := left.(type) {
	case string:
		if r, ok := right.(string); ok {
			return collator.CompareString(l, r)
		}
	case float64:
		if r, ok := right.(float64); ok {
			return cmp.Compare(l, r)
		}
	}

	return collator.CompareString(fmt.Sprint(left), fmt.Sprint(right))
}
