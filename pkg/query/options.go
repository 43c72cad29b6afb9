// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/scable-inc/syloma/pkg/fieldpath"
)

// # Sort Direction

// SortOrder is the direction applied to [Options.SortBy].
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps a user-supplied string to a [SortOrder]. Anything other
// than "desc" (case-insensitive) is ascending.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// # Options

// Wire names of the reserved query parameters.
const (
	ParamPage      = "page"
	ParamPageSize  = "pageSize"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
)

var (
	// ErrInvalidPage is returned when a page number is negative.
	ErrInvalidPage = errors.New("query: page must be a positive integer")
	// ErrInvalidPageSize is returned when a page size is negative.
	ErrInvalidPageSize = errors.New("query: page size must be a positive integer")
	// ErrUnsupportedFilter is returned when a filter value is a list or an object.
	ErrUnsupportedFilter = errors.New("query: filters only support scalar values")
)

// Options describes a collection read. The zero value returns the collection unchanged.
type Options struct {
	// Page is 1-based. Zero means "not set".
	Page int
	// PageSize is the number of records per page. Zero means "not set".
	PageSize int
	// Filters maps a JSON field name (dotted paths allowed) to the expected value.
	Filters map[string]any
	// SortBy is the JSON field name to sort on.
	SortBy string
	// SortOrder defaults to ascending.
	SortOrder SortOrder
}

// Paginated reports whether both page and page size are set.
func (o Options) Paginated() bool {
	return o.Page > 0 && o.PageSize > 0
}

// Validate checks the invariants of an [Options] value.
func (o Options) Validate() error {
	if o.Page < 0 {
		return ErrInvalidPage
	}
	if o.PageSize < 0 {
		return ErrInvalidPageSize
	}
	for key, value := range o.Filters {
		if !fieldpath.IsScalar(value) {
			return fmt.Errorf("%w: %s", ErrUnsupportedFilter, key)
		}
	}
	return nil
}

// Values renders the options as query parameters for the remote content API.
//
// Filters are appended under their own names after the reserved parameters;
// nil filter values are skipped.
func (o Options) Values() url.Values {
	values := url.Values{}

	if o.Page > 0 {
		values.Set(ParamPage, strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		values.Set(ParamPageSize, strconv.Itoa(o.PageSize))
	}
	if o.SortBy != "" {
		values.Set(ParamSortBy, o.SortBy)
		values.Set(ParamSortOrder, string(o.order()))
	}

	for _, key := range o.filterKeys() {
		value := o.Filters[key]
		if value == nil {
			continue
		}
		values.Add(key, formatValue(value))
	}

	return values
}

// Key returns a canonical encoding of the options, independent of filter map
// ordering. Two options with the same Key select the same records.
func (o Options) Key() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "p=%d;s=%d;by=%s;ord=%s", o.Page, o.PageSize, o.SortBy, o.order())
	for _, key := range o.filterKeys() {
		value := fieldpath.Normalize(o.Filters[key])
		fmt.Fprintf(&builder, ";f:%s=%T:%v", key, value, value)
	}

	return builder.String()
}

func (o Options) order() SortOrder {
	if o.SortOrder == SortDesc {
		return SortDesc
	}
	return SortAsc
}

func (o Options) filterKeys() []string {
	keys := make([]string, 0, len(o.Filters))
	for key := range o.Filters {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// formatValue renders a scalar the way it is written in a query string.
func formatValue(value any) string {
	switch normalized := fieldpath.Normalize(value).(type) {
	case string:
		return normalized
	case bool:
		return strconv.FormatBool(normalized)
	case float64:
		return strconv.FormatFloat(normalized, 'f', -1, 64)
	default:
		return fmt.Sprint(normalized)
	}
}
