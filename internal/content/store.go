// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

//go:embed data/cms-data.json
var snapshot []byte

var (
	// ErrMissingID is returned when a snapshot record has no id.
	ErrMissingID = errors.New("content: record without id")
	// ErrDuplicateID is returned when two records of a collection share an id.
	ErrDuplicateID = errors.New("content: duplicate record id")
)

// # Store

// Store is the immutable static snapshot. It is safe for concurrent readers.
type Store struct {
	collections map[string][]json.RawMessage
	names       []string
}

/*
Parse builds a [Store] from a JSON document mapping collection names to record arrays.

Returns:
  - *Store: The validated snapshot
  - error: ErrMissingID or ErrDuplicateID when a collection breaks identity rules
*/
func Parse(data []byte) (*Store, error) {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("content: decode snapshot: %w", err)
	}

	store := &Store{
		collections: make(map[string][]json.RawMessage, len(raw)),
		names:       make([]string, 0, len(raw)),
	}

	for name, records := range raw {
		seen := make(map[string]struct{}, len(records))
		for index, record := range records {
			var base Base
			if err := json.Unmarshal(record, &base); err != nil {
				return nil, fmt.Errorf("content: decode %s[%d]: %w", name, index, err)
			}
			if base.ID == "" {
				return nil, fmt.Errorf("%w: %s[%d]", ErrMissingID, name, index)
			}
			if _, exists := seen[base.ID]; exists {
				return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateID, name, base.ID)
			}
			seen[base.ID] = struct{}{}
		}

		if records == nil {
			records = []json.RawMessage{}
		}
		store.collections[name] = records
		store.names = append(store.names, name)
	}

	slices.Sort(store.names)
	return store, nil
}

// Embedded returns the snapshot compiled into the binary.
func Embedded() (*Store, error) {
	return Parse(snapshot)
}

// Names returns the collection names in lexical order.
func (store *Store) Names() []string {
	return slices.Clone(store.names)
}

// Has reports whether the snapshot contains the named collection.
func (store *Store) Has(name string) bool {
	_, ok := store.collections[name]
	return ok
}

// Len returns the number of records in a collection, zero when unknown.
func (store *Store) Len(name string) int {
	return len(store.collections[name])
}

// Raw returns a copy of the JSON records of a collection.
func (store *Store) Raw(name string) []json.RawMessage {
	records := store.collections[name]
	out := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		out = append(out, bytes.Clone(record))
	}
	return out
}

// # Typed Access

// Collection decodes every record of the named collection into T.
//
// An unknown collection yields an empty slice and no error.
func Collection[T any](store *Store, name string) ([]T, error) {
	records := store.collections[name]
	out := make([]T, 0, len(records))

	for index, record := range records {
		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			return nil, fmt.Errorf("content: decode %s[%d]: %w", name, index, err)
		}
		out = append(out, item)
	}

	return out, nil
}

// BySlug returns the first record of the collection whose slug matches, or nil.
func BySlug[T any](store *Store, name, slug string) (*T, error) {
	for index, record := range store.collections[name] {
		var base Base
		if err := json.Unmarshal(record, &base); err != nil {
			return nil, fmt.Errorf("content: decode %s[%d]: %w", name, index, err)
		}
		if base.Slug != slug {
			continue
		}

		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			return nil, fmt.Errorf("content: decode %s[%d]: %w", name, index, err)
		}
		return &item, nil
	}

	return nil, nil
}

// ByID returns the record of the collection with the given id, or nil.
func ByID[T any](store *Store, name, id string) (*T, error) {
	for index, record := range store.collections[name] {
		var base Base
		if err := json.Unmarshal(record, &base); err != nil {
			return nil, fmt.Errorf("content: decode %s[%d]: %w", name, index, err)
		}
		if base.ID != id {
			continue
		}

		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			return nil, fmt.Errorf("content: decode %s[%d]: %w", name, index, err)
		}
		return &item, nil
	}

	return nil, nil
}
