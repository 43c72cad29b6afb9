// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache stores serialized read results for the content service.

Two backends share the [Cache] contract:

  - Memory: a process-local store (patrickmn/go-cache), the default.
  - Redis: a shared store used when several API replicas must agree on invalidation.

Keys are plain strings. Invalidation works on prefixes so that a whole
collection can be dropped after a write.
*/
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/zeebo/xxh3"
)

// Cache is a TTL-bound byte store.
type Cache interface {
	// Get returns the cached value and whether it was found.
	Get(context context.Context, key string) ([]byte, bool, error)
	// Set stores a value for ttl.
	Set(context context.Context, key string, value []byte, ttl time.Duration) error
	// InvalidatePrefix removes every entry whose key starts with prefix.
	InvalidatePrefix(context context.Context, prefix string) error
}

// Key builds "<namespace>:<segment>:<hash>" where hash is the xxh3 digest of fingerprint.
func Key(namespace, segment, fingerprint string) string {
	return fmt.Sprintf("%s%016x", Prefix(namespace, segment), xxh3.HashString(fingerprint))
}

// Prefix builds the invalidation prefix "<namespace>:<segment>:".
func Prefix(namespace, segment string) string {
	return namespace + ":" + segment + ":"
}

// # Memory Backend

// Memory is an in-process [Cache].
type Memory struct {
	store *gocache.Cache
}

// NewMemory creates a memory cache. Expired entries are purged every cleanup interval.
func NewMemory(defaultTTL, cleanup time.Duration) *Memory {
	return &Memory{store: gocache.New(defaultTTL, cleanup)}
}

// Get implements [Cache].
func (memory *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, found := memory.store.Get(key)
	if !found {
		return nil, false, nil
	}
	data, ok := value.([]byte)
	return data, ok, nil
}

// Set implements [Cache].
func (memory *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	memory.store.Set(key, value, ttl)
	return nil
}

// InvalidatePrefix implements [Cache].
func (memory *Memory) InvalidatePrefix(_ context.Context, prefix string) error {
	for key := range memory.store.Items() {
		if strings.HasPrefix(key, prefix) {
			memory.store.Delete(key)
		}
	}
	return nil
}

// Len returns the number of live entries.
func (memory *Memory) Len() int {
	return memory.store.ItemCount()
}
