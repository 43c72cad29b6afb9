// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cms is the content access layer of the site.

Reads go through [List]: in live mode the remote content API is queried and,
on any failure, the same query is answered from the static snapshot. Writes go
through [Create]: they always hit the remote API and report failures
explicitly as a [*SubmissionError].

Architecture:

  - Remote path: cmsapi client, results cached per (collection, options).
  - Static path: content.Store + query.Apply, identical semantics.
  - Invalidation: a successful write drops every cached read of its collection.
*/
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/platform/apperr"
	"github.com/scable-inc/syloma/internal/platform/cache"
	"github.com/scable-inc/syloma/internal/platform/cmsapi"
	"github.com/scable-inc/syloma/internal/platform/ctxutil"
	"github.com/scable-inc/syloma/pkg/query"
)

// cacheNamespace prefixes every read cache key.
const cacheNamespace = "cms"

// Remote is the subset of the content API client used by this package.
type Remote interface {
	Configured() bool
	List(context context.Context, collection string, params url.Values) ([]json.RawMessage, error)
	Create(context context.Context, collection string, payload any) (json.RawMessage, error)
}

// Config selects the read path.
type Config struct {
	// Live enables the remote read path. It still requires a configured remote.
	Live bool
	// CacheTTL bounds how long a remote read is reused.
	CacheTTL time.Duration
}

// # Client

// Client bundles the static snapshot, the remote API and the read cache.
type Client struct {
	store  *content.Store
	remote Remote
	cache  cache.Cache
	config Config
	logger *slog.Logger
}

// NewClient wires the access layer. remote and readCache may be nil.
func NewClient(store *content.Store, remote Remote, readCache cache.Cache, config Config, logger *slog.Logger) *Client {
	if config.CacheTTL <= 0 {
		config.CacheTTL = time.Minute
	}
	return &Client{
		store:  store,
		remote: remote,
		cache:  readCache,
		config: config,
		logger: logger,
	}
}

// Store returns the static snapshot.
func (client *Client) Store() *content.Store {
	return client.store
}

// Live reports whether reads try the remote API first.
func (client *Client) Live() bool {
	return client.config.Live && client.canSubmit()
}

func (client *Client) log(context context.Context) *slog.Logger {
	return ctxutil.LoggerOr(context, client.logger)
}

func (client *Client) canSubmit() bool {
	return client.remote != nil && client.remote.Configured()
}

// # Reads

/*
List returns the records of a collection matching opts.

The only error is a VALIDATION_ERROR for invalid options. Remote failures are
logged and answered from the static snapshot with the same options.
*/
func List[T content.Record](context context.Context, client *Client, collection string, opts query.Options) ([]T, error) {
	if err := opts.Validate(); err != nil {
		return nil, apperr.ValidationError(err.Error())
	}

	if !client.Live() {
		return listStatic[T](client, collection, opts)
	}

	records, err := fetchRemote[T](context, client, collection, opts)
	if err != nil {
		client.log(context).WarnContext(context, "cms_fetch_failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
		return listStatic[T](client, collection, opts)
	}

	return records, nil
}

// listStatic answers a read from the snapshot.
func listStatic[T content.Record](client *Client, collection string, opts query.Options) ([]T, error) {
	if !client.store.Has(collection) {
		client.logger.Debug("cms_unknown_collection", slog.String("collection", collection))
		return []T{}, nil
	}

	items, err := content.Collection[T](client.store, collection)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return query.Apply(items, opts), nil
}

// fetchRemote reads through the cache. Only successful reads are cached.
func fetchRemote[T content.Record](context context.Context, client *Client, collection string, opts query.Options) ([]T, error) {
	key := cache.Key(cacheNamespace, collection, opts.Key())

	if client.cache != nil {
		data, found, err := client.cache.Get(context, key)
		if err != nil {
			client.log(context).WarnContext(context, "cms_cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
		if found {
			var records []T
			if err := json.Unmarshal(data, &records); err == nil {
				return records, nil
			}
		}
	}

	raw, err := client.remote.List(context, collection, opts.Values())
	if err != nil {
		return nil, readError(collection, err)
	}

	records := make([]T, 0, len(raw))
	for _, entry := range raw {
		var record T
		if err := json.Unmarshal(entry, &record); err != nil {
			return nil, readError(collection, err)
		}
		if record.RecordID() == "" {
			return nil, readError(collection, errors.New("record without id"))
		}
		records = append(records, record)
	}

	if client.cache != nil {
		if data, err := json.Marshal(raw); err == nil {
			if err := client.cache.Set(context, key, data, client.config.CacheTTL); err != nil {
				client.log(context).WarnContext(context, "cms_cache_set_failed", slog.String("key", key), slog.Any("error", err))
			}
		}
	}

	return records, nil
}

// # Writes

/*
Create submits payload to a collection and returns the created record.

Writes need credentials but not live mode. On success every cached read of the
collection is invalidated. On failure a [*SubmissionError] is returned; there
are no retries.
*/
func Create[T content.Record](context context.Context, client *Client, collection string, payload any) (*T, error) {
	if !client.canSubmit() {
		return nil, submissionError(collection, cmsapi.ErrNotConfigured)
	}

	raw, err := client.remote.Create(context, collection, payload)
	if err != nil {
		return nil, submissionError(collection, err)
	}

	var created T
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, submissionError(collection, err)
	}
	if created.RecordID() == "" {
		return nil, &SubmissionError{
			Collection: collection,
			Message:    "submission response did not include an id",
		}
	}

	client.Invalidate(context, collection)
	return &created, nil
}

// Invalidate drops every cached read of a collection.
func (client *Client) Invalidate(context context.Context, collection string) {
	if client.cache == nil {
		return
	}
	if err := client.cache.InvalidatePrefix(context, cache.Prefix(cacheNamespace, collection)); err != nil {
		client.log(context).WarnContext(context, "cms_cache_invalidate_failed",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
}
