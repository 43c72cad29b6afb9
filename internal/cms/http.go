// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/scable-inc/syloma/internal/platform/apperr"
	requestutil "github.com/scable-inc/syloma/internal/platform/request"
	"github.com/scable-inc/syloma/internal/platform/respond"
	"github.com/scable-inc/syloma/pkg/fieldpath"
	"github.com/scable-inc/syloma/pkg/pagination"
	"github.com/scable-inc/syloma/pkg/query"
)

// # Handler Implementation

// Handler exposes raw collection reads over HTTP.
type Handler struct {
	client *Client
}

// NewHandler constructs the collections [Handler].
func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// CollectionInfo describes one collection of the static snapshot.
type CollectionInfo struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// Routes returns a [chi.Router] for /collections.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCollections)
	router.Get("/{name}", handler.listRecords)
	router.Get("/{name}/by-slug/{slug}", handler.getBySlug)

	return router
}

// listCollections handles GET /collections.
func (handler *Handler) listCollections(writer http.ResponseWriter, request *http.Request) {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	slices.Sort(names)

	store := handler.client.Store()
	infos := make([]CollectionInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, CollectionInfo{Name: name, Records: store.Len(name)})
	}

	respond.OK(writer, infos)
}

// listRecords handles GET /collections/{name}.
func (handler *Handler) listRecords(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")
	entry, ok := collections[name]
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Collection"))
		return
	}

	opts, err := optionsFromRequest(request, entry)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	records, count, err := entry.list(request.Context(), handler.client, name, opts)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(opts.Page, opts.PageSize, count))
}

// getBySlug handles GET /collections/{name}/by-slug/{slug}.
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")
	entry, ok := collections[name]
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Collection"))
		return
	}

	record, found, err := entry.bySlug(handler.client.Store(), name, requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}
	if !found {
		respond.Error(writer, request, apperr.NotFound("Record"))
		return
	}

	respond.OK(writer, record)
}

// optionsFromRequest maps the query string onto [query.Options]. Every
// parameter that is not reserved becomes a filter coerced to the field's kind.
func optionsFromRequest(request *http.Request, entry collection) (query.Options, error) {
	page, err := requestutil.QueryInt(request, query.ParamPage)
	if err != nil {
		return query.Options{}, err
	}
	pageSize, err := requestutil.QueryInt(request, query.ParamPageSize)
	if err != nil {
		return query.Options{}, err
	}
	if pageSize > pagination.MaxPageSize {
		pageSize = pagination.MaxPageSize
	}

	opts := query.Options{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    requestutil.Query(request, query.ParamSortBy),
		SortOrder: query.ParseSortOrder(requestutil.Query(request, query.ParamSortOrder)),
	}

	var details []apperr.FieldError
	for key, values := range request.URL.Query() {
		switch key {
		case query.ParamPage, query.ParamPageSize, query.ParamSortBy, query.ParamSortOrder:
			continue
		}
		if len(values) == 0 {
			continue
		}

		value, ok := fieldpath.Coerce(entry.recordType, key, values[0])
		if !ok {
			details = append(details, apperr.FieldError{Field: key, Message: "Only scalar fields can be filtered"})
			continue
		}
		if opts.Filters == nil {
			opts.Filters = make(map[string]any)
		}
		opts.Filters[key] = value
	}

	if len(details) > 0 {
		slices.SortFunc(details, func(a, b apperr.FieldError) int {
			return strings.Compare(a.Field, b.Field)
		})
		return query.Options{}, apperr.ValidationError("Invalid filter", details...)
	}

	return opts, nil
}
