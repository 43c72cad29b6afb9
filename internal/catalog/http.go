// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/scable-inc/syloma/internal/platform/request"
	"github.com/scable-inc/syloma/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes the catalogue over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the catalogue [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for /formations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listFormations)
	router.Get("/facets", handler.getFacets)
	router.Get("/{slug}", handler.getFormation)

	return router
}

// listFormations handles GET /formations.
//
// Query: q, thematique, formateur, modalite, niveau, financement, sort, page.
func (handler *Handler) listFormations(writer http.ResponseWriter, request *http.Request) {
	page, err := requestutil.QueryInt(request, "page")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Search:      requestutil.Query(request, "q"),
		Thematique:  requestutil.Query(request, "thematique"),
		Formateur:   requestutil.Query(request, "formateur"),
		Modalite:    requestutil.Query(request, "modalite"),
		Niveau:      requestutil.Query(request, "niveau"),
		Financement: requestutil.Query(request, "financement"),
		Sort:        ParseSortKey(requestutil.Query(request, "sort")),
		Page:        page,
	}

	result, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, result.Items, result.Meta)
}

// getFacets handles GET /formations/facets.
func (handler *Handler) getFacets(writer http.ResponseWriter, request *http.Request) {
	facets, err := handler.service.Facets(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, facets)
}

// getFormation handles GET /formations/{slug}.
func (handler *Handler) getFormation(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.Detail(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}
