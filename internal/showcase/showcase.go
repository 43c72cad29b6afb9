// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package showcase assembles the editorial pages of the site: home, about and
the trainer recruitment page.
*/
package showcase

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/platform/constants"
	"github.com/scable-inc/syloma/internal/platform/respond"
	"github.com/scable-inc/syloma/pkg/query"
)

// TypeFormateur marks testimonials written by trainers.
const TypeFormateur = "Formateur"

// Page is the content of one editorial page.
type Page struct {
	Certifications []content.Certification `json:"certifications,omitempty"`
	Temoignages    []content.Temoignage    `json:"temoignages"`
}

// Service reads the showcase collections.
type Service struct {
	client *cms.Client
	logger *slog.Logger
}

// NewService constructs the showcase [Service].
func NewService(client *cms.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

func byOrder(filters map[string]any) query.Options {
	return query.Options{Filters: filters, SortBy: "ordre", SortOrder: query.SortAsc}
}

// Home returns active certifications and approved testimonials, both by ordre.
func (service *Service) Home(context context.Context) (*Page, error) {
	certifications, err := cms.List[content.Certification](context, service.client, content.Certifications,
		byOrder(map[string]any{"active": true}))
	if err != nil {
		return nil, err
	}

	temoignages, err := cms.List[content.Temoignage](context, service.client, content.Temoignages,
		byOrder(map[string]any{"approuve": true}))
	if err != nil {
		return nil, err
	}

	return &Page{Certifications: certifications, Temoignages: temoignages}, nil
}

// About returns every certification and the first approved testimonials.
func (service *Service) About(context context.Context) (*Page, error) {
	certifications, err := cms.List[content.Certification](context, service.client, content.Certifications, byOrder(nil))
	if err != nil {
		return nil, err
	}

	opts := byOrder(map[string]any{"approuve": true})
	opts.Page = 1
	opts.PageSize = constants.AboutTestimonialsLimit

	temoignages, err := cms.List[content.Temoignage](context, service.client, content.Temoignages, opts)
	if err != nil {
		return nil, err
	}
	// A remote API may ignore paging.
	if len(temoignages) > constants.AboutTestimonialsLimit {
		temoignages = temoignages[:constants.AboutTestimonialsLimit]
	}

	return &Page{Certifications: certifications, Temoignages: temoignages}, nil
}

// Trainers returns the approved testimonials written by trainers.
func (service *Service) Trainers(context context.Context) (*Page, error) {
	temoignages, err := cms.List[content.Temoignage](context, service.client, content.Temoignages,
		byOrder(map[string]any{"type": TypeFormateur, "approuve": true}))
	if err != nil {
		return nil, err
	}
	return &Page{Temoignages: temoignages}, nil
}

// # Handler Implementation

// Handler exposes the editorial pages over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the showcase [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for /pages.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/home", handler.page(handler.service.Home))
	router.Get("/about", handler.page(handler.service.About))
	router.Get("/formateurs", handler.page(handler.service.Trainers))

	return router
}

func (handler *Handler) page(build func(context.Context) (*Page, error)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		page, err := build(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, page)
	}
}
