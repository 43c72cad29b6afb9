// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package faq builds the FAQ page: questions of one audience, searchable,
grouped by theme.
*/
package faq

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	requestutil "github.com/scable-inc/syloma/internal/platform/request"
	"github.com/scable-inc/syloma/internal/platform/respond"
	"github.com/scable-inc/syloma/pkg/query"
	"github.com/scable-inc/syloma/pkg/slug"
)

// Audiences of the FAQ.
const (
	CategorieStagiaire = "Stagiaire"
	CategorieFormateur = "Formateur"
)

// DefaultTheme groups questions without a theme.
const DefaultTheme = "Général"

// # Models

// Filter selects the questions shown.
type Filter struct {
	// Categorie defaults to [CategorieStagiaire].
	Categorie string
	// Search matches question, reponse or any keyword, ignoring case and accents.
	Search string
	// Thematique keeps a single theme. Empty keeps all.
	Thematique string
}

// Group is the questions of one theme, in display order.
type Group struct {
	Thematique string        `json:"thematique"`
	Items      []content.FAQ `json:"items"`
}

// Stats are the counters shown above the questions.
type Stats struct {
	Stagiaire   int `json:"questions_stagiaires"`
	Formateur   int `json:"questions_formateurs"`
	Thematiques int `json:"thematiques"`
}

// Page is the assembled FAQ page.
type Page struct {
	Categorie string   `json:"categorie"`
	Themes    []string `json:"themes"`
	Groups    []Group  `json:"groups"`
	Total     int      `json:"total"`
	Stats     Stats    `json:"stats"`
}

// # Service

// Service assembles the FAQ page.
type Service struct {
	client *cms.Client
	logger *slog.Logger
}

// NewService constructs the FAQ [Service].
func NewService(client *cms.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// readOptions is the content query of the page.
func readOptions() query.Options {
	return query.Options{
		Filters:   map[string]any{"active": true},
		SortBy:    "ordre",
		SortOrder: query.SortAsc,
	}
}

/*
Page returns the FAQ of filter.Categorie.

Description: Themes are taken from the whole category before search so the
theme selector never shrinks while typing. Groups keep the order in which
their first question appears.
*/
func (service *Service) Page(context context.Context, filter Filter) (*Page, error) {
	faqs, err := cms.List[content.FAQ](context, service.client, content.FAQs, readOptions())
	if err != nil {
		return nil, err
	}

	categorie := filter.Categorie
	if categorie == "" {
		categorie = CategorieStagiaire
	}

	var stats Stats
	inCategory := make([]content.FAQ, 0, len(faqs))
	for _, entry := range faqs {
		switch entry.Categorie {
		case CategorieStagiaire:
			stats.Stagiaire++
		case CategorieFormateur:
			stats.Formateur++
		}
		if entry.Categorie == categorie {
			inCategory = append(inCategory, entry)
		}
	}

	themes := make([]string, 0)
	for _, entry := range inCategory {
		if theme := themeOf(entry); !slices.Contains(themes, theme) {
			themes = append(themes, theme)
		}
	}
	stats.Thematiques = len(themes)

	groups := make([]Group, 0, len(themes))
	total := 0
	for _, entry := range inCategory {
		if !matchesSearch(entry, filter.Search) {
			continue
		}
		theme := themeOf(entry)
		if filter.Thematique != "" && theme != filter.Thematique {
			continue
		}

		index := slices.IndexFunc(groups, func(group Group) bool { return group.Thematique == theme })
		if index < 0 {
			groups = append(groups, Group{Thematique: theme})
			index = len(groups) - 1
		}
		groups[index].Items = append(groups[index].Items, entry)
		total++
	}

	service.logger.DebugContext(context, "faq_page_built",
		slog.String("categorie", categorie),
		slog.String("search", filter.Search),
		slog.Int("results", total),
	)

	return &Page{
		Categorie: categorie,
		Themes:    themes,
		Groups:    groups,
		Total:     total,
		Stats:     stats,
	}, nil
}

func themeOf(entry content.FAQ) string {
	if entry.Thematique == "" {
		return DefaultTheme
	}
	return entry.Thematique
}

func matchesSearch(entry content.FAQ, search string) bool {
	if search == "" {
		return true
	}
	if slug.Contains(entry.Question, search) || slug.Contains(entry.Reponse, search) {
		return true
	}
	return slices.ContainsFunc(entry.MotsCles, func(keyword string) bool {
		return slug.Contains(keyword, search)
	})
}

// # Handler Implementation

// Handler exposes the FAQ over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the FAQ [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for /faq.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getPage)
	return router
}

// getPage handles GET /faq?categorie=&q=&thematique=.
func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.Page(request.Context(), Filter{
		Categorie:  requestutil.Query(request, "categorie"),
		Search:     requestutil.Query(request, "q"),
		Thematique: requestutil.Query(request, "thematique"),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}
