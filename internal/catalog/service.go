// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/text/collate"

	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/platform/apperr"
	"github.com/scable-inc/syloma/internal/platform/constants"
	"github.com/scable-inc/syloma/pkg/pagination"
	"github.com/scable-inc/syloma/pkg/query"
	"github.com/scable-inc/syloma/pkg/slice"
	"github.com/scable-inc/syloma/pkg/slug"
)

// activeOnly is the remote-side filter of every catalogue read.
var activeOnly = map[string]any{"active": true}

// Service assembles catalogue views from the content layer.
type Service struct {
	client *cms.Client
	logger *slog.Logger
}

// NewService constructs the catalogue [Service].
func NewService(client *cms.Client, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// # Listing

/*
List returns one page of active courses matching filter.

Description: Courses are read through the content layer (live or static),
narrowed by filter, sorted by filter.Sort and cut into pages of
[constants.CatalogPageSize]. A page past the end is empty.

Parameters:
  - context: context.Context
  - filter: Filter

Returns:
  - *Page: The page with its pagination metadata
  - error: Validation errors from the content layer
*/
func (service *Service) List(context context.Context, filter Filter) (*Page, error) {
	formations, err := cms.List[content.Formation](context, service.client, content.Formations, query.Options{Filters: activeOnly})
	if err != nil {
		return nil, err
	}

	matched := make([]content.Formation, 0, len(formations))
	for _, formation := range formations {
		if filter.matches(formation) {
			matched = append(matched, formation)
		}
	}

	query.Sort(matched, filter.Sort.field(), query.SortAsc)

	page := max(filter.Page, 1)
	visible := query.Paginate(matched, page, constants.CatalogPageSize)

	refs, err := service.references(context)
	if err != nil {
		return nil, err
	}

	items := make([]Summary, 0, len(visible))
	for _, formation := range visible {
		items = append(items, refs.summarize(formation))
	}

	return &Page{
		Items: items,
		Meta:  pagination.NewMeta(page, constants.CatalogPageSize, len(matched)),
	}, nil
}

// matches applies every non-empty criterion of the filter.
func (filter Filter) matches(formation content.Formation) bool {
	if !formation.Active {
		return false
	}
	if filter.Search != "" && !slug.Contains(formation.Titre, filter.Search) && !slug.Contains(formation.Accroche, filter.Search) {
		return false
	}
	if filter.Thematique != "" && formation.ThematiqueID != filter.Thematique {
		return false
	}
	if filter.Formateur != "" && formation.FormateurID != filter.Formateur {
		return false
	}
	if filter.Modalite != "" && !slices.ContainsFunc(formation.Modalites, func(modalite string) bool {
		return strings.EqualFold(modalite, filter.Modalite)
	}) {
		return false
	}
	if filter.Niveau != "" && formation.Niveau != filter.Niveau {
		return false
	}
	if filter.Financement != "" && !slices.Contains(formation.FinancementsEligibles, filter.Financement) {
		return false
	}
	return true
}

// references indexes the collections a course card points to.
type references struct {
	formateurs   map[string]string
	thematiques  map[string]string
	financements map[string]string
}

func (service *Service) references(context context.Context) (*references, error) {
	formateurs, err := cms.List[content.Formateur](context, service.client, content.Formateurs, query.Options{})
	if err != nil {
		return nil, err
	}
	thematiques, err := cms.List[content.Thematique](context, service.client, content.Thematiques, query.Options{})
	if err != nil {
		return nil, err
	}
	financements, err := cms.List[content.Financement](context, service.client, content.Financements, query.Options{})
	if err != nil {
		return nil, err
	}

	refs := &references{
		formateurs:   make(map[string]string, len(formateurs)),
		thematiques:  make(map[string]string, len(thematiques)),
		financements: make(map[string]string, len(financements)),
	}
	for _, formateur := range formateurs {
		refs.formateurs[formateur.ID] = formateur.Nom
	}
	for _, thematique := range thematiques {
		refs.thematiques[thematique.ID] = thematique.Nom
	}
	for _, financement := range financements {
		refs.financements[financement.ID] = financement.Nom
	}
	return refs, nil
}

// summarize resolves labels; unknown financement ids are dropped.
func (refs *references) summarize(formation content.Formation) Summary {
	labels := make([]string, 0, len(formation.FinancementsEligibles))
	for _, id := range formation.FinancementsEligibles {
		if label, ok := refs.financements[id]; ok {
			labels = append(labels, label)
		}
	}

	return Summary{
		Formation:          formation,
		FormateurNom:       refs.formateurs[formation.FormateurID],
		ThematiqueNom:      refs.thematiques[formation.ThematiqueID],
		FinancementsLabels: labels,
	}
}

// # Detail

/*
Detail returns the course page of slug from the static snapshot.

It joins the trainer, the theme, the eligible active financements and up to
[constants.SimilarCoursesLimit] other active courses of the same theme.

Returns:
  - *Detail: The assembled page
  - error: NOT_FOUND when no course has this slug
*/
func (service *Service) Detail(context context.Context, courseSlug string) (*Detail, error) {
	store := service.client.Store()

	formation, err := content.BySlug[content.Formation](store, content.Formations, courseSlug)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if formation == nil {
		return nil, apperr.NotFound("Formation")
	}

	formateur, err := content.ByID[content.Formateur](store, content.Formateurs, formation.FormateurID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	thematique, err := content.ByID[content.Thematique](store, content.Thematiques, formation.ThematiqueID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	financements, err := content.Collection[content.Financement](store, content.Financements)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	eligible := make([]content.Financement, 0, len(formation.FinancementsEligibles))
	for _, financement := range financements {
		if financement.Actif && slices.Contains(formation.FinancementsEligibles, financement.ID) {
			eligible = append(eligible, financement)
		}
	}

	formations, err := content.Collection[content.Formation](store, content.Formations)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	similar := make([]content.Formation, 0, constants.SimilarCoursesLimit)
	for _, other := range formations {
		if len(similar) == constants.SimilarCoursesLimit {
			break
		}
		if other.ID != formation.ID && other.Active && other.ThematiqueID == formation.ThematiqueID {
			similar = append(similar, other)
		}
	}

	service.logger.DebugContext(context, "catalog_detail_built",
		slog.String("slug", courseSlug),
		slog.Bool("formateur_found", formateur != nil),
		slog.Bool("thematique_found", thematique != nil),
	)

	return &Detail{
		Formation:    *formation,
		Formateur:    formateur,
		Thematique:   thematique,
		Financements: eligible,
		Similaires:   similar,
	}, nil
}

// Slugs lists the slug of every course of the static snapshot, in snapshot order.
func (service *Service) Slugs() ([]string, error) {
	formations, err := content.Collection[content.Formation](service.client.Store(), content.Formations)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	slugs := make([]string, 0, len(formations))
	for _, formation := range formations {
		if formation.Slug != "" {
			slugs = append(slugs, formation.Slug)
		}
	}
	return slugs, nil
}

// # Facets

// Facets returns the filter values of the catalogue: distinct niveaux and
// modalites of active courses in French order, and the referenced collections.
func (service *Service) Facets(context context.Context) (*Facets, error) {
	formations, err := cms.List[content.Formation](context, service.client, content.Formations, query.Options{Filters: activeOnly})
	if err != nil {
		return nil, err
	}

	var modalites []string
	for _, formation := range formations {
		modalites = append(modalites, formation.Modalites...)
	}
	modalites = slice.Unique(modalites)

	niveaux := slice.Unique(slice.Map(formations, func(formation content.Formation) string { return formation.Niveau }))
	niveaux = slice.Filter(niveaux, func(niveau string) bool { return niveau != "" })

	collator := collate.New(query.DefaultLanguage)
	collator.SortStrings(niveaux)
	collator.SortStrings(modalites)

	thematiques, err := cms.List[content.Thematique](context, service.client, content.Thematiques, query.Options{
		Filters: activeOnly,
		SortBy:  "ordre",
	})
	if err != nil {
		return nil, err
	}
	formateurs, err := cms.List[content.Formateur](context, service.client, content.Formateurs, query.Options{
		Filters: map[string]any{"actif": true},
		SortBy:  "nom",
	})
	if err != nil {
		return nil, err
	}
	financements, err := cms.List[content.Financement](context, service.client, content.Financements, query.Options{
		Filters: map[string]any{"actif": true},
	})
	if err != nil {
		return nil, err
	}

	return &Facets{
		Niveaux:      niveaux,
		Modalites:    modalites,
		Thematiques:  thematiques,
		Formateurs:   formateurs,
		Financements: financements,
	}, nil
}
