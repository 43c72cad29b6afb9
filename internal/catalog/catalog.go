// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog serves the training catalogue: the filtered course listing,
the course detail page and the filter facets.
*/
package catalog

import (
	"strings"

	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/pkg/pagination"
)

// # Sorting

// SortKey selects the catalogue ordering. Every key sorts ascending.
type SortKey string

const (
	SortTitre  SortKey = "titre"
	SortPrix   SortKey = "prix"
	SortNiveau SortKey = "niveau"
)

// ParseSortKey maps a user-supplied value to a [SortKey], defaulting to [SortTitre].
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(raw))); key {
	case SortPrix, SortNiveau:
		return key
	default:
		return SortTitre
	}
}

// field returns the record path the key sorts on.
func (key SortKey) field() string {
	switch key {
	case SortPrix:
		return "prix.amount"
	case SortNiveau:
		return "niveau"
	default:
		return "titre"
	}
}

// # Query Models

// Filter narrows the catalogue. Empty fields do not filter.
type Filter struct {
	// Search matches titre or accroche, ignoring case and accents.
	Search      string
	Thematique  string
	Formateur   string
	Modalite    string
	Niveau      string
	Financement string
	Sort        SortKey
	Page        int
}

// # Read Models

// Summary is a course card of the listing, with its references resolved to labels.
type Summary struct {
	content.Formation
	FormateurNom       string   `json:"formateur_nom,omitempty"`
	ThematiqueNom      string   `json:"thematique_nom,omitempty"`
	FinancementsLabels []string `json:"financements_labels"`
}

// Page is one page of the filtered catalogue.
type Page struct {
	Items []Summary       `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// Detail is the course page. Missing references are nil.
type Detail struct {
	Formation    content.Formation     `json:"formation"`
	Formateur    *content.Formateur    `json:"formateur"`
	Thematique   *content.Thematique   `json:"thematique"`
	Financements []content.Financement `json:"financements"`
	Similaires   []content.Formation   `json:"formations_similaires"`
}

// Facets lists the values the catalogue can be filtered on.
type Facets struct {
	Niveaux      []string              `json:"niveaux"`
	Modalites    []string              `json:"modalites"`
	Thematiques  []content.Thematique  `json:"thematiques"`
	Formateurs   []content.Formateur   `json:"formateurs"`
	Financements []content.Financement `json:"financements"`
}
