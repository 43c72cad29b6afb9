// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package content holds the typed records of the Syloma catalogue and the static
snapshot they are served from.

Architecture:

  - Records: one Go struct per collection, each embedding [Base].
  - Store: an immutable, name-addressed set of collections built once at startup.
  - Helpers: [Collection] and [BySlug] decode records of a given type on demand.

The store keeps every record as raw JSON and decodes a fresh copy on each read,
so callers can never mutate the snapshot through a returned value.
*/
package content

// # Collection Names

const (
	Formations          = "formations"
	Formateurs          = "formateurs"
	Thematiques         = "thematiques"
	Financements        = "financements"
	Certifications      = "certifications"
	Temoignages         = "temoignages"
	FAQs                = "faq"
	DemandesContact     = "demandes_contact"
	AdhesionsFormateurs = "adhesions_formateurs"
)

// # Record Contract

// Record is implemented by every collection type through its embedded [Base].
type Record interface {
	RecordID() string
	RecordSlug() string
}

// Base carries the system fields shared by every record.
type Base struct {
	ID        string `json:"id"`
	Slug      string `json:"slug,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// RecordID implements [Record].
func (b Base) RecordID() string { return b.ID }

// RecordSlug implements [Record].
func (b Base) RecordSlug() string { return b.Slug }

// # Shared Value Types

// Price is a monetary amount attached to a course.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Media describes an image hosted by the content service.
type Media struct {
	URL      string `json:"url"`
	AltText  string `json:"alt_text,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}
