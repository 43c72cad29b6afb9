// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package leads accepts the two public forms of the site: the contact request
of a course page and the trainer application.

Submissions are validated, normalized and written to the content API. Every
attempt is recorded in the submission journal, whatever its outcome.
*/
package leads

import (
	"html"
	"strings"

	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/platform/constants"
	"github.com/scable-inc/syloma/pkg/slice"
)

// Request types offered by each form.
var (
	ContactRequestTypes     = []string{"Information", "Inscription", "Devis", "Autre"}
	TrainerApplicationTypes = []string{"adhesion", "informations", "partenariat"}
)

// # Input Models

// ContactRequest is the contact form of a course page.
type ContactRequest struct {
	Nom         string `json:"nom"`
	Prenom      string `json:"prenom"`
	Email       string `json:"email"`
	Telephone   string `json:"telephone"`
	Entreprise  string `json:"entreprise"`
	FormationID string `json:"formation_id"`
	TypeDemande string `json:"type_demande"`
	Message     string `json:"message"`
}

// fields builds the record written to the content API.
func (input ContactRequest) fields() content.DemandeContactFields {
	return content.DemandeContactFields{
		Nom:         strings.TrimSpace(input.Nom),
		Prenom:      strings.TrimSpace(input.Prenom),
		Email:       strings.TrimSpace(input.Email),
		Telephone:   strings.TrimSpace(input.Telephone),
		Entreprise:  strings.TrimSpace(input.Entreprise),
		FormationID: strings.TrimSpace(input.FormationID),
		TypeDemande: strings.TrimSpace(input.TypeDemande),
		Message:     strings.TrimSpace(input.Message),
		Statut:      constants.LeadStatusNew,
		Priorite:    constants.LeadPriorityNormal,
	}
}

// TrainerApplication is the form of a trainer who wants to join the network.
type TrainerApplication struct {
	Nom                    string   `json:"nom"`
	Prenom                 string   `json:"prenom"`
	Email                  string   `json:"email"`
	Telephone              string   `json:"telephone"`
	Entreprise             string   `json:"entreprise"`
	Siret                  string   `json:"siret"`
	Specialites            []string `json:"specialites"`
	Experience             string   `json:"experience"`
	CertificationsDetenues []string `json:"certifications_detenues"`
	SiteWeb                string   `json:"site_web"`
	Linkedin               string   `json:"linkedin"`
	TypeDemande            string   `json:"type_demande"`
	Message                string   `json:"message"`
	AcceptationCGV         bool     `json:"acceptation_cgv"`
	Newsletter             bool     `json:"newsletter"`
}

// fields builds the record written to the content API. Free text becomes
// rich text paragraphs; acceptation_cgv and newsletter are not stored.
func (input TrainerApplication) fields() content.AdhesionFormateurFields {
	return content.AdhesionFormateurFields{
		Nom:                    strings.TrimSpace(input.Nom),
		Prenom:                 strings.TrimSpace(input.Prenom),
		Email:                  strings.TrimSpace(input.Email),
		Telephone:              strings.TrimSpace(input.Telephone),
		Entreprise:             strings.TrimSpace(input.Entreprise),
		Siret:                  strings.TrimSpace(input.Siret),
		Specialites:            compact(input.Specialites),
		Experience:             Paragraphs(input.Experience),
		CertificationsDetenues: compact(input.CertificationsDetenues),
		SiteWeb:                strings.TrimSpace(input.SiteWeb),
		Linkedin:               strings.TrimSpace(input.Linkedin),
		TypeDemande:            strings.TrimSpace(input.TypeDemande),
		Message:                Paragraphs(input.Message),
		Statut:                 constants.LeadStatusNew,
	}
}

// # Formatting

/*
Paragraphs converts plain text to rich text: one <p> per line, HTML escaped.
Blank text stays empty.

Example:

	Paragraphs("Dix ans\nde conseil") == "<p>Dix ans</p><p>de conseil</p>"
*/
func Paragraphs(text string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	var builder strings.Builder
	for _, line := range lines {
		builder.WriteString("<p>")
		builder.WriteString(html.EscapeString(line))
		builder.WriteString("</p>")
	}
	return builder.String()
}

// compact trims entries, drops blanks and duplicates, and keeps order.
func compact(values []string) []string {
	trimmed := slice.Map(values, strings.TrimSpace)
	return slice.Unique(slice.Filter(trimmed, func(value string) bool { return value != "" }))
}
