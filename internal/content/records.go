// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package content

// # Catalogue

// Formation is a training course.
type Formation struct {
	Base
	Titre                 string   `json:"titre"`
	Accroche              string   `json:"accroche"`
	ObjectifsPedagogiques string   `json:"objectifs_pedagogiques"`
	PublicVise            string   `json:"public_vise"`
	Prerequis             string   `json:"prerequis,omitempty"`
	ProgrammeDetaille     string   `json:"programme_detaille"`
	MethodesMobilisees    string   `json:"methodes_mobilisees"`
	Duree                 string   `json:"duree"`
	Rythme                string   `json:"rythme"`
	Lieu                  string   `json:"lieu"`
	Accessibilite         string   `json:"accessibilite"`
	ModalitesEvaluation   string   `json:"modalites_evaluation"`
	Niveau                string   `json:"niveau"`
	Modalites             []string `json:"modalites"`
	Prix                  Price    `json:"prix"`
	FormateurID           string   `json:"formateur_id"`
	ThematiqueID          string   `json:"thematique_id"`
	FinancementsEligibles []string `json:"financements_eligibles,omitempty"`
	ImagePrincipale       *Media   `json:"image_principale,omitempty"`
	Active                bool     `json:"active"`
}

// Formateur is a trainer profile.
type Formateur struct {
	Base
	Nom              string   `json:"nom"`
	Bio              string   `json:"bio"`
	LogoPhoto        *Media   `json:"logo_photo,omitempty"`
	Specialites      []string `json:"specialites"`
	Certifications   []string `json:"certifications,omitempty"`
	EmailContact     string   `json:"email_contact,omitempty"`
	Telephone        string   `json:"telephone,omitempty"`
	SiteWeb          string   `json:"site_web,omitempty"`
	Linkedin         string   `json:"linkedin,omitempty"`
	ExperienceAnnees *int     `json:"experience_annees,omitempty"`
	Actif            bool     `json:"actif"`
}

// Thematique groups courses by subject.
type Thematique struct {
	Base
	Nom         string `json:"nom"`
	Description string `json:"description"`
	Icone       string `json:"icone,omitempty"`
	Couleur     string `json:"couleur,omitempty"`
	Ordre       *int   `json:"ordre,omitempty"`
	Active      bool   `json:"active"`
}

// Financement is a funding scheme a course can be eligible for.
type Financement struct {
	Base
	Nom          string `json:"nom"`
	Description  string `json:"description"`
	Eligibilite  string `json:"eligibilite"`
	Processus    string `json:"processus"`
	Logo         *Media `json:"logo,omitempty"`
	SiteOfficiel string `json:"site_officiel,omitempty"`
	Actif        bool   `json:"actif"`
}

// # Trust Signals

// Certification is a quality label held by the organisation.
type Certification struct {
	Base
	Nom                    string `json:"nom"`
	Description            string `json:"description"`
	Logo                   *Media `json:"logo,omitempty"`
	OrganismeCertificateur string `json:"organisme_certificateur"`
	DateObtention          string `json:"date_obtention,omitempty"`
	DateExpiration         string `json:"date_expiration,omitempty"`
	NumeroCertification    string `json:"numero_certification,omitempty"`
	Ordre                  *int   `json:"ordre,omitempty"`
	Active                 bool   `json:"active"`
}

// Temoignage is a testimonial left by a trainee or a trainer.
type Temoignage struct {
	Base
	Nom             string `json:"nom"`
	Entreprise      string `json:"entreprise,omitempty"`
	Poste           string `json:"poste,omitempty"`
	FormationSuivie string `json:"formation_suivie,omitempty"`
	Temoignage      string `json:"temoignage"`
	Note            *int   `json:"note,omitempty"`
	Type            string `json:"type"`
	Photo           *Media `json:"photo,omitempty"`
	DateTemoignage  string `json:"date_temoignage,omitempty"`
	Ordre           *int   `json:"ordre,omitempty"`
	Approuve        bool   `json:"approuve"`
}

// FAQ is a question and its answer.
type FAQ struct {
	Base
	Categorie  string   `json:"categorie"`
	Question   string   `json:"question"`
	Reponse    string   `json:"reponse"`
	MotsCles   []string `json:"mots_cles,omitempty"`
	Thematique string   `json:"thematique,omitempty"`
	Ordre      *int     `json:"ordre,omitempty"`
	Active     bool     `json:"active"`
}

// # Leads

// DemandeContactFields is the writable part of a contact request.
type DemandeContactFields struct {
	Nom           string `json:"nom"`
	Prenom        string `json:"prenom"`
	Email         string `json:"email"`
	Telephone     string `json:"telephone,omitempty"`
	Entreprise    string `json:"entreprise,omitempty"`
	FormationID   string `json:"formation_id,omitempty"`
	TypeDemande   string `json:"type_demande"`
	Message       string `json:"message"`
	Statut        string `json:"statut"`
	Priorite      string `json:"priorite"`
	NotesInternes string `json:"notes_internes,omitempty"`
}

// DemandeContact is a stored contact request.
type DemandeContact struct {
	Base
	DemandeContactFields
}

// AdhesionFormateurFields is the writable part of a trainer application.
type AdhesionFormateurFields struct {
	Nom                    string   `json:"nom"`
	Prenom                 string   `json:"prenom"`
	Email                  string   `json:"email"`
	Telephone              string   `json:"telephone"`
	Entreprise             string   `json:"entreprise,omitempty"`
	Siret                  string   `json:"siret,omitempty"`
	Specialites            []string `json:"specialites"`
	Experience             string   `json:"experience"`
	CertificationsDetenues []string `json:"certifications_detenues,omitempty"`
	SiteWeb                string   `json:"site_web,omitempty"`
	Linkedin               string   `json:"linkedin,omitempty"`
	TypeDemande            string   `json:"type_demande"`
	Message                string   `json:"message,omitempty"`
	Statut                 string   `json:"statut"`
	NotesEvaluation        string   `json:"notes_evaluation,omitempty"`
}

// AdhesionFormateur is a stored trainer application.
type AdhesionFormateur struct {
	Base
	AdhesionFormateurFields
}
