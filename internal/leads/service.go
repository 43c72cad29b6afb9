// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leads

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/platform/apperr"
	"github.com/scable-inc/syloma/internal/platform/ctxutil"
	"github.com/scable-inc/syloma/internal/platform/validate"
	"github.com/scable-inc/syloma/pkg/uuid"
)

// Field limits of the forms.
const (
	minNameLength       = 2
	minMessageLength    = 10
	minPhoneLength      = 10
	minExperienceLength = 50
	maxTextLength       = 5000
	maxFieldLength      = 200
)

// Service validates and submits leads.
type Service struct {
	client  *cms.Client
	journal Journal
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs the leads [Service]. A nil journal records nothing.
func NewService(client *cms.Client, journal Journal, logger *slog.Logger) *Service {
	if journal == nil {
		journal = NoopJournal{}
	}
	return &Service{
		client:  client,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// # Contact Requests

/*
SubmitContactRequest validates a contact request and creates it in the
demandes_contact collection with status "Nouveau" and priority "Normale".

Returns:
  - *content.DemandeContact: The record created by the content API
  - error: VALIDATION_ERROR before submission, SUBMISSION_FAILED after
*/
func (service *Service) SubmitContactRequest(context context.Context, input ContactRequest) (*content.DemandeContact, error) {
	fields := input.fields()

	validator := &validate.Validator{}
	validator.
		MinLen("prenom", fields.Prenom, minNameLength).
		MaxLen("prenom", fields.Prenom, maxFieldLength).
		MinLen("nom", fields.Nom, minNameLength).
		MaxLen("nom", fields.Nom, maxFieldLength).
		Email("email", fields.Email).
		MaxLen("telephone", fields.Telephone, maxFieldLength).
		MaxLen("entreprise", fields.Entreprise, maxFieldLength).
		OneOf("type_demande", fields.TypeDemande, ContactRequestTypes...).
		MinLen("message", fields.Message, minMessageLength).
		MaxLen("message", fields.Message, maxTextLength)

	if fields.FormationID != "" {
		formation, err := content.ByID[content.Formation](service.client.Store(), content.Formations, fields.FormationID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		validator.Custom("formation_id", formation == nil, "Unknown course")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	created, err := cms.Create[content.DemandeContact](context, service.client, content.DemandesContact, fields)
	if err != nil {
		service.record(context, KindContactRequest, content.DemandesContact, fields.Email, "", err)
		return nil, submissionFailed(err)
	}
	service.record(context, KindContactRequest, content.DemandesContact, fields.Email, created.ID, nil)

	service.log(context).InfoContext(context, "lead_submitted",
		slog.String("kind", KindContactRequest),
		slog.String("record_id", created.ID),
		slog.String("formation_id", fields.FormationID),
	)
	return created, nil
}

// # Trainer Applications

/*
SubmitTrainerApplication validates a trainer application and creates it in
the adhesions_formateurs collection with status "Nouveau".

Experience and message are stored as <p> paragraphs.
*/
func (service *Service) SubmitTrainerApplication(context context.Context, input TrainerApplication) (*content.AdhesionFormateur, error) {
	fields := input.fields()

	validator := &validate.Validator{}
	validator.
		MinLen("nom", fields.Nom, minNameLength).
		MaxLen("nom", fields.Nom, maxFieldLength).
		MinLen("prenom", fields.Prenom, minNameLength).
		MaxLen("prenom", fields.Prenom, maxFieldLength).
		Email("email", fields.Email).
		MinLen("telephone", fields.Telephone, minPhoneLength).
		MaxLen("telephone", fields.Telephone, maxFieldLength).
		MaxLen("entreprise", fields.Entreprise, maxFieldLength).
		MaxLen("siret", fields.Siret, maxFieldLength).
		MinItems("specialites", fields.Specialites, 1).
		MinLen("experience", strings.TrimSpace(input.Experience), minExperienceLength).
		MaxLen("experience", input.Experience, maxTextLength).
		OptionalURL("site_web", fields.SiteWeb).
		OptionalURL("linkedin", fields.Linkedin).
		OneOf("type_demande", fields.TypeDemande, TrainerApplicationTypes...).
		MaxLen("message", input.Message, maxTextLength).
		Custom("acceptation_cgv", !input.AcceptationCGV, "The terms and conditions must be accepted")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	created, err := cms.Create[content.AdhesionFormateur](context, service.client, content.AdhesionsFormateurs, fields)
	if err != nil {
		service.record(context, KindTrainerApplication, content.AdhesionsFormateurs, fields.Email, "", err)
		return nil, submissionFailed(err)
	}
	service.record(context, KindTrainerApplication, content.AdhesionsFormateurs, fields.Email, created.ID, nil)

	service.log(context).InfoContext(context, "lead_submitted",
		slog.String("kind", KindTrainerApplication),
		slog.String("record_id", created.ID),
		slog.Int("specialites", len(fields.Specialites)),
	)
	return created, nil
}

// # Helpers

// record writes the journal entry of an attempt. Journal failures are logged only.
func (service *Service) record(context context.Context, kind, collection, email, id string, submitErr error) {
	entry := Entry{
		ID:         uuid.New(),
		Kind:       kind,
		Collection: collection,
		Email:      email,
		RecordID:   id,
		Outcome:    OutcomeAccepted,
		RequestID:  ctxutil.GetRequestID(context),
		CreatedAt:  service.now().UTC(),
	}

	if submitErr != nil {
		entry.Outcome = OutcomeFailed
		entry.Error = submitErr.Error()

		var submission *cms.SubmissionError
		if errors.As(submitErr, &submission) {
			entry.StatusCode = submission.StatusCode
		}
	}

	if err := service.journal.Record(context, entry); err != nil {
		service.log(context).ErrorContext(context, "lead_journal_failed",
			slog.String("kind", kind),
			slog.String("outcome", entry.Outcome),
			slog.Any("error", err),
		)
	}
}

func (service *Service) log(context context.Context) *slog.Logger {
	return ctxutil.LoggerOr(context, service.logger)
}

// submissionFailed maps a write failure to a 502 carrying the form-safe message.
func submissionFailed(err error) error {
	var submission *cms.SubmissionError
	if errors.As(err, &submission) {
		return apperr.SubmissionFailed(submission.Message, submission)
	}
	return apperr.SubmissionFailed("request failed", err)
}
