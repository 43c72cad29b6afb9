// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leads

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/scable-inc/syloma/internal/platform/request"
	"github.com/scable-inc/syloma/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes the lead forms over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs the leads [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] for /leads.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/contact-requests", handler.submitContactRequest)
	router.Post("/trainer-applications", handler.submitTrainerApplication)

	return router
}

// submitContactRequest handles POST /leads/contact-requests.
func (handler *Handler) submitContactRequest(writer http.ResponseWriter, request *http.Request) {
	var input ContactRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.SubmitContactRequest(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// submitTrainerApplication handles POST /leads/trainer-applications.
func (handler *Handler) submitTrainerApplication(writer http.ResponseWriter, request *http.Request) {
	var input TrainerApplication
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.SubmitTrainerApplication(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}
