// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scable-inc/syloma/internal/api"
	"github.com/scable-inc/syloma/internal/catalog"
	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/faq"
	"github.com/scable-inc/syloma/internal/leads"
	"github.com/scable-inc/syloma/internal/platform/config"
	"github.com/scable-inc/syloma/internal/platform/constants"
	"github.com/scable-inc/syloma/internal/showcase"
)

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()

	store, err := content.Embedded()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := cms.NewClient(store, nil, nil, cms.Config{}, logger)
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	cfg := &config.Config{ServerPort: "0", Environment: "production", AllowedOrigins: []string{"https://syloma.fr"}}
	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Collections: cms.NewHandler(client),
		Catalog:     catalog.NewHandler(catalog.NewService(client, logger)),
		FAQ:         faq.NewHandler(faq.NewService(client, logger)),
		Showcase:    showcase.NewHandler(showcase.NewService(client, logger)),
		Leads:       leads.NewHandler(leads.NewService(client, nil, logger)),
	})
	return server.Handler()
}

func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	tests := []struct {
		method string
		target string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/api/v1/collections", http.StatusOK},
		{http.MethodGet, "/api/v1/collections/faq?sortBy=ordre", http.StatusOK},
		{http.MethodGet, "/api/v1/collections/inconnue", http.StatusNotFound},
		{http.MethodGet, "/api/v1/formations", http.StatusOK},
		{http.MethodGet, "/api/v1/formations/facets", http.StatusOK},
		{http.MethodGet, "/api/v1/formations/inconnue", http.StatusNotFound},
		{http.MethodGet, "/api/v1/faq?categorie=Formateur", http.StatusOK},
		{http.MethodGet, "/api/v1/pages/home", http.StatusOK},
		{http.MethodGet, "/api/v1/pages/about", http.StatusOK},
		{http.MethodGet, "/api/v1/pages/formateurs", http.StatusOK},
		{http.MethodPost, "/api/v1/leads/contact-requests", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(tt.method, tt.target, strings.NewReader(`{}`))
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))
		})
	}
}

func TestServer_SubmissionWithoutCredentials(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	body := `{"nom":"Durand","prenom":"Léa","email":"lea@example.fr","type_demande":"Autre","message":"Pouvez-vous me rappeler ?"}`
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/leads/contact-requests", strings.NewReader(body)))

	require.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "submission service is not configured")
}

func TestServer_Readiness(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("connection refused") },
	})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var envelope struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name  string `json:"name"`
				OK    bool   `json:"ok"`
				Error string `json:"error"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "degraded", envelope.Data.Status)
	require.Len(t, envelope.Data.Checks, 2)
	assert.True(t, envelope.Data.Checks[0].OK)
	assert.False(t, envelope.Data.Checks[1].OK)
	assert.Equal(t, "connection refused", envelope.Data.Checks[1].Error)
}

func TestServer_CORS(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	serve := func(origin string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodOptions, "/api/v1/formations", nil)
		request.Header.Set(constants.HeaderOrigin, origin)
		handler.ServeHTTP(recorder, request)
		return recorder
	}

	allowed := serve("https://syloma.fr")
	assert.Equal(t, http.StatusNoContent, allowed.Code)
	assert.Equal(t, "https://syloma.fr", allowed.Header().Get("Access-Control-Allow-Origin"))

	assert.Empty(t, serve("https://evil.example").Header().Get("Access-Control-Allow-Origin"))
}
