// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cmsapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scable-inc/syloma/internal/platform/cmsapi"
)

func newClient(server *httptest.Server) *cmsapi.Client {
	return cmsapi.New(cmsapi.Config{
		BaseURL:     server.URL + "/",
		ProjectID:   "proj-1",
		AccessToken: "secret",
		Timeout:     time.Second,
	})
}

/*
TestList_Success checks the request shape and the decoded data array.
*/
func TestList_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodGet, request.Method)
		assert.Equal(t, "/projects/proj-1/cms/collections/formations", request.URL.Path)
		assert.Equal(t, "Bearer secret", request.Header.Get("Authorization"))
		assert.Equal(t, "2", request.URL.Query().Get("page"))
		assert.Equal(t, "true", request.URL.Query().Get("active"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(writer, `{"data":[{"id":"a"},{"id":"b"}]}`)
	}))
	defer server.Close()

	records, err := newClient(server).List(context.Background(), "formations", url.Values{
		"page":   {"2"},
		"active": {"true"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"id":"a"}`, string(records[0]))
}

/*
TestList_MissingData returns an empty, non-nil slice.
*/
func TestList_MissingData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(writer, `{}`)
	}))
	defer server.Close()

	records, err := newClient(server).List(context.Background(), "faq", nil)
	require.NoError(t, err)
	require.NotNil(t, records)
	assert.Empty(t, records)
}

/*
TestList_Failures covers status, decode and configuration failures.
*/
func TestList_Failures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/projects/proj-1/cms/collections/broken" {
			_, _ = io.WriteString(writer, `not json`)
			return
		}
		writer.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newClient(server)

	_, err := client.List(context.Background(), "formations", nil)
	var statusErr *cmsapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "API Error: 503 Service Unavailable", statusErr.Error())

	_, err = client.List(context.Background(), "broken", nil)
	assert.Error(t, err)

	unconfigured := cmsapi.New(cmsapi.Config{BaseURL: server.URL})
	assert.False(t, unconfigured.Configured())
	_, err = unconfigured.List(context.Background(), "formations", nil)
	assert.ErrorIs(t, err, cmsapi.ErrNotConfigured)
}

/*
TestList_Timeout surfaces slow servers as errors.
*/
func TestList_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-release:
		case <-request.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := cmsapi.New(cmsapi.Config{
		BaseURL:     server.URL,
		ProjectID:   "p",
		AccessToken: "t",
		Timeout:     50 * time.Millisecond,
	})

	_, err := client.List(context.Background(), "faq", nil)
	assert.Error(t, err)
}

/*
TestCreate_Success posts the payload and returns the created record.
*/
func TestCreate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/projects/proj-1/cms/collections/demandes_contact", request.URL.Path)
		assert.Equal(t, "Bearer secret", request.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "Dupont", body["nom"])

		writer.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(writer, `{"id":"new-1","nom":"Dupont"}`)
	}))
	defer server.Close()

	created, err := newClient(server).Create(context.Background(), "demandes_contact", map[string]any{"nom": "Dupont"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"new-1","nom":"Dupont"}`, string(created))
}

/*
TestCreate_ErrorMessage prefers the body's error field over the status line.
*/
func TestCreate_ErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error_field", http.StatusBadRequest, `{"error":"Email invalide"}`, "Email invalide"},
		{"nested_error", http.StatusBadRequest, `{"error":{"message":"Quota atteint"}}`, "Quota atteint"},
		{"message_field", http.StatusConflict, `{"message":"Doublon"}`, "Doublon"},
		{"empty_body", http.StatusInternalServerError, ``, "API Error: 500 Internal Server Error"},
		{"html_body", http.StatusBadGateway, `<html>oops</html>`, "API Error: 502 Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(tt.status)
				_, _ = io.WriteString(writer, tt.body)
			}))
			defer server.Close()

			_, err := newClient(server).Create(context.Background(), "demandes_contact", map[string]any{})
			require.Error(t, err)

			var statusErr *cmsapi.StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}
