// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cmsapi is the HTTP client of the remote content-management API.

It speaks the two endpoints the site consumes:

	GET  {base}/projects/{projectId}/cms/collections/{name}?<query>  -> {"data": [...]}
	POST {base}/projects/{projectId}/cms/collections/{name}          -> created record

Every request carries "Authorization: Bearer <token>" and is traced with
OpenTelemetry. The client never retries; callers decide how to recover.
*/
package cmsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public content API.
	DefaultBaseURL = "https://api.intuitiverse.com"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 64 << 10
)

var tracer = otel.Tracer("github.com/scable-inc/syloma/internal/platform/cmsapi")

// ErrNotConfigured is returned when the project id or the access token is missing.
var ErrNotConfigured = errors.New("cmsapi: project id and access token are required")

// # Errors

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	// Status is the canonical status text (e.g. "Bad Request").
	Status string
	// Message is the "error" (or "message") field of the response body, if any.
	Message string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API Error: %d %s", e.StatusCode, e.Status)
}

// # Client

// Config holds the connection settings.
type Config struct {
	BaseURL     string
	ProjectID   string
	AccessToken string
	Timeout     time.Duration
}

// Client talks to one project of the content API.
type Client struct {
	http        *http.Client
	baseURL     string
	projectID   string
	accessToken string
}

// New creates a client. Empty base URL and timeout fall back to the defaults.
func New(config Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		http:        &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		projectID:   strings.TrimSpace(config.ProjectID),
		accessToken: strings.TrimSpace(config.AccessToken),
	}
}

// Configured reports whether both the project id and the access token are set.
func (client *Client) Configured() bool {
	return client != nil && client.projectID != "" && client.accessToken != ""
}

// listEnvelope is the read response body.
type listEnvelope struct {
	Data []json.RawMessage `json:"data"`
}

/*
List fetches the records of a collection.

Parameters:
  - context: Cancels the request
  - collection: Collection name
  - params: Query string (page, pageSize, sortBy, sortOrder, filters)

Returns:
  - []json.RawMessage: The "data" array, never nil on success
  - error: *StatusError, transport or decode errors
*/
func (client *Client) List(context context.Context, collection string, params url.Values) ([]json.RawMessage, error) {
	context, span := tracer.Start(context, "CMS.List", trace.WithAttributes(
		attribute.String("cms.collection", collection),
	))
	defer span.End()

	if !client.Configured() {
		return nil, fail(span, ErrNotConfigured)
	}

	endpoint := client.collectionURL(collection)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	request, err := http.NewRequestWithContext(context, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fail(span, fmt.Errorf("cmsapi: build request: %w", err))
	}
	client.authorize(request)

	response, err := client.http.Do(request)
	if err != nil {
		return nil, fail(span, fmt.Errorf("cmsapi: get %s: %w", collection, err))
	}
	defer response.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", response.StatusCode))
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fail(span, statusError(response))
	}

	var envelope listEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return nil, fail(span, fmt.Errorf("cmsapi: decode %s: %w", collection, err))
	}
	if envelope.Data == nil {
		envelope.Data = []json.RawMessage{}
	}

	span.SetAttributes(attribute.Int("cms.records", len(envelope.Data)))
	return envelope.Data, nil
}

/*
Create posts a new record to a collection.

Returns:
  - json.RawMessage: The created record as returned by the API
  - error: *StatusError, transport or decode errors
*/
func (client *Client) Create(context context.Context, collection string, payload any) (json.RawMessage, error) {
	context, span := tracer.Start(context, "CMS.Create", trace.WithAttributes(
		attribute.String("cms.collection", collection),
	))
	defer span.End()

	if !client.Configured() {
		return nil, fail(span, ErrNotConfigured)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fail(span, fmt.Errorf("cmsapi: encode payload: %w", err))
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, client.collectionURL(collection), bytes.NewReader(body))
	if err != nil {
		return nil, fail(span, fmt.Errorf("cmsapi: build request: %w", err))
	}
	client.authorize(request)

	response, err := client.http.Do(request)
	if err != nil {
		return nil, fail(span, fmt.Errorf("cmsapi: post %s: %w", collection, err))
	}
	defer response.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", response.StatusCode))
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fail(span, statusError(response))
	}

	var created json.RawMessage
	if err := json.NewDecoder(response.Body).Decode(&created); err != nil {
		return nil, fail(span, fmt.Errorf("cmsapi: decode created %s: %w", collection, err))
	}

	return created, nil
}

// # Internal Helpers

func (client *Client) collectionURL(collection string) string {
	return fmt.Sprintf("%s/projects/%s/cms/collections/%s",
		client.baseURL, url.PathEscape(client.projectID), url.PathEscape(collection))
}

func (client *Client) authorize(request *http.Request) {
	request.Header.Set("Authorization", "Bearer "+client.accessToken)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
}

// statusError extracts the API's error message from a failed response.
func statusError(response *http.Response) *StatusError {
	result := &StatusError{
		StatusCode: response.StatusCode,
		Status:     http.StatusText(response.StatusCode),
	}

	var body struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
	if err != nil || json.Unmarshal(raw, &body) != nil {
		return result
	}

	switch value := body.Error.(type) {
	case string:
		result.Message = strings.TrimSpace(value)
	case map[string]any:
		if message, ok := value["message"].(string); ok {
			result.Message = strings.TrimSpace(message)
		}
	}
	if result.Message == "" {
		result.Message = strings.TrimSpace(body.Message)
	}

	return result
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
