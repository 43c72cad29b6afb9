// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scable-inc/syloma/internal/platform/apperr"
	"github.com/scable-inc/syloma/internal/platform/respond"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "not_found",
			err:        apperr.NotFound("Formation"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantError:  "Formation not found",
		},
		{
			name:       "submission_message_is_public",
			err:        apperr.SubmissionFailed("email invalide", errors.New("422")),
			wantStatus: http.StatusBadGateway,
			wantCode:   "SUBMISSION_FAILED",
			wantError:  "email invalide",
		},
		{
			name:       "plain_error_is_hidden",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantError:  "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.wantStatus, recorder.Code)

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.Equal(t, tt.wantError, envelope.Error)
		})
	}
}

func TestError_ValidationDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	err := apperr.ValidationError("Validation failed", apperr.FieldError{Field: "email", Message: "Must be a valid email address"})
	respond.Error(recorder, httptest.NewRequest(http.MethodPost, "/", nil), err)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "email", envelope.Details[0].Field)
}
