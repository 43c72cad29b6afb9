// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms

import (
	"errors"
	"fmt"

	"github.com/scable-inc/syloma/internal/platform/cmsapi"
)

// ReadError is a failed remote read. It never reaches callers of [List]; the
// static snapshot is served instead.
type ReadError struct {
	Collection string
	// StatusCode is the HTTP status, zero for transport and decode failures.
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("cms: read %s: status %d: %v", e.Collection, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("cms: read %s: %v", e.Collection, e.Cause)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ReadError) Unwrap() error { return e.Cause }

// SubmissionError is a failed write. Message is always non-empty and safe to
// show to the person who filled the form.
type SubmissionError struct {
	Collection string
	// StatusCode is the HTTP status, zero when the request never got an answer.
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *SubmissionError) Error() string { return e.Message }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *SubmissionError) Unwrap() error { return e.Cause }

// readError classifies a remote read failure.
func readError(collection string, cause error) *ReadError {
	result := &ReadError{Collection: collection, Cause: cause}

	var status *cmsapi.StatusError
	if errors.As(cause, &status) {
		result.StatusCode = status.StatusCode
	}
	return result
}

// submissionError builds the caller-facing error of a failed write.
func submissionError(collection string, cause error) *SubmissionError {
	result := &SubmissionError{Collection: collection, Cause: cause}

	var status *cmsapi.StatusError
	switch {
	case errors.As(cause, &status):
		result.StatusCode = status.StatusCode
		result.Message = status.Error()
	case errors.Is(cause, cmsapi.ErrNotConfigured):
		result.Message = "submission service is not configured"
	case cause != nil:
		result.Message = "request failed: " + cause.Error()
	default:
		result.Message = "request failed"
	}

	return result
}
