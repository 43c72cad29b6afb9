// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leads

import (
	"context"
	"time"
)

// Kinds of submission.
const (
	KindContactRequest     = "contact_request"
	KindTrainerApplication = "trainer_application"
)

// Outcomes of a submission attempt.
const (
	OutcomeAccepted = "accepted"
	OutcomeFailed   = "failed"
)

// Entry is one submission attempt.
type Entry struct {
	ID         string
	Kind       string
	Collection string
	Email      string
	// RecordID is the id assigned by the content API, empty on failure.
	RecordID string
	Outcome  string
	// StatusCode is the content API status of a failure, zero when unknown.
	StatusCode int
	Error      string
	RequestID  string
	CreatedAt  time.Time
}

// Journal records submission attempts.
type Journal interface {
	Record(context context.Context, entry Entry) error
}

// NoopJournal discards entries. It is used when no database is configured.
type NoopJournal struct{}

// Record implements [Journal].
func (NoopJournal) Record(context.Context, Entry) error { return nil }
