// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the service database.
package schema

import "github.com/scable-inc/syloma/internal/platform/constants"

// LeadsSubmissionJournalTable represents the 'leads.submission_journal' table
type LeadsSubmissionJournalTable struct {
	Table        string
	ID           string
	Kind         string
	Collection   string
	Email        string
	RecordID     string
	Outcome      string
	StatusCode   string
	ErrorMessage string
	RequestID    string
	CreatedAt    string
}

// LeadsSubmissionJournal is the schema definition for leads.submission_journal
var LeadsSubmissionJournal = LeadsSubmissionJournalTable{
	Table:        constants.SchemaLeads + ".submission_journal",
	ID:           "id",
	Kind:         "kind",
	Collection:   "collection",
	Email:        "email",
	RecordID:     "record_id",
	Outcome:      "outcome",
	StatusCode:   "status_code",
	ErrorMessage: "error_message",
	RequestID:    "request_id",
	CreatedAt:    "created_at",
}

// Columns lists every column in insert order.
func (t LeadsSubmissionJournalTable) Columns() []string {
	return []string{t.ID, t.Kind, t.Collection, t.Email, t.RecordID, t.Outcome, t.StatusCode, t.ErrorMessage, t.RequestID, t.CreatedAt}
}
