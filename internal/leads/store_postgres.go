// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package leads

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scable-inc/syloma/internal/platform/constants"
	"github.com/scable-inc/syloma/internal/platform/database/schema"
	"github.com/scable-inc/syloma/internal/platform/dberr"
)

// PostgresJournal stores submission attempts in leads.submission_journal.
type PostgresJournal struct {
	db *pgxpool.Pool
}

// NewPostgresJournal constructs a [PostgresJournal].
func NewPostgresJournal(db *pgxpool.Pool) *PostgresJournal {
	return &PostgresJournal{db: db}
}

// insertEntryQuery is built once from the schema definition.
var insertEntryQuery = func() string {
	columns := schema.LeadsSubmissionJournal.Columns()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.LeadsSubmissionJournal.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)
}()

// Record implements [Journal].
func (journal *PostgresJournal) Record(context context.Context, entry Entry) error {
	writeCtx, cancel := contextWithTimeout(context)
	defer cancel()

	_, err := journal.db.Exec(writeCtx, insertEntryQuery,
		entry.ID,
		entry.Kind,
		entry.Collection,
		entry.Email,
		nullable(entry.RecordID),
		entry.Outcome,
		nullableInt(entry.StatusCode),
		nullable(entry.Error),
		nullable(entry.RequestID),
		entry.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_submission_journal")
	}
	return nil
}

func contextWithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(parent), constants.JournalWriteTimeout)
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func nullableInt(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}
