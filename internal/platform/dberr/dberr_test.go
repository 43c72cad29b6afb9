// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scable-inc/syloma/internal/platform/apperr"
	"github.com/scable-inc/syloma/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
	assert.Equal(t, dberr.ErrNotFound, dberr.Wrap(pgx.ErrNoRows, "select"))

	cause := errors.New("connection reset")
	err := dberr.Wrap(cause, "insert_journal")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, appErr.Cause.Error(), "insert_journal")
}

func TestCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	missing := &pgconn.PgError{Code: "42P01"}

	assert.True(t, dberr.IsUniqueViolation(unique))
	assert.False(t, dberr.IsUniqueViolation(missing))
	assert.True(t, dberr.IsUndefinedTable(missing))
	assert.False(t, dberr.IsUndefinedTable(errors.New("plain")))
}
