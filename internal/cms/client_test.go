// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scable-inc/syloma/internal/cms"
	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/platform/apperr"
	"github.com/scable-inc/syloma/internal/platform/cache"
	"github.com/scable-inc/syloma/internal/platform/cmsapi"
	"github.com/scable-inc/syloma/pkg/query"
)

// fakeRemote records calls and answers with canned data.
type fakeRemote struct {
	configured bool
	records    []json.RawMessage
	listErr    error
	created    json.RawMessage
	createErr  error

	listCalls   int
	createCalls int
	lastParams  url.Values
	lastPayload any
}

func (f *fakeRemote) Configured() bool { return f.configured }

func (f *fakeRemote) List(_ context.Context, _ string, params url.Values) ([]json.RawMessage, error) {
	f.listCalls++
	f.lastParams = params
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeRemote) Create(_ context.Context, _ string, payload any) (json.RawMessage, error) {
	f.createCalls++
	f.lastPayload = payload
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func embeddedStore(t *testing.T) *content.Store {
	t.Helper()
	store, err := content.Embedded()
	require.NoError(t, err)
	return store
}

func newClient(t *testing.T, remote cms.Remote, live bool) (*cms.Client, *cache.Memory) {
	t.Helper()
	memory := cache.NewMemory(time.Minute, time.Minute)
	client := cms.NewClient(embeddedStore(t), remote, memory, cms.Config{Live: live, CacheTTL: time.Minute}, discardLogger())
	return client, memory
}

func staticThematiques(t *testing.T, opts query.Options) []content.Thematique {
	t.Helper()
	items, err := content.Collection[content.Thematique](embeddedStore(t), content.Thematiques)
	require.NoError(t, err)
	return query.Apply(items, opts)
}

func ids[T content.Record](records []T) []string {
	out := make([]string, 0, len(records))
	for _, record := range records {
		out = append(out, record.RecordID())
	}
	return out
}

/*
TestList_FallbackMatchesStatic checks that a failing remote yields exactly
what the static path computes for the same options.
*/
func TestList_FallbackMatchesStatic(t *testing.T) {
	failures := []error{
		&cmsapi.StatusError{StatusCode: http.StatusServiceUnavailable, Status: "Service Unavailable"},
		errors.New("dial tcp: connection refused"),
		context.DeadlineExceeded,
	}

	options := []query.Options{
		{},
		{SortBy: "ordre", SortOrder: query.SortDesc},
		{Filters: map[string]any{"active": true}, SortBy: "nom"},
		{Page: 2, PageSize: 3, SortBy: "ordre"},
		{Page: 9, PageSize: 3},
	}

	for _, failure := range failures {
		for _, opts := range options {
			remote := &fakeRemote{configured: true, listErr: failure}
			client, _ := newClient(t, remote, true)

			got, err := cms.List[content.Thematique](context.Background(), client, content.Thematiques, opts)
			require.NoError(t, err)
			assert.Equal(t, staticThematiques(t, opts), got)
			assert.Equal(t, 1, remote.listCalls)
		}
	}
}

/*
TestList_StaticMode never calls the remote API even when it is configured.
*/
func TestList_StaticMode(t *testing.T) {
	remote := &fakeRemote{configured: true}
	client, _ := newClient(t, remote, false)

	opts := query.Options{SortBy: "ordre", SortOrder: query.SortDesc}
	got, err := cms.List[content.Thematique](context.Background(), client, content.Thematiques, opts)

	require.NoError(t, err)
	assert.Equal(t, staticThematiques(t, opts), got)
	assert.Zero(t, remote.listCalls)
	assert.False(t, client.Live())
}

/*
TestList_SnapshotTrainerFAQ filters the FAQ by audience and orders it.
*/
func TestList_SnapshotTrainerFAQ(t *testing.T) {
	client, _ := newClient(t, &fakeRemote{configured: true}, false)

	got, err := cms.List[content.FAQ](context.Background(), client, content.FAQs, query.Options{
		Filters:   map[string]any{"categorie": "Formateur"},
		SortBy:    "ordre",
		SortOrder: query.SortAsc,
	})
	require.NoError(t, err)

	orders := make([]int, 0, len(got))
	for _, entry := range got {
		require.NotNil(t, entry.Ordre)
		assert.Equal(t, "Formateur", entry.Categorie)
		orders = append(orders, *entry.Ordre)
	}
	assert.Equal(t, []int{1, 2, 3}, orders)
}

/*
TestList_SnapshotCoursesByTitle orders the snapshot courses with French collation.
*/
func TestList_SnapshotCoursesByTitle(t *testing.T) {
	client, _ := newClient(t, &fakeRemote{configured: true}, false)

	got, err := cms.List[content.Formation](context.Background(), client, content.Formations, query.Options{SortBy: "titre"})
	require.NoError(t, err)

	titles := make([]string, 0, len(got))
	for _, formation := range got {
		titles = append(titles, formation.Titre)
	}
	assert.Equal(t, []string{
		"Communication Professionnelle et Prise de Parole",
		"Cybersécurité et Protection des Données",
		"Gestion du Stress et Bien-Être au Travail",
		"Leadership et Management d'Équipe",
	}, titles)
}

/*
TestList_SnapshotMissingStringSortsLast keeps a certification without an
expiry date after the dated one in both directions, and never matches it
with an empty filter value.
*/
func TestList_SnapshotMissingStringSortsLast(t *testing.T) {
	client, _ := newClient(t, &fakeRemote{configured: true}, false)

	for _, order := range []query.SortOrder{query.SortAsc, query.SortDesc} {
		got, err := cms.List[content.Certification](context.Background(), client, content.Certifications, query.Options{
			SortBy:    "date_expiration",
			SortOrder: order,
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2026-01-15", got[0].DateExpiration)
		assert.Empty(t, got[1].DateExpiration)
	}

	got, err := cms.List[content.Certification](context.Background(), client, content.Certifications, query.Options{
		Filters: map[string]any{"date_expiration": ""},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

/*
TestList_LiveWithoutCredentials reads the snapshot.
*/
func TestList_LiveWithoutCredentials(t *testing.T) {
	remote := &fakeRemote{configured: false}
	client, _ := newClient(t, remote, true)

	got, err := cms.List[content.Thematique](context.Background(), client, content.Thematiques, query.Options{})

	require.NoError(t, err)
	assert.Len(t, got, 4)
	assert.Zero(t, remote.listCalls)
}

/*
TestList_RemoteSuccess returns the remote records as received and forwards
the options as query parameters.
*/
func TestList_RemoteSuccess(t *testing.T) {
	remote := &fakeRemote{
		configured: true,
		records: []json.RawMessage{
			json.RawMessage(`{"id":"r2","nom":"Zeta","ordre":2,"active":true}`),
			json.RawMessage(`{"id":"r1","nom":"Alpha","ordre":1,"active":true}`),
		},
	}
	client, _ := newClient(t, remote, true)

	opts := query.Options{SortBy: "nom", Filters: map[string]any{"active": true}}
	got, err := cms.List[content.Thematique](context.Background(), client, content.Thematiques, opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"r2", "r1"}, ids(got))
	assert.Equal(t, "nom", remote.lastParams.Get("sortBy"))
	assert.Equal(t, "asc", remote.lastParams.Get("sortOrder"))
	assert.Equal(t, "true", remote.lastParams.Get("active"))
}

/*
TestList_RemoteRecordWithoutID falls back to the snapshot.
*/
func TestList_RemoteRecordWithoutID(t *testing.T) {
	remote := &fakeRemote{
		configured: true,
		records:    []json.RawMessage{json.RawMessage(`{"nom":"Anonyme"}`)},
	}
	client, _ := newClient(t, remote, true)

	got, err := cms.List[content.Thematique](context.Background(), client, content.Thematiques, query.Options{})

	require.NoError(t, err)
	assert.Equal(t, ids(staticThematiques(t, query.Options{})), ids(got))
}

/*
TestList_CachesRemoteReads reuses a successful read for identical options only.
*/
func TestList_CachesRemoteReads(t *testing.T) {
	remote := &fakeRemote{
		configured: true,
		records:    []json.RawMessage{json.RawMessage(`{"id":"r1","nom":"Alpha"}`)},
	}
	client, _ := newClient(t, remote, true)
	ctx := context.Background()

	opts := query.Options{SortBy: "nom"}
	first, err := cms.List[content.Thematique](ctx, client, content.Thematiques, opts)
	require.NoError(t, err)
	second, err := cms.List[content.Thematique](ctx, client, content.Thematiques, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, remote.listCalls)

	_, err = cms.List[content.Thematique](ctx, client, content.Thematiques, query.Options{SortBy: "ordre"})
	require.NoError(t, err)
	assert.Equal(t, 2, remote.listCalls)
}

/*
TestList_FailuresAreNotCached retries the remote on the next read.
*/
func TestList_FailuresAreNotCached(t *testing.T) {
	remote := &fakeRemote{configured: true, listErr: errors.New("boom")}
	client, memory := newClient(t, remote, true)
	ctx := context.Background()

	for range 2 {
		_, err := cms.List[content.Thematique](ctx, client, content.Thematiques, query.Options{})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, remote.listCalls)
	assert.Zero(t, memory.Len())
}

/*
TestList_InvalidOptions is the only error a read can return.
*/
func TestList_InvalidOptions(t *testing.T) {
	client, _ := newClient(t, &fakeRemote{configured: true}, false)

	tests := []struct {
		name string
		opts query.Options
	}{
		{"negative_page", query.Options{Page: -1, PageSize: 2}},
		{"negative_page_size", query.Options{Page: 1, PageSize: -2}},
		{"list_filter", query.Options{Filters: map[string]any{"modalites": []any{"distanciel"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cms.List[content.Formation](context.Background(), client, content.Formations, tt.opts)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

/*
TestList_UnknownCollection is empty rather than an error.
*/
func TestList_UnknownCollection(t *testing.T) {
	client, _ := newClient(t, &fakeRemote{configured: true}, false)

	got, err := cms.List[content.Thematique](context.Background(), client, "inconnue", query.Options{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

/*
TestCreate_InvalidatesCollection drops cached reads of the written collection only.
*/
func TestCreate_InvalidatesCollection(t *testing.T) {
	remote := &fakeRemote{
		configured: true,
		records:    []json.RawMessage{json.RawMessage(`{"id":"r1","nom":"Alpha"}`)},
		created:    json.RawMessage(`{"id":"lead-1","nom":"Durand","email":"a@b.fr","statut":"nouveau"}`),
	}
	client, _ := newClient(t, remote, true)
	ctx := context.Background()

	_, err := cms.List[content.DemandeContact](ctx, client, content.DemandesContact, query.Options{})
	require.NoError(t, err)
	_, err = cms.List[content.Thematique](ctx, client, content.Thematiques, query.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, remote.listCalls)

	created, err := cms.Create[content.DemandeContact](ctx, client, content.DemandesContact, map[string]any{"nom": "Durand"})
	require.NoError(t, err)
	assert.Equal(t, "lead-1", created.ID)
	assert.Equal(t, "nouveau", created.Statut)

	_, err = cms.List[content.DemandeContact](ctx, client, content.DemandesContact, query.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, remote.listCalls)

	_, err = cms.List[content.Thematique](ctx, client, content.Thematiques, query.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, remote.listCalls)
}

/*
TestCreate_StaticReadsUnchanged covers writes with credentials while reads
stay on the snapshot.
*/
func TestCreate_StaticReadsUnchanged(t *testing.T) {
	remote := &fakeRemote{
		configured: true,
		created:    json.RawMessage(`{"id":"lead-9","nom":"Martin"}`),
	}
	client, _ := newClient(t, remote, false)
	ctx := context.Background()

	created, err := cms.Create[content.DemandeContact](ctx, client, content.DemandesContact, map[string]any{"nom": "Martin"})
	require.NoError(t, err)
	assert.Equal(t, "lead-9", created.ID)

	leads, err := cms.List[content.DemandeContact](ctx, client, content.DemandesContact, query.Options{})
	require.NoError(t, err)
	assert.Empty(t, leads)
	assert.Zero(t, remote.listCalls)
}

/*
TestCreate_Failures always carries a message for the form.
*/
func TestCreate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		remote  *fakeRemote
		message string
		status  int
	}{
		{
			name:    "not_configured",
			remote:  &fakeRemote{configured: false},
			message: "submission service is not configured",
		},
		{
			name:    "api_message",
			remote:  &fakeRemote{configured: true, createErr: &cmsapi.StatusError{StatusCode: 422, Status: "Unprocessable Entity", Message: "email invalide"}},
			message: "email invalide",
			status:  422,
		},
		{
			name:    "api_status_only",
			remote:  &fakeRemote{configured: true, createErr: &cmsapi.StatusError{StatusCode: 500, Status: "Internal Server Error"}},
			message: "API Error: 500 Internal Server Error",
			status:  500,
		},
		{
			name:    "transport",
			remote:  &fakeRemote{configured: true, createErr: errors.New("connection reset")},
			message: "request failed: connection reset",
		},
		{
			name:    "missing_id",
			remote:  &fakeRemote{configured: true, created: json.RawMessage(`{"nom":"Sans id"}`)},
			message: "submission response did not include an id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newClient(t, tt.remote, true)

			created, err := cms.Create[content.DemandeContact](context.Background(), client, content.DemandesContact, map[string]any{})
			assert.Nil(t, created)

			var submission *cms.SubmissionError
			require.ErrorAs(t, err, &submission)
			assert.Equal(t, tt.message, submission.Message)
			assert.Equal(t, tt.status, submission.StatusCode)
			assert.Equal(t, content.DemandesContact, submission.Collection)
			assert.NotEmpty(t, err.Error())
		})
	}
}
