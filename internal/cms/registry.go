// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms

import (
	"context"
	"reflect"

	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/pkg/query"
)

// collection binds a collection name to its record type for name-addressed access.
type collection struct {
	recordType reflect.Type
	list       func(context.Context, *Client, string, query.Options) (any, int, error)
	bySlug     func(*content.Store, string, string) (any, bool, error)
}

func register[T content.Record]() collection {
	return collection{
		recordType: reflect.TypeFor[T](),
		list: func(ctx context.Context, client *Client, name string, opts query.Options) (any, int, error) {
			records, err := List[T](ctx, client, name, opts)
			return records, len(records), err
		},
		bySlug: func(store *content.Store, name, slug string) (any, bool, error) {
			record, err := content.BySlug[T](store, name, slug)
			return record, record != nil, err
		},
	}
}

// collections lists every collection the site knows about.
var collections = map[string]collection{
	content.Formations:          register[content.Formation](),
	content.Formateurs:          register[content.Formateur](),
	content.Thematiques:         register[content.Thematique](),
	content.Financements:        register[content.Financement](),
	content.Certifications:      register[content.Certification](),
	content.Temoignages:         register[content.Temoignage](),
	content.FAQs:                register[content.FAQ](),
	content.DemandesContact:     register[content.DemandeContact](),
	content.AdhesionsFormateurs: register[content.AdhesionFormateur](),
}
