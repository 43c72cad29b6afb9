// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// Pages are 1-indexed and requested with the "page" and "pageSize" query
// parameters, the same names the remote content API understands.
package pagination

// MaxPageSize caps a single page.
const MaxPageSize = 100

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// TotalPages is derived from total and pageSize; it is zero when pageSize is.
func NewMeta(page, pageSize, total int) Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return Meta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
