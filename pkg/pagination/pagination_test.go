// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scable-inc/syloma/pkg/pagination"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name                  string
		page, pageSize, total int
		wantPages             int
	}{
		{"exact", 1, 9, 18, 2},
		{"remainder", 2, 9, 19, 3},
		{"empty", 1, 9, 0, 0},
		{"unpaged", 0, 0, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.page, meta.Page)
		})
	}
}
