package models_test

import (
	"testing"

	"ecomarket/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidated(t *testing.T) {
	tests := []struct {
		name           string
		params         models.PaginationParams
		wantPageNumber int
		wantPageSize   int
	}{
		{"defaults", models.PaginationParams{}, 1, 10},
		{"negative page", models.PaginationParams{PageNumber: -3, PageSize: 5}, 1, 5},
		{"size capped at 50", models.PaginationParams{PageNumber: 2, PageSize: 100}, 2, 50},
		{"valid values kept", models.PaginationParams{PageNumber: 4, PageSize: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pageNumber, pageSize := tt.params.Validated()
			assert.Equal(t, tt.wantPageNumber, pageNumber)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := models.NewPaginatedResponse([]string{"a", "b"}, 23, 2, 10)
	assert.Equal(t, 23, resp.TotalItems)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNextPage)
	assert.True(t, resp.HasPreviousPage)

	last := models.NewPaginatedResponse([]string{"c"}, 23, 3, 10)
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPreviousPage)
}
