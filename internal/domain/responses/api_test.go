package responses_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/domain/responses"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalItems int64
		wantPages  int
	}{
		{"empty", 1, 10, 0, 0},
		{"exact fit", 1, 10, 100, 10},
		{"remainder rounds up", 1, 10, 42, 5},
		{"single item", 1, 10, 1, 1},
		{"page size one", 3, 1, 7, 7},
		{"large page size", 1, 100, 5, 1},
		{"page beyond range kept as-is", 9, 10, 12, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := responses.NewPagination(tt.page, tt.pageSize, tt.totalItems)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.totalItems, p.TotalItems)
			assert.Equal(t, tt.wantPages, p.TotalPages)
		})
	}
}

func TestNewPaginationInvariant(t *testing.T) {
	// total_pages == ceil(total_items / page_size), zero iff no items.
	for pageSize := 1; pageSize <= 25; pageSize++ {
		for totalItems := int64(0); totalItems <= 120; totalItems++ {
			p := responses.NewPagination(1, pageSize, totalItems)
			want := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
			if p.TotalPages != want {
				t.Fatalf("pageSize=%d totalItems=%d: got %d pages, want %d",
					pageSize, totalItems, p.TotalPages, want)
			}
			if (p.TotalPages == 0) != (totalItems == 0) {
				t.Fatalf("pageSize=%d totalItems=%d: total_pages zero-iff-empty violated", pageSize, totalItems)
			}
		}
	}
}

func topLevelKeys(t *testing.T, v any) []string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestEnvelopeShapeStability(t *testing.T) {
	// Two different entity types must serialize with identical top-level
	// key sets, differing only in data's inner shape.
	type alpha struct {
		ID int `json:"id"`
	}
	type beta struct {
		Name   string `json:"name"`
		Amount int64  `json:"amount"`
	}

	a := responses.NewResponse("alpha retrieved successfully", alpha{ID: 1})
	b := responses.NewResponse("beta retrieved successfully", beta{Name: "x", Amount: 2})
	assert.Equal(t, topLevelKeys(t, a), topLevelKeys(t, b))
	assert.Equal(t, []string{"data", "message", "status"}, topLevelKeys(t, a))

	pa := responses.NewPaginatedResponse("alphas retrieved successfully", []alpha{{ID: 1}}, responses.NewPagination(1, 10, 1))
	pb := responses.NewPaginatedResponse("betas retrieved successfully", []beta{}, responses.NewPagination(1, 10, 0))
	assert.Equal(t, topLevelKeys(t, pa), topLevelKeys(t, pb))
	assert.Equal(t, []string{"data", "message", "pagination", "status"}, topLevelKeys(t, pa))
}

func TestEnvelopeStatusLiteral(t *testing.T) {
	resp := responses.NewResponse("ok", true)
	assert.Equal(t, "success", resp.Status)

	paged := responses.NewPaginatedResponse("ok", []int{1, 2}, responses.NewPagination(1, 2, 4))
	assert.Equal(t, "success", paged.Status)
	assert.Equal(t, 2, paged.Pagination.TotalPages)
}

func TestPaginationSerialization(t *testing.T) {
	raw, err := json.Marshal(responses.NewPagination(2, 10, 42))
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":2,"page_size":10,"total_items":42,"total_pages":5}`, string(raw))
}
