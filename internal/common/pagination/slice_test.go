package pagination_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"newsroom-cms/internal/common/pagination"
)

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name       string
		params     pagination.Params
		want       []string
		totalPages int
	}{
		{"first page", pagination.Params{Page: 1, Limit: 2}, []string{"a", "b"}, 3},
		{"middle page", pagination.Params{Page: 2, Limit: 2}, []string{"c", "d"}, 3},
		{"short last page", pagination.Params{Page: 3, Limit: 2}, []string{"e"}, 3},
		{"past the end", pagination.Params{Page: 4, Limit: 2}, []string{}, 3},
		{"whole slice", pagination.Params{Page: 1, Limit: 10}, items, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := pagination.Slice(items, tt.params)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("page mismatch (-want +got):\n%s", diff)
			}
			if meta.Total != int64(len(items)) {
				t.Errorf("Total = %d, want %d", meta.Total, len(items))
			}
			if meta.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", meta.TotalPages, tt.totalPages)
			}
			if meta.Page != tt.params.Page || meta.Limit != tt.params.Limit {
				t.Errorf("metadata echo = %+v", meta)
			}
		})
	}
}

func TestSliceEmpty(t *testing.T) {
	got, meta := pagination.Slice([]int(nil), pagination.Params{Page: 1, Limit: 20})
	if len(got) != 0 {
		t.Fatalf("want empty page, got %v", got)
	}
	if meta.Total != 0 || meta.TotalPages != 1 {
		t.Fatalf("metadata = %+v", meta)
	}
}
