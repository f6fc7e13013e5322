package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"empty result still one page", 0, 1, 20, 1, false, false},
		{"exact fit", 40, 1, 20, 2, true, false},
		{"ceil partial page", 41, 1, 20, 3, true, false},
		{"last page", 41, 3, 20, 3, false, true},
		{"middle page", 100, 3, 10, 10, true, true},
		{"invalid perPage falls back", 10, 1, 0, 1, false, false},
		{"invalid page clamps to 1", 10, 0, 20, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext || p.HasPrev != tt.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v",
					p.HasNext, p.HasPrev, tt.wantNext, tt.wantPrev)
			}
			if p.Total != tt.total {
				t.Errorf("Total = %d, want %d", p.Total, tt.total)
			}
		})
	}
}
