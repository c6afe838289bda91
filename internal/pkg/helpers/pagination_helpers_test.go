package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 4, 0, 4},
		{"second page", 2, 4, 4, 4},
		{"tenth page", 10, 4, 36, 4},
		{"zero page falls back to first", 0, 4, 0, 4},
		{"negative page falls back to first", -3, 4, 0, 4},
		{"zero size falls back to default", 2, 0, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		size      int
		wantPages int
		wantPage  int
	}{
		{"empty catalog", 0, 1, 4, 0, 1},
		{"exact multiple", 8, 1, 4, 2, 1},
		{"partial last page", 9, 3, 4, 3, 3},
		{"single item", 1, 1, 4, 1, 1},
		{"page past the end keeps totals", 6, 9, 4, 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.total, tt.page, tt.size)
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.CurrentPage != tt.wantPage {
				t.Errorf("CurrentPage = %d, want %d", info.CurrentPage, tt.wantPage)
			}
			if info.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tt.total)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing", "/", 1},
		{"explicit", "/?page=3", 3},
		{"zero", "/?page=0", 1},
		{"negative", "/?page=-2", 1},
		{"garbage", "/?page=abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", tt.url, nil)
			if got := ParsePage(c); got != tt.want {
				t.Errorf("ParsePage(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}
