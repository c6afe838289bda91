package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/selim/lostfound/internal/app/models/dto"
)

const (
	// ItemPageSize is the fixed catalog page size.
	ItemPageSize = 4
	// DefaultPage is 1-based.
	DefaultPage = 1
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based
// on a 1-based page index.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	if size <= 0 {
		size = ItemPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	return uint64((page - 1) * size), size
}

// NewPaginationInfo creates a standard PaginationInfo DTO from a 1-based page
// number. Total pages is ceiling(total/size); total=0 and a page beyond the
// last one are both valid and produce an empty page, never an error.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = ItemPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePage extracts the 1-based page query parameter, defaulting to 1.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}
