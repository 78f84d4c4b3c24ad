package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yamakawa/task-tracker-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// GetPaginationParams extracts and validates pagination parameters from the
// request. The second return value is false when the client sent no
// pagination at all, in which case list endpoints return every row.
func GetPaginationParams(c *gin.Context) (PaginationParams, bool) {
	if c.Query("page") == "" && c.Query("limit") == "" {
		return PaginationParams{}, false
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.MinPageSize)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}, true
}
