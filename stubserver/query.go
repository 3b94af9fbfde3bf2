package stubserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// paginationParams reads the standard page/page_size query parameters,
// clamped to the backend's 1..100 window.
func paginationParams(c *fiber.Ctx) (page, pageSize int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = c.QueryInt("page_size", 50)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// calcTotalPages rounds up, with at least one page for an empty set.
func calcTotalPages(total int64, pageSize int) int {
	if total == 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// dateRangeFilter applies inclusive date_from / date_to (YYYY-MM-DD) bounds
// to a created_at column.
func dateRangeFilter(c *fiber.Ctx, query *gorm.DB) *gorm.DB {
	if raw := c.Query("date_from"); raw != "" {
		if from, err := time.Parse("2006-01-02", raw); err == nil {
			query = query.Where("created_at >= ?", from)
		}
	}
	if raw := c.Query("date_to"); raw != "" {
		if to, err := time.Parse("2006-01-02", raw); err == nil {
			query = query.Where("created_at < ?", to.AddDate(0, 0, 1))
		}
	}
	return query
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}
