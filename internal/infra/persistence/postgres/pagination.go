package postgres

import "gorm.io/gorm"

const (
	defaultPageSize = 100
	maxPageSize     = 500
)

// paginate bounds a listing to a single page.
func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return query.Limit(limit).Offset(offset)
}
