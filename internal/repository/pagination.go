package repository

import "gorm.io/gorm"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizePagination 归一化分页参数，页大小超过上限时按上限截断。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// applyPagination 应用分页参数；pageSize 为 0 表示不分页。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	page, pageSize = NormalizePagination(page, pageSize)
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
