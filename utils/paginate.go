package utils

import "gorm.io/gorm"

// Page is the paginated list envelope returned by index endpoints.
type Page struct {
	Data        any   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// Paginate counts q, then fetches one page of results into dest with the given
// order. q must already carry the model and any filter conditions.
func Paginate(q *gorm.DB, order string, page, perPage int, dest any) (*Page, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	err := q.Session(&gorm.Session{}).
		Order(order).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(dest).Error
	if err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &Page{
		Data:        dest,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}, nil
}
