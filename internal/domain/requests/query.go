package requests

// ListQuery carries the common pagination and search parameters for
// list endpoints.
type ListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// Normalize clamps the query to sane values. A missing or non-positive
// page becomes 1; a missing or non-positive page size becomes def, and
// anything above max is capped at max.
func (q *ListQuery) Normalize(def, max int) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = def
	}
	if max > 0 && q.PageSize > max {
		q.PageSize = max
	}
}

// Offset returns the row offset for the normalized query.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// MonthYearQuery selects a month of a given year for stats endpoints.
type MonthYearQuery struct {
	Year  int `form:"year" binding:"required,min=2000"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// YearQuery selects a year for stats endpoints.
type YearQuery struct {
	Year int `form:"year" binding:"required,min=2000"`
}

// CardNumberQuery selects a single card for card-scoped endpoints.
type CardNumberQuery struct {
	CardNumber string `form:"card_number" binding:"required"`
}
