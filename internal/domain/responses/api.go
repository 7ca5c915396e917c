// Package responses defines the envelope every successful operation
// returns, the pagination contract paged queries obey, and the response
// DTOs built from domain rows. Field names and order are part of the
// external contract and must not vary between endpoints.
package responses

// StatusSuccess is the fixed status literal carried by every envelope.
const StatusSuccess = "success"

// ApiResponse wraps a single value or an unpaged list.
type ApiResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ApiResponsePagination wraps a paged list. data holds at most
// pagination.page_size entries for a correctly paged query; the repository
// honors that bound, the type does not enforce it.
type ApiResponsePagination[T any] struct {
	Status     string     `json:"status"`
	Message    string     `json:"message"`
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination is an immutable page descriptor constructed fresh per query
// response.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewResponse builds a success envelope around a single value or unpaged
// list. The envelope is chosen by the operation's shape, never its outcome;
// errors take the ErrorResponse path instead.
func NewResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// NewPaginatedResponse builds a success envelope around one page of data.
func NewPaginatedResponse[T any](message string, data []T, pagination Pagination) ApiResponsePagination[T] {
	return ApiResponsePagination[T]{
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	}
}

// NewPagination derives total_pages from the item count. Inputs are assumed
// pre-validated (page >= 1, pageSize >= 1); an out-of-range page is returned
// as-is, and callers answer it with an empty data set rather than an error.
func NewPagination(page, pageSize int, totalItems int64) Pagination {
	totalPages := 0
	if pageSize > 0 && totalItems > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// ErrorResponse is the wire shape every failed request renders at the
// transport boundary.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}
