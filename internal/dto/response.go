package dto

// Response is the envelope every endpoint returns.
type Response struct {
	StatusCode int          `json:"statusCode"`
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Data       interface{}  `json:"data,omitempty"`
	Meta       *Meta        `json:"meta,omitempty"`
	Overview   interface{}  `json:"overview,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

type Meta struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is the normalized page/limit pair of a list call.
type PageRequest struct {
	Page  int
	Limit int
}

func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

func (p PageRequest) Meta(total int64) *Meta {
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return &Meta{TotalItems: total, TotalPages: pages, CurrentPage: p.Page}
}

// Page is a slice of results with pagination metadata.
type Page[T any] struct {
	Data []T
	Meta *Meta
}
