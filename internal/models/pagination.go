package models

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 8
	MaxLimit     = 100

	// MaxPage keeps Offset within int for every allowed limit.
	MaxPage = math.MaxInt / MaxLimit
)

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest falls back to the defaults for out of range values.
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

	if page > MaxPage {
		page = MaxPage
	}

	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
