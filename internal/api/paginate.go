package api

import (
	"context"
	"net/url"
	"strconv"
)

// PageParams is the pagination convention shared by every list
// endpoint.
type PageParams struct {
	Page     int
	PageSize int
	Search   string
}

// Values encodes the parameters, omitting unset fields.
func (p PageParams) Values() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	return values
}

// Paginated is the standard list response envelope.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// GetPaginated fetches one page of a list endpoint.
func GetPaginated[T any](ctx context.Context, c *Client, path string, params PageParams) (Paginated[T], error) {
	var page Paginated[T]
	err := c.Get(ctx, path, params.Values(), &page)
	return page, err
}
