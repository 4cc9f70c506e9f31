package zendesk

import (
	"net/url"
	"strconv"
)

// ListParams carries the paging and ordering arguments shared by the
// collection endpoints. Zero values are omitted from the request.
type ListParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

// Values renders the non-zero fields as query parameters. It returns nil when
// nothing is set so callers can pass the result straight to Request.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set("sort_order", p.SortOrder)
	}
	if len(v) == 0 {
		return nil
	}
	return v
}

// SearchParams carries the arguments for the account-wide search endpoint.
type SearchParams struct {
	Query     string
	SortBy    string
	SortOrder string
}

func (p SearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("query", p.Query)
	if p.SortBy != "" {
		v.Set("sort_by", p.SortBy)
	}
	if p.SortOrder != "" {
		v.Set("sort_order", p.SortOrder)
	}
	return v
}
