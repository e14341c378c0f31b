package models

import "math"

const (
	// DefaultPageLimit is used when a list request does not set a limit.
	DefaultPageLimit uint64 = 100

	// MaxPageLimit caps the number of records returned by one list request.
	MaxPageLimit uint64 = 1000

	// MaxPageSkip is the largest offset the database drivers accept.
	MaxPageSkip uint64 = math.MaxInt64
)

// SortDirection orders a list ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Page selects a window of records. Without OrderBy records are ordered by
// id.
type Page struct {
	// Skip is the number of leading records to leave out.
	Skip uint64 `json:"skip" validate:"max=9223372036854775807"`

	// Limit is the maximum number of records to return.
	Limit uint64 `json:"limit" validate:"min=1,max=1000"`

	// Search keeps only records whose text columns contain the term.
	Search string `json:"search" validate:"max=255"`

	// OrderBy names the sort column. Each record kind accepts its own set of
	// columns; the store rejects the others.
	OrderBy string `json:"order_by" validate:"omitempty,max=64"`

	OrderDir SortDirection `json:"order_dir" validate:"omitempty,oneof=asc desc"`
}

// DefaultPage returns the first page with the default limit.
func DefaultPage() Page {
	return Page{Limit: DefaultPageLimit}
}

// PageInfo describes where a listed page sits in the whole result set.
type PageInfo struct {
	Total      uint64
	TotalPages uint64
	HasNext    bool
}

// NewPageInfo computes the paging metadata of a page that returned n records
// out of total matching ones.
func NewPageInfo(page Page, n int, total uint64) PageInfo {
	info := PageInfo{Total: total}
	if page.Limit > 0 {
		info.TotalPages = (total + page.Limit - 1) / page.Limit
	}
	info.HasNext = page.Skip+uint64(n) < total
	return info
}
