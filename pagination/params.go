// Package pagination converts raw query results and total counts into page
// envelopes and provides opaque, reversible cursor tokens for iteration.
//
// All functions are pure. The only degrading path is DecodeCursor, which
// returns nil instead of failing on malformed input.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

const (
	DefaultLimit  = 10
	MaxLimit      = 100
	DefaultSortBy = "created_at"
)

// Params describes one paginated read.
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder Order
}

// ParseParams builds Params from URL query values. Page is clamped to >= 1,
// limit to [1, MaxLimit]; unparseable values fall back to the defaults.
func ParseParams(query url.Values) Params {
	p := Params{
		Page:      atoiOr(query.Get("page"), 1),
		Limit:     atoiOr(query.Get("limit"), DefaultLimit),
		SortBy:    DefaultSortBy,
		SortOrder: Desc,
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	if sortBy := query.Get("sortBy"); sortBy != "" {
		p.SortBy = sortBy
	}
	if order := Order(query.Get("sortOrder")); order == Asc || order == Desc {
		p.SortOrder = order
	}

	return p
}

// Validation reports structured parameter errors so callers can decide
// whether to reject or clamp.
type Validation struct {
	Valid  bool
	Errors []string
}

// Validate bounds-checks page, limit and sort order. It has no side effects
// and never fails; out-of-range values are reported, not repaired.
func Validate(p Params) Validation {
	var errs []string
	if p.Page < 1 {
		errs = append(errs, "page must be at least 1")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		errs = append(errs, fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
	}
	if p.SortOrder != Asc && p.SortOrder != Desc {
		errs = append(errs, `sortOrder must be "asc" or "desc"`)
	}
	return Validation{Valid: len(errs) == 0, Errors: errs}
}

func atoiOr(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
