package pagination

// Meta is fully derived from (page, limit, total) and carries no independent
// lifecycle.
type Meta struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
	NextCursor string `json:"nextCursor,omitempty"`
	PrevCursor string `json:"prevCursor,omitempty"`
}

// Result is the offset-paginated envelope.
type Result[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// NewResult builds the envelope for one page of rows. The embedded cursors
// are aliases for (page±1, limit): they only make sense together with offset
// pagination and shift when rows are inserted concurrently. Callers that
// need resume tokens stable under concurrent writes must use NewCursorResult
// instead.
func NewResult[T any](data []T, total int, p Params) Result[T] {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	meta := Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
	if meta.HasNext {
		meta.NextCursor = encodePage(p.Page+1, p.Limit)
	}
	if meta.HasPrev {
		meta.PrevCursor = encodePage(p.Page-1, p.Limit)
	}

	return Result[T]{Data: data, Pagination: meta}
}
