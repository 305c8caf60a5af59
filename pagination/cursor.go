package pagination

import (
	"encoding/base64"
	"encoding/json"
)

// Cursor is a resume point for cursor-based iteration, taken from a row's
// identity and creation time (epoch millis).
type Cursor struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

// pageCursor is the offset-alias token embedded in offset envelopes.
type pageCursor struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// EncodeCursor renders (id, timestamp) as an opaque, reversible token.
func EncodeCursor(id string, timestamp int64) string {
	data, _ := json.Marshal(Cursor{ID: id, Timestamp: timestamp})
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeCursor reverses EncodeCursor. It returns nil on any malformed input;
// callers treat a nil cursor as "start from the beginning", never as an error.
func DecodeCursor(token string) *Cursor {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	var c Cursor
	if err = json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

func encodePage(page, limit int) string {
	data, _ := json.Marshal(pageCursor{Page: page, Limit: limit})
	return base64.StdEncoding.EncodeToString(data)
}

// CursorResult is the envelope for true cursor pagination. Its tokens come
// from row identities, so they stay stable when rows are inserted ahead of
// the cursor. It is a distinct type from Result on purpose: an offset-alias
// cursor must not be mistaken for one of these.
type CursorResult[T any] struct {
	Data       []T    `json:"data"`
	NextCursor string `json:"nextCursor,omitempty"`
	PrevCursor string `json:"prevCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// KeyFunc extracts the cursor identity of a row.
type KeyFunc[T any] func(row T) (id string, timestamp int64)

// NewCursorResult derives NextCursor from the last row and PrevCursor from
// the first. NextCursor is only set while more rows exist.
func NewCursorResult[T any](data []T, hasMore bool, key KeyFunc[T]) CursorResult[T] {
	res := CursorResult[T]{Data: data, HasMore: hasMore}
	if len(data) == 0 {
		return res
	}

	if hasMore {
		id, ts := key(data[len(data)-1])
		res.NextCursor = EncodeCursor(id, ts)
	}
	id, ts := key(data[0])
	res.PrevCursor = EncodeCursor(id, ts)

	return res
}

// CursorQuery describes the fetch for one cursor page. FetchLimit is always
// Limit+1: the extra row only signals that another page exists and is
// trimmed again by ProcessCursorResults.
type CursorQuery struct {
	After      *Cursor
	Limit      int
	FetchLimit int
	SortBy     string
	SortOrder  Order
}

// BuildCursorQuery prepares the fetch for the page after cursor. A nil
// cursor starts from the beginning.
func BuildCursorQuery(after *Cursor, p Params) CursorQuery {
	return CursorQuery{
		After:      after,
		Limit:      p.Limit,
		FetchLimit: p.Limit + 1,
		SortBy:     p.SortBy,
		SortOrder:  p.SortOrder,
	}
}

// ProcessCursorResults applies the fetch-one-extra convention: when rows
// holds more than limit entries, the surplus is trimmed and hasMore is true.
func ProcessCursorResults[T any](rows []T, limit int) (data []T, hasMore bool) {
	if limit > 0 && len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
