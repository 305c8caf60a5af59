package pagination

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewResultMiddlePage(t *testing.T) {
	data := []string{"a", "b", "c"}
	res := NewResult(data, 95, Params{Page: 2, Limit: 10})

	require.Equal(t, data, res.Data)
	require.Equal(t, 2, res.Pagination.Page)
	require.Equal(t, 10, res.Pagination.Limit)
	require.Equal(t, 95, res.Pagination.Total)
	require.Equal(t, 10, res.Pagination.TotalPages)
	require.True(t, res.Pagination.HasNext)
	require.True(t, res.Pagination.HasPrev)

	next := decodePage(t, res.Pagination.NextCursor)
	require.Equal(t, 3, next.Page)
	require.Equal(t, 10, next.Limit)

	prev := decodePage(t, res.Pagination.PrevCursor)
	require.Equal(t, 1, prev.Page)
}

func TestNewResultFirstPage(t *testing.T) {
	res := NewResult([]int{1, 2}, 20, Params{Page: 1, Limit: 10})

	require.True(t, res.Pagination.HasNext)
	require.False(t, res.Pagination.HasPrev)
	require.Empty(t, res.Pagination.PrevCursor)
}

func TestNewResultLastPage(t *testing.T) {
	res := NewResult([]int{1}, 21, Params{Page: 3, Limit: 10})

	require.Equal(t, 3, res.Pagination.TotalPages)
	require.False(t, res.Pagination.HasNext)
	require.True(t, res.Pagination.HasPrev)
	require.Empty(t, res.Pagination.NextCursor)
}

func TestNewResultEmpty(t *testing.T) {
	res := NewResult([]string(nil), 0, Params{Page: 1, Limit: 10})

	require.Empty(t, res.Data)
	require.Equal(t, 0, res.Pagination.TotalPages)
	require.False(t, res.Pagination.HasNext)
	require.False(t, res.Pagination.HasPrev)
}

func TestNewResultTotalPagesRoundsUp(t *testing.T) {
	res := NewResult([]int{1}, 11, Params{Page: 1, Limit: 10})
	require.Equal(t, 2, res.Pagination.TotalPages)
}

func decodePage(t *testing.T, token string) pageCursor {
	t.Helper()
	require.NotEmpty(t, token)

	data, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)

	var c pageCursor
	require.NoError(t, json.Unmarshal(data, &c))
	return c
}
