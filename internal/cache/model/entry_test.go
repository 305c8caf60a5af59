package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsExpired(t *testing.T) {
	now := time.UnixMilli(1_000_000)
	e := NewEntry("k", "v", 100*time.Millisecond, nil, 10, now)

	require.False(t, e.IsExpired(now))
	require.False(t, e.IsExpired(now.Add(100*time.Millisecond)))
	require.True(t, e.IsExpired(now.Add(101*time.Millisecond)))
}

func TestZeroTTLEntryIsImmortal(t *testing.T) {
	now := time.UnixMilli(1_000_000)
	e := NewEntry("k", "v", 0, nil, 10, now)

	require.False(t, e.IsExpired(now.Add(24*365*time.Hour)))
}

func TestNilEntryIsNotExpired(t *testing.T) {
	var e *Entry[string]
	require.False(t, e.IsExpired(time.Now()))
}

func TestTouch(t *testing.T) {
	now := time.UnixMilli(1_000_000)
	e := NewEntry("k", "v", time.Minute, nil, 10, now)
	require.Equal(t, int64(0), e.AccessCount())
	require.Equal(t, now.UnixMilli(), e.TouchedAt())

	later := now.Add(5 * time.Second)
	e.Touch(later)
	e.Touch(later)

	require.Equal(t, int64(2), e.AccessCount())
	require.Equal(t, later.UnixMilli(), e.TouchedAt())
	// creation time is fixed, only the read timestamp moves
	require.Equal(t, now.UnixMilli(), e.CreatedAt())
}

func TestHasAnyTag(t *testing.T) {
	now := time.UnixMilli(1_000_000)
	tagged := NewEntry("k", "v", 0, []string{"inventory", "report"}, 10, now)
	bare := NewEntry("k", "v", 0, nil, 10, now)

	require.True(t, tagged.HasAnyTag([]string{"report"}))
	require.True(t, tagged.HasAnyTag([]string{"missing", "inventory"}))
	require.False(t, tagged.HasAnyTag([]string{"missing"}))
	require.False(t, tagged.HasAnyTag(nil))
	require.False(t, bare.HasAnyTag([]string{"inventory"}))
}

func TestTTLRoundTrip(t *testing.T) {
	e := NewEntry("k", "v", 1500*time.Millisecond, nil, 10, time.UnixMilli(0))
	require.Equal(t, 1500*time.Millisecond, e.TTL())
}
