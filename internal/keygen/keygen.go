// Package keygen builds canonicalized request-fingerprint cache keys.
//
// Cached query results are keyed by entity plus the parameters that produced
// them. Two parameter maps with the same contents must yield the same key
// regardless of insertion order, so parameters are canonicalized before
// hashing.
package keygen

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/zeebo/xxh3"
)

var hasherPool = sync.Pool{New: func() any { return xxh3.New() }}

// Fingerprint returns a stable cache key of the form "entity:hex64".
func Fingerprint(entity string, params url.Values) string {
	// acquire reusable hasher
	hasher := hasherPool.Get().(*xxh3.Hasher)
	hasher.Reset()

	_, _ = hasher.Write([]byte(canonicalize(params)))
	sum := hasher.Sum64()

	// release hasher after use
	hasherPool.Put(hasher)

	return entity + ":" + strconv.FormatUint(sum, 16)
}

// canonicalize renders params as sorted "k=v" pairs joined by "&".
// Repeated values of one key are sorted as well.
func canonicalize(params url.Values) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		values := append([]string(nil), params[k]...)
		sort.Strings(values)
		for _, v := range values {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(v)
		}
	}
	return sb.String()
}
