package database

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("database: key not found")

// Store is the key-value store bookings live in: opaque JSON values by key,
// plus append-only lists of ids.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	ListAppend(ctx context.Context, listKey, id string) error
	// ListRange returns list elements start..end inclusive. Negative
	// indexes count from the end, as in Redis LRANGE.
	ListRange(ctx context.Context, listKey string, start, end int64) ([]string, error)
	Ping(ctx context.Context) error
}

// rangeBounds converts LRANGE-style bounds to a half-open slice range over
// n elements. ok is false when the range is empty.
func rangeBounds(n, start, end int64) (lo, hi int64, ok bool) {
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end >= n {
		end = n - 1
	}
	if start > end || start >= n {
		return 0, 0, false
	}
	return start, end + 1, true
}
