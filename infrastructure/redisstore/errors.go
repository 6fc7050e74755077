package redisstore

import "github.com/pkg/errors"

var (
	// ErrCookiesNotFound means no session cookies are provisioned for the
	// account (or they expired and were evicted). Cookies are refreshed by
	// an external process, so callers surface this without retrying.
	ErrCookiesNotFound = errors.New("session cookies not found")

	// ErrQueueEmpty is the typed miss returned by Dequeue on an empty
	// queue, distinguished from transport failures.
	ErrQueueEmpty = errors.New("notification queue is empty")
)
