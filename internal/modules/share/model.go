// README: Share module constants and sentinel errors.
package share

import (
	"errors"
	"time"
)

// TTL is how long a shared trip stays retrievable.
const TTL = 30 * 24 * time.Hour

// keyPrefix namespaces share records in the backing store.
const keyPrefix = "trip:"

var (
	// ErrNotFound covers unknown ids and expired records alike.
	ErrNotFound = errors.New("shared trip not found")
	// ErrUnavailable means the backing store rejected a write.
	ErrUnavailable = errors.New("share store unavailable")
)
