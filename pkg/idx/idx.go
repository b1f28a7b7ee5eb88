// Package idx generates ULID identifiers, used for request IDs.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a fresh ULID. Safe for concurrent use; the monotonic entropy
// source keeps IDs ordered within the same millisecond.
func New() ID {
	mu.Lock()
	defer mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}

func (id ID) String() string { return string(id) }
