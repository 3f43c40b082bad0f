package triad

import (
	"time"

	"github.com/google/uuid"
)

// Holder is the shared read surface over a wrapper's principal value.
type Holder[T any] interface {
	// GetOr returns the principal value, or def when none is held
	GetOr(def T) T
}

// Traced is implemented by wrappers stamped with creation metadata.
type Traced interface {
	// Id identifies the wrapper instance
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
