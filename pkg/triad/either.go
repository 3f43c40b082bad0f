package triad

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Either holds exactly one of two typed alternatives, tagged primary or
// secondary. It is primary-biased: Primary is the default construction
// target and the side that single-argument combinators operate on.
// Values are immutable after construction; combinators return new values.
type Either[P, S any] struct {
	id        uuid.UUID
	createdAt time.Time
	primary   P
	secondary S
	isPrimary bool
}

// Primary constructs the primary variant.
func Primary[P, S any](v P) Either[P, S] {
	return Either[P, S]{
		primary:   v,
		isPrimary: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Secondary constructs the secondary variant.
func Secondary[P, S any](v S) Either[P, S] {
	return Either[P, S]{
		secondary: v,
		isPrimary: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// EitherOf converts a conventional (value, error) pair into a variant:
// a non-nil error becomes the secondary side, otherwise the value is
// primary.
func EitherOf[P any](v P, err error) Either[P, error] {
	if err != nil {
		return Secondary[P, error](err)
	}
	return Primary[P, error](v)
}

// SecondaryFrom rebinds the primary type of a secondary-holding value,
// keeping the payload and creation metadata.
func SecondaryFrom[P2, P, S any](from Either[P, S]) Either[P2, S] {
	return Either[P2, S]{
		id:        from.id,
		createdAt: from.createdAt,
		secondary: from.secondary,
		isPrimary: false,
	}
}

// PrimaryFrom rebinds the secondary type of a primary-holding value,
// keeping the payload and creation metadata.
func PrimaryFrom[S2, P, S any](from Either[P, S]) Either[P, S2] {
	return Either[P, S2]{
		id:        from.id,
		createdAt: from.createdAt,
		primary:   from.primary,
		isPrimary: true,
	}
}

// IsPrimary reports whether the primary side holds.
func (e Either[P, S]) IsPrimary() bool {
	return e.isPrimary
}

// IsSecondary reports whether the secondary side holds.
func (e Either[P, S]) IsSecondary() bool {
	return !e.isPrimary
}

// Primary returns the primary value, or P's zero value when the
// secondary side holds.
func (e Either[P, S]) Primary() P {
	return e.primary
}

// Secondary returns the secondary value, or S's zero value when the
// primary side holds.
func (e Either[P, S]) Secondary() S {
	return e.secondary
}

// Flip swaps variant roles: a primary value becomes the secondary of the
// flipped type and vice versa. Creation metadata is preserved. Used to
// redirect subsequent combinators onto what was the secondary side.
func (e Either[P, S]) Flip() Either[S, P] {
	return Either[S, P]{
		id:        e.id,
		createdAt: e.createdAt,
		primary:   e.secondary,
		secondary: e.primary,
		isPrimary: !e.isPrimary,
	}
}

// Unwrap returns whichever value is held, discarding the wrapper. It is
// a terminal, unconditional projection and never fails.
func (e Either[P, S]) Unwrap() any {
	if e.isPrimary {
		return e.primary
	}
	return e.secondary
}

// GetOr returns the primary value, or def when the secondary side holds.
func (e Either[P, S]) GetOr(def P) P {
	if e.isPrimary {
		return e.primary
	}
	return def
}

// IfPrimary invokes then with the primary value, only when the primary
// side holds.
func (e Either[P, S]) IfPrimary(then func(P)) {
	if e.isPrimary {
		then(e.primary)
	}
}

// IfSecondary invokes then with the secondary value, only when the
// secondary side holds.
func (e Either[P, S]) IfSecondary(then func(S)) {
	if !e.isPrimary {
		then(e.secondary)
	}
}

// Equal reports structural equality: same variant tag and equal held
// value. Creation metadata is ignored. Held values that are both errors
// compare by message.
func (e Either[P, S]) Equal(other Either[P, S]) bool {
	if e.isPrimary != other.isPrimary {
		return false
	}
	if e.isPrimary {
		return valueEqual(e.primary, other.primary)
	}
	return valueEqual(e.secondary, other.secondary)
}

func (e Either[P, S]) String() string {
	if e.isPrimary {
		return fmt.Sprintf("Primary(%v)", e.primary)
	}
	return fmt.Sprintf("Secondary(%v)", e.secondary)
}

// Id identifies this value instance.
func (e Either[P, S]) Id() uuid.UUID {
	return e.id
}

// CreatedAt is the construction time (UTC).
func (e Either[P, S]) CreatedAt() time.Time {
	return e.createdAt
}
