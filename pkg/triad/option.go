package triad

import (
	"errors"
	"fmt"
)

// ErrEmptyUnwrap signals Unwrap being called on an absent Option. It
// marks a caller invariant violation (the branch was not checked first)
// and is raised as a panic, not returned.
var ErrEmptyUnwrap = errors.New("triad: unwrap of absent option")

// Option holds a value of type T, or nothing. Absence is a type-level
// state: T's own zero value is an ordinary present value, only the
// explicit absence marker (nil at a FromNillable/FromPtr boundary, or
// the Absent constructor) produces the absent state.
type Option[T any] struct {
	value   T
	present bool
}

// Present constructs an Option holding v.
func Present[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// Absent constructs an Option holding nothing.
func Absent[T any]() Option[T] {
	return Option[T]{}
}

// FromNillable treats nil — typed or untyped — as the absence marker.
// Any non-nil raw is Present and must hold a T; T's zero value is still
// Present.
func FromNillable[T any](raw any) Option[T] {
	if IsNil(raw) {
		return Absent[T]()
	}
	return Present(raw.(T))
}

// FromPtr is the pointer-shaped boundary constructor: nil is Absent,
// anything else is Present holding the pointee.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// IsPresent reports whether a value is held.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// IsAbsent reports whether nothing is held.
func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOr returns the held value, or def when absent.
func (o Option[T]) GetOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// IfPresent invokes consumer with the held value, exactly once, only
// when present. This is the type's only sanctioned side-effecting
// operation.
func (o Option[T]) IfPresent(consumer func(T)) {
	if o.present {
		consumer(o.value)
	}
}

// Unwrap returns the held value. It panics with ErrEmptyUnwrap when
// absent: there is no second slot to fall back to, and an unchecked
// unwrap is a logic error in the caller's branch analysis.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic(ErrEmptyUnwrap)
	}
	return o.value
}

// Equal reports structural equality: same presence state and equal held
// value.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return valueEqual(o.value, other.value)
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Absent"
}
