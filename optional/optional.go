// Package optional provides a tagged container for values that may be
// absent, so that absence is distinguishable from a valid zero value
// without resorting to nil-pointer sentinels.
package optional

import (
	"github.com/pkg/errors"
)

// ErrAbsent is returned by Get, and is the panic value of Must, when no
// value is present.
var ErrAbsent = errors.New("optional: no value present")

type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		present: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a nil-able pointer into an option, dereferencing it
// when non-nil.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (me Option[T]) IsPresent() bool {
	return me.present
}

func (me Option[T]) Unpack() (T, bool) {
	return me.value, me.present
}

// Get returns the value, or ErrAbsent annotated with the call stack when
// no value is present.
func (me Option[T]) Get() (T, error) {
	if !me.present {
		return me.value, errors.WithStack(ErrAbsent)
	}
	return me.value, nil
}

// Must returns the value, panicking with ErrAbsent when none is present.
func (me Option[T]) Must() T {
	if !me.present {
		panic(ErrAbsent)
	}
	return me.value
}

func (me Option[T]) OrElse(defaultValue T) T {
	if me.present {
		return me.value
	}
	return defaultValue
}

// OrElseGet returns the value if present; otherwise it invokes supplier
// once for the fallback. The supplier is not invoked on a present option.
func (me Option[T]) OrElseGet(supplier func() T) T {
	if supplier == nil {
		panic("optional: nil supplier")
	}
	if me.present {
		return me.value
	}
	return supplier()
}

// OrElseErr returns the value if present; otherwise it invokes errFn once
// and returns its error verbatim alongside the zero value.
func (me Option[T]) OrElseErr(errFn func() error) (T, error) {
	if errFn == nil {
		panic("optional: nil error supplier")
	}
	if me.present {
		return me.value, nil
	}
	var zero T
	return zero, errFn()
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (me Option[T]) Ptr() *T {
	if !me.present {
		return nil
	}
	v := me.value
	return &v
}
