package optional

import "iter"

// IfPresent invokes consumer with the value iff one is present.
func (me Option[T]) IfPresent(consumer func(T)) {
	if consumer == nil {
		panic("optional: nil consumer")
	}
	if me.present {
		consumer(me.value)
	}
}

// IfNotPresent invokes action iff no value is present.
func (me Option[T]) IfNotPresent(action func()) {
	if action == nil {
		panic("optional: nil action")
	}
	if !me.present {
		action()
	}
}

// Filter keeps the value only when predicate accepts it. The predicate is
// never invoked on an absent option.
func (me Option[T]) Filter(predicate func(T) bool) Option[T] {
	if predicate == nil {
		panic("optional: nil predicate")
	}
	if me.present && predicate(me.value) {
		return me
	}
	return None[T]()
}

// Seq yields the value zero or one times.
func (me Option[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if me.present {
			yield(me.value)
		}
	}
}

// Map applies fn to the value of o if present. The function is never
// invoked on an absent option. Map does not inspect fn's result: when R is
// itself a reference-like type the result may hold fn's nil, so guard with
// OrElse before dereferencing.
func Map[T, R any](o Option[T], fn func(T) R) Option[R] {
	if fn == nil {
		panic("optional: nil mapping function")
	}
	if value, ok := o.Unpack(); ok {
		return Some(fn(value))
	}
	return None[R]()
}

// FlatMap applies fn to the value of o if present, without re-wrapping
// fn's own absence decision.
func FlatMap[T, R any](o Option[T], fn func(T) Option[R]) Option[R] {
	if fn == nil {
		panic("optional: nil mapping function")
	}
	if value, ok := o.Unpack(); ok {
		return fn(value)
	}
	return None[R]()
}

// FirstPresent returns the first option holding a value, or None when all
// are absent.
func FirstPresent[T any](opts ...Option[T]) Option[T] {
	for _, opt := range opts {
		if opt.present {
			return opt
		}
	}
	return None[T]()
}
