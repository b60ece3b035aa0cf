// Package nullable provides optional-value helpers over Go's native
// absence sentinel, the nil pointer. Each function mirrors an operation of
// package optional without requiring callers to wrap values in a
// container type.
package nullable

func IsPresent[T any](value *T) bool {
	return value != nil
}

// IfPresent invokes consumer with the pointed-to value iff value is
// non-nil.
func IfPresent[T any](value *T, consumer func(T)) {
	if consumer == nil {
		panic("nullable: nil consumer")
	}
	if value != nil {
		consumer(*value)
	}
}

// IfNotPresent invokes action iff value is nil.
func IfNotPresent[T any](value *T, action func()) {
	if action == nil {
		panic("nullable: nil action")
	}
	if value == nil {
		action()
	}
}

// Filter returns value when the predicate accepts the pointed-to value,
// nil otherwise. The predicate is never invoked on a nil value.
func Filter[T any](value *T, predicate func(T) bool) *T {
	if predicate == nil {
		panic("nullable: nil predicate")
	}
	if value != nil && predicate(*value) {
		return value
	}
	return nil
}

func OrElse[T any](value *T, defaultValue T) T {
	if value != nil {
		return *value
	}
	return defaultValue
}

// OrElseGet returns the pointed-to value if non-nil; otherwise it invokes
// supplier once for the fallback.
func OrElseGet[T any](value *T, supplier func() T) T {
	if supplier == nil {
		panic("nullable: nil supplier")
	}
	if value != nil {
		return *value
	}
	return supplier()
}

// OrElseErr returns the pointed-to value if non-nil; otherwise it invokes
// errFn once and returns its error verbatim alongside the zero value.
func OrElseErr[T any](value *T, errFn func() error) (T, error) {
	if errFn == nil {
		panic("nullable: nil error supplier")
	}
	if value != nil {
		return *value, nil
	}
	var zero T
	return zero, errFn()
}

// Map applies fn to the pointed-to value; nil in, nil out. The function is
// never invoked on a nil value. When R is itself a pointer-like type the
// result may point at fn's nil, so guard with OrElse before chaining.
func Map[T, R any](value *T, fn func(T) R) *R {
	if fn == nil {
		panic("nullable: nil mapping function")
	}
	if value == nil {
		return nil
	}
	out := fn(*value)
	return &out
}

// Ptr returns a pointer to v, for building nullable arguments out of
// literals and call results.
func Ptr[T any](v T) *T {
	return &v
}
