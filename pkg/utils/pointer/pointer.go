// Package pointer bridges values and pointers, mainly for optional fields.
package pointer

// Ref returns a pointer to t, usable on literals and call results.
func Ref[T any](t T) *T {
	return &t
}

// SafeDeref dereferences val, falling back to the zero value when val is nil.
func SafeDeref[T any](val *T) T {
	if val == nil {
		return *new(T)
	}
	return *val
}
