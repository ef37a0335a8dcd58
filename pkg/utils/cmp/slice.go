package cmp

func SliceEq[T comparable](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for nth, va := range a {
		if va != b[nth] {
			return false
		}
	}
	return true
}

func SliceEqWith[T any, U any](a []T, b []U, pred func(a T, b U) bool) bool {
	if len(a) != len(b) {
		return false
	}

	for nth := range a {
		if !pred(a[nth], b[nth]) {
			return false
		}
	}

	return true
}

// Check A and B have the same content, ignoring ordering.
//
// Each element in A is matched with an element in B at most once.
func SliceContentEq[T comparable](a []T, b []T) bool {
	return SliceContentEqWith(a, b, func(a, b T) bool { return a == b })
}

// SliceContentEq in some equivalency other than ==.
func SliceContentEqWith[T any, U any](a []T, b []U, pred func(a T, b U) bool) bool {
	if len(a) != len(b) {
		return false
	}

	used := make([]bool, len(b))

AHEAD:
	for _, va := range a {
		for nth, vb := range b {
			if used[nth] {
				continue
			}
			if pred(va, vb) {
				used[nth] = true
				continue AHEAD
			}
		}
		return false
	}
	return true
}
