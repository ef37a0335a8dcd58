package cmp

func MapEq[K comparable, V comparable](a, b map[K]V) bool {
	return MapEqWith(a, b, func(x, y V) bool { return x == y })
}

func MapEqWith[K comparable, V any, W any](a map[K]V, b map[K]W, pred func(V, W) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		if !pred(va, vb) {
			return false
		}
	}
	return true
}

// MapGeqWith checks a ⊇ b ; every entry in b exists in a and matches.
func MapGeqWith[K comparable, V any, W any](a map[K]V, b map[K]W, pred func(V, W) bool) bool {
	for k, vb := range b {
		va, ok := a[k]
		if !ok {
			return false
		}
		if !pred(va, vb) {
			return false
		}
	}
	return true
}
