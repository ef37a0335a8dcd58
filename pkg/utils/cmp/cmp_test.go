package cmp_test

import (
	"testing"

	"github.com/shopfab/shopfab/pkg/utils/cmp"
)

func TestSliceEq(t *testing.T) {
	t.Run("it should equal slices with same items in same order", func(t *testing.T) {
		if !cmp.SliceEq([]int{1, 2, 3}, []int{1, 2, 3}) {
			t.Error("equal slices are not equal")
		}
	})
	t.Run("it should differ when order differs", func(t *testing.T) {
		if cmp.SliceEq([]int{1, 2, 3}, []int{3, 2, 1}) {
			t.Error("reordered slices are equal")
		}
	})
	t.Run("it should differ when length differs", func(t *testing.T) {
		if cmp.SliceEq([]int{1, 2}, []int{1, 2, 3}) {
			t.Error("slices of different lengths are equal")
		}
	})
}

func TestSliceContentEq(t *testing.T) {
	t.Run("it should ignore ordering", func(t *testing.T) {
		if !cmp.SliceContentEq([]string{"a", "b", "c"}, []string{"c", "a", "b"}) {
			t.Error("same content in different order is not equal")
		}
	})
	t.Run("it should match each item at most once", func(t *testing.T) {
		if cmp.SliceContentEq([]string{"a", "a"}, []string{"a", "b"}) {
			t.Error("duplicated item matched twice")
		}
	})
}

func TestMapEq(t *testing.T) {
	t.Run("it should equal maps with same entries", func(t *testing.T) {
		if !cmp.MapEq(
			map[string]int{"a": 1, "b": 2},
			map[string]int{"b": 2, "a": 1},
		) {
			t.Error("equal maps are not equal")
		}
	})
	t.Run("it should differ when a value differs", func(t *testing.T) {
		if cmp.MapEq(
			map[string]int{"a": 1, "b": 2},
			map[string]int{"a": 1, "b": 3},
		) {
			t.Error("maps with different values are equal")
		}
	})
	t.Run("it should differ when a key is missing", func(t *testing.T) {
		if cmp.MapEq(
			map[string]int{"a": 1, "b": 2},
			map[string]int{"a": 1},
		) {
			t.Error("maps with different keys are equal")
		}
	})
}

func TestMapGeqWith(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	t.Run("it should accept a superset", func(t *testing.T) {
		if !cmp.MapGeqWith(
			map[string]int{"a": 1, "b": 2},
			map[string]int{"a": 1},
			eq,
		) {
			t.Error("superset is not geq")
		}
	})
	t.Run("it should reject when an entry is missing", func(t *testing.T) {
		if cmp.MapGeqWith(
			map[string]int{"a": 1},
			map[string]int{"a": 1, "b": 2},
			eq,
		) {
			t.Error("subset is geq")
		}
	})
}
