package slices_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/shopfab/shopfab/pkg/utils/cmp"
	"github.com/shopfab/shopfab/pkg/utils/slices"
)

func TestMap(t *testing.T) {
	t.Run("it maps each element", func(t *testing.T) {
		actual := slices.Map([]int{1, 2, 3}, strconv.Itoa)
		expected := []string{"1", "2", "3"}
		if !cmp.SliceEq(actual, expected) {
			t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
		}
	})

	t.Run("it maps empty to empty", func(t *testing.T) {
		actual := slices.Map([]int{}, strconv.Itoa)
		if len(actual) != 0 {
			t.Errorf("not empty: %v", actual)
		}
	})
}

func TestMapUntilError(t *testing.T) {
	t.Run("when mapper fails midway, it returns the error", func(t *testing.T) {
		expectedErr := errors.New("boom")
		_, err := slices.MapUntilError([]int{1, 2, 3}, func(v int) (int, error) {
			if v == 2 {
				return 0, expectedErr
			}
			return v * 10, nil
		})
		if !errors.Is(err, expectedErr) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestFirst(t *testing.T) {
	t.Run("when an element matches, it returns the first one", func(t *testing.T) {
		v, ok := slices.First([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
		if !ok || v != 2 {
			t.Errorf("unmatch: (%v, %v)", v, ok)
		}
	})

	t.Run("when no element matches, it returns false", func(t *testing.T) {
		_, ok := slices.First([]int{1, 3}, func(v int) bool { return v%2 == 0 })
		if ok {
			t.Error("should not be found")
		}
	})
}

func TestKeysOf(t *testing.T) {
	t.Run("it lists every key exactly once", func(t *testing.T) {
		actual := slices.KeysOf(map[string]int{"a": 1, "b": 2, "c": 3})
		if !cmp.SliceContentEq(actual, []string{"a", "b", "c"}) {
			t.Errorf("unmatch: %v", actual)
		}
	})

	t.Run("it lists empty for an empty map", func(t *testing.T) {
		actual := slices.KeysOf(map[string]int{})
		if len(actual) != 0 {
			t.Errorf("not empty: %v", actual)
		}
	})
}

func TestToMap(t *testing.T) {
	t.Run("it keys each element with keyOf", func(t *testing.T) {
		actual := slices.ToMap([]int{10, 21, 32}, func(v int) int { return v % 10 })
		expected := map[int]int{0: 10, 1: 21, 2: 32}
		if !cmp.MapEq(actual, expected) {
			t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
		}
	})

	t.Run("when keys collide, the last element wins", func(t *testing.T) {
		actual := slices.ToMap([]int{10, 20}, func(v int) int { return v % 10 })
		expected := map[int]int{0: 20}
		if !cmp.MapEq(actual, expected) {
			t.Errorf("unmatch: (actual, expected) = (%v, %v)", actual, expected)
		}
	})
}
