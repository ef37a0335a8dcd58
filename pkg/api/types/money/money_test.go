package money_test

import (
	"testing"

	"github.com/shopfab/shopfab/pkg/api/types/money"
)

func TestMoney(t *testing.T) {
	for name, testcase := range map[string]struct {
		cents int64
		price float64
	}{
		"whole dollars":  {1200, 12.00},
		"with cents":     {1299, 12.99},
		"single cent":    {1, 0.01},
		"free of charge": {0, 0},
	} {
		t.Run(name, func(t *testing.T) {
			if got := money.FromCents(testcase.cents); got != testcase.price {
				t.Errorf("FromCents: (got, want) = (%v, %v)", got, testcase.price)
			}
			if got := money.ToCents(testcase.price); got != testcase.cents {
				t.Errorf("ToCents: (got, want) = (%v, %v)", got, testcase.cents)
			}
		})
	}

	t.Run("ToCents rounds instead of truncating", func(t *testing.T) {
		// 19.99 is not exactly representable in binary floating point
		if got := money.ToCents(19.99); got != 1999 {
			t.Errorf("ToCents(19.99) = %d", got)
		}
	})
}
