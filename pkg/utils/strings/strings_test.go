package strings_test

import (
	"testing"

	kstrings "github.com/shopfab/shopfab/pkg/utils/strings"
)

func TestTrimPrefixAll(t *testing.T) {
	for name, testcase := range map[string]struct {
		s      string
		prefix string
		want   string
	}{
		"prefix occuring once":       {"aaabbbccc", "aaab", "bbccc"},
		"prefix occuring repeatedly": {"aaabbbccc", "a", "bbbccc"},
		"prefix not occuring":        {"aaabbbccc", "x", "aaabbbccc"},
	} {
		t.Run(name, func(t *testing.T) {
			got := kstrings.TrimPrefixAll(testcase.s, testcase.prefix)
			if got != testcase.want {
				t.Errorf("unmatch: (got, want) = (%s, %s)", got, testcase.want)
			}
		})
	}
}

func TestSupplySuffix(t *testing.T) {
	t.Run("when text lacks suffix, it appends", func(t *testing.T) {
		if got := kstrings.SupplySuffix("/api", "/"); got != "/api/" {
			t.Errorf("unmatch: %s", got)
		}
	})
	t.Run("when text has suffix, it keeps text as is", func(t *testing.T) {
		if got := kstrings.SupplySuffix("/api/", "/"); got != "/api/" {
			t.Errorf("unmatch: %s", got)
		}
	})
}
