package builder_test

import (
	"testing"

	"github.com/katalvlaran/maxflow/builder"
)

// TestIDFns verifies each IDFn on valid inputs and its panic on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		{"PrefixIDFn_node", builder.PrefixIDFn("Node"), 7, "Node7", false},
		{"PrefixIDFn_empty", builder.PrefixIDFn(""), 3, "3", false},
		{"PrefixIDFn_neg", builder.PrefixIDFn("v"), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assertPanics(t, func() { tc.fn(tc.input) }, tc.name)
				return
			}
			if got := tc.fn(tc.input); got != tc.want {
				t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
			}
		})
	}
}
