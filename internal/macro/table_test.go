package macro_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/shilop/internal/macro"
	"github.com/jcorbin/shilop/internal/num"
	"github.com/jcorbin/shilop/internal/word"
)

// expandAll expands name until only non-macro words remain, failing the test
// if that takes more rounds than there are macros.
func expandAll(t *testing.T, table *macro.Table, name string) []string {
	t.Helper()
	words := []string{name}
	for round := 0; ; round++ {
		require.LessOrEqual(t, round, table.Len(), "expansion of %q must terminate", name)
		var next []string
		expanded := false
		for _, w := range words {
			if body, ok := table.Expand(w); ok {
				next = append(next, body...)
				expanded = true
			} else {
				next = append(next, w)
			}
		}
		words = next
		if !expanded {
			return words
		}
	}
}

func Test_Build_valid(t *testing.T) {
	table, err := macro.Build(map[string][]string{
		"sq":     {"2", "pow"},
		"hyp":    {"sq", "swap", "sq", "+", "0.5", "pow"},
		"tau":    {"2", "pi", "*"},
		"Circle": {"sq", "PI", "*"},
		"nop":    {},
		"cis":    {"i", "exp"},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())
	assert.Equal(t, []string{"circle", "cis", "hyp", "nop", "sq", "tau"}, table.Names())

	for _, name := range table.Names() {
		for _, w := range expandAll(t, table, name) {
			assert.True(t, word.IsReserved(w) || num.IsLiteral(w),
				"expected %q to expand into reserved words and literals, got %q", name, w)
		}
	}
	assert.Equal(t,
		[]string{"2", "pow", "swap", "2", "pow", "+", "0.5", "pow"},
		expandAll(t, table, "hyp"))
	assert.Empty(t, expandAll(t, table, "nop"))
}

func Test_Table_Expand(t *testing.T) {
	table, err := macro.Build(map[string][]string{
		"Double": {"2", "*"},
		"pi":     {"3"},
		"SWAP":   {"pop"},
	})
	require.NoError(t, err)

	body, ok := table.Expand("double")
	require.True(t, ok, "names are normalized to lower case")
	assert.Equal(t, []string{"2", "*"}, body)
	body, ok = table.Expand("DOUBLE")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "*"}, body)

	_, ok = table.Expand("pi")
	assert.False(t, ok, "reserved words are never expanded")
	_, ok = table.Expand("swap")
	assert.False(t, ok, "reserved words are never expanded")
	_, ok = table.Expand("triple")
	assert.False(t, ok)

	var none *macro.Table
	_, ok = none.Expand("double")
	assert.False(t, ok)
	assert.Equal(t, 0, none.Len())
	assert.Nil(t, none.Names())
}

func Test_Build_normalizes_bodies(t *testing.T) {
	table, err := macro.Build(map[string][]string{
		"circle": {"SQ", "PI", "*"},
		"sq":     {"2", "POW"},
	})
	require.NoError(t, err)
	body, _ := table.Expand("circle")
	assert.Equal(t, []string{"sq", "pi", "*"}, body)
}

func Test_Build_conflicting_case(t *testing.T) {
	_, err := macro.Build(map[string][]string{
		"Foo": {"1"},
		"foo": {"2"},
	})
	assert.EqualError(t, err, `macro "foo" conflicts with "Foo": names are case-insensitive`)
}

func Test_Build_invalid(t *testing.T) {
	for _, tc := range []struct {
		name       string
		entries    map[string][]string
		cycles     [][]string
		unresolved []macro.Unresolved
		errStr     string
	}{
		{
			name: "mutual cycle",
			entries: map[string][]string{
				"a": {"b"},
				"b": {"a"},
			},
			cycles: [][]string{{"a", "b", "a"}},
			errStr: "invalid macros: cycle a -> b -> a",
		},
		{
			name: "self reference",
			entries: map[string][]string{
				"again": {"1", "again", "+"},
			},
			cycles: [][]string{{"again", "again"}},
			errStr: "invalid macros: cycle again -> again",
		},
		{
			name: "long cycle through a valid prefix",
			entries: map[string][]string{
				"a": {"1", "b"},
				"b": {"c", "+"},
				"c": {"2", "d"},
				"d": {"b"},
			},
			cycles: [][]string{{"b", "c", "d", "b"}},
			errStr: "invalid macros: cycle b -> c -> d -> b",
		},
		{
			name: "undefined word",
			entries: map[string][]string{
				"a": {"zzz"},
			},
			unresolved: []macro.Unresolved{{"a", "zzz"}},
			errStr:     `invalid macros: "a" uses undefined word "zzz"`,
		},
		{
			name: "undefined word behind another macro",
			entries: map[string][]string{
				"outer": {"inner", "1", "+"},
				"inner": {"dup", "dup"},
			},
			unresolved: []macro.Unresolved{{"inner", "dup"}},
			errStr:     `invalid macros: "inner" uses undefined word "dup"`,
		},
		{
			name: "everything wrong",
			entries: map[string][]string{
				"x": {"y", "nope"},
				"y": {"x"},
				"z": {"1", "2", "huh"},
			},
			cycles: [][]string{{"x", "y", "x"}},
			unresolved: []macro.Unresolved{
				{"x", "nope"},
				{"z", "huh"},
			},
			errStr: `invalid macros: cycle x -> y -> x; "x" uses undefined word "nope"; "z" uses undefined word "huh"`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			table, err := macro.Build(tc.entries)
			assert.Nil(t, table)
			require.Error(t, err)
			assert.EqualError(t, err, tc.errStr)

			var invalid *macro.InvalidError
			require.True(t, errors.As(err, &invalid), "expected an *InvalidError")
			assert.Equal(t, tc.cycles, invalid.Cycles)
			assert.Equal(t, tc.unresolved, invalid.Unresolved)
		})
	}
}
