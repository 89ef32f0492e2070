// Package macro implements user defined words: each macro names a sequence
// of other words that it is replaced by before evaluation.
//
// A Table may only be built through Build, which rejects any set of
// definitions that would fail to expand into reserved words and numeric
// literals; so expanding a built Table always terminates.
package macro

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jcorbin/shilop/internal/word"
)

// Table is an immutable mapping from macro name to its body. The zero Table
// defines no macros.
type Table struct {
	bodies map[string][]string
}

// Build normalizes the given definitions to lower case and validates them,
// returning an *InvalidError if any macro is cyclic or refers to an
// undefined word.
func Build(entries map[string][]string) (*Table, error) {
	t := &Table{bodies: make(map[string][]string, len(entries))}
	authored := make(map[string]string, len(entries))
	for _, name := range sortedKeys(entries) {
		key := strings.ToLower(name)
		if prior, dup := authored[key]; dup {
			return nil, fmt.Errorf("macro %q conflicts with %q: names are case-insensitive", name, prior)
		}
		authored[key] = name
		body := make([]string, len(entries[name]))
		for i, token := range entries[name] {
			body[i] = strings.ToLower(token)
		}
		t.bodies[key] = body
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Expand returns the body of the macro named by token. Reserved words are
// never expanded, even if a macro of the same name was defined.
func (t *Table) Expand(token string) ([]string, bool) {
	if t == nil || word.IsReserved(token) {
		return nil, false
	}
	body, ok := t.bodies[strings.ToLower(token)]
	return body, ok
}

// Len returns the number of defined macros.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.bodies)
}

// Names returns the defined macro names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	return sortedKeys(t.bodies)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
