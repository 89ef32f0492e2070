package macro

import (
	"fmt"
	"strings"

	"github.com/jcorbin/shilop/internal/num"
	"github.com/jcorbin/shilop/internal/word"
)

// InvalidError reports every problem found while validating macros.
type InvalidError struct {
	// Cycles lists each macro dependency cycle as the path that closes it,
	// e.g. [a b a].
	Cycles [][]string

	// Unresolved lists each reference to a word that is neither reserved,
	// a number, nor another macro.
	Unresolved []Unresolved
}

// Unresolved names a macro and an undefined word used in its body.
type Unresolved struct {
	Macro string
	Word  string
}

func (err *InvalidError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid macros")
	sep := ": "
	for _, cycle := range err.Cycles {
		sb.WriteString(sep)
		sb.WriteString("cycle ")
		sb.WriteString(strings.Join(cycle, " -> "))
		sep = "; "
	}
	for _, un := range err.Unresolved {
		sb.WriteString(sep)
		fmt.Fprintf(&sb, "%q uses undefined word %q", un.Macro, un.Word)
		sep = "; "
	}
	return sb.String()
}

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	visited
)

// validator walks macro bodies depth first; meeting a macro that is still
// being visited closes a cycle.
type validator struct {
	bodies map[string][]string
	state  map[string]visitState
	path   []string
	err    InvalidError
}

func (t *Table) validate() error {
	v := validator{
		bodies: t.bodies,
		state:  make(map[string]visitState, len(t.bodies)),
	}
	for _, name := range sortedKeys(t.bodies) {
		if v.state[name] == unvisited {
			v.visit(name)
		}
	}
	if len(v.err.Cycles) > 0 || len(v.err.Unresolved) > 0 {
		return &v.err
	}
	return nil
}

func (v *validator) visit(name string) {
	v.state[name] = visiting
	v.path = append(v.path, name)

	var reported map[string]bool
	for _, token := range v.bodies[name] {
		if word.IsReserved(token) {
			continue
		}
		if _, isMacro := v.bodies[token]; isMacro {
			switch v.state[token] {
			case unvisited:
				v.visit(token)
			case visiting:
				v.cycle(token)
			}
			continue
		}
		if num.IsLiteral(token) {
			continue
		}
		if !reported[token] {
			if reported == nil {
				reported = make(map[string]bool)
			}
			reported[token] = true
			v.err.Unresolved = append(v.err.Unresolved, Unresolved{name, token})
		}
	}

	v.path = v.path[:len(v.path)-1]
	v.state[name] = visited
}

func (v *validator) cycle(to string) {
	for i := len(v.path) - 1; i >= 0; i-- {
		if v.path[i] == to {
			cycle := make([]string, 0, len(v.path)-i+1)
			cycle = append(cycle, v.path[i:]...)
			cycle = append(cycle, to)
			v.err.Cycles = append(v.err.Cycles, cycle)
			return
		}
	}
}
