package main

import (
	"fmt"
	"strings"

	"github.com/jcorbin/shilop/internal/num"
	"github.com/jcorbin/shilop/internal/word"
)

// Macros resolves user defined words into the words they stand for.
// *macro.Table implements it.
type Macros interface {
	// Expand returns the body of the macro named by token, if any.
	Expand(token string) ([]string, bool)

	// Len returns the number of defined macros.
	Len() int
}

// Evaluator evaluates RPN input against a read-only set of macros. It keeps
// no state between evaluations.
type Evaluator struct {
	logging
	macros Macros
}

// Tokenize splits input into words around any whitespace.
func Tokenize(input string) []string { return strings.Fields(input) }

// DivergenceError reports that macro expansion kept substituting for more
// passes than there are macros, which only a cyclic definition can cause.
type DivergenceError struct {
	Passes int
	Words  int
}

func (err *DivergenceError) Error() string {
	return fmt.Sprintf("macro expansion diverged: still substituting after %v passes (%v words)",
		err.Passes, err.Words)
}

// Expand lower-cases every token, then substitutes macros in place until no
// macro remains. Reserved words and numeric literals are kept; all other
// words are dropped.
func (ev *Evaluator) Expand(raw []string) ([]string, error) {
	tokens := raw
	limit := ev.macros.Len()
	for pass := 1; ; pass++ {
		next, substituted := ev.expandPass(tokens)
		tokens = next
		if !substituted {
			return tokens, nil
		}
		ev.logf("@", "pass %v: %v", pass, tokens)
		if pass > limit {
			return nil, &DivergenceError{Passes: pass, Words: len(tokens)}
		}
	}
}

func (ev *Evaluator) expandPass(tokens []string) (next []string, substituted bool) {
	next = make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.ToLower(token)
		if word.IsReserved(token) {
			next = append(next, token)
		} else if body, ok := ev.macros.Expand(token); ok {
			next = append(next, body...)
			substituted = true
		} else if num.IsLiteral(token) {
			next = append(next, token)
		} else {
			ev.logf("@", "drop %q", token)
		}
	}
	return next, substituted
}

// Run evaluates tokens left to right against an empty stack, returning the
// final stack from bottom to top.
func (ev *Evaluator) Run(tokens []string) []num.Value {
	var m machine
	for _, token := range tokens {
		m.step(token)
		if ev.tracing() {
			ev.logf(">", "%v %v", token, m.stack)
		}
	}
	return m.stack
}
