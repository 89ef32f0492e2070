package main

import (
	"github.com/jcorbin/shilop/internal/num"
	"github.com/jcorbin/shilop/internal/panicerr"
)

// New creates an Evaluator; without WithMacros it knows only reserved words.
func New(opts ...Option) *Evaluator {
	var ev Evaluator
	ev.apply(opts...)
	return &ev
}

// Evaluate splits input into words, expands any macros, and runs the result
// against a fresh stack, returning the final stack from bottom to top.
//
// Malformed input never fails: unknown words are dropped, and operators that
// lack operands or valid operand values leave the stack alone. An error is
// only returned if macro expansion diverges, or if evaluation panics.
func (ev *Evaluator) Evaluate(input string) (values []num.Value, err error) {
	err = panicerr.Recover("evaluate", func() error {
		tokens, err := ev.Expand(Tokenize(input))
		if err != nil {
			return err
		}
		values = ev.Run(tokens)
		return nil
	})
	return values, err
}

// Render formats values for display.
func Render(values []num.Value) []string {
	lines := make([]string, len(values))
	for i, v := range values {
		lines[i] = v.String()
	}
	return lines
}

func WithMacros(m Macros) Option { return macrosOption{m} }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
