package main

import "github.com/jcorbin/shilop/internal/macro"

// Option configures an Evaluator.
type Option interface{ apply(ev *Evaluator) }

var defaults = []Option{
	macrosOption{&macro.Table{}},
}

func (ev *Evaluator) apply(opts ...Option) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(ev)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ev)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ev *Evaluator) {
	ev.logfn = logfn
}

type macrosOption struct{ Macros }

func (o macrosOption) apply(ev *Evaluator) {
	if o.Macros != nil {
		ev.macros = o.Macros
	}
}
