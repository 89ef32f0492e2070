package main

// @generated from eval_test.go

//go:generate go run scripts/gen_eval_expects.go -- eval_test.go eval_expects_test.go

import "github.com/jcorbin/shilop/internal/num"

func withEvalInput(input string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withInput(input)
	}
}

func withEvalOptions(opts ...Option) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withOptions(opts...)
	}
}

func withEvalMacros(defs ...string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withMacros(defs...)
	}
}

func expectEvalStack(values ...string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectStack(values...)
	}
}

func expectEvalValues(values ...num.Value) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectValues(values...)
	}
}

func expectEvalError(errStr string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectError(errStr)
	}
}

func expectEvalSameAs(input string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectSameAs(input)
	}
}
