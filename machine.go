package main

import (
	"math"

	"github.com/jcorbin/shilop/internal/num"
	"github.com/jcorbin/shilop/internal/word"
)

// delta is the magnitude at or below which a divisor or modulus counts as
// zero.
const delta = 1e-7

// maxFactorial is the largest operand that ! will compute.
const maxFactorial = 25

// machine is the operand stack of a single evaluation.
type machine struct {
	stack []num.Value
}

func (m *machine) push(values ...num.Value) { m.stack = append(m.stack, values...) }

func (m *machine) pop() num.Value {
	i := len(m.stack) - 1
	v := m.stack[i]
	m.stack = m.stack[:i]
	return v
}

// step dispatches one word. Words run only when the stack holds at least as
// many operands as they take; numeric literals push themselves, and
// anything else is ignored.
func (m *machine) step(token string) {
	if code, ok := word.Lookup(token); ok {
		if len(m.stack) >= code.Arity() {
			wordTable[code](m)
		}
		return
	}
	if v, ok := num.Parse(token); ok {
		m.push(v)
	}
}

var wordTable = [word.Max]func(m *machine){
	word.Add:  (*machine).add,
	word.Sub:  (*machine).sub,
	word.Mul:  (*machine).mul,
	word.Div:  (*machine).div,
	word.Mod:  (*machine).mod,
	word.Pow:  (*machine).pow,
	word.Swap: (*machine).swap,
	word.Fac:  (*machine).fac,
	word.Abs:  (*machine).abs,
	word.Re:   (*machine).re,
	word.I:    (*machine).i,
	word.Im:   (*machine).im,
	word.Sin:  (*machine).sin,
	word.Cos:  (*machine).cos,
	word.Exp:  (*machine).exp,
	word.Pop:  (*machine).drop,
	word.Pi:   (*machine).pi,
	word.E:    (*machine).e,
}

//// Binary operations pop the top value as their second operand.

func (m *machine) add() { b, a := m.pop(), m.pop(); m.push(a.Add(b)) }
func (m *machine) sub() { b, a := m.pop(), m.pop(); m.push(a.Sub(b)) }
func (m *machine) mul() { b, a := m.pop(), m.pop(); m.push(a.Mul(b)) }
func (m *machine) pow() { b, a := m.pop(), m.pop(); m.push(a.Pow(b)) }

// div discards the dividend and keeps only the divisor when the divisor is
// too close to zero.
func (m *machine) div() {
	b, a := m.pop(), m.pop()
	if b.AbsFloat() <= delta {
		m.push(b)
		return
	}
	m.push(a.Div(b))
}

// mod takes the floating remainder of two reals, whose sign follows the
// dividend. Complex operands, or a modulus too close to zero, leave both
// operands in place.
func (m *machine) mod() {
	b, a := m.pop(), m.pop()
	if a.IsComplex() || b.IsComplex() || b.AbsFloat() <= delta {
		m.push(a, b)
		return
	}
	m.push(num.Real(math.Mod(a.Real(), b.Real())))
}

func (m *machine) swap() { b, a := m.pop(), m.pop(); m.push(b, a) }

//// Unary operations replace the top value.

// fac computes n! for integral reals 0 <= n <= 25; any other value is left
// alone.
func (m *machine) fac() {
	v := m.pop()
	n := v.Real()
	if v.IsComplex() || !(n >= 0 && n <= maxFactorial) || n != math.Floor(n) {
		m.push(v)
		return
	}
	acc := 1.0
	for k := int(n); k > 0; k-- {
		acc *= float64(k)
	}
	m.push(num.Real(acc))
}

func (m *machine) abs() { m.push(m.pop().Abs()) }
func (m *machine) re()  { m.push(num.Real(m.pop().Real())) }
func (m *machine) exp() { m.push(m.pop().Exp()) }

func (m *machine) i() {
	v := m.pop()
	if !v.IsComplex() {
		v = num.Complex(0, v.Real())
	}
	m.push(v)
}

func (m *machine) im() {
	v := m.pop()
	if im, ok := v.Imag(); ok {
		v = num.Real(im)
	}
	m.push(v)
}

func (m *machine) sin() {
	v := m.pop()
	if r, ok := v.Sin(); ok {
		v = r
	}
	m.push(v)
}

func (m *machine) cos() {
	v := m.pop()
	if r, ok := v.Cos(); ok {
		v = r
	}
	m.push(v)
}

func (m *machine) drop() { m.pop() }

//// Constants

func (m *machine) pi() { m.push(num.Real(math.Pi)) }
func (m *machine) e()  { m.push(num.Real(math.E)) }
