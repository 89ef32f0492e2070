// Package num implements the small numeric tower that shilop evaluates
// over: real values, and complex values carried as a pair of reals.
package num

import (
	"math"
	"strconv"
	"strings"
)

// Value is either a real number or a complex number. Values are immutable;
// every operation returns a new Value.
type Value struct {
	re, im  float64
	complex bool
}

// Real returns a real Value.
func Real(x float64) Value { return Value{re: x} }

// Complex returns a complex Value, even if im is zero.
func Complex(re, im float64) Value { return Value{re: re, im: im, complex: true} }

// IsComplex reports whether v is complex.
func (v Value) IsComplex() bool { return v.complex }

// Real returns the real component of v.
func (v Value) Real() float64 { return v.re }

// Imag returns the imaginary component of v, and false if v is real.
func (v Value) Imag() (float64, bool) { return v.im, v.complex }

// Abs returns the magnitude of v as a real Value.
func (v Value) Abs() Value { return Real(v.AbsFloat()) }

// AbsFloat returns the magnitude of v.
func (v Value) AbsFloat() float64 {
	if v.complex {
		return math.Hypot(v.re, v.im)
	}
	return math.Abs(v.re)
}

// Add returns v + o; the sum of two reals is real, anything else is complex.
func (v Value) Add(o Value) Value {
	if !v.complex && !o.complex {
		return Real(v.re + o.re)
	}
	return Complex(v.re+o.re, v.im+o.im)
}

// Sub returns v - o.
func (v Value) Sub(o Value) Value {
	if !v.complex && !o.complex {
		return Real(v.re - o.re)
	}
	return Complex(v.re-o.re, v.im-o.im)
}

// Mul returns v * o using (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (v Value) Mul(o Value) Value {
	if !v.complex && !o.complex {
		return Real(v.re * o.re)
	}
	a, b, c, d := v.re, v.im, o.re, o.im
	return Complex(a*c-b*d, a*d+b*c)
}

// Div returns v / o, computed as v * conj(o) / |o|^2 when either side is
// complex. Division by zero is not guarded here.
func (v Value) Div(o Value) Value {
	if !v.complex && !o.complex {
		return Real(v.re / o.re)
	}
	a, b, c, d := v.re, v.im, o.re, o.im
	mod := c*c + d*d
	return Complex((a*c+b*d)/mod, (b*c-a*d)/mod)
}

// Pow raises the real part of v to the real part of o. Imaginary parts are
// ignored, and the result is always real.
func (v Value) Pow(o Value) Value { return Real(math.Pow(v.re, o.re)) }

// Exp returns e^v; complex values follow Euler's formula.
func (v Value) Exp() Value {
	if !v.complex {
		return Real(math.Exp(v.re))
	}
	r := math.Exp(v.re)
	return Complex(r*math.Cos(v.im), r*math.Sin(v.im))
}

// Sin returns the sine of a real v; it is undefined for complex values.
func (v Value) Sin() (Value, bool) {
	if v.complex {
		return v, false
	}
	return Real(math.Sin(v.re)), true
}

// Cos returns the cosine of a real v; it is undefined for complex values.
func (v Value) Cos() (Value, bool) {
	if v.complex {
		return v, false
	}
	return Real(math.Cos(v.re)), true
}

// Sum adds up values starting from complex zero, collapsing the result to a
// real value when its imaginary part is exactly zero.
func Sum(values ...Value) Value {
	sum := Complex(0, 0)
	for _, v := range values {
		sum = sum.Add(v)
	}
	if sum.im == 0 {
		return Real(sum.re)
	}
	return sum
}

// String renders reals in plain decimal form and complex values as "re+imi";
// the "+" is literal, so a negative imaginary part renders like "2+-3i".
func (v Value) String() string {
	if !v.complex {
		return formatFloat(v.re)
	}
	var sb strings.Builder
	sb.WriteString(formatFloat(v.re))
	sb.WriteByte('+')
	sb.WriteString(formatFloat(v.im))
	sb.WriteByte('i')
	return sb.String()
}

func formatFloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
