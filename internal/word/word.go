// Package word defines the closed set of reserved words that the evaluator
// implements natively. Several spellings may name the same operation.
package word

import "strings"

// Code identifies a native operation.
type Code uint8

// The zero Code names no operation.
const (
	None Code = iota

	Add  // +           binary addition
	Sub  // -           binary subtraction
	Mul  // *           binary multiplication
	Div  // / ÷         binary division, guarded against near-zero divisors
	Mod  // % mod       floating remainder of two reals
	Pow  // ^ ** pow    real exponentiation
	Swap // swap        exchange the top two values
	Fac  // ! fac       factorial of a small non-negative integer
	Abs  // abs         magnitude
	Re   // real re     real part
	I    // i           multiply a real by the imaginary unit
	Im   // imaginary im  imaginary part
	Sin  // sin sine
	Cos  // cos cosine
	Exp  // exp
	Pop  // pop         discard the top value
	Pi   // pi          push π
	E    // e           push Euler's number

	Max
)

var reserved = [...]struct {
	name string
	code Code
}{
	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},
	{"÷", Div},
	{"%", Mod},
	{"mod", Mod},
	{"^", Pow},
	{"**", Pow},
	{"pow", Pow},
	{"!", Fac},
	{"fac", Fac},
	{"pi", Pi},
	{"sin", Sin},
	{"sine", Sin},
	{"cos", Cos},
	{"cosine", Cos},
	{"e", E},
	{"exp", Exp},
	{"swap", Swap},
	{"pop", Pop},
	{"abs", Abs},
	{"real", Re},
	{"re", Re},
	{"i", I},
	{"imaginary", Im},
	{"im", Im},
}

var (
	codes = make(map[string]Code, len(reserved))
	names [Max]string
)

func init() {
	for _, rw := range reserved {
		codes[rw.name] = rw.code
		if names[rw.code] == "" {
			names[rw.code] = rw.name
		}
	}
}

// Lookup returns the operation named by token, matching case-insensitively.
func Lookup(token string) (Code, bool) {
	code, ok := codes[token]
	if !ok {
		code, ok = codes[strings.ToLower(token)]
	}
	return code, ok
}

// IsReserved reports whether token is a reserved word.
func IsReserved(token string) bool {
	_, ok := Lookup(token)
	return ok
}

// Reserved returns every reserved word, aliases included.
func Reserved() []string {
	all := make([]string, len(reserved))
	for i, rw := range reserved {
		all[i] = rw.name
	}
	return all
}

// Arity returns how many operands code needs; with fewer on the stack the
// operation does nothing.
func (code Code) Arity() int {
	switch {
	case code >= Add && code <= Swap:
		return 2
	case code >= Fac && code <= Pop:
		return 1
	}
	return 0
}

func (code Code) String() string {
	if code < Max && names[code] != "" {
		return names[code]
	}
	return "<none>"
}
