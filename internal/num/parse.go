package num

import (
	"errors"
	"strconv"
	"strings"
)

// Parse parses a numeric literal token into a real Value.
//
// Any decimal floating point literal is accepted: an optional sign, digits
// with an optional decimal point, and an optional exponent, along with the
// special forms "inf", "infinity" and "nan". Literals too large to represent
// parse as infinities rather than failing. Hexadecimal floats and
// underscore digit separators are not numeric literals.
func Parse(token string) (Value, bool) {
	if token == "" || strings.ContainsAny(token, "_xXpP") {
		return Value{}, false
	}
	x, err := strconv.ParseFloat(token, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Err != strconv.ErrRange {
			return Value{}, false
		}
	}
	return Real(x), true
}

// IsLiteral reports whether token parses as a numeric literal.
func IsLiteral(token string) bool {
	_, ok := Parse(token)
	return ok
}
