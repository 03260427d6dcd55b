package runtime

import (
	"math"
	"strconv"
	"strings"
)

// Number limits mirrored from the emulated language.
var (
	NaN              = math.NaN()
	PositiveInfinity = math.Inf(1)
	NegativeInfinity = math.Inf(-1)
)

const (
	MaxSafeInteger = 9007199254740991.0  // 2^53 - 1
	MinSafeInteger = -9007199254740991.0 // -(2^53 - 1)
	Epsilon        = 2.220446049250313e-16
)

// FormatNumber renders a double the way the emulated language stringifies
// numbers: integral values print without a fraction, NaN and infinities use
// their literal spellings, everything else uses the shortest round-trip
// decimal form.
func FormatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == 0 {
		// Both zeros print "0"; strconv would keep the sign of -0.
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return trimExponent(strconv.FormatFloat(f, 'g', -1, 64))
}

// trimExponent rewrites Go's zero-padded exponents ("1e+07") into the
// emulated language's minimal form ("1e+7").
func trimExponent(s string) string {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i+1], s[i+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = string(exp[0]), exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + sign + exp
}

const radixDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// ToStringRadix renders the number in the given base. Radix outside [2,36]
// is a contract violation. Non-integral values fall back to decimal form.
func (v NumberValue) ToStringRadix(radix int) (string, error) {
	if radix < 2 || radix > 36 {
		return "", NewRangeError("toString() radix argument must be between 2 and 36")
	}
	f := v.Val
	if math.IsNaN(f) {
		return "NaN", nil
	}
	if math.IsInf(f, 0) {
		if f > 0 {
			return "Infinity", nil
		}
		return "-Infinity", nil
	}
	if radix == 10 {
		return FormatNumber(f), nil
	}
	intVal := int64(f)
	if float64(intVal) != f {
		return FormatNumber(f), nil
	}
	if intVal == 0 {
		return "0", nil
	}
	negative := intVal < 0
	if negative {
		intVal = -intVal
	}
	var buf [65]byte
	pos := len(buf)
	for intVal > 0 {
		pos--
		buf[pos] = radixDigits[intVal%int64(radix)]
		intVal /= int64(radix)
	}
	if negative {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:]), nil
}

// ToFixed renders with a fixed number of fraction digits. Digit counts
// outside [0,100] are a contract violation.
func (v NumberValue) ToFixed(digits int) (string, error) {
	if digits < 0 || digits > 100 {
		return "", NewRangeError("toFixed() digits argument must be between 0 and 100")
	}
	if special, ok := specialNumberString(v.Val); ok {
		return special, nil
	}
	return strconv.FormatFloat(v.Val, 'f', digits, 64), nil
}

// ToExponential renders in scientific notation. A negative fractionDigits
// requests the shortest mantissa.
func (v NumberValue) ToExponential(fractionDigits int) (string, error) {
	if special, ok := specialNumberString(v.Val); ok {
		return special, nil
	}
	prec := fractionDigits
	if fractionDigits < 0 {
		prec = -1
	} else if fractionDigits > 100 {
		return "", NewRangeError("toExponential() fractionDigits argument must be between 0 and 100")
	}
	return trimExponent(strconv.FormatFloat(v.Val, 'e', prec, 64)), nil
}

// ToPrecision renders with the given number of significant digits, in
// [1,100].
func (v NumberValue) ToPrecision(precision int) (string, error) {
	if special, ok := specialNumberString(v.Val); ok {
		return special, nil
	}
	if precision < 1 || precision > 100 {
		return "", NewRangeError("toPrecision() precision argument must be between 1 and 100")
	}
	return trimExponent(strconv.FormatFloat(v.Val, 'g', precision, 64)), nil
}

func specialNumberString(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}
	return "", false
}

// IsInteger reports whether the value is a finite integral double.
func (v NumberValue) IsInteger() bool {
	return !math.IsNaN(v.Val) && !math.IsInf(v.Val, 0) && math.Floor(v.Val) == v.Val
}

// IsSafeInteger reports whether the value is integral and exactly
// representable, i.e. within ±(2^53 - 1).
func (v NumberValue) IsSafeInteger() bool {
	return v.IsInteger() && math.Abs(v.Val) <= MaxSafeInteger
}

// ParseInt parses an integer prefix of s in the given radix. Radix 0
// auto-detects a 0x/0X prefix as base 16 and defaults to 10. Parsing stops
// at the first invalid digit; if no digit is consumed the result is NaN.
// Radix outside [2,36] (other than 0) yields NaN, never an error — parse
// failure is a coercion failure, not a contract violation.
func ParseInt(s string, radix int) float64 {
	if radix != 0 && (radix < 2 || radix > 36) {
		return NaN
	}
	s = strings.Trim(s, " \t\n\r\f\v")
	if s == "" {
		return NaN
	}
	negative := false
	pos := 0
	switch s[0] {
	case '-':
		negative = true
		pos = 1
	case '+':
		pos = 1
	}
	if radix == 0 {
		if pos+1 < len(s) && s[pos] == '0' && (s[pos+1] == 'x' || s[pos+1] == 'X') {
			radix = 16
			pos += 2
		} else {
			radix = 10
		}
	} else if radix == 16 && pos+1 < len(s) && s[pos] == '0' && (s[pos+1] == 'x' || s[pos+1] == 'X') {
		pos += 2
	}
	result := 0.0
	anyDigits := false
	for ; pos < len(s); pos++ {
		c := s[pos]
		var digit int
		switch {
		case c >= '0' && c <= '9':
			digit = int(c - '0')
		case c >= 'a' && c <= 'z':
			digit = int(c-'a') + 10
		case c >= 'A' && c <= 'Z':
			digit = int(c-'A') + 10
		default:
			pos = len(s)
			continue
		}
		if digit >= radix {
			break
		}
		result = result*float64(radix) + float64(digit)
		anyDigits = true
	}
	if !anyDigits {
		return NaN
	}
	if negative {
		return -result
	}
	return result
}

// ParseFloat parses a decimal prefix of s, returning NaN on failure.
func ParseFloat(s string) float64 {
	s = strings.Trim(s, " \t\n\r\f\v")
	if s == "" {
		return NaN
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Accept a valid numeric prefix, matching strtod-style parsing.
	for end := len(s) - 1; end > 0; end-- {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f
		}
	}
	return NaN
}

// IsNaNValue coerces v to a number and reports whether the result is NaN.
func IsNaNValue(v Value) bool {
	return math.IsNaN(ToNumber(v))
}

// IsFiniteValue coerces v to a number and reports whether the result is
// finite.
func IsFiniteValue(v Value) bool {
	n := ToNumber(v)
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
