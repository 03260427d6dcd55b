package runtime

import "math"

// addendNumber is the addition-specific numeric coercion: numbers and
// booleans convert normally, everything else falls back to 0. The fallback
// is deliberate and non-throwing; addition must stay a total function.
func addendNumber(v Value) float64 {
	switch concrete := v.(type) {
	case NumberValue:
		return concrete.Val
	case BoolValue:
		if concrete.Val {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Add implements the overloaded `+`. Number+Number adds; if either operand
// is Text the result is Text via concatenation with the other operand's
// to-string form; otherwise both operands coerce to numbers (non-numeric
// falls back to 0) and are summed.
func Add(a, b Value) Value {
	a, b = normalize(a), normalize(b)
	if an, ok := a.(NumberValue); ok {
		if bn, ok := b.(NumberValue); ok {
			return NumberValue{Val: an.Val + bn.Val}
		}
	}
	if IsText(a) || IsText(b) {
		return TextValue{Val: ToText(a) + ToText(b)}
	}
	return NumberValue{Val: addendNumber(a) + addendNumber(b)}
}

// Sub implements `-`: both operands coerce to numbers.
func Sub(a, b Value) Value {
	return NumberValue{Val: ToNumber(normalize(a)) - ToNumber(normalize(b))}
}

// Mul implements `*`: both operands coerce to numbers.
func Mul(a, b Value) Value {
	return NumberValue{Val: ToNumber(normalize(a)) * ToNumber(normalize(b))}
}

// Div implements `/`: both operands coerce to numbers. Division by zero
// follows IEEE-754 (±Infinity, or NaN for 0/0), not an error.
func Div(a, b Value) Value {
	return NumberValue{Val: ToNumber(normalize(a)) / ToNumber(normalize(b))}
}

// Mod implements `%` as floating-point remainder with the dividend's sign.
func Mod(a, b Value) Value {
	return NumberValue{Val: math.Mod(ToNumber(normalize(a)), ToNumber(normalize(b)))}
}

// Neg implements unary minus.
func Neg(v Value) Value {
	return NumberValue{Val: -ToNumber(normalize(v))}
}

// Equals is strict-kind equality: operands of different active variants are
// never equal. Bool, Number and Text compare by value (with non-reflexive
// NaN); Sequence and Record compare by reference identity.
func Equals(a, b Value) bool {
	a, b = normalize(a), normalize(b)
	if a.Kind() != b.Kind() {
		return false
	}
	switch left := a.(type) {
	case UndefinedValue, NullValue:
		return true
	case BoolValue:
		return left.Val == b.(BoolValue).Val
	case NumberValue:
		return left.Val == b.(NumberValue).Val
	case TextValue:
		return left.Val == b.(TextValue).Val
	case *SequenceValue:
		return left == b.(*SequenceValue)
	case *RecordValue:
		return left == b.(*RecordValue)
	default:
		return false
	}
}

// NotEquals is the negation of Equals.
func NotEquals(a, b Value) bool { return !Equals(a, b) }
