package runtime

// Value is the shared behaviour for all dynamic values. Exactly one variant
// is active at a time; consumers dispatch on Kind or type-switch over the
// concrete types below.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// UndefinedValue is the absent-value sentinel produced by missing property
// reads and failed opportunistic projections.
type UndefinedValue struct{}

func (UndefinedValue) Kind() Kind { return KindUndefined }

// NullValue is the explicit empty value.
type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// NumberValue wraps an IEEE-754 double with source-language numeric
// behaviour, including non-reflexive NaN and signed infinities.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

// TextValue is a byte string. Indexing and length are byte-based; full
// Unicode correctness is out of scope.
type TextValue struct {
	Val string
}

func (v TextValue) Kind() Kind { return KindText }

// Undefined and Null are the shared sentinels. Both types are zero-sized so
// the singletons carry no state.
var (
	Undefined = UndefinedValue{}
	Null      = NullValue{}
)

//-----------------------------------------------------------------------------
// Constructors
//-----------------------------------------------------------------------------

func NewBool(b bool) BoolValue { return BoolValue{Val: b} }

func NewNumber(f float64) NumberValue { return NumberValue{Val: f} }

func NewText(s string) TextValue { return TextValue{Val: s} }

//-----------------------------------------------------------------------------
// Type predicates
//-----------------------------------------------------------------------------

func IsUndefined(v Value) bool { return v == nil || v.Kind() == KindUndefined }

func IsNull(v Value) bool { return v != nil && v.Kind() == KindNull }

// IsNullish reports whether v is undefined or null.
func IsNullish(v Value) bool { return IsUndefined(v) || IsNull(v) }

func IsBool(v Value) bool { return v != nil && v.Kind() == KindBool }

func IsNumber(v Value) bool { return v != nil && v.Kind() == KindNumber }

func IsText(v Value) bool { return v != nil && v.Kind() == KindText }

func IsSequence(v Value) bool { return v != nil && v.Kind() == KindSequence }

func IsRecord(v Value) bool { return v != nil && v.Kind() == KindRecord }

//-----------------------------------------------------------------------------
// Checked projections
//-----------------------------------------------------------------------------

// AsBool projects the boolean payload. Projecting any other kind is a
// contract violation and reported as a TypeMismatch error.
func AsBool(v Value) (bool, error) {
	if b, ok := v.(BoolValue); ok {
		return b.Val, nil
	}
	return false, newTypeMismatchError(KindBool, v)
}

func AsNumber(v Value) (float64, error) {
	if n, ok := v.(NumberValue); ok {
		return n.Val, nil
	}
	return 0, newTypeMismatchError(KindNumber, v)
}

func AsText(v Value) (string, error) {
	if t, ok := v.(TextValue); ok {
		return t.Val, nil
	}
	return "", newTypeMismatchError(KindText, v)
}

func AsSequence(v Value) (*SequenceValue, error) {
	if s, ok := v.(*SequenceValue); ok {
		return s, nil
	}
	return nil, newTypeMismatchError(KindSequence, v)
}

func AsRecord(v Value) (*RecordValue, error) {
	if r, ok := v.(*RecordValue); ok {
		return r, nil
	}
	return nil, newTypeMismatchError(KindRecord, v)
}

// normalize maps a nil Value to the Undefined sentinel so downstream
// switches never see untyped nil.
func normalize(v Value) Value {
	if v == nil {
		return Undefined
	}
	return v
}
