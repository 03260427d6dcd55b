// Package typed provides type-safe views over dynamic values for host code
// that knows the shape it expects: nullable scalars, string-keyed
// dictionaries, homogeneous slices and ok/err results. Opportunistic
// accessors report misses with (zero, false); strict accessors surface
// TypeMismatch errors.
package typed

import (
	"ts2go/runtime-go/pkg/runtime"
)

// Scalar constrains the Go payload types a typed view can extract.
type Scalar interface {
	bool | float64 | string
}

func fromValue[T Scalar](v runtime.Value) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, err := runtime.AsBool(v)
		if err != nil {
			return zero, false
		}
		return any(b).(T), true
	case float64:
		n, err := runtime.AsNumber(v)
		if err != nil {
			return zero, false
		}
		return any(n).(T), true
	case string:
		s, err := runtime.AsText(v)
		if err != nil {
			return zero, false
		}
		return any(s).(T), true
	default:
		return zero, false
	}
}

func toValue[T Scalar](v T) runtime.Value {
	switch payload := any(v).(type) {
	case bool:
		return runtime.NewBool(payload)
	case float64:
		return runtime.NewNumber(payload)
	case string:
		return runtime.NewText(payload)
	default:
		return runtime.Undefined
	}
}

// Nullable represents T | null | undefined.
type Nullable[T Scalar] struct {
	value runtime.Value
}

// Some wraps a present value.
func Some[T Scalar](v T) Nullable[T] {
	return Nullable[T]{value: toValue(v)}
}

// NullOf is the explicit null.
func NullOf[T Scalar]() Nullable[T] {
	return Nullable[T]{value: runtime.Null}
}

// UndefinedOf is the absent value.
func UndefinedOf[T Scalar]() Nullable[T] {
	return Nullable[T]{value: runtime.Undefined}
}

// NullableFrom wraps an arbitrary dynamic value; a wrong-kind payload
// behaves as absent.
func NullableFrom[T Scalar](v runtime.Value) Nullable[T] {
	return Nullable[T]{value: v}
}

func (n Nullable[T]) IsNull() bool      { return runtime.IsNull(n.value) }
func (n Nullable[T]) IsUndefined() bool { return runtime.IsUndefined(n.value) }

// HasValue reports whether a payload of the expected type is present.
func (n Nullable[T]) HasValue() bool {
	_, ok := fromValue[T](n.value)
	return ok
}

// Get returns the payload, or (zero, false) when null, undefined or
// mistyped.
func (n Nullable[T]) Get() (T, bool) {
	return fromValue[T](n.value)
}

// GetOr returns the payload or fallback.
func (n Nullable[T]) GetOr(fallback T) T {
	if v, ok := fromValue[T](n.value); ok {
		return v
	}
	return fallback
}

// Value exposes the underlying dynamic value.
func (n Nullable[T]) Value() runtime.Value {
	if n.value == nil {
		return runtime.Undefined
	}
	return n.value
}

// Dict is a typed string-keyed view over a Record. The record is shared,
// not copied: writes through the view are visible to every alias.
type Dict[T Scalar] struct {
	record *runtime.RecordValue
}

// NewDict creates a view over a fresh record.
func NewDict[T Scalar]() Dict[T] {
	return Dict[T]{record: runtime.NewRecord()}
}

// DictOver wraps an existing record.
func DictOver[T Scalar](record *runtime.RecordValue) Dict[T] {
	if record == nil {
		record = runtime.NewRecord()
	}
	return Dict[T]{record: record}
}

func (d Dict[T]) Set(key string, value T) {
	d.record.Set(key, toValue(value))
}

// Get returns the own property as T, or (zero, false) on a miss or a
// wrong-kind payload.
func (d Dict[T]) Get(key string) (T, bool) {
	v, ok := d.record.GetOwn(key)
	if !ok {
		var zero T
		return zero, false
	}
	return fromValue[T](v)
}

func (d Dict[T]) GetOr(key string, fallback T) T {
	if v, ok := d.Get(key); ok {
		return v
	}
	return fallback
}

func (d Dict[T]) Has(key string) bool {
	return d.record.HasOwnProperty(key)
}

func (d Dict[T]) Remove(key string) {
	d.record.Delete(key)
}

// Record exposes the underlying record.
func (d Dict[T]) Record() *runtime.RecordValue { return d.record }

// SafeSlice is a typed view over a Sequence. Validate checks every element
// eagerly; At checks lazily.
type SafeSlice[T Scalar] struct {
	seq *runtime.SequenceValue
}

// NewSafeSlice creates a view over a fresh sequence.
func NewSafeSlice[T Scalar]() SafeSlice[T] {
	return SafeSlice[T]{seq: runtime.NewSequence(nil)}
}

// SafeSliceOver wraps an existing sequence.
func SafeSliceOver[T Scalar](seq *runtime.SequenceValue) SafeSlice[T] {
	if seq == nil {
		seq = runtime.NewSequence(nil)
	}
	return SafeSlice[T]{seq: seq}
}

func (s SafeSlice[T]) Push(value T) {
	s.seq.Push(toValue(value))
}

func (s SafeSlice[T]) Length() int { return s.seq.Length() }

// At returns the element as T, or (zero, false) when out of range or
// mistyped.
func (s SafeSlice[T]) At(index int) (T, bool) {
	v, err := s.seq.At(index)
	if err != nil {
		var zero T
		return zero, false
	}
	return fromValue[T](v)
}

func (s SafeSlice[T]) AtOr(index int, fallback T) T {
	if v, ok := s.At(index); ok {
		return v
	}
	return fallback
}

// Validate returns a TypeMismatch error naming the first element that is
// not a T.
func (s SafeSlice[T]) Validate() error {
	for i, element := range s.seq.Elements {
		if _, ok := fromValue[T](element); !ok {
			return runtime.NewTypeMismatchError("unexpected element kind at index %d", i)
		}
	}
	return nil
}

// ToSlice copies the sequence into a Go slice, skipping nothing: it fails
// with a TypeMismatch error on the first wrong-kind element.
func (s SafeSlice[T]) ToSlice() ([]T, error) {
	out := make([]T, 0, s.seq.Length())
	for i, element := range s.seq.Elements {
		v, ok := fromValue[T](element)
		if !ok {
			return nil, runtime.NewTypeMismatchError("unexpected element kind at index %d", i)
		}
		out = append(out, v)
	}
	return out, nil
}

// Sequence exposes the underlying sequence.
func (s SafeSlice[T]) Sequence() *runtime.SequenceValue { return s.seq }

// Result is an ok/err pair for host code that wants explicit branches
// instead of error returns.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool  { return r.ok }
func (r Result[T]) IsErr() bool { return !r.ok }

// Get returns the value and the error; exactly one is meaningful.
func (r Result[T]) Get() (T, error) { return r.value, r.err }

func (r Result[T]) GetOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// StringOrNumber is the common string|number union.
type StringOrNumber struct {
	value runtime.Value
}

func StringCase(s string) StringOrNumber {
	return StringOrNumber{value: runtime.NewText(s)}
}

func NumberCase(n float64) StringOrNumber {
	return StringOrNumber{value: runtime.NewNumber(n)}
}

func (u StringOrNumber) IsString() bool { return runtime.IsText(u.value) }
func (u StringOrNumber) IsNumber() bool { return runtime.IsNumber(u.value) }

// AsString renders either case as text.
func (u StringOrNumber) AsString() string {
	return runtime.ToText(u.Value())
}

// AsNumber renders either case as a number; a non-numeric string yields
// NaN.
func (u StringOrNumber) AsNumber() float64 {
	return runtime.ToNumber(u.Value())
}

// Value exposes the underlying dynamic value.
func (u StringOrNumber) Value() runtime.Value {
	if u.value == nil {
		return runtime.Undefined
	}
	return u.value
}
