package runtime

import (
	"math"
	"strconv"
)

// PropertyName converts a key to its canonical property-name form. Integral
// numbers become their decimal string, matching how an array-like index
// becomes an object property name; everything else uses the canonical
// to-text conversion.
func PropertyName(key Value) string {
	if n, ok := normalize(key).(NumberValue); ok {
		if n.IsInteger() && math.Abs(n.Val) <= MaxSafeInteger {
			return strconv.FormatInt(int64(n.Val), 10)
		}
	}
	return ToText(key)
}

// Property reads v[key] under the permissive-miss policy: record lookup
// delegates along the prototype chain, sequence lookup resolves integer
// indices and "length", and every miss — including access on a
// non-container value — yields Undefined rather than an error.
func Property(v Value, key Value) Value {
	name := PropertyName(key)
	switch concrete := normalize(v).(type) {
	case *RecordValue:
		return concrete.Get(name)
	case *SequenceValue:
		if name == "length" {
			return NumberValue{Val: float64(concrete.Length())}
		}
		if index, ok := sequenceIndex(name, concrete.Length()); ok {
			return normalize(concrete.Elements[index])
		}
		return Undefined
	default:
		return Undefined
	}
}

// SetProperty writes v[key]. Record writes create or overwrite an own
// property (never a prototype write-through). Sequence writes accept
// in-range indices and grow the sequence — padding with Undefined — when
// the index is at or past the end. Writes to non-container values are
// silently dropped, mirroring the permissive-miss read policy.
func SetProperty(v Value, key Value, value Value) {
	name := PropertyName(key)
	switch concrete := normalize(v).(type) {
	case *RecordValue:
		concrete.Set(name, value)
	case *SequenceValue:
		index, err := strconv.Atoi(name)
		if err != nil || index < 0 {
			return
		}
		for concrete.Length() <= index {
			concrete.Push(Undefined)
		}
		concrete.Elements[index] = normalize(value)
	}
}

// DeleteProperty removes an own property from a record-holding value.
// It always reports success: missing keys, sequence keys and non-container
// targets are no-ops, matching the source language's delete operator.
func DeleteProperty(v Value, key Value) bool {
	if record, ok := normalize(v).(*RecordValue); ok {
		return record.Delete(PropertyName(key))
	}
	return true
}

// HasProperty reports chain-inclusive existence for records and index
// membership for sequences; every other value has no properties.
func HasProperty(v Value, key Value) bool {
	name := PropertyName(key)
	switch concrete := normalize(v).(type) {
	case *RecordValue:
		return concrete.HasProperty(name)
	case *SequenceValue:
		if name == "length" {
			return true
		}
		_, ok := sequenceIndex(name, concrete.Length())
		return ok
	default:
		return false
	}
}

func sequenceIndex(name string, length int) (int, bool) {
	index, err := strconv.Atoi(name)
	if err != nil || index < 0 || index >= length {
		return 0, false
	}
	return index, true
}

//-----------------------------------------------------------------------------
// Array-delegating helpers
//
// These forward to the underlying sequence when the value holds one and
// otherwise return the documented permissive defaults. The defaults are a
// compatibility contract with the emulated language and must not be turned
// into errors.
//-----------------------------------------------------------------------------

// ValueMap forwards to Sequence.Map, or returns an empty sequence.
func ValueMap(v Value, fn func(Value, int) Value) *SequenceValue {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.Map(fn)
	}
	return NewSequence(nil)
}

// ValueFilter forwards to Sequence.Filter, or returns an empty sequence.
func ValueFilter(v Value, fn func(Value, int) bool) *SequenceValue {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.Filter(fn)
	}
	return NewSequence(nil)
}

// ValueReduce forwards to Sequence.Reduce, or returns the initial value
// untouched.
func ValueReduce(v Value, fn func(acc Value, element Value, index int) Value, initial Value) Value {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.Reduce(fn, initial)
	}
	return normalize(initial)
}

// ValueForEach forwards to Sequence.ForEach, or does nothing.
func ValueForEach(v Value, fn func(Value, int)) {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		seq.ForEach(fn)
	}
}

// ValueFind forwards to Sequence.Find, or returns Undefined.
func ValueFind(v Value, fn func(Value, int) bool) Value {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.Find(fn)
	}
	return Undefined
}

// ValueFindIndex forwards to Sequence.FindIndex, or returns -1.
func ValueFindIndex(v Value, fn func(Value, int) bool) int {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.FindIndex(fn)
	}
	return -1
}

// ValueSome forwards to Sequence.Some, or returns false.
func ValueSome(v Value, fn func(Value, int) bool) bool {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.Some(fn)
	}
	return false
}

// ValueEvery forwards to Sequence.Every, or returns true — the vacuous
// truth over no elements.
func ValueEvery(v Value, fn func(Value, int) bool) bool {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.Every(fn)
	}
	return true
}

// ValueIncludes forwards to Sequence.Includes, or returns false.
func ValueIncludes(v Value, target Value) bool {
	if seq, ok := normalize(v).(*SequenceValue); ok {
		return seq.Includes(target)
	}
	return false
}
