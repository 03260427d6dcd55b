package runtime

import (
	"sort"
	"strings"
)

// SequenceValue is the ordered, index-addressable container. It is always
// handled through a pointer: copying a Value that holds a Sequence aliases
// the same storage. Use Clone/DeepClone when copy semantics are required.
type SequenceValue struct {
	Elements []Value
}

func (v *SequenceValue) Kind() Kind { return KindSequence }

// NewSequence wraps the provided elements without copying.
func NewSequence(elements []Value) *SequenceValue {
	return &SequenceValue{Elements: elements}
}

// SequenceOf builds a sequence from the listed values.
func SequenceOf(elements ...Value) *SequenceValue {
	return &SequenceValue{Elements: elements}
}

func (v *SequenceValue) Length() int {
	if v == nil {
		return 0
	}
	return len(v.Elements)
}

// At reads the element at index. Out-of-range access is a contract
// violation.
func (v *SequenceValue) At(index int) (Value, error) {
	if v == nil || index < 0 || index >= len(v.Elements) {
		return nil, newIndexRangeError(index, v.Length())
	}
	return normalize(v.Elements[index]), nil
}

// SetAt writes the element at index. Out-of-range access is a contract
// violation.
func (v *SequenceValue) SetAt(index int, value Value) error {
	if v == nil || index < 0 || index >= len(v.Elements) {
		return newIndexRangeError(index, v.Length())
	}
	v.Elements[index] = normalize(value)
	return nil
}

func (v *SequenceValue) Push(values ...Value) int {
	for _, value := range values {
		v.Elements = append(v.Elements, normalize(value))
	}
	return len(v.Elements)
}

// Pop removes and returns the last element, or Undefined when empty.
func (v *SequenceValue) Pop() Value {
	if v == nil || len(v.Elements) == 0 {
		return Undefined
	}
	last := v.Elements[len(v.Elements)-1]
	v.Elements = v.Elements[:len(v.Elements)-1]
	return normalize(last)
}

// Shift removes and returns the first element, or Undefined when empty.
func (v *SequenceValue) Shift() Value {
	if v == nil || len(v.Elements) == 0 {
		return Undefined
	}
	first := v.Elements[0]
	v.Elements = append([]Value(nil), v.Elements[1:]...)
	return normalize(first)
}

// Unshift prepends values and returns the new length.
func (v *SequenceValue) Unshift(values ...Value) int {
	for i := range values {
		values[i] = normalize(values[i])
	}
	v.Elements = append(append([]Value(nil), values...), v.Elements...)
	return len(v.Elements)
}

// Slice returns a new sequence over [start, end). Negative bounds are
// resolved relative to the length before clamping into [0, length].
func (v *SequenceValue) Slice(start, end int) *SequenceValue {
	start, end = normalizeSliceBounds(start, end, v.Length())
	if start >= end {
		return NewSequence(nil)
	}
	return NewSequence(append([]Value(nil), v.Elements[start:end]...))
}

// SliceFrom is Slice with the end defaulted to the length.
func (v *SequenceValue) SliceFrom(start int) *SequenceValue {
	return v.Slice(start, v.Length())
}

// Splice removes min(deleteCount, length-start) elements at start, inserts
// items in their place, and returns the removed elements as a new sequence.
func (v *SequenceValue) Splice(start, deleteCount int, items ...Value) *SequenceValue {
	length := len(v.Elements)
	if start < 0 {
		start = length + start
		if start < 0 {
			start = 0
		}
	}
	if start > length {
		start = length
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > length-start {
		deleteCount = length - start
	}
	removed := append([]Value(nil), v.Elements[start:start+deleteCount]...)
	for i := range items {
		items[i] = normalize(items[i])
	}
	rest := append([]Value(nil), v.Elements[start+deleteCount:]...)
	v.Elements = append(append(v.Elements[:start], items...), rest...)
	return NewSequence(removed)
}

// Comparator orders two values: negative when a sorts before b, zero when
// equal, positive otherwise.
type Comparator func(a, b Value) int

// DefaultComparator is the no-comparator sort order: lexicographic
// comparison of the canonical text forms. Heterogeneous element kinds are
// therefore totally ordered by their string coercions.
func DefaultComparator(a, b Value) int {
	return strings.Compare(ToText(a), ToText(b))
}

// SortStable sorts in place, stably, using cmp, or DefaultComparator when
// cmp is nil.
func (v *SequenceValue) SortStable(cmp Comparator) {
	if cmp == nil {
		cmp = DefaultComparator
	}
	sort.SliceStable(v.Elements, func(i, j int) bool {
		return cmp(normalize(v.Elements[i]), normalize(v.Elements[j])) < 0
	})
}

// Concat returns a new sequence of the receiver followed by the elements of
// each argument sequence.
func (v *SequenceValue) Concat(others ...*SequenceValue) *SequenceValue {
	out := append([]Value(nil), v.Elements...)
	for _, other := range others {
		if other != nil {
			out = append(out, other.Elements...)
		}
	}
	return NewSequence(out)
}

// Join renders each element through its canonical to-text conversion and
// joins with separator.
func (v *SequenceValue) Join(separator string) string {
	parts := make([]string, 0, v.Length())
	for _, element := range v.Elements {
		parts = append(parts, ToText(element))
	}
	return strings.Join(parts, separator)
}

// Flat flattens nested sequences to the given depth; a negative depth
// flattens fully.
func (v *SequenceValue) Flat(depth int) *SequenceValue {
	out := NewSequence(nil)
	flattenInto(out, v, depth)
	return out
}

func flattenInto(out, src *SequenceValue, depth int) {
	for _, element := range src.Elements {
		if nested, ok := element.(*SequenceValue); ok && depth != 0 {
			flattenInto(out, nested, depth-1)
			continue
		}
		out.Push(element)
	}
}

// FlatMap maps each element and flattens single-level sequence results.
func (v *SequenceValue) FlatMap(fn func(Value, int) Value) *SequenceValue {
	out := NewSequence(nil)
	for i, element := range v.Elements {
		mapped := normalize(fn(normalize(element), i))
		if nested, ok := mapped.(*SequenceValue); ok {
			out.Elements = append(out.Elements, nested.Elements...)
			continue
		}
		out.Push(mapped)
	}
	return out
}

// Reverse reverses in place and returns the receiver.
func (v *SequenceValue) Reverse() *SequenceValue {
	for i, j := 0, len(v.Elements)-1; i < j; i, j = i+1, j-1 {
		v.Elements[i], v.Elements[j] = v.Elements[j], v.Elements[i]
	}
	return v
}

// IndexOf returns the index of the first element equal to target under
// strict-kind equality, or -1.
func (v *SequenceValue) IndexOf(target Value) int {
	if v == nil {
		return -1
	}
	for i, element := range v.Elements {
		if Equals(normalize(element), target) {
			return i
		}
	}
	return -1
}

// Includes reports whether any element equals target under strict-kind
// equality.
func (v *SequenceValue) Includes(target Value) bool {
	return v.IndexOf(target) >= 0
}

// Map builds a new sequence of fn applied to each element.
func (v *SequenceValue) Map(fn func(Value, int) Value) *SequenceValue {
	out := make([]Value, 0, v.Length())
	for i, element := range v.Elements {
		out = append(out, normalize(fn(normalize(element), i)))
	}
	return NewSequence(out)
}

// Filter builds a new sequence of the elements fn accepts.
func (v *SequenceValue) Filter(fn func(Value, int) bool) *SequenceValue {
	out := NewSequence(nil)
	for i, element := range v.Elements {
		if fn(normalize(element), i) {
			out.Push(element)
		}
	}
	return out
}

// Reduce folds the elements left-to-right starting from initial.
func (v *SequenceValue) Reduce(fn func(acc Value, element Value, index int) Value, initial Value) Value {
	acc := normalize(initial)
	for i, element := range v.Elements {
		acc = normalize(fn(acc, normalize(element), i))
	}
	return acc
}

// ForEach applies fn to each element in order.
func (v *SequenceValue) ForEach(fn func(Value, int)) {
	for i, element := range v.Elements {
		fn(normalize(element), i)
	}
}

// Find returns the first element fn accepts, or Undefined.
func (v *SequenceValue) Find(fn func(Value, int) bool) Value {
	for i, element := range v.Elements {
		if fn(normalize(element), i) {
			return normalize(element)
		}
	}
	return Undefined
}

// FindIndex returns the index of the first element fn accepts, or -1.
func (v *SequenceValue) FindIndex(fn func(Value, int) bool) int {
	for i, element := range v.Elements {
		if fn(normalize(element), i) {
			return i
		}
	}
	return -1
}

// Some reports whether fn accepts any element.
func (v *SequenceValue) Some(fn func(Value, int) bool) bool {
	return v.FindIndex(fn) >= 0
}

// Every reports whether fn accepts all elements; vacuously true when empty.
func (v *SequenceValue) Every(fn func(Value, int) bool) bool {
	for i, element := range v.Elements {
		if !fn(normalize(element), i) {
			return false
		}
	}
	return true
}

// Clone copies the element slice; the elements themselves still alias.
func (v *SequenceValue) Clone() *SequenceValue {
	if v == nil {
		return NewSequence(nil)
	}
	return NewSequence(append([]Value(nil), v.Elements...))
}

// DeepClone copies the sequence and recursively clones nested sequences and
// records. Cyclic graphs are a caller error and will not terminate.
func (v *SequenceValue) DeepClone() *SequenceValue {
	if v == nil {
		return NewSequence(nil)
	}
	out := make([]Value, len(v.Elements))
	for i, element := range v.Elements {
		out[i] = deepCloneValue(normalize(element))
	}
	return NewSequence(out)
}

func deepCloneValue(v Value) Value {
	switch concrete := v.(type) {
	case *SequenceValue:
		return concrete.DeepClone()
	case *RecordValue:
		return concrete.DeepClone()
	default:
		return v
	}
}
