package runtime

import "strings"

const textWhitespace = " \t\n\r\f\v"

// Length returns the byte length of the text.
func (v TextValue) Length() int { return len(v.Val) }

// CharAt returns the single-byte text at index, or empty text when the
// index is out of range.
func (v TextValue) CharAt(index int) TextValue {
	if index < 0 || index >= len(v.Val) {
		return TextValue{}
	}
	return TextValue{Val: v.Val[index : index+1]}
}

// CharCodeAt returns the byte value at index, or NaN when out of range.
func (v TextValue) CharCodeAt(index int) float64 {
	if index < 0 || index >= len(v.Val) {
		return NaN
	}
	return float64(v.Val[index])
}

// normalizeSliceBounds resolves negative indices relative to length, then
// clamps into [0, length]. Shared by text and sequence slicing.
func normalizeSliceBounds(start, end, length int) (int, int) {
	if start < 0 {
		start = length + start
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end = length + end
		if end < 0 {
			end = 0
		}
	}
	if start > length {
		start = length
	}
	if end > length {
		end = length
	}
	return start, end
}

// Slice extracts [start, end) with negative indices counted from the end.
func (v TextValue) Slice(start, end int) TextValue {
	start, end = normalizeSliceBounds(start, end, len(v.Val))
	if start >= end {
		return TextValue{}
	}
	return TextValue{Val: v.Val[start:end]}
}

// SliceFrom is Slice with the end defaulted to the text length.
func (v TextValue) SliceFrom(start int) TextValue {
	return v.Slice(start, len(v.Val))
}

// Substring extracts [start, end), clamping negatives to zero and swapping
// the bounds when start exceeds end.
func (v TextValue) Substring(start, end int) TextValue {
	length := len(v.Val)
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if start > end {
		start, end = end, start
	}
	if start > length {
		start = length
	}
	if end > length {
		end = length
	}
	return TextValue{Val: v.Val[start:end]}
}

// Substr extracts up to count bytes starting at start; a negative start
// counts from the end and a negative count means "to the end".
func (v TextValue) Substr(start, count int) TextValue {
	length := len(v.Val)
	if start < 0 {
		start = length + start
		if start < 0 {
			start = 0
		}
	}
	if start > length {
		start = length
	}
	if count < 0 || count > length-start {
		count = length - start
	}
	return TextValue{Val: v.Val[start : start+count]}
}

func (v TextValue) ToLowerCase() TextValue { return TextValue{Val: strings.ToLower(v.Val)} }

func (v TextValue) ToUpperCase() TextValue { return TextValue{Val: strings.ToUpper(v.Val)} }

func (v TextValue) Trim() TextValue {
	return TextValue{Val: strings.Trim(v.Val, textWhitespace)}
}

func (v TextValue) TrimStart() TextValue {
	return TextValue{Val: strings.TrimLeft(v.Val, textWhitespace)}
}

func (v TextValue) TrimEnd() TextValue {
	return TextValue{Val: strings.TrimRight(v.Val, textWhitespace)}
}

// IndexOf returns the byte offset of search at or after fromIndex, or -1.
func (v TextValue) IndexOf(search string, fromIndex int) int {
	if fromIndex < 0 {
		fromIndex = 0
	}
	if fromIndex > len(v.Val) {
		return -1
	}
	i := strings.Index(v.Val[fromIndex:], search)
	if i < 0 {
		return -1
	}
	return fromIndex + i
}

// LastIndexOf returns the byte offset of the last occurrence of search, or
// -1.
func (v TextValue) LastIndexOf(search string) int {
	return strings.LastIndex(v.Val, search)
}

func (v TextValue) Includes(search string) bool {
	return strings.Contains(v.Val, search)
}

func (v TextValue) StartsWith(search string, position int) bool {
	if position < 0 {
		position = 0
	}
	if position > len(v.Val) {
		return false
	}
	return strings.HasPrefix(v.Val[position:], search)
}

func (v TextValue) EndsWith(search string) bool {
	return strings.HasSuffix(v.Val, search)
}

// Split divides the text by separator. An empty separator splits into
// single-byte pieces; limit < 0 means unlimited.
func (v TextValue) Split(separator string, limit int) *SequenceValue {
	result := NewSequence(nil)
	if limit == 0 {
		return result
	}
	if separator == "" {
		for i := 0; i < len(v.Val); i++ {
			if limit >= 0 && result.Length() >= limit {
				break
			}
			result.Push(TextValue{Val: v.Val[i : i+1]})
		}
		return result
	}
	parts := strings.Split(v.Val, separator)
	for _, part := range parts {
		if limit >= 0 && result.Length() >= limit {
			break
		}
		result.Push(TextValue{Val: part})
	}
	return result
}

// Replace substitutes the first occurrence of search.
func (v TextValue) Replace(search, replacement string) TextValue {
	return TextValue{Val: strings.Replace(v.Val, search, replacement, 1)}
}

// ReplaceAll substitutes every occurrence of search.
func (v TextValue) ReplaceAll(search, replacement string) TextValue {
	return TextValue{Val: strings.ReplaceAll(v.Val, search, replacement)}
}

// PadStart left-pads to targetLength with pad (default single space),
// truncating the final repetition to fit.
func (v TextValue) PadStart(targetLength int, pad string) TextValue {
	fill := buildPadding(targetLength-len(v.Val), pad)
	if fill == "" {
		return v
	}
	return TextValue{Val: fill + v.Val}
}

// PadEnd right-pads to targetLength with pad.
func (v TextValue) PadEnd(targetLength int, pad string) TextValue {
	fill := buildPadding(targetLength-len(v.Val), pad)
	if fill == "" {
		return v
	}
	return TextValue{Val: v.Val + fill}
}

func buildPadding(missing int, pad string) string {
	if missing <= 0 {
		return ""
	}
	if pad == "" {
		pad = " "
	}
	var b strings.Builder
	b.Grow(missing)
	for b.Len() < missing {
		remaining := missing - b.Len()
		if len(pad) <= remaining {
			b.WriteString(pad)
		} else {
			b.WriteString(pad[:remaining])
		}
	}
	return b.String()
}

// Repeat concatenates count copies of the text.
func (v TextValue) Repeat(count int) TextValue {
	if count <= 0 {
		return TextValue{}
	}
	return TextValue{Val: strings.Repeat(v.Val, count)}
}

// FromCharCode builds text from byte values, masking each code to a single
// byte.
func FromCharCode(codes ...float64) TextValue {
	var b strings.Builder
	b.Grow(len(codes))
	for _, code := range codes {
		b.WriteByte(byte(int64(code) & 0xFF))
	}
	return TextValue{Val: b.String()}
}
