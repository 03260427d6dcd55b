package runtime

import (
	"math"
	"strconv"
	"strings"
)

// ToText is the canonical to-string conversion. It is total: every value
// kind has a text form and the conversion never fails.
func ToText(v Value) string {
	switch concrete := normalize(v).(type) {
	case UndefinedValue:
		return "undefined"
	case NullValue:
		return "null"
	case BoolValue:
		if concrete.Val {
			return "true"
		}
		return "false"
	case NumberValue:
		return FormatNumber(concrete.Val)
	case TextValue:
		return concrete.Val
	case *SequenceValue:
		return concrete.Join(",")
	case *RecordValue:
		return "[object Object]"
	default:
		return "[object Object]"
	}
}

// ToNumber is the canonical to-number conversion. It is total: values with
// no numeric interpretation convert to NaN, never an error.
func ToNumber(v Value) float64 {
	switch concrete := normalize(v).(type) {
	case UndefinedValue:
		return NaN
	case NullValue:
		return 0
	case BoolValue:
		if concrete.Val {
			return 1
		}
		return 0
	case NumberValue:
		return concrete.Val
	case TextValue:
		return ParseFloat(concrete.Val)
	default:
		return NaN
	}
}

// ToBool is the canonical truthiness conversion: undefined, null, false,
// NaN, 0 and empty text are falsy; containers are always truthy.
func ToBool(v Value) bool {
	switch concrete := normalize(v).(type) {
	case UndefinedValue, NullValue:
		return false
	case BoolValue:
		return concrete.Val
	case NumberValue:
		return !math.IsNaN(concrete.Val) && concrete.Val != 0
	case TextValue:
		return concrete.Val != ""
	default:
		return true
	}
}

// TypeOf returns the source-language typeof string, including the
// `typeof null == "object"` quirk.
func TypeOf(v Value) string {
	switch normalize(v).Kind() {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "object"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindText:
		return "string"
	default:
		return "object"
	}
}

// Inspect renders a value for diagnostic display: text is quoted inside
// containers, records print ordered key/value pairs, and already-visited
// containers print as [Circular].
func Inspect(v Value) string {
	var b strings.Builder
	inspectInto(&b, normalize(v), make(map[Value]bool), false)
	return b.String()
}

func inspectInto(b *strings.Builder, v Value, seen map[Value]bool, nested bool) {
	switch concrete := v.(type) {
	case TextValue:
		if nested {
			b.WriteString(strconv.Quote(concrete.Val))
		} else {
			b.WriteString(concrete.Val)
		}
	case *SequenceValue:
		if seen[v] {
			b.WriteString("[Circular]")
			return
		}
		seen[v] = true
		if len(concrete.Elements) == 0 {
			b.WriteString("[]")
			delete(seen, v)
			return
		}
		b.WriteString("[ ")
		for i, element := range concrete.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			inspectInto(b, normalize(element), seen, true)
		}
		b.WriteString(" ]")
		delete(seen, v)
	case *RecordValue:
		if seen[v] {
			b.WriteString("[Circular]")
			return
		}
		seen[v] = true
		if concrete.Size() == 0 {
			b.WriteString("{}")
			delete(seen, v)
			return
		}
		b.WriteString("{ ")
		for i, entry := range concrete.OwnEntries() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(entry.Key)
			b.WriteString(": ")
			inspectInto(b, normalize(entry.Value), seen, true)
		}
		b.WriteString(" }")
		delete(seen, v)
	default:
		b.WriteString(ToText(v))
	}
}
