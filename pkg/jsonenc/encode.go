// Package jsonenc serialises dynamic values to JSON text and back. It is an
// external collaborator of the value model: it consumes the runtime
// package's conversions but imposes no invariants of its own.
package jsonenc

import (
	"math"
	"strconv"
	"strings"

	"ts2go/runtime-go/pkg/runtime"
)

// Stringify renders v as JSON following the emulated language's rules:
// NaN and infinities render as null, undefined record properties are
// dropped, undefined sequence elements render as null. The second result
// is false when the top-level value itself has no JSON form (undefined).
func Stringify(v runtime.Value) (string, bool) {
	return StringifyIndent(v, "")
}

// StringifyIndent is Stringify with pretty-printing; an empty indent emits
// compact output.
func StringifyIndent(v runtime.Value, indent string) (string, bool) {
	if runtime.IsUndefined(v) {
		return "", false
	}
	var b strings.Builder
	writeValue(&b, v, indent, "")
	return b.String(), true
}

func writeValue(b *strings.Builder, v runtime.Value, indent, prefix string) {
	switch concrete := v.(type) {
	case runtime.NullValue, runtime.UndefinedValue:
		b.WriteString("null")
	case runtime.BoolValue:
		if concrete.Val {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case runtime.NumberValue:
		if math.IsNaN(concrete.Val) || math.IsInf(concrete.Val, 0) {
			b.WriteString("null")
			return
		}
		b.WriteString(runtime.FormatNumber(concrete.Val))
	case runtime.TextValue:
		writeEscaped(b, concrete.Val)
	case *runtime.SequenceValue:
		writeSequence(b, concrete, indent, prefix)
	case *runtime.RecordValue:
		writeRecord(b, concrete, indent, prefix)
	default:
		b.WriteString("null")
	}
}

func writeSequence(b *strings.Builder, seq *runtime.SequenceValue, indent, prefix string) {
	if seq.Length() == 0 {
		b.WriteString("[]")
		return
	}
	inner := prefix + indent
	b.WriteByte('[')
	for i, element := range seq.Elements {
		if i > 0 {
			b.WriteByte(',')
		}
		if indent != "" {
			b.WriteByte('\n')
			b.WriteString(inner)
		}
		if element == nil {
			element = runtime.Undefined
		}
		writeValue(b, element, indent, inner)
	}
	if indent != "" {
		b.WriteByte('\n')
		b.WriteString(prefix)
	}
	b.WriteByte(']')
}

func writeRecord(b *strings.Builder, record *runtime.RecordValue, indent, prefix string) {
	entries := record.OwnEntries()
	written := 0
	inner := prefix + indent
	b.WriteByte('{')
	for _, entry := range entries {
		if runtime.IsUndefined(entry.Value) {
			continue
		}
		if written > 0 {
			b.WriteByte(',')
		}
		if indent != "" {
			b.WriteByte('\n')
			b.WriteString(inner)
		}
		writeEscaped(b, entry.Key)
		b.WriteByte(':')
		if indent != "" {
			b.WriteByte(' ')
		}
		writeValue(b, entry.Value, indent, inner)
		written++
	}
	if indent != "" && written > 0 {
		b.WriteByte('\n')
		b.WriteString(prefix)
	}
	b.WriteByte('}')
}

func writeEscaped(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				hex := strconv.FormatInt(int64(c), 16)
				b.WriteString(`\u`)
				b.WriteString(strings.Repeat("0", 4-len(hex)))
				b.WriteString(hex)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}
