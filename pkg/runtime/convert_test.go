package runtime

import (
	"math"
	"testing"
)

func TestToText(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want string
	}{
		{"undefined", Undefined, "undefined"},
		{"null", Null, "null"},
		{"true", NewBool(true), "true"},
		{"false", NewBool(false), "false"},
		{"number", NewNumber(1.5), "1.5"},
		{"negative-zero", NewNumber(math.Copysign(0, -1)), "0"},
		{"nan", NewNumber(math.NaN()), "NaN"},
		{"text", NewText("hi"), "hi"},
		{"sequence", SequenceOf(NewNumber(1), NewText("a"), Null), "1,a,null"},
		{"record", NewRecord(), "[object Object]"},
		{"nil", nil, "undefined"},
	}
	for _, tc := range cases {
		if got := ToText(tc.in); got != tc.want {
			t.Errorf("%s: ToText = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestToNumber(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want float64
	}{
		{"null", Null, 0},
		{"true", NewBool(true), 1},
		{"false", NewBool(false), 0},
		{"number", NewNumber(7), 7},
		{"numeric-text", NewText("42.5"), 42.5},
		{"padded-text", NewText("  8 "), 8},
	}
	for _, tc := range cases {
		if got := ToNumber(tc.in); got != tc.want {
			t.Errorf("%s: ToNumber = %v, want %v", tc.name, got, tc.want)
		}
	}
	for _, tc := range []struct {
		name string
		in   Value
	}{
		{"undefined", Undefined},
		{"word-text", NewText("abc")},
		{"record", NewRecord()},
		{"sequence", SequenceOf(NewNumber(1))},
	} {
		if got := ToNumber(tc.in); !math.IsNaN(got) {
			t.Errorf("%s: ToNumber = %v, want NaN", tc.name, got)
		}
	}
}

func TestToBool(t *testing.T) {
	falsy := []Value{Undefined, Null, NewBool(false), NewNumber(0), NewNumber(math.NaN()), NewText("")}
	for _, v := range falsy {
		if ToBool(v) {
			t.Errorf("ToBool(%s) = true, want false", Inspect(v))
		}
	}
	truthy := []Value{NewBool(true), NewNumber(-1), NewText("0"), NewSequence(nil), NewRecord()}
	for _, v := range truthy {
		if !ToBool(v) {
			t.Errorf("ToBool(%s) = false, want true", Inspect(v))
		}
	}
}

func TestTypeOf(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{Undefined, "undefined"},
		{Null, "object"},
		{NewBool(true), "boolean"},
		{NewNumber(1), "number"},
		{NewText(""), "string"},
		{NewSequence(nil), "object"},
		{NewRecord(), "object"},
	}
	for _, tc := range cases {
		if got := TypeOf(tc.in); got != tc.want {
			t.Errorf("TypeOf(%s) = %q, want %q", Inspect(tc.in), got, tc.want)
		}
	}
}

func TestInspect(t *testing.T) {
	record := RecordOf(
		RecordEntry{Key: "name", Value: NewText("x")},
		RecordEntry{Key: "items", Value: SequenceOf(NewNumber(1), NewText("two"))},
	)
	want := `{ name: "x", items: [ 1, "two" ] }`
	if got := Inspect(record); got != want {
		t.Fatalf("Inspect = %q, want %q", got, want)
	}
	if got := Inspect(NewSequence(nil)); got != "[]" {
		t.Fatalf("Inspect empty sequence = %q", got)
	}
	if got := Inspect(NewRecord()); got != "{}" {
		t.Fatalf("Inspect empty record = %q", got)
	}
	if got := Inspect(NewText("top")); got != "top" {
		t.Fatalf("top-level text must not be quoted: %q", got)
	}
}

func TestInspectCycles(t *testing.T) {
	seq := SequenceOf(NewNumber(1))
	seq.Push(seq)
	if got := Inspect(seq); got != "[ 1, [Circular] ]" {
		t.Fatalf("Inspect cyclic sequence = %q", got)
	}
	record := NewRecord()
	record.Set("self", record)
	if got := Inspect(record); got != "{ self: [Circular] }" {
		t.Fatalf("Inspect cyclic record = %q", got)
	}
}
