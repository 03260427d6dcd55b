package runtime

import (
	"math"
	"testing"
)

func TestTextSlicing(t *testing.T) {
	text := NewText("hello world")
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"slice", text.Slice(0, 5).Val, "hello"},
		{"slice-negative", text.Slice(-5, 11).Val, "world"},
		{"slice-both-negative", text.Slice(-5, -1).Val, "worl"},
		{"slice-crossed", text.Slice(5, 2).Val, ""},
		{"slice-from", text.SliceFrom(6).Val, "world"},
		{"substring-swapped", text.Substring(5, 0).Val, "hello"},
		{"substring-negative-clamps", text.Substring(-3, 5).Val, "hello"},
		{"substr", text.Substr(6, 3).Val, "wor"},
		{"substr-negative-start", text.Substr(-5, 2).Val, "wo"},
		{"substr-negative-count", text.Substr(6, -1).Val, "world"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestTextCharAccess(t *testing.T) {
	text := NewText("abc")
	if got := text.CharAt(1).Val; got != "b" {
		t.Fatalf("CharAt(1) = %q, want \"b\"", got)
	}
	if got := text.CharAt(9).Val; got != "" {
		t.Fatalf("CharAt(9) = %q, want empty", got)
	}
	if got := text.CharCodeAt(0); got != 97 {
		t.Fatalf("CharCodeAt(0) = %v, want 97", got)
	}
	if got := text.CharCodeAt(-1); !math.IsNaN(got) {
		t.Fatalf("CharCodeAt(-1) = %v, want NaN", got)
	}
}

func TestTextSearch(t *testing.T) {
	text := NewText("one two one")
	if got := text.IndexOf("one", 0); got != 0 {
		t.Fatalf("IndexOf = %d, want 0", got)
	}
	if got := text.IndexOf("one", 1); got != 8 {
		t.Fatalf("IndexOf from 1 = %d, want 8", got)
	}
	if got := text.IndexOf("three", 0); got != -1 {
		t.Fatalf("IndexOf missing = %d, want -1", got)
	}
	if got := text.LastIndexOf("one"); got != 8 {
		t.Fatalf("LastIndexOf = %d, want 8", got)
	}
	if !text.Includes("two") || text.Includes("ten") {
		t.Fatal("Includes misreported")
	}
	if !text.StartsWith("one", 0) || !text.StartsWith("two", 4) {
		t.Fatal("StartsWith misreported")
	}
	if !text.EndsWith("one") || text.EndsWith("two") {
		t.Fatal("EndsWith misreported")
	}
}

func TestTextSplit(t *testing.T) {
	parts := NewText("a,b,c").Split(",", -1)
	if got := parts.Join("|"); got != "a|b|c" {
		t.Fatalf("Split = %q", got)
	}
	limited := NewText("a,b,c").Split(",", 2)
	if limited.Length() != 2 {
		t.Fatalf("limited Split length = %d, want 2", limited.Length())
	}
	bytes := NewText("abc").Split("", -1)
	if got := bytes.Join(","); got != "a,b,c" {
		t.Fatalf("empty-separator Split = %q", got)
	}
	if NewText("abc").Split(",", 0).Length() != 0 {
		t.Fatal("limit 0 must yield no parts")
	}
}

func TestTextReplace(t *testing.T) {
	text := NewText("a-a-a")
	if got := text.Replace("a", "b").Val; got != "b-a-a" {
		t.Fatalf("Replace = %q", got)
	}
	if got := text.ReplaceAll("a", "b").Val; got != "b-b-b" {
		t.Fatalf("ReplaceAll = %q", got)
	}
}

func TestTextPadding(t *testing.T) {
	if got := NewText("5").PadStart(3, "0").Val; got != "005" {
		t.Fatalf("PadStart = %q", got)
	}
	if got := NewText("5").PadEnd(4, "ab").Val; got != "5aba" {
		t.Fatalf("PadEnd = %q (pad must truncate to fit)", got)
	}
	if got := NewText("hello").PadStart(3, "0").Val; got != "hello" {
		t.Fatalf("PadStart shorter than value = %q", got)
	}
	if got := NewText("x").PadStart(3, "").Val; got != "  x" {
		t.Fatalf("PadStart empty pad = %q, want space fill", got)
	}
}

func TestTextTrimAndCase(t *testing.T) {
	text := NewText("  Mixed Case \t\n")
	if got := text.Trim().Val; got != "Mixed Case" {
		t.Fatalf("Trim = %q", got)
	}
	if got := text.TrimStart().Val; got != "Mixed Case \t\n" {
		t.Fatalf("TrimStart = %q", got)
	}
	if got := text.TrimEnd().Val; got != "  Mixed Case" {
		t.Fatalf("TrimEnd = %q", got)
	}
	if got := NewText("AbC").ToLowerCase().Val; got != "abc" {
		t.Fatalf("ToLowerCase = %q", got)
	}
	if got := NewText("AbC").ToUpperCase().Val; got != "ABC" {
		t.Fatalf("ToUpperCase = %q", got)
	}
}

func TestTextRepeatAndFromCharCode(t *testing.T) {
	if got := NewText("ab").Repeat(3).Val; got != "ababab" {
		t.Fatalf("Repeat = %q", got)
	}
	if got := NewText("ab").Repeat(0).Val; got != "" {
		t.Fatalf("Repeat(0) = %q", got)
	}
	if got := FromCharCode(104, 105).Val; got != "hi" {
		t.Fatalf("FromCharCode = %q", got)
	}
}
