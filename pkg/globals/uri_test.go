package globals

import "testing"

func TestEncodeURIComponent(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"a b", "a%20b"},
		{"a&b=c", "a%26b%3Dc"},
		{"~-_.", "~-_."},
		{"/path?q=1", "%2Fpath%3Fq%3D1"},
	}
	for _, tc := range cases {
		if got := EncodeURIComponent(tc.in); got != tc.want {
			t.Errorf("EncodeURIComponent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeURIKeepsStructure(t *testing.T) {
	in := "https://example.com/a b?q=1&r=2#frag"
	want := "https://example.com/a%20b?q=1&r=2#frag"
	if got := EncodeURI(in); got != want {
		t.Fatalf("EncodeURI = %q, want %q", got, want)
	}
}

func TestDecodeURI(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a%20b", "a b"},
		{"%2Fpath", "/path"},
		{"plain", "plain"},
		{"%41%42", "AB"},
		// Malformed escapes pass through verbatim.
		{"100%", "100%"},
		{"%G1", "%G1"},
		{"%2", "%2"},
	}
	for _, tc := range cases {
		if got := DecodeURI(tc.in); got != tc.want {
			t.Errorf("DecodeURI(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := "key=value with spaces & symbols?"
	if got := DecodeURIComponent(EncodeURIComponent(in)); got != in {
		t.Fatalf("round trip = %q, want %q", got, in)
	}
}
