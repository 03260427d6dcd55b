// Package globals carries the free functions of the emulated language's
// global scope that are not coercion primitives: URI escaping, Math
// helpers and the Date wrapper. All of them consume the runtime package's
// value types but add no invariants to them.
package globals

import (
	"strings"
)

// uriUnreserved are the bytes encodeURIComponent leaves untouched.
const uriUnreserved = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_.~"

// uriReserved are the additional bytes encodeURI leaves untouched.
const uriReserved = ":/?#[]@!$&'()*+,;="

const upperHex = "0123456789ABCDEF"

func encodeWith(s, keep string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(keep, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0xF])
	}
	return b.String()
}

// EncodeURI percent-encodes everything except unreserved bytes and URI
// structural characters.
func EncodeURI(uri string) string {
	return encodeWith(uri, uriUnreserved+uriReserved)
}

// EncodeURIComponent percent-encodes everything except unreserved bytes.
func EncodeURIComponent(component string) string {
	return encodeWith(component, uriUnreserved)
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodeURI reverses percent-encoding. Malformed escapes pass through
// verbatim rather than failing — decoding is a coercion, not a contract.
func DecodeURI(encoded string) string {
	var b strings.Builder
	b.Grow(len(encoded))
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c == '%' && i+2 < len(encoded) {
			hi, okHi := hexDigit(encoded[i+1])
			lo, okLo := hexDigit(encoded[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// DecodeURIComponent is identical to DecodeURI; the split exists for
// source-language API parity.
func DecodeURIComponent(encoded string) string {
	return DecodeURI(encoded)
}
