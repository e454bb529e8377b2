// Package saslprep implements the querying profile of RFC 4013 (SASLprep),
// the stringprep profile RFC 5802 SCRAM and the other mechanisms in this
// module use to normalize usernames and passwords before they go on the
// wire.
//
// The querying profile deliberately skips prohibited-character and bidi
// checks: it mirrors how a client authenticating against a server treats
// the string (pass it through, mapped and normalized) rather than how a
// server storing the string would validate it.
package saslprep

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Prepare applies RFC 4013 mapping followed by NFKC normalization to s.
// It is idempotent: Prepare(Prepare(s)) == Prepare(s).
func Prepare(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case mapsToNothing(r):
			continue
		case mapsToSpace(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return norm.NFKC.String(b.String())
}

// mapsToSpace reports whether r is in RFC 3454 table C.1.2, the non-ASCII
// space characters RFC 4013 maps to U+0020.
func mapsToSpace(r rune) bool {
	switch r {
	case 0x00A0, 0x1680, 0x202F, 0x205F, 0x3000:
		return true
	}
	// U+2000..U+200B, which also covers U+200B (zero width space) per the
	// RFC 4013 note that it is handled here rather than by the
	// commonly-mapped-to-nothing table.
	return r >= 0x2000 && r <= 0x200B
}

// mapsToNothing reports whether r is in RFC 3454 table B.1, the
// "commonly mapped to nothing" code points RFC 4013 strips entirely.
func mapsToNothing(r rune) bool {
	switch r {
	case 0x00AD, 0x034F, 0x1806, 0x200C, 0x200D, 0x2060, 0xFEFF:
		return true
	}
	if r >= 0x180B && r <= 0x180D {
		return true
	}
	if r >= 0xFE00 && r <= 0xFE0F {
		return true
	}
	return false
}
