package xmltok

import "unicode"

// nameStartASCII is a fast-path lookup table for the ASCII portion of
// the NameStartChar production, mirroring the two-tier
// table-then-RangeTable approach used for name classification in the
// wider XML tooling ecosystem.
var nameStartASCII [128]bool

// nameASCII is the ASCII portion of the NameChar production
// (NameStartChar plus '-', '.', digits).
var nameASCII [128]bool

func init() {
	nameStartASCII[':'] = true
	nameStartASCII['_'] = true
	for c := 'A'; c <= 'Z'; c++ {
		nameStartASCII[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		nameStartASCII[c] = true
	}
	for c := range nameStartASCII {
		nameASCII[c] = nameStartASCII[c]
	}
	nameASCII['-'] = true
	nameASCII['.'] = true
	for c := '0'; c <= '9'; c++ {
		nameASCII[c] = true
	}
}

// nameStartTable holds the non-ASCII NameStartChar ranges from the
// W3C XML 1.0 grammar.
var nameStartTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00C0, 0x00D6, 1},
		{0x00D8, 0x00F6, 1},
		{0x00F8, 0x02FF, 1},
		{0x0370, 0x037D, 1},
		{0x037F, 0x1FFF, 1},
		{0x200C, 0x200D, 1},
		{0x2070, 0x218F, 1},
		{0x2C00, 0x2FEF, 1},
		{0x3001, 0xD7FF, 1},
		{0xF900, 0xFDCF, 1},
		{0xFDF0, 0xFFFD, 1},
	},
	R32: []unicode.Range32{
		{0x10000, 0xEFFFF, 1},
	},
}

// nameCharTable holds the non-ASCII, non-NameStartChar additions the
// NameChar production makes on top of NameStartChar.
var nameCharTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x00B7, 0x00B7, 1},
		{0x0300, 0x036F, 1},
		{0x203F, 0x2040, 1},
	},
}

func isNameStartChar(r rune) bool {
	if r >= 0 && r < 128 {
		return nameStartASCII[r]
	}
	return unicode.Is(nameStartTable, r)
}

func isNameChar(r rune) bool {
	if r >= 0 && r < 128 {
		return nameASCII[r]
	}
	return unicode.Is(nameStartTable, r) || unicode.Is(nameCharTable, r)
}

// pubidPunct is the exact punctuation subset PubidChar permits,
// beyond space/CR/LF/letters/digits.
const pubidPunct = "-'()+,./:=?;!*#@$_%"

func isPubidChar(r rune) bool {
	switch r {
	case ' ', '\r', '\n':
		return true
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	for _, p := range pubidPunct {
		if r == p {
			return true
		}
	}
	return false
}

// isChar implements the W3C XML 1.0 Char production: any Unicode
// scalar value except the disallowed C0 controls (tab/LF/CR excepted)
// and surrogate code points.
func isChar(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return -1
	}
}
