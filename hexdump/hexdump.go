// Package hexdump converts between byte sequences and uppercase hexadecimal
// text, and renders byte sequences as C array literals.
package hexdump

import (
	"strconv"
	"strings"

	texttoolkit "github.com/wippyai/text-toolkit"
	"github.com/wippyai/text-toolkit/errors"
)

// hexDigits is the fixed uppercase digit table, shared read-only.
const hexDigits = "0123456789ABCDEF"

// Dump returns two uppercase hex digits per input byte with no separators
// or line breaks. Output length is exactly 2*len(src).
func Dump(src []byte) string {
	out := make([]byte, 0, 2*len(src))
	for _, b := range src {
		out = append(out, hexDigits[b>>4], hexDigits[b&0x0F])
	}
	return string(out)
}

// Parse is the inverse of Dump. It requires an even-length string of hex
// digits; both cases are accepted even though Dump only emits uppercase.
// Odd length or any non-hex byte fails with a format error.
func Parse(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.OddLength(errors.OpHexParse, s)
	}

	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i++ {
		if !texttoolkit.IsHexDigit(s[i]) {
			return nil, errors.InvalidByte(errors.OpHexParse, invalidRun(s, i), i)
		}
		if i%2 == 1 {
			out = append(out, nibble(s[i-1])<<4|nibble(s[i]))
		}
	}
	return out, nil
}

// SourceCode renders src as a C array literal declaration:
//
//	const uint8_t <name>[<n>] = {
//	0xHH,0xHH,...
//	};
//
// All byte tokens are emitted on a single line, comma separated with no
// trailing comma. name is inserted verbatim; the caller is trusted to
// supply a valid identifier.
func SourceCode(src []byte, name string) string {
	var b strings.Builder
	b.Grow(len(src)*5 + len(name) + 32)

	b.WriteString("const uint8_t ")
	b.WriteString(name)
	b.WriteByte('[')
	b.WriteString(strconv.Itoa(len(src)))
	b.WriteString("] = {\n")

	for i, c := range src {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("0x")
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0F])
	}

	b.WriteString("\n};\n")
	return b.String()
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// invalidRun returns the maximal run of consecutive non-hex bytes starting
// at i, for error reporting.
func invalidRun(s string, i int) string {
	j := i
	for j < len(s) && !texttoolkit.IsHexDigit(s[j]) {
		j++
	}
	return s[i:j]
}
