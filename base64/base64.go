// Package base64 implements the RFC 4648 standard-alphabet Base64 codec
// with optional output line wrapping.
//
// Encode and Decode are exact inverses for byte sequences of any length,
// including zero. Decode also accepts the line-wrapped form: whitespace
// anywhere in the input is insignificant and skipped.
package base64

import (
	"strings"

	texttoolkit "github.com/wippyai/text-toolkit"
	"github.com/wippyai/text-toolkit/errors"
)

// alphabet is the fixed 64-symbol standard Base64 alphabet. It is shared
// read-only by all callers and never mutated.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// pad marks an incomplete final 3-byte group.
const pad = '='

// decodeMap maps a symbol byte back to its 6-bit value, or -1.
var decodeMap = buildDecodeMap()

func buildDecodeMap() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = int8(i)
	}
	return m
}

// Encode converts src to Base64 text with no line breaks. Empty input
// yields the empty string.
func Encode(src []byte) string {
	return EncodeWrapped(src, 0)
}

// EncodeWrapped converts src to Base64 text, inserting a line break after
// every lineLength output symbols when lineLength > 0. No line break is
// emitted after the final line.
func EncodeWrapped(src []byte, lineLength int) string {
	if len(src) == 0 {
		return ""
	}

	var b strings.Builder
	n := len(src)
	b.Grow(((n + 2) / 3) * 4)

	column := 0
	emit := func(c byte) {
		if lineLength > 0 && column == lineLength {
			b.WriteByte('\n')
			column = 0
		}
		b.WriteByte(c)
		column++
	}

	i := 0
	for ; i+3 <= n; i += 3 {
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		emit(alphabet[v>>18&0x3F])
		emit(alphabet[v>>12&0x3F])
		emit(alphabet[v>>6&0x3F])
		emit(alphabet[v&0x3F])
	}

	switch n - i {
	case 1:
		v := uint32(src[i]) << 16
		emit(alphabet[v>>18&0x3F])
		emit(alphabet[v>>12&0x3F])
		emit(pad)
		emit(pad)
	case 2:
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8
		emit(alphabet[v>>18&0x3F])
		emit(alphabet[v>>12&0x3F])
		emit(alphabet[v>>6&0x3F])
		emit(pad)
	}

	return b.String()
}

// Decode reverses Encode. Whitespace is skipped wherever it appears; '='
// padding marks the end of the payload. Any other byte outside the alphabet
// fails with a format error naming the offending run. Empty input yields an
// empty (nil) byte slice.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/4*3)

	var quad [4]byte
	n := 0
	last := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if texttoolkit.IsSpace(c) || c == pad {
			continue
		}
		v := decodeMap[c]
		if v < 0 {
			return nil, errors.InvalidByte(errors.OpBase64Decode, invalidRun(s, i), i)
		}
		quad[n] = byte(v)
		last = i
		n++
		if n == 4 {
			v := uint32(quad[0])<<18 | uint32(quad[1])<<12 | uint32(quad[2])<<6 | uint32(quad[3])
			out = append(out, byte(v>>16), byte(v>>8), byte(v))
			n = 0
		}
	}

	switch n {
	case 0:
	case 2:
		v := uint32(quad[0])<<18 | uint32(quad[1])<<12
		out = append(out, byte(v>>16))
	case 3:
		v := uint32(quad[0])<<18 | uint32(quad[1])<<12 | uint32(quad[2])<<6
		out = append(out, byte(v>>16), byte(v>>8))
	default: // a single dangling symbol encodes no complete byte
		return nil, &errors.Error{
			Op:     errors.OpBase64Decode,
			Kind:   errors.KindInvalidByte,
			Run:    string(alphabet[quad[0]]),
			Offset: last,
			Detail: "dangling symbol in final group",
		}
	}

	return out, nil
}

// invalidRun returns the maximal run of consecutive rejected bytes starting
// at i, for error reporting.
func invalidRun(s string, i int) string {
	j := i
	for j < len(s) {
		c := s[j]
		if texttoolkit.IsSpace(c) || c == pad || decodeMap[c] >= 0 {
			break
		}
		j++
	}
	return s[i:j]
}
