// Package quoted splits strings into whitespace-separated tokens honoring
// double-quoted substrings and backslash escapes, and joins token lists back
// into an equivalent quoted rendering.
package quoted

import (
	"strings"

	texttoolkit "github.com/wippyai/text-toolkit"
	"github.com/wippyai/text-toolkit/errors"
)

// Split scans s left to right and returns its tokens. Runs of unquoted
// whitespace separate tokens and are discarded; leading and trailing
// whitespace produce no empty tokens, and empty input yields an empty list.
//
// A double quote opens a quoted span wherever it appears outside one; the
// span consumes whitespace literally and continues until an unescaped
// closing quote. Inside a span, a backslash introduces an escape:
//
//	\\   backslash
//	\"   double quote
//	\n   newline character
//
// Any other escaped byte is passed through with the backslash dropped.
// A quoted span still open at end of input fails with a format error, as
// does a trailing backslash inside one.
//
// The scan is a single pass over {normal, quoted, quoted-escape} states
// with no backtracking.
func Split(s string) ([]string, error) {
	var tokens []string
	var cur []byte
	inToken := false

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"':
			quoteStart := i
			inToken = true
			i++
			for {
				if i == len(s) {
					return nil, errors.UnterminatedQuote(errors.OpQuotedSplit, s[quoteStart:], quoteStart)
				}
				c = s[i]
				if c == '"' {
					i++
					break
				}
				if c == '\\' {
					i++
					if i == len(s) {
						return nil, errors.UnterminatedQuote(errors.OpQuotedSplit, s[quoteStart:], quoteStart)
					}
					if s[i] == 'n' {
						cur = append(cur, '\n')
					} else {
						cur = append(cur, s[i])
					}
					i++
					continue
				}
				cur = append(cur, c)
				i++
			}
		case texttoolkit.IsSpace(c):
			if inToken {
				tokens = append(tokens, string(cur))
				cur = cur[:0]
				inToken = false
			}
			i++
		default:
			cur = append(cur, c)
			inToken = true
			i++
		}
	}

	if inToken {
		tokens = append(tokens, string(cur))
	}
	return tokens, nil
}

// Join is the inverse of Split. A token containing whitespace, a double
// quote, or a backslash (or an empty token) is wrapped in double quotes
// with its backslashes, quotes, and newlines escaped; plain tokens are
// emitted as-is. Tokens are joined with a single space.
//
// Join(Split(s)) need not equal s byte for byte, but re-splitting the
// joined result reproduces the original token list exactly.
func Join(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		if !needsQuoting(tok) {
			b.WriteString(tok)
			continue
		}
		b.WriteByte('"')
		for j := 0; j < len(tok); j++ {
			switch c := tok[j]; c {
			case '\\':
				b.WriteString(`\\`)
			case '"':
				b.WriteString(`\"`)
			case '\n':
				b.WriteString(`\n`)
			default:
				b.WriteByte(c)
			}
		}
		b.WriteByte('"')
	}
	return b.String()
}

func needsQuoting(tok string) bool {
	if len(tok) == 0 {
		return true
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if texttoolkit.IsSpace(c) || c == '"' || c == '\\' {
			return true
		}
	}
	return false
}
