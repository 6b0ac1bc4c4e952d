// Package split provides delimiter splitting with configurable result-count
// bounds, the paired join, and whitespace word splitting.
//
// Delimiters are literal: a single-character string, a longer substring, or
// the empty string, which splits into individual characters. Adjacent
// delimiter occurrences produce empty tokens; nothing is ever collapsed or
// reordered. Words collapses whitespace runs instead; see Words.
package split

import (
	"strings"

	texttoolkit "github.com/wippyai/text-toolkit"
)

// Split splits s on every occurrence of sep. Adjacent occurrences yield
// empty tokens, so leading and trailing delimiters are visible in the
// result: Split("/", "/usr/bin/test/") is ["", "usr", "bin", "test", ""].
func Split(sep, s string) []string {
	return MinMax(sep, s, 0, -1)
}

// N is Split bounded to at most max tokens. Once max-1 tokens have been
// produced, the final token absorbs the entire unsplit remainder verbatim,
// further delimiter occurrences included. max == 0 yields an empty list
// regardless of input; max < 0 means unbounded.
func N(sep, s string, max int) []string {
	return MinMax(sep, s, 0, max)
}

// MinMax is Split bounded to at most max tokens (see N) and right-padded
// with empty tokens until the result holds at least min entries.
func MinMax(sep, s string, min, max int) []string {
	var tokens []string

	switch {
	case max == 0:
	case sep == "":
		for i := 0; i < len(s); i++ {
			if max > 0 && len(tokens) == max-1 {
				tokens = append(tokens, s[i:])
				break
			}
			tokens = append(tokens, s[i:i+1])
		}
	default:
		start := 0
		for max < 0 || len(tokens) < max-1 {
			idx := strings.Index(s[start:], sep)
			if idx < 0 {
				break
			}
			tokens = append(tokens, s[start:start+idx])
			start += idx + len(sep)
		}
		tokens = append(tokens, s[start:])
	}

	for len(tokens) < min {
		tokens = append(tokens, "")
	}
	return tokens
}

// Join concatenates tokens with sep between consecutive entries. For a
// delimiter that occurs nowhere in the tokens, Join(sep, Split(sep, s))
// reconstructs s exactly.
func Join(sep string, tokens []string) string {
	return strings.Join(tokens, sep)
}

// Words splits s on runs of ASCII whitespace, discarding the whitespace
// and any leading or trailing runs. Unlike Split, adjacent whitespace
// never produces empty tokens.
func Words(s string) []string {
	return WordsN(s, -1)
}

// WordsN is Words bounded to at most max tokens. When the bound is hit,
// the final token is the unprocessed remainder of s starting right after
// the previous token's trailing whitespace run: it is not re-trimmed and
// keeps any internal and trailing whitespace verbatim. max == 0 yields no
// tokens; max == 1 yields everything after the leading whitespace run as
// one token.
func WordsN(s string, max int) []string {
	if max == 0 {
		return nil
	}

	var tokens []string
	i := 0
	for {
		for i < len(s) && texttoolkit.IsSpace(s[i]) {
			i++
		}
		if i == len(s) {
			break
		}
		if max > 0 && len(tokens) == max-1 {
			tokens = append(tokens, s[i:])
			break
		}
		start := i
		for i < len(s) && !texttoolkit.IsSpace(s[i]) {
			i++
		}
		tokens = append(tokens, s[start:i])
	}
	return tokens
}
