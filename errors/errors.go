package errors

import (
	"fmt"
	"strings"
)

// Op indicates which operation rejected the input
type Op string

const (
	OpBase64Decode Op = "base64.decode"
	OpHexParse     Op = "hexdump.parse"
	OpQuotedSplit  Op = "quoted.split"
)

// Kind categorizes the malformed-input condition
type Kind string

const (
	KindInvalidByte       Kind = "invalid_byte"       // byte outside the accepted alphabet
	KindOddLength         Kind = "odd_length"         // hex text with a dangling digit
	KindUnterminatedQuote Kind = "unterminated_quote" // quoted span not closed before end of input
)

// maxRun bounds how much of the offending input an error message repeats.
const maxRun = 32

// Error is the structured format error returned by every decoder and
// tokenizer in the toolkit. All malformed-input conditions share this one
// type; valid-but-unusual inputs (empty sequences, over-width words) never
// produce it.
type Error struct {
	Cause  error
	Op     Op
	Kind   Kind
	Run    string // offending run of input, truncated to maxRun bytes
	Offset int    // byte offset of Run within the original input
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Run != "" {
		fmt.Fprintf(&b, " %q at offset %d", e.Run, e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Op == t.Op && e.Kind == t.Kind
	}
	return false
}

// IsFormat reports whether err or any error it wraps is a toolkit format
// error.
func IsFormat(err error) bool {
	for err != nil {
		if _, ok := err.(*Error); ok {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// truncateRun clips run to maxRun bytes for inclusion in a message.
func truncateRun(run string) string {
	if len(run) > maxRun {
		return run[:maxRun]
	}
	return run
}

// Convenience constructors for the three malformed-input conditions

// InvalidByte creates an error for a byte outside the accepted alphabet.
// run is the contiguous stretch of rejected input starting at offset.
func InvalidByte(op Op, run string, offset int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidByte,
		Run:    truncateRun(run),
		Offset: offset,
		Detail: "byte outside accepted alphabet",
	}
}

// OddLength creates an error for hex text whose digit count is odd.
func OddLength(op Op, input string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOddLength,
		Run:    truncateRun(input),
		Detail: fmt.Sprintf("length %d is not a multiple of two", len(input)),
	}
}

// UnterminatedQuote creates an error for a quoted span that reaches end of
// input before its closing quote. run is the input from the opening quote.
func UnterminatedQuote(op Op, run string, offset int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindUnterminatedQuote,
		Run:    truncateRun(run),
		Offset: offset,
		Detail: "quoted span not closed before end of input",
	}
}
