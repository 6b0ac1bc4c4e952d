// Package errors provides the structured format-error type shared by the
// text-toolkit codecs and tokenizers.
//
// Errors are categorized by Op (which operation rejected the input) and Kind
// (what was wrong with it). The Error type carries the offending run of
// input and its byte offset so callers can point at the exact problem.
//
// Convenience constructors cover the common cases:
//
//	err := errors.InvalidByte(errors.OpBase64Decode, "FjXKA5!!", 6)
//	err := errors.OddLength(errors.OpHexParse, "8DE285D4BF98E60")
//	err := errors.UnterminatedQuote(errors.OpQuotedSplit, `"abc`, 0)
//
// All errors implement the standard error interface and support
// errors.Is/As. IsFormat reports whether any error in a chain is a
// toolkit format error.
package errors
