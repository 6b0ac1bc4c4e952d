// Package texttoolkit provides low-level text transcoding and tokenization
// primitives: binary/text codecs and structured text splitters and
// formatters.
//
// # Architecture Overview
//
// The library is organized into small packages, one per transform family:
//
//	text-toolkit/        Root package with shared ASCII classification
//	├── base64/          Base64 encode/decode with optional line wrapping
//	├── hexdump/         Uppercase hex dump, parse, and C array literals
//	├── quoted/          Whitespace tokenizer honoring quotes and escapes
//	├── split/           Delimiter splitting, joining, and word splitting
//	├── wordwrap/        Greedy fixed-width reflow preserving forced breaks
//	└── errors/          Structured format-error types shared by the codecs
//
// Every operation is a pure function over in-memory byte or character
// sequences. Nothing blocks, performs I/O, or touches shared mutable state;
// the only process-wide data are fixed read-only alphabet tables, so all
// functions are safe for unsynchronized concurrent use.
//
// # Quick Start
//
// Encode bytes and get them back:
//
//	text := base64.Encode(data)
//	data2, err := base64.Decode(text)
//
// Tokenize a quoted command line:
//
//	tokens, err := quoted.Split(`ab c "d e" f`)
//	// ["ab", "c", "d e", "f"]
//
// Reflow a paragraph to 60 columns:
//
//	out := wordwrap.Wrap(text, 60)
//
// # Error Handling
//
// Decoding malformed input fails with a *errors.Error carrying the operation,
// the error kind, and the offending run of input. Errors are returned at the
// point of detection; no partial results are produced. All other inputs,
// including empty sequences and words wider than the wrap width, have defined
// non-error results documented on each function.
//
// # In-Place Variants
//
// A few transforms offer in-place variants operating on a caller-owned byte
// slice (for example wordwrap.InPlace). The caller must hold exclusive access
// to the slice for the duration of the call; the same storage is returned.
//
// The textio command under cmd/ exposes every transform on the command line
// and as an interactive terminal playground.
package texttoolkit
