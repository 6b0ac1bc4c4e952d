package texttoolkit

// Character classification shared by the tokenizers. ASCII only: the
// toolkit operates on raw bytes and never interprets multi-byte encodings.

// IsSpace returns true if c is ASCII whitespace (space, tab, CR, LF).
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// IsDigit returns true if c is an ASCII digit (0-9).
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsHexDigit returns true if c is a hex digit in either case.
func IsHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
