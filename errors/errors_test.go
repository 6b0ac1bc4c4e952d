package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Op:     OpBase64Decode,
				Kind:   KindInvalidByte,
				Run:    "!!",
				Offset: 6,
				Detail: "byte outside accepted alphabet",
			},
			contains: []string{"[base64.decode]", "invalid_byte", `"!!"`, "offset 6", "alphabet"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   OpHexParse,
				Kind: KindOddLength,
			},
			contains: []string{"[hexdump.parse]", "odd_length"},
		},
		{
			name: "error with cause",
			err: &Error{
				Op:     OpQuotedSplit,
				Kind:   KindUnterminatedQuote,
				Detail: "quoted span not closed before end of input",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[quoted.split]", "unterminated_quote", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := InvalidByte(OpBase64Decode, "FjXKA5!!", 6)

	if !errors.Is(err, &Error{Op: OpBase64Decode, Kind: KindInvalidByte}) {
		t.Error("errors.Is did not match same Op/Kind")
	}
	if errors.Is(err, &Error{Op: OpHexParse, Kind: KindInvalidByte}) {
		t.Error("errors.Is matched a different Op")
	}
	if errors.Is(err, &Error{Op: OpBase64Decode, Kind: KindOddLength}) {
		t.Error("errors.Is matched a different Kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Op:    OpHexParse,
		Kind:  KindInvalidByte,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach cause through Unwrap")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return cause")
	}
}

func TestIsFormat(t *testing.T) {
	direct := OddLength(OpHexParse, "8DE285D4BF98E60")
	if !IsFormat(direct) {
		t.Error("IsFormat(direct) = false")
	}

	wrapped := fmt.Errorf("reading stdin: %w", direct)
	if !IsFormat(wrapped) {
		t.Error("IsFormat(wrapped) = false")
	}

	if IsFormat(errors.New("plain")) {
		t.Error("IsFormat(plain) = true")
	}
	if IsFormat(nil) {
		t.Error("IsFormat(nil) = true")
	}
}

func TestTruncateRun(t *testing.T) {
	long := strings.Repeat("x", 100)
	err := InvalidByte(OpBase64Decode, long, 0)
	if len(err.Run) != maxRun {
		t.Errorf("Run length = %d, want %d", len(err.Run), maxRun)
	}
}
