package quoted

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/text-toolkit/errors"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain whitespace split",
			input: "  ab c df  fdlk f  ",
			want:  []string{"ab", "c", "df", "fdlk", "f"},
		},
		{
			name:  "no leading whitespace",
			input: "ab c df  fdlk f  ",
			want:  []string{"ab", "c", "df", "fdlk", "f"},
		},
		{
			name:  "no trailing whitespace",
			input: "ab c df  fdlk f",
			want:  []string{"ab", "c", "df", "fdlk", "f"},
		},
		{
			name:  "quoted entry keeps whitespace",
			input: "ab c \"df  fdlk \" f  ",
			want:  []string{"ab", "c", "df  fdlk ", "f"},
		},
		{
			name:  "escapes inside quotes",
			input: "ab c \"d\\\\f\\n  \\\"fdlk \" f  ",
			want:  []string{"ab", "c", "d\\f\n  \"fdlk ", "f"},
		},
		{
			name:  "unknown escape passes through",
			input: `"a\qb"`,
			want:  []string{"aqb"},
		},
		{
			name:  "quote opens mid token",
			input: `a"b c"d`,
			want:  []string{"ab cd"},
		},
		{
			name:  "empty quoted token",
			input: `a "" b`,
			want:  []string{"a", "", "b"},
		},
		{
			name:  "tabs and newlines separate",
			input: "a\tb\nc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "    ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplit_Unterminated(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"open quote", `ab "cd`},
		{"trailing backslash", `ab "cd\`},
		{"lone quote", `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(tt.input)
			if err == nil {
				t.Fatalf("Split(%q) accepted unterminated input", tt.input)
			}
			if !errors.IsFormat(err) {
				t.Errorf("error %v is not a format error", err)
			}
			if !stderrors.Is(err, &errors.Error{Op: errors.OpQuotedSplit, Kind: errors.KindUnterminatedQuote}) {
				t.Errorf("error %v has wrong Op/Kind", err)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "plain tokens",
			tokens: []string{"ab", "c", "df", "fdlk", "f"},
			want:   "ab c df fdlk f",
		},
		{
			name:   "token with whitespace",
			tokens: []string{"ab", "c", "df  fdlk ", "f"},
			want:   "ab c \"df  fdlk \" f",
		},
		{
			name:   "token with escapes",
			tokens: []string{"ab", "c", "d\\f\n  \"fdlk ", "f"},
			want:   "ab c \"d\\\\f\\n  \\\"fdlk \" f",
		},
		{
			name:   "empty token quoted",
			tokens: []string{"a", "", "b"},
			want:   `a "" b`,
		},
		{
			name:   "no tokens",
			tokens: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.tokens); got != tt.want {
				t.Errorf("Join = %q, want %q", got, tt.want)
			}
		})
	}
}

// Joining and re-splitting must reproduce the token list exactly, even
// though the joined text may differ from the original input.
func TestJoin_RoundTrip(t *testing.T) {
	lists := [][]string{
		{"ab", "c", "df", "fdlk", "f"},
		{"ab", "c", "df  fdlk ", "f"},
		{"ab", "c", "d\\f\n  \"fdlk ", "f"},
		{"", "", ""},
		{"a\tb", "c\nd", `e"f`, `g\h`},
	}

	for _, tokens := range lists {
		back, err := Split(Join(tokens))
		if err != nil {
			t.Fatalf("re-split of %q: %v", Join(tokens), err)
		}
		if diff := cmp.Diff(tokens, back); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
