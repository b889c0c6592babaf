package idxfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape_Transforms(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "newUser proc", "newUser proc"},
		{"empty", "", ""},
		{"tab", "a\tb", `a\tb`},
		{"line feed", "line\nnext", `line\nnext`},
		{"backslash", `back\slash`, `back\\slash`},
		{"carriage return dropped", "a\rb", "ab"},
		{"crlf keeps only the escaped lf", "a\r\nb", `a\nb`},
		{"mixed", "x\t\\\n", `x\t\\\n`},
		{"unicode unchanged", "søk → δ", "søk → δ"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Escape(tc.in))
		})
	}
}

func TestUnescape_Sequences(t *testing.T) {
	assert.Equal(t, "a\tb", Unescape(`a\tb`))
	assert.Equal(t, "a\nb", Unescape(`a\nb`))
	assert.Equal(t, `a\b`, Unescape(`a\\b`))
}

func TestUnescape_PriorityOverBackslash(t *testing.T) {
	// A literal backslash followed by n decodes as exactly that, never as a
	// line feed: the \\ sequence is consumed before \n can match.
	assert.Equal(t, `\n`, Unescape(`\\n`))
	assert.Equal(t, `\t`, Unescape(`\\t`))
	assert.Equal(t, `\`+"\n", Unescape(`\\\n`))
}

func TestUnescape_UnknownSequencesPassThrough(t *testing.T) {
	assert.Equal(t, `\x`, Unescape(`\x`))
	assert.Equal(t, `tail\`, Unescape(`tail\`))
}

func TestEscapeUnescape_RoundTrip(t *testing.T) {
	// Exact inverses for any text without a bare carriage return.
	cases := []string{
		"",
		"plain",
		"tabs\tand\nnewlines",
		`back\slash \t literal`,
		`\\\\`,
		"\n\n\t\t",
		"unicode: προσθήκη\tδ",
	}

	for _, s := range cases {
		assert.Equal(t, s, Unescape(Escape(s)), "round-trip of %q", s)
	}
}

func TestEscapeUnescape_CarriageReturnIsLossy(t *testing.T) {
	// CR normalization is intended: it never survives a round-trip.
	assert.Equal(t, "ab", Unescape(Escape("a\rb")))
}
