package idxfile

import "strings"

// Escape makes text safe to store in a single tab-delimited column.
// Backslash becomes \\, a line feed becomes the two-character sequence \n,
// a tab becomes \t, and carriage returns are dropped. Everything else
// passes through unchanged, so escaped text stays readable.
func Escape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			// CR is dropped; the format is line-oriented
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// Unescape reverses Escape. The three escape sequences are tested in the
// fixed order \t, \n, \\ at every position, so a literal backslash written
// by Escape is never read as the start of another sequence: `\\n` decodes
// to a backslash followed by the letter n, not a line feed. Unrecognized
// backslashes pass through unchanged, which makes Unescape total.
//
// Escape and Unescape round-trip exactly for any text free of carriage
// returns; CR is lost in Escape and cannot come back.
func Unescape(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], `\t`):
			b.WriteByte('\t')
			i += 2
		case strings.HasPrefix(text[i:], `\n`):
			b.WriteByte('\n')
			i += 2
		case strings.HasPrefix(text[i:], `\\`):
			b.WriteByte('\\')
			i += 2
		default:
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}
