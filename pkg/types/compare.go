package types

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// CompareIgnoreStyle compares two strings the way the source language
// compares identifiers: underscores are skipped entirely, letters fold to
// lower case, and the remaining code points compare lexicographically.
// Returns a negative number, zero, or a positive number as a sorts before,
// equal to, or after b. "Foo_Bar", "foobar" and "FOOBAR" all compare equal.
func CompareIgnoreStyle(a, b string) int {
	for {
		for len(a) > 0 && a[0] == '_' {
			a = a[1:]
		}
		for len(b) > 0 && b[0] == '_' {
			b = b[1:]
		}
		if len(a) == 0 || len(b) == 0 {
			switch {
			case len(a) == len(b):
				return 0
			case len(a) == 0:
				return -1
			default:
				return 1
			}
		}

		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if la, lb := unicode.ToLower(ra), unicode.ToLower(rb); la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
}

// Compare orders two entries for merging: primarily by keyword, ties broken
// by link, both style-insensitively.
func Compare(a, b IndexEntry) int {
	if c := CompareIgnoreStyle(a.Keyword, b.Keyword); c != 0 {
		return c
	}
	return CompareIgnoreStyle(a.Link, b.Link)
}

// Sort stable-sorts entries in Compare order; entries comparing equal keep
// their input order.
func Sort(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i], entries[j]) < 0
	})
}
