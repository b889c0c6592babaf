package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareIgnoreStyle_StyleVariants(t *testing.T) {
	// Underscores and letter case never separate two identifiers.
	assert.Zero(t, CompareIgnoreStyle("Foo_Bar", "foobar"))
	assert.Zero(t, CompareIgnoreStyle("foobar", "FOOBAR"))
	assert.Zero(t, CompareIgnoreStyle("parse_file", "parseFile"))
	assert.Zero(t, CompareIgnoreStyle("_a", "A_"))
}

func TestCompareIgnoreStyle_Ordering(t *testing.T) {
	assert.Negative(t, CompareIgnoreStyle("abc", "abd"))
	assert.Positive(t, CompareIgnoreStyle("abd", "abc"))

	// A proper prefix sorts before the longer string.
	assert.Negative(t, CompareIgnoreStyle("ab", "abc"))
	assert.Positive(t, CompareIgnoreStyle("abc", "ab"))

	// Case folds before comparing, so Z still sorts after a.
	assert.Positive(t, CompareIgnoreStyle("Zebra", "apple"))
}

func TestCompareIgnoreStyle_EmptyAndUnderscoreOnly(t *testing.T) {
	assert.Zero(t, CompareIgnoreStyle("", ""))
	assert.Zero(t, CompareIgnoreStyle("___", ""))
	assert.Zero(t, CompareIgnoreStyle("_", "__"))

	assert.Negative(t, CompareIgnoreStyle("", "a"))
	assert.Positive(t, CompareIgnoreStyle("a", "_"))
}

func TestCompareIgnoreStyle_NonASCII(t *testing.T) {
	assert.Zero(t, CompareIgnoreStyle("Δelta", "δelta"))
	assert.Negative(t, CompareIgnoreStyle("delta", "δelta"))
}

func TestCompare_KeywordThenLink(t *testing.T) {
	a := IndexEntry{Keyword: "open", Link: "io.html#open"}
	b := IndexEntry{Keyword: "Open", Link: "net.html#open"}
	c := IndexEntry{Keyword: "close", Link: "io.html#close"}

	// Equal keywords fall through to the link.
	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))

	assert.Positive(t, Compare(a, c))
	assert.Zero(t, Compare(a, a))
}

func TestSort_OrdersByKeywordThenLink(t *testing.T) {
	entries := []IndexEntry{
		{Keyword: "zip", Link: "a.html#zip"},
		{Keyword: "Add", Link: "b.html#add"},
		{Keyword: "add", Link: "a.html#add"},
		{Keyword: "map_pairs", Link: "c.html#mappairs"},
	}

	Sort(entries)

	assert.Equal(t, "add", entries[0].Keyword)
	assert.Equal(t, "Add", entries[1].Keyword)
	assert.Equal(t, "map_pairs", entries[2].Keyword)
	assert.Equal(t, "zip", entries[3].Keyword)
}

func TestSort_StableForEqualEntries(t *testing.T) {
	entries := []IndexEntry{
		{Keyword: "item", Link: "a.html#item", Line: 1},
		{Keyword: "Item", Link: "a.html#item", Line: 2},
		{Keyword: "i_tem", Link: "a.html#item", Line: 3},
	}

	Sort(entries)

	// All three compare equal; input order is preserved.
	assert.Equal(t, 1, entries[0].Line)
	assert.Equal(t, 2, entries[1].Line)
	assert.Equal(t, 3, entries[2].Line)
}
