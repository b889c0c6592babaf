// Package types defines the shared data model of the documentation-index
// codec: the index entry record, its kind discriminator, the equivalence
// relations (ordering and hashing) a merge stage composes, and the sentinel
// errors the parser reports.
//
// # Index Entries
//
// IndexEntry describes one documentation anchor extracted from a generated
// documentation page (a title, a section heading, a language symbol, an
// overload group, or a manually declared cross-reference term):
//
//	entry := types.IndexEntry{
//	    Kind:    types.KindSymbol,
//	    Keyword: "parseInt",
//	    Link:    "strutils.html#parseInt%2Cstring",
//	    Line:    1023,
//	}
//
// Six of the fields persist in the index file. Module does not: it is derived
// during parsing from the file's running title state (or the origin name) and
// records which documentation unit owns the entry. Aux is scratch space for
// merge stages and is never populated by this codec.
//
// # Title Links
//
// A link without a "#" fragment addresses a documentation unit's page itself
// rather than an anchor inside it, which by convention marks the unit's title
// entry:
//
//	types.IsDocumentationTitle("strutils.html")       // true
//	types.IsDocumentationTitle("strutils.html#split") // false
//
// # Ordering
//
// Compare orders entries the way the source language compares identifiers:
// underscores are ignored and case is folded, so "Foo_Bar", "foobar" and
// "FOOBAR" sort together. Ties on the keyword break on the link, the same
// way. Sort applies this ordering stably to a slice of entries.
//
// # Hashing
//
// IndexEntry.Hash combines exactly four fields, Keyword, Link, LinkTitle and
// LinkDesc, with an order-dependent mix and an avalanche finalizer. Kind,
// Line, Module and Aux are excluded: two entries that agree on the four text
// fields hash identically even when their kinds or line numbers differ. The
// first mix step sums the Keyword and Link hashes, so entries with those two
// values swapped collide too. Hash-based deduplication downstream inherits
// that collision behavior; it is part of the format's contract.
package types
