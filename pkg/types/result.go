package types

// ParseResult represents the output of parsing one documentation index file
type ParseResult struct {
	// Origin is the documentation-unit name entries were attributed to,
	// conventionally the index file's base name without extension.
	Origin string

	// Entries holds one entry per valid record, in input line order.
	Entries []IndexEntry

	// Title is the file's resolved title: the last title-kind entry
	// encountered, module attribution included. The zero value means the
	// file declared no title.
	Title IndexEntry
}

// HasTitle reports whether the parse resolved a usable title. A title entry
// with an empty keyword does not count: module attribution treats the title
// state as unresolved while its keyword is empty.
func (r *ParseResult) HasTitle() bool {
	return r.Title.Keyword != ""
}
