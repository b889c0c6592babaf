package types

import (
	"fmt"
	"strings"
)

// IndexEntry is one record of a documentation index file: a single anchor
// (title, heading, symbol or cross-reference term) of a documentation unit.
// Entries are immutable value records; the parser and the formatter's callers
// create them, nothing mutates them afterwards.
type IndexEntry struct {
	// Persisted columns
	Kind      EntryKind
	Keyword   string // search/display term
	Link      string // htmlFile or htmlFile#fragmentId
	LinkTitle string // human-friendly link text
	LinkDesc  string // tooltip text for the link's title attribute
	Line      int    // source line number, >= 0

	// Derived at parse time, never stored in the file
	Module string // owning documentation-unit name

	// Scratch for merge stages, never populated by this codec
	Aux string
}

// IsDocumentationTitle reports whether a hyperlink points at a documentation
// unit's page itself rather than an anchor inside it: title links carry no
// "#" fragment. Merge stages rely on this to tell a unit's title entry apart
// from fragment-addressed entries.
func IsDocumentationTitle(link string) bool {
	return !strings.Contains(link, "#")
}

// Validate checks a caller-constructed entry: the kind must be a known tag
// and the line number non-negative. The parser never produces invalid
// entries, and the formatter performs no validation of its own.
func (e IndexEntry) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEntryKind, string(e.Kind))
	}
	if e.Line < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLine, e.Line)
	}
	return nil
}
