package types

import "fmt"

// EntryKind discriminates the six kinds of records an index file can hold.
// The value of each constant is the tag serialized in column 0.
type EntryKind string

const (
	KindMarkupTitle EntryKind = "markupTitle" // markup document title
	KindNimTitle    EntryKind = "nimTitle"    // Nim module title
	KindHeading     EntryKind = "heading"     // markup section heading
	KindIdxRole     EntryKind = "idx"         // manually declared cross-reference term
	KindSymbol      EntryKind = "nim"         // language symbol definition
	KindSymbolGroup EntryKind = "nimgrp"      // overload group of same-named symbols
)

// ParseEntryKind maps a serialized tag to its EntryKind. Unknown tags fail
// with ErrUnknownEntryKind carrying the offending text.
func ParseEntryKind(tag string) (EntryKind, error) {
	k := EntryKind(tag)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryKind, tag)
	}
	return k, nil
}

// Valid checks if the kind is one of the six known tags
func (k EntryKind) Valid() bool {
	switch k {
	case KindMarkupTitle, KindNimTitle, KindHeading, KindIdxRole, KindSymbol, KindSymbolGroup:
		return true
	default:
		return false
	}
}

// IsTitle reports whether entries of this kind denote a documentation unit's
// title. The parser's running title state only ever holds such entries.
func (k EntryKind) IsTitle() bool {
	return k == KindMarkupTitle || k == KindNimTitle
}

// PreEscaped reports whether keywords and links of this kind carry markup
// already escaped for HTML. Symbol, symbol-group and Nim-title entries are
// plain text and still need escaping when rendered.
func (k EntryKind) PreEscaped() bool {
	switch k {
	case KindMarkupTitle, KindHeading, KindIdxRole:
		return true
	default:
		return false
	}
}
