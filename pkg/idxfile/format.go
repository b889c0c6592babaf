package idxfile

import (
	"strconv"

	"github.com/YaDev/Nim/pkg/types"
)

// FormatEntry renders one index record as its serialized line, newline
// included. A non-empty fragmentID produces a link into the page
// (htmlFile#fragmentID); an empty fragmentID links to the page itself,
// which marks the record as the documentation unit's title. The returned
// flag reports that title case.
//
// linkTitle and linkDesc are escaped on the way out; term and the kind tag
// are emitted as given. Callers producing markup-sourced kinds pass terms
// that are already HTML-safe (see types.EntryKind.PreEscaped).
func FormatEntry(kind types.EntryKind, htmlFile, fragmentID, term, linkTitle, linkDesc string, line int) (string, bool) {
	link := htmlFile
	isTitle := true
	if fragmentID != "" {
		link = htmlFile + "#" + fragmentID
		isTitle = false
	}

	record := string(kind) + "\t" + term + "\t" + link + "\t" +
		Escape(linkTitle) + "\t" + Escape(linkDesc) + "\t" +
		strconv.Itoa(line) + "\n"
	return record, isTitle
}
