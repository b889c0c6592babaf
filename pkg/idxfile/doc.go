// Package idxfile reads and writes documentation-index files: flat,
// line-oriented, tab-separated records describing the linkable anchors
// (titles, headings, symbols, cross-reference terms) of one generated
// documentation unit.
//
// Each documentation unit writes one index file; a downstream merge stage
// reads many of them to build a combined cross-reference. This package is
// that boundary's codec. It does not merge, render, or discover files.
//
// # File Format
//
// One record per line, six tab-separated columns, newline-terminated:
//
//	kindTag \t term \t link \t linkTitle \t linkDesc \t lineNumber
//
// kindTag is one of the serialized types.EntryKind tags. link is either an
// HTML file name or file#fragment; a link without a fragment marks the
// record as the unit's title. linkTitle and linkDesc are stored escaped
// (see Escape). Lines containing no tab are ignored, so blank lines and
// stray noise do not break a parse.
//
// # Reading
//
//	result, err := idxfile.ParseFile("manual.idx")
//	if err != nil {
//	    return err
//	}
//	for _, entry := range result.Entries {
//	    fmt.Printf("%s -> %s (module %s)\n", entry.Keyword, entry.Link, entry.Module)
//	}
//
// Parsing is strict: an unknown kind tag, a short record, or a bad line
// number fails the whole call with a sentinel error from the types package,
// wrapped with the input line number. There is no partial-results mode; an
// index file is trusted or rejected.
//
// Each entry's Module field is resolved from positional context during the
// parse: idx-role entries always belong to the origin (the file-level name,
// conventionally the file's base name, see OriginName), and every other
// entry belongs to the most recent title line seen before it, falling back
// to the origin while no title has appeared. ParseResult.Title carries the
// last title-kind record of the file.
//
// # Writing
//
// FormatEntry renders a single record. Builder accumulates the records of
// one documentation unit, keeps the unit's title line in front, and writes
// the index file, skipping the write entirely when nothing was collected:
//
//	b := idxfile.NewBuilder()
//	b.AddTerm(types.KindNimTitle, "users.html", "", "users", "users.html", "", 0)
//	b.AddTerm(types.KindSymbol, "users.html", "newUser", "newUser", "users: newUser()", "", 12)
//	if err := b.WriteFile("users.idx"); err != nil {
//	    return err
//	}
//
// # Concurrency
//
// Parses of different files are independent and share no state. ParseFiles
// exploits this, fanning an explicit path list out over a bounded worker
// pool.
package idxfile
