package idxfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/YaDev/Nim/pkg/types"
)

// Column layout of one record line.
const (
	colKind = iota
	colKeyword
	colLink
	colLinkTitle
	colLinkDesc
	colLine
	columnCount
)

// maxLineBytes bounds a single input line. Real index records are short;
// the cap only guards against unbounded input.
const maxLineBytes = 1 << 20

// Parse reads a documentation-index stream and returns its records in input
// order, each attributed to its owning module, together with the unit's
// resolved title (the last title-kind record, if any).
//
// origin names the documentation unit the stream belongs to. It is the
// module of every idx-role record and of every record appearing before the
// first title line; all other records belong to the most recent title's
// keyword. ParseFile derives origin from the file name via OriginName.
//
// Lines without a tab are skipped. Any malformed record fails the whole
// call with an error wrapping one of the types sentinel errors and the
// 1-based input line number.
func Parse(r io.Reader, origin string) (*types.ParseResult, error) {
	result := &types.ParseResult{Origin: origin}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		// Lines without a tab carry no record.
		if !strings.Contains(line, "\t") {
			continue
		}

		entry, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		// Attribution reads the title state as it stood before this
		// line's own possible title update.
		switch {
		case entry.Kind == types.KindIdxRole:
			entry.Module = origin
		case result.Title.Keyword == "":
			entry.Module = origin
		default:
			entry.Module = result.Title.Keyword
		}

		if entry.Kind.IsTitle() {
			result.Title = entry
		}

		result.Entries = append(result.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: failed to read input: %w", lineNo+1, err)
	}

	return result, nil
}

// parseRecord decodes one tab-bearing line. Module is left unset; it
// depends on parse state the caller owns.
func parseRecord(line string) (types.IndexEntry, error) {
	// Extra tabs fold into the final column, where the line-number parse
	// rejects them.
	cols := strings.SplitN(line, "\t", columnCount)
	if len(cols) < columnCount {
		return types.IndexEntry{}, fmt.Errorf("%w: %d columns, want %d", types.ErrMalformedRecord, len(cols), columnCount)
	}

	kind, err := types.ParseEntryKind(cols[colKind])
	if err != nil {
		return types.IndexEntry{}, err
	}

	lineNum, err := strconv.Atoi(cols[colLine])
	if err != nil {
		return types.IndexEntry{}, fmt.Errorf("%w: %q", types.ErrMalformedLineNumber, cols[colLine])
	}

	return types.IndexEntry{
		Kind:      kind,
		Keyword:   cols[colKeyword],
		Link:      cols[colLink],
		LinkTitle: Unescape(cols[colLinkTitle]),
		LinkDesc:  Unescape(cols[colLinkDesc]),
		Line:      lineNum,
	}, nil
}

// OriginName derives a documentation-unit name from an index file path:
// the base name without its extension, so "docs/sub/manual.idx" names the
// unit "manual".
func OriginName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile opens and parses one index file, using OriginName(path) as the
// documentation-unit name. Errors are wrapped with the path.
func ParseFile(path string) (*types.ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index file: %w", err)
	}
	defer func() { _ = f.Close() }()

	result, err := Parse(f, OriginName(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
