package idxfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/YaDev/Nim/pkg/types"
)

// Builder accumulates the formatted index records of one documentation
// unit and writes them out as the unit's index file. The unit's title line
// is kept in front so the written file leads with it.
//
// A Builder is not safe for concurrent use; each documentation unit gets
// its own.
type Builder struct {
	lines []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddTerm formats one record and accumulates it. A record without a
// fragment is a title line and is inserted at the front; every other
// record appends in call order.
func (b *Builder) AddTerm(kind types.EntryKind, htmlFile, fragmentID, term, linkTitle, linkDesc string, line int) {
	record, isTitle := FormatEntry(kind, htmlFile, fragmentID, term, linkTitle, linkDesc, line)
	if isTitle {
		b.lines = append([]string{record}, b.lines...)
		return
	}
	b.lines = append(b.lines, record)
}

// Len reports the number of accumulated records.
func (b *Builder) Len() int {
	return len(b.lines)
}

// String returns the accumulated file content.
func (b *Builder) String() string {
	return strings.Join(b.lines, "")
}

// WriteTo writes the accumulated content to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, line := range b.lines {
		n, err := io.WriteString(w, line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// WriteFile writes the accumulated index to path. A Builder that collected
// no records writes nothing and leaves no file behind, so documentation
// units without index terms produce no index file. A write that fails
// midway removes the file rather than leaving it truncated.
func (b *Builder) WriteFile(path string) error {
	if len(b.lines) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index file: %w", err)
	}

	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to write index file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write index file: %w", err)
	}
	return nil
}
