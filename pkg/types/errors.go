package types

import "errors"

// Parse failures wrap these sentinels; match with errors.Is.
var (
	// ErrUnknownEntryKind is returned when a record's kind tag is not in the fixed tag table
	ErrUnknownEntryKind = errors.New("unknown index entry kind")
	// ErrMalformedRecord is returned when a record has fewer than 6 tab-separated columns
	ErrMalformedRecord = errors.New("malformed index record")
	// ErrMalformedLineNumber is returned when a record's line-number column is not an integer
	ErrMalformedLineNumber = errors.New("malformed line number")
	// ErrNegativeLine is returned by Validate for entries with a negative line number
	ErrNegativeLine = errors.New("negative line number")
)
