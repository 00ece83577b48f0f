package ingest

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord marks input rows that cannot be turned into a transaction.
var ErrMalformedRecord = errors.New("malformed record")

// RecordError locates a malformed row. Line is 1-based and counts the header.
type RecordError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: field %q (%q): %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

func (e *RecordError) Is(target error) bool { return target == ErrMalformedRecord }
