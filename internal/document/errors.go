// Package document holds the resume document state and its targeted update operations.
package document

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-editor/internal/types"
)

// ErrMalformedDocument matches every MalformedDocumentError.
var ErrMalformedDocument = errors.New("malformed document")

// MalformedDocumentError represents an import payload that is not a valid resume document
type MalformedDocumentError struct {
	Message string
	Cause   error
}

func (e *MalformedDocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed document: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed document: %s", e.Message)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Cause
}

func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// IndexError represents an entry index outside its list
type IndexError struct {
	Section types.SectionID
	Index   int
	Len     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index error: %s entry %d out of range (have %d)", e.Section, e.Index, e.Len)
}
