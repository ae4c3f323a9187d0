// Package export writes the resume to JSON and PDF files.
package export

import "fmt"

// RenderError represents a failure to produce a PDF
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure to write an export file
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
