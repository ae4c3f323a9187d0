// Package richtext implements the formatting command model of the free-text resume fields.
package richtext

import "fmt"

// CommandError represents an unknown command or a command missing its value
type CommandError struct {
	Command Command
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command error: %s: %s", e.Command, e.Message)
}

// RangeError represents a selection that does not fit the fragment's visible text
type RangeError struct {
	Range  Range
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: [%d,%d) outside text of length %d", e.Range.Start, e.Range.End, e.Length)
}

// ParseError represents markup that could not be parsed
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
