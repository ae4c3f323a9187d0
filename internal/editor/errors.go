// Package editor ties the document store to pagination and persistence.
package editor

import (
	"errors"
	"fmt"
)

// ErrStaleSuggestion is returned when a newer suggestion request for the
// same target superseded the one that just finished.
var ErrStaleSuggestion = errors.New("suggestion superseded by a newer request")

// TargetError represents an unparseable suggestion target
type TargetError struct {
	Input   string
	Message string
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("target error: %q: %s", e.Input, e.Message)
}
