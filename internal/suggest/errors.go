// Package suggest generates resume bullet lines with a language model.
package suggest

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed matches every *GenerationFailedError.
var ErrGenerationFailed = errors.New("generation failed")

// Post-processing rejections.
var (
	ErrNoBullet   = errors.New("could not extract a bullet point")
	ErrTooShort   = errors.New("generated text is too short or invalid")
	ErrTooSimilar = errors.New("generated bullet is too similar to an existing one")
)

// GenerationFailedError is returned when no usable suggestion could be produced.
type GenerationFailedError struct {
	Message string
	Cause   error
}

func (e *GenerationFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("suggest error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("suggest error: %s", e.Message)
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Cause
}

func (e *GenerationFailedError) Is(target error) bool {
	return target == ErrGenerationFailed
}
