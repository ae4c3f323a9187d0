// Package pagination decides where a resume splits between page one and page two.
package pagination

import (
	"errors"
	"fmt"
)

// ErrMeasurementUnavailable is returned by a Measurer that cannot produce heights.
var ErrMeasurementUnavailable = errors.New("measurement unavailable")

// MeasurementError represents a failed attempt to measure rendered sections
type MeasurementError struct {
	Message string
	Cause   error
}

func (e *MeasurementError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("measurement error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("measurement error: %s", e.Message)
}

func (e *MeasurementError) Unwrap() error {
	return e.Cause
}

// Is makes every MeasurementError match ErrMeasurementUnavailable.
func (e *MeasurementError) Is(target error) bool {
	return target == ErrMeasurementUnavailable
}
