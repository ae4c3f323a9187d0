package style

import (
	"fmt"
	"strconv"
)

// InvalidValueError reports a style value that was outside its valid range and has been clamped.
type InvalidValueError struct {
	Field    string
	Value    string
	Adjusted string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid style value: %s=%s (using %s)", e.Field, e.Value, e.Adjusted)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
