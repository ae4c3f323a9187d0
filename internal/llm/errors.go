package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"google.golang.org/api/googleapi"
)

// IsTransient reports whether err is worth one more attempt: the provider
// was overloaded or rate limited, or the request timed out.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// EmptyResponseError represents a model response without usable text
type EmptyResponseError struct {
	Reason string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty response: %s", e.Reason)
}
