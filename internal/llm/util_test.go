package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "• Led a team of 5", "• Led a team of 5"},
		{"whitespace", "\n  • Led a team  \n", "• Led a team"},
		{"code block", "```\n• Led a team\n```", "• Led a team"},
		{"code block with language", "```text\n• Led a team\n```", "• Led a team"},
		{"double quotes", `"Reduced costs by 20%"`, "Reduced costs by 20%"},
		{"single quotes", `'Reduced costs by 20%'`, "Reduced costs by 20%"},
		{"curly quotes", "“Reduced costs by 20%”", "Reduced costs by 20%"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unavailable", &googleapi.Error{Code: 503}, true},
		{"rate limited", &googleapi.Error{Code: 429}, true},
		{"gateway timeout", &googleapi.Error{Code: 504}, true},
		{"wrapped unavailable", fmt.Errorf("failed to generate content: %w", &googleapi.Error{Code: 503}), true},
		{"bad request", &googleapi.Error{Code: 400}, false},
		{"forbidden", &googleapi.Error{Code: 403}, false},
		{"deadline", context.DeadlineExceeded, true},
		{"cancelled", context.Canceled, false},
		{"net timeout", timeoutError{}, true},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}
