package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(SuggestFile, KeyBulletPoint)
	require.NoError(t, err)
	assert.Contains(t, prompt, "professional resume writer")
	assert.Contains(t, prompt, "{{.Context}}")
	assert.Contains(t, prompt, "{{.ActionVerbs}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(SuggestFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{"replaces", "Hello {{.Name}}, welcome to {{.Company}}!", map[string]string{"Name": "Alice", "Company": "Acme Corp"}, "Hello Alice, welcome to Acme Corp!"},
		{"no placeholders", "No placeholders here", map[string]string{"Key": "Value"}, "No placeholders here"},
		{"missing data", "Hello {{.Name}}", map[string]string{}, "Hello {{.Name}}"},
		{"value with placeholder syntax", "{{.A}} {{.B}}", map[string]string{"A": "{{.B}}", "B": "b"}, "{{.B}} b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get(SuggestFile, KeyBulletPoint)
	require.NoError(t, err)

	prompt2, err := Get(SuggestFile, KeyBulletPoint)
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
