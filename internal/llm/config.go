// Package llm provides the language model client used for bullet suggestions.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short generations such as a single bullet line
	TierLite ModelTier = "lite"
	// TierStandard is for longer rewrites
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// DefaultTemperature favors variety between repeated suggestions.
const DefaultTemperature = 0.8

// DefaultTopP is the nucleus sampling cutoff.
const DefaultTopP = 0.9

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
	TopP        float32
	MaxTokens   int32
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
		MaxTokens:   100,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}
