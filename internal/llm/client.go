package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent returns the text the model produced for prompt
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	GetModel(tier ModelTier) string
	Close() error
}

// NewClient creates the client for the configured provider.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Provider {
	case "", ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, config: config}, nil
}

// GenerateContent sends a single-turn prompt to the model of the given tier.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	resp, err := c.model(modelName).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp)
}

func (c *GeminiClient) model(name string) *genai.GenerativeModel {
	model := c.client.GenerativeModel(name)
	model.SetTemperature(c.config.Temperature)
	if c.config.TopP > 0 {
		model.SetTopP(c.config.TopP)
	}
	if c.config.MaxTokens > 0 {
		model.SetMaxOutputTokens(c.config.MaxTokens)
	}
	model.SetCandidateCount(1)
	return model
}

func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// responseText concatenates the text parts of the first candidate. A
// candidate cut off by a safety filter counts as empty.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", &EmptyResponseError{Reason: "prompt blocked: " + resp.PromptFeedback.BlockReason.String()}
		}
		return "", &EmptyResponseError{Reason: "no candidates"}
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", &EmptyResponseError{Reason: "blocked by safety filter"}
	}
	if candidate.Content == nil {
		return "", &EmptyResponseError{Reason: "no content"}
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", &EmptyResponseError{Reason: "no text parts"}
	}
	return sb.String(), nil
}
