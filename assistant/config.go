// Package assistant is the gateway to the external generative-text model.
// The client is built once per process with a fixed clinical-protocol system
// instruction; each request sends one serialized context payload and returns
// the model's text verbatim.
package assistant

import "fmt"

// DefaultBaseURL targets the Gemini OpenAI-compatible endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Config carries the gateway settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	Temperature float32
	TopP        float32
}

// Validate checks the configuration. A missing credential is fatal at
// startup; it must never degrade into per-request failures.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("AI_API_KEY is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model name is required")
	}
	return nil
}

// DefaultConfig returns the gateway defaults; the API key must still be set
// by the caller.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: 0.4,
		TopP:        0.9,
	}
}
