package assistant

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/peacematcher/assistant-api/metrics"
)

// Gateway holds the one model client for the process plus the system
// instruction rendered from the knowledge base at construction.
type Gateway struct {
	config       *Config
	client       *openai.Client
	systemPrompt string
}

// NewGateway validates the configuration, builds the client, and renders
// the system instruction. Construction failure is a startup error.
func NewGateway(cfg *Config, kb KnowledgeSource) (*Gateway, error) {
	if cfg == nil {
		return nil, fmt.Errorf("assistant: config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("assistant: %w", err)
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Gateway{
		config:       cfg,
		client:       openai.NewClientWithConfig(clientConfig),
		systemPrompt: buildSystemPrompt(kb),
	}, nil
}

// GetResponse sends the serialized context as the sole user prompt and
// returns the model's text verbatim. Failures are wrapped in a ServiceError;
// no retry happens here.
func (g *Gateway) GetResponse(ctx context.Context, serializedContext string) (string, error) {
	start := time.Now()
	defer func() {
		metrics.AssistantRequestDuration.Observe(time.Since(start).Seconds())
	}()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: g.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: serializedContext},
		},
		Temperature: g.config.Temperature,
		TopP:        g.config.TopP,
	})
	if err != nil {
		return "", NewProviderError("completion", "failed to generate response", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ServiceError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
		}
	}

	return resp.Choices[0].Message.Content, nil
}
