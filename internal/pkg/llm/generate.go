package llm

import (
	"careerbridge/internal/api/config"
	"context"
	"errors"
	"time"

	"github.com/tmc/langchaingo/llms"
)

var ErrNotConfigured = errors.New("llm client not configured")

// GenerateText issues one bounded text-generation request and returns the
// first choice's content.
func GenerateText(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	if llmClient == nil {
		return "", ErrNotConfigured
	}

	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	timeout := time.Duration(config.Cfg.LLM.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	resp, err := llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.Model),
		llms.WithTemperature(0.4),
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("llm returned no choices")
	}
	return resp.Choices[0].Content, nil
}
