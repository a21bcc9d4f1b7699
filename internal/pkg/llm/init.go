package llm

import (
	"careerbridge/internal/api/config"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/semaphore"
)

var llmClient llms.Model

// TextSem bounds concurrent generation calls.
var TextSem = semaphore.NewWeighted(4)

// InitLLM constructs the model client. A missing api key is not an error:
// the client stays nil and Enabled reports false, which downgrades the
// personalizer to its no-op implementation.
func InitLLM() error {
	cfg := config.Cfg.LLM

	if cfg.ApiKey == "" {
		log.Info("LLM credential absent, personalization disabled")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("LLM client init failed", "err", err)
		return err
	}

	llmClient = llm
	return nil
}

// Enabled reports whether a generation client is configured.
func Enabled() bool {
	return llmClient != nil
}
