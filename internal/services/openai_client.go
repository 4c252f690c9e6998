package services

import (
	"aistudio-backend/config"
	"aistudio-backend/internal/utils"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

// NewOpenAIClient builds the client shared by the text and image services.
// Retries are disabled: a failed call surfaces immediately.
func NewOpenAIClient(cfg *config.Config, log *zap.Logger) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(utils.NewHTTPClient(cfg.HTTPTimeout, log)),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	return openai.NewClient(opts...)
}
