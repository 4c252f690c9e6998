package services

import (
	"context"
	"fmt"
	"strings"

	"aistudio-backend/config"

	"github.com/openai/openai-go"
	"go.uber.org/zap"
)

const (
	TextMaxTokens      = 1000
	TextTemperature    = 0.7
	NoResponseFallback = "No response generated"
)

// TextService forwards prompts to the chat completion endpoint.
type TextService struct {
	client       openai.Client
	configured   bool
	defaultModel string
	log          *zap.Logger
}

func NewTextService(cfg *config.Config, client openai.Client, log *zap.Logger) *TextService {
	if log == nil {
		log = zap.NewNop()
	}
	model := cfg.TextModel
	if model == "" {
		model = config.DefaultTextModel
	}
	return &TextService{
		client:       client,
		configured:   cfg.OpenAIConfigured(),
		defaultModel: model,
		log:          log,
	}
}

func (s *TextService) DefaultModel() string {
	return s.defaultModel
}

// GenerateText returns the first completion's content for prompt, or
// NoResponseFallback when the completion carries none. An empty model uses
// the default. Every upstream failure becomes ErrTextGeneration.
func (s *TextService) GenerateText(ctx context.Context, prompt, model string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if !s.configured {
		return "", fmt.Errorf("%w: OpenAI API key not configured, please set OPENAI_API_KEY in your .env file", ErrConfiguration)
	}
	if model == "" {
		model = s.defaultModel
	}

	s.log.Info("Sending text generation request",
		zap.String("model", model),
		zap.Int("prompt_length", len(prompt)),
	)

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(model),
		MaxTokens:   openai.Int(TextMaxTokens),
		Temperature: openai.Float(TextTemperature),
	})
	if err != nil {
		s.log.Error("OpenAI text generation failed", zap.String("model", model), zap.Error(err))
		return "", ErrTextGeneration
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		s.log.Warn("OpenAI returned no content", zap.String("model", model))
		return NoResponseFallback, nil
	}

	content := completion.Choices[0].Message.Content
	s.log.Info("OpenAI text response received",
		zap.String("model", model),
		zap.Int("response_length", len(content)),
	)
	return content, nil
}
