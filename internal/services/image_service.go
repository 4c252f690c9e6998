package services

import (
	"context"
	"fmt"
	"strings"

	"aistudio-backend/config"

	"github.com/openai/openai-go"
	"go.uber.org/zap"
)

type ImageSize string

const (
	ImageSizeSmall  ImageSize = "256x256"
	ImageSizeMedium ImageSize = "512x512"
	ImageSizeLarge  ImageSize = "1024x1024"

	DefaultImageSize = ImageSizeMedium
)

// ImageSizes lists the supported sizes, smallest first.
func ImageSizes() []ImageSize {
	return []ImageSize{ImageSizeSmall, ImageSizeMedium, ImageSizeLarge}
}

// ParseImageSize maps "" to DefaultImageSize and rejects anything unsupported.
func ParseImageSize(s string) (ImageSize, error) {
	if s == "" {
		return DefaultImageSize, nil
	}
	for _, size := range ImageSizes() {
		if string(size) == s {
			return size, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidImageSize, s)
}

// ImageService forwards prompts to the image generation endpoint.
type ImageService struct {
	client     openai.Client
	configured bool
	log        *zap.Logger
}

func NewImageService(cfg *config.Config, client openai.Client, log *zap.Logger) *ImageService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageService{
		client:     client,
		configured: cfg.OpenAIConfigured(),
		log:        log,
	}
}

// GenerateImage requests a single image and returns its URL.
func (s *ImageService) GenerateImage(ctx context.Context, prompt string, size ImageSize) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if size == "" {
		size = DefaultImageSize
	}
	if _, err := ParseImageSize(string(size)); err != nil {
		return "", err
	}
	if !s.configured {
		return "", fmt.Errorf("%w: OpenAI API key not configured, please set OPENAI_API_KEY in your .env file", ErrConfiguration)
	}

	s.log.Info("Sending image generation request",
		zap.String("size", string(size)),
		zap.Int("prompt_length", len(prompt)),
	)

	image, err := s.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize(size),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	})
	if err != nil {
		s.log.Error("OpenAI image generation failed", zap.String("size", string(size)), zap.Error(err))
		return "", ErrImageGeneration
	}

	if len(image.Data) == 0 || image.Data[0].URL == "" {
		s.log.Error("OpenAI returned no image URL", zap.String("size", string(size)))
		return "", ErrImageGeneration
	}

	url := image.Data[0].URL
	s.log.Info("OpenAI image generated", zap.String("url", url))
	return url, nil
}
