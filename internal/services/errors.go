package services

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means a credential is missing or still a placeholder.
	// It is detected before any network call.
	ErrConfiguration = errors.New("integration not configured")

	// ErrGeneration covers every failure during or after an upstream call.
	ErrGeneration = errors.New("generation failed")

	ErrTextGeneration  = fmt.Errorf("%w: failed to generate text, please check your API key and try again", ErrGeneration)
	ErrImageGeneration = fmt.Errorf("%w: failed to generate image, please check your API key and try again", ErrGeneration)

	ErrEmptyPrompt        = errors.New("prompt must not be empty")
	ErrInvalidImageSize   = errors.New("unsupported image size")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrProductNotFound    = errors.New("product not found")
	ErrSubmissionInFlight = errors.New("a submission for this form is already in progress")
)
