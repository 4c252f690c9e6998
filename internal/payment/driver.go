package payment

import (
	"context"
	"errors"

	"aistudio-backend/internal/models"
)

// ErrNotConfigured is returned by a Driver whose credentials are missing.
var ErrNotConfigured = errors.New("payment provider not configured")

// Driver is the interface a payment provider integration implements.
type Driver interface {
	// Name identifies the provider in logs.
	Name() string

	// CreateIntent prepares a payment of amount minor units in currency.
	CreateIntent(ctx context.Context, amount int64, currency string) (*models.PaymentIntentStub, error)
}
