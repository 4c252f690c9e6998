// Package mock is a stand-in payment driver. It checks that a publishable key
// is configured and fabricates an intent locally; nothing is charged.
package mock

import (
	"context"
	"fmt"
	"strings"

	"aistudio-backend/internal/models"
	"aistudio-backend/internal/payment"

	"github.com/google/uuid"
)

const ClientSecretPrefix = "pi_mock_client_secret_"

type Driver struct {
	publishableKey string
	placeholder    string
}

func NewDriver(publishableKey, placeholder string) *Driver {
	return &Driver{publishableKey: publishableKey, placeholder: placeholder}
}

func (d *Driver) Name() string {
	return "mock"
}

func (d *Driver) CreateIntent(ctx context.Context, amount int64, currency string) (*models.PaymentIntentStub, error) {
	key := strings.TrimSpace(d.publishableKey)
	if key == "" || key == d.placeholder {
		return nil, fmt.Errorf("%w: publishable key missing", payment.ErrNotConfigured)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &models.PaymentIntentStub{
		ClientSecret: ClientSecretPrefix + strings.ReplaceAll(uuid.New().String(), "-", ""),
		Amount:       amount,
		Currency:     currency,
	}, nil
}
