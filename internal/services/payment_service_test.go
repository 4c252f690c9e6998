package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"aistudio-backend/config"
	"aistudio-backend/internal/models"
	"aistudio-backend/internal/payment/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentService(key string, delay time.Duration) *PaymentService {
	return NewPaymentService(mock.NewDriver(key, config.StripePublishableKeyPlaceholder), delay, nil)
}

func TestCreatePaymentIntent(t *testing.T) {
	svc := newPaymentService("pk_test_123", 0)

	first, err := svc.CreatePaymentIntent(context.Background(), 2999, "usd")
	require.NoError(t, err)
	assert.Equal(t, int64(2999), first.Amount)
	assert.Equal(t, "usd", first.Currency)
	assert.NotEmpty(t, first.ClientSecret)

	second, err := svc.CreatePaymentIntent(context.Background(), 2999, "usd")
	require.NoError(t, err)
	assert.NotEqual(t, first.ClientSecret, second.ClientSecret)
}

func TestCreatePaymentIntentCurrency(t *testing.T) {
	svc := newPaymentService("pk_test_123", 0)

	intent, err := svc.CreatePaymentIntent(context.Background(), 999, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, intent.Currency)

	intent, err = svc.CreatePaymentIntent(context.Background(), 999, " EUR ")
	require.NoError(t, err)
	assert.Equal(t, "eur", intent.Currency)
}

func TestCreatePaymentIntentErrors(t *testing.T) {
	_, err := newPaymentService("pk_test_123", 0).CreatePaymentIntent(context.Background(), 0, "usd")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	for _, key := range []string{"", config.StripePublishableKeyPlaceholder} {
		_, err := newPaymentService(key, 0).CreatePaymentIntent(context.Background(), 999, "usd")
		assert.ErrorIs(t, err, ErrConfiguration)
	}
}

func TestCheckout(t *testing.T) {
	svc := newPaymentService("pk_test_123", 10*time.Millisecond)

	start := time.Now()
	purchase, err := svc.Checkout(context.Background(), "pro")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	assert.Equal(t, "pro", purchase.Product.ID)
	assert.Equal(t, int64(2999), purchase.Intent.Amount)
	assert.Equal(t, "usd", purchase.Intent.Currency)
	assert.True(t, strings.HasPrefix(purchase.Intent.ClientSecret, mock.ClientSecretPrefix))
	assert.Equal(t, "You have successfully purchased the Pro Plan", purchase.Message)
}

func TestCheckoutErrors(t *testing.T) {
	_, err := newPaymentService("pk_test_123", 0).Checkout(context.Background(), "platinum")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = newPaymentService("", 0).Checkout(context.Background(), "basic")
	assert.ErrorIs(t, err, ErrConfiguration)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err = newPaymentService("pk_test_123", time.Minute).Checkout(ctx, "basic")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProducts(t *testing.T) {
	products := newPaymentService("pk_test_123", 0).Products()
	require.Len(t, products, 3)

	ids := []string{}
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"basic", "pro", "enterprise"}, ids)

	products[0].Features[0] = "mutated"
	fresh, _ := models.FindProduct("basic")
	assert.NotEqual(t, "mutated", fresh.Features[0])
}
