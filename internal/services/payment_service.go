package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aistudio-backend/internal/models"
	"aistudio-backend/internal/payment"

	"go.uber.org/zap"
)

const DefaultCurrency = "usd"

// PaymentService drives the mocked subscription checkout. No real charge is
// ever made; a production deployment must replace the driver with a backend
// call that creates the intent server-side.
type PaymentService struct {
	driver payment.Driver
	delay  time.Duration
	log    *zap.Logger
}

// NewPaymentService wires driver with the simulated processing delay applied
// by Checkout.
func NewPaymentService(driver payment.Driver, delay time.Duration, log *zap.Logger) *PaymentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentService{driver: driver, delay: delay, log: log}
}

func (s *PaymentService) Products() []models.Product {
	return models.Products()
}

// CreatePaymentIntent fabricates an intent for amount minor units. An empty
// currency means DefaultCurrency.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*models.PaymentIntentStub, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	s.log.Info("Creating payment intent",
		zap.String("driver", s.driver.Name()),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)

	intent, err := s.driver.CreateIntent(ctx, amount, currency)
	if err != nil {
		s.log.Error("Payment intent failed", zap.String("driver", s.driver.Name()), zap.Error(err))
		if errors.Is(err, payment.ErrNotConfigured) {
			return nil, fmt.Errorf("%w: Stripe publishable key not configured", ErrConfiguration)
		}
		return nil, err
	}
	return intent, nil
}

// Checkout buys productID: it creates the intent for the plan's price, waits
// out the simulated processing time and returns the confirmation.
func (s *PaymentService) Checkout(ctx context.Context, productID string) (*models.Purchase, error) {
	product, ok := models.FindProduct(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, productID)
	}

	intent, err := s.CreatePaymentIntent(ctx, product.Price, DefaultCurrency)
	if err != nil {
		return nil, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.log.Info("Payment completed", zap.String("product", product.ID))

	return &models.Purchase{
		Product: product,
		Intent:  *intent,
		Message: fmt.Sprintf("You have successfully purchased the %s", product.Name),
	}, nil
}
