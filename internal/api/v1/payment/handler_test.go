package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aistudio-backend/internal/database"
	"aistudio-backend/internal/middleware"
	"aistudio-backend/internal/models"
	"aistudio-backend/internal/payment/mock"
	"aistudio-backend/internal/services"
	"aistudio-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placeholderKey = "your_stripe_publishable_key_here"

func setupRouter(publishableKey string) (*gin.Engine, *services.SubmissionTracker) {
	gin.SetMode(gin.TestMode)
	utils.RegisterValidators()

	svc := services.NewPaymentService(mock.NewDriver(publishableKey, placeholderKey), 0, nil)
	tracker := services.NewSubmissionTracker(database.NewMemoryFormStore(time.Hour), nil)

	r := gin.New()
	r.Use(middleware.Session())
	RegisterRoutes(r.Group("/api/v1"), NewHandler(svc, tracker))
	return r, tracker
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "session-1")
	r.ServeHTTP(w, req)
	return w
}

func TestListProducts(t *testing.T) {
	r, _ := setupRouter("pk_test_123")

	w := do(r, http.MethodGet, "/api/v1/payment/products", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data ProductListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Total)
	require.Len(t, resp.Data.Items, 3)
	assert.Equal(t, "basic", resp.Data.Items[0].ID)
	assert.Equal(t, int64(2999), resp.Data.Items[1].Price)
	assert.True(t, resp.Data.Items[1].Featured)
}

func TestCreateIntent(t *testing.T) {
	r, _ := setupRouter("pk_test_123")

	w := do(r, http.MethodPost, "/api/v1/payment/intents", `{"amount":2999,"currency":"USD"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data models.PaymentIntentStub `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2999), resp.Data.Amount)
	assert.Equal(t, "usd", resp.Data.Currency)
	assert.True(t, strings.HasPrefix(resp.Data.ClientSecret, mock.ClientSecretPrefix))
}

func TestCreateIntentErrors(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		body       string
		wantStatus int
	}{
		{"zero amount", "pk_test_123", `{"amount":0}`, http.StatusBadRequest},
		{"negative amount", "pk_test_123", `{"amount":-5}`, http.StatusBadRequest},
		{"bad currency", "pk_test_123", `{"amount":100,"currency":"dollars"}`, http.StatusBadRequest},
		{"placeholder key", placeholderKey, `{"amount":100}`, http.StatusServiceUnavailable},
		{"missing key", "", `{"amount":100}`, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouter(tt.key)
			w := do(r, http.MethodPost, "/api/v1/payment/intents", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCheckout(t *testing.T) {
	r, tracker := setupRouter("pk_test_123")

	w := do(r, http.MethodPost, "/api/v1/payment/checkout", `{"product_id":"pro"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Message string          `json:"message"`
		Data    models.Purchase `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment Successful!", resp.Message)
	assert.Equal(t, "You have successfully purchased the Pro Plan", resp.Data.Message)
	assert.Equal(t, int64(2999), resp.Data.Intent.Amount)

	state, err := tracker.State(context.Background(), "session-1", models.FormPayment)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSuccess, state.Status)
	require.NotNil(t, state.Notice)
	assert.Equal(t, "Payment Successful!", state.Notice.Title)
}

func TestCheckoutErrors(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		body       string
		wantStatus int
	}{
		{"missing plan", "pk_test_123", `{}`, http.StatusBadRequest},
		{"unknown plan", "pk_test_123", `{"product_id":"platinum"}`, http.StatusNotFound},
		{"not configured", placeholderKey, `{"product_id":"basic"}`, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouter(tt.key)
			w := do(r, http.MethodPost, "/api/v1/payment/checkout", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCheckoutUnknownPlanLeavesFormIdle(t *testing.T) {
	r, tracker := setupRouter("pk_test_123")

	w := do(r, http.MethodPost, "/api/v1/payment/checkout", `{"product_id":"platinum"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	state, err := tracker.State(context.Background(), "session-1", models.FormPayment)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionIdle, state.Status)
	assert.Nil(t, state.Notice)
}

func TestCheckoutFailureNotice(t *testing.T) {
	r, tracker := setupRouter(placeholderKey)

	do(r, http.MethodPost, "/api/v1/payment/checkout", `{"product_id":"basic"}`)

	state, err := tracker.State(context.Background(), "session-1", models.FormPayment)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionFailed, state.Status)
	require.NotNil(t, state.Notice)
	assert.Equal(t, "Payment Failed", state.Notice.Title)
	assert.Equal(t, "Please check your Stripe configuration and try again.", state.Notice.Message)
}
