package payment

import (
	"context"
	"fmt"
	"net/http"

	"aistudio-backend/internal/api/v1/common"
	"aistudio-backend/internal/middleware"
	"aistudio-backend/internal/models"
	"aistudio-backend/internal/services"
	"aistudio-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Service is the mocked payment flow the handler drives.
type Service interface {
	Products() []models.Product
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*models.PaymentIntentStub, error)
	Checkout(ctx context.Context, productID string) (*models.Purchase, error)
}

type Handler struct {
	service Service
	tracker *services.SubmissionTracker
}

func NewHandler(service Service, tracker *services.SubmissionTracker) *Handler {
	return &Handler{service: service, tracker: tracker}
}

// ListProducts godoc
// @Summary List subscription plans
// @Tags payment
// @Produce json
// @Success 200 {object} utils.Response{data=ProductListResponse}
// @Router /payment/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.service.Products()
	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", ProductListResponse{
		Total: len(products),
		Items: products,
	}))
}

// CreateIntent godoc
// @Summary Create a mock payment intent
// @Description Fabricates a payment intent locally. No charge is made.
// @Tags payment
// @Accept json
// @Produce json
// @Param request body CreateIntentRequest true "Amount and currency"
// @Success 200 {object} utils.Response{data=models.PaymentIntentStub}
// @Failure 400 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /payment/intents [post]
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	intent, err := h.service.CreatePaymentIntent(c.Request.Context(), req.Amount, req.Currency)
	if err != nil {
		common.RespondError(c, err, services.FailureMessage(models.FormPayment))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", intent))
}

// Checkout godoc
// @Summary Purchase a plan
// @Description Runs the mocked checkout for a plan and returns the confirmation
// @Tags payment
// @Accept json
// @Produce json
// @Param X-Form-Session header string false "Form session id"
// @Param request body CheckoutRequest true "Plan"
// @Success 200 {object} utils.Response{data=models.Purchase}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /payment/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if _, ok := models.FindProduct(req.ProductID); !ok {
		common.RespondError(c, fmt.Errorf("%w: %q", services.ErrProductNotFound, req.ProductID), services.FailureMessage(models.FormPayment))
		return
	}

	var purchase *models.Purchase
	_, err := h.tracker.Submit(c.Request.Context(), middleware.SessionID(c), models.FormPayment, func(ctx context.Context) (services.Outcome, error) {
		p, err := h.service.Checkout(ctx, req.ProductID)
		if err != nil {
			return services.Outcome{}, err
		}
		purchase = p
		return services.Outcome{Result: p.Message, Message: p.Message}, nil
	})
	if err != nil {
		common.RespondError(c, err, services.FailureMessage(models.FormPayment))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Payment Successful!", purchase))
}
