// Package web serves the studio page and its form posts. Every post
// redirects back to the page, which renders the outcome once.
package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"aistudio-backend/internal/middleware"
	"aistudio-backend/internal/models"
	"aistudio-backend/internal/render"
	"aistudio-backend/internal/services"
	"aistudio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageTitle = "AI Studio"

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt, model string) (string, error)
	DefaultModel() string
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, size services.ImageSize) (string, error)
}

type Checkout interface {
	Products() []models.Product
	Checkout(ctx context.Context, productID string) (*models.Purchase, error)
}

type Handler struct {
	text     TextGenerator
	image    ImageGenerator
	payment  Checkout
	tracker  *services.SubmissionTracker
	warnings []string
}

func NewHandler(text TextGenerator, image ImageGenerator, payment Checkout, tracker *services.SubmissionTracker, warnings []string) *Handler {
	return &Handler{
		text:     text,
		image:    image,
		payment:  payment,
		tracker:  tracker,
		warnings: warnings,
	}
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Index)
	formGroup := r.Group("/forms")
	{
		formGroup.POST("/text", h.SubmitText)
		formGroup.POST("/image", h.SubmitImage)
		formGroup.POST("/payment", h.SubmitPayment)
	}
}

// Index renders the page. Pending notices are consumed by this render.
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	session := middleware.SessionID(c)

	data := render.PageData{
		Title:            pageTitle,
		Warnings:         h.warnings,
		Products:         h.payment.Products(),
		DefaultImageSize: string(services.DefaultImageSize),
		TextModel:        h.text.DefaultModel(),
	}
	for _, size := range services.ImageSizes() {
		data.ImageSizes = append(data.ImageSizes, string(size))
	}

	forms := []struct {
		kind models.FormKind
		dst  **models.FormState
	}{
		{models.FormText, &data.Text},
		{models.FormImage, &data.Image},
		{models.FormPayment, &data.Payment},
	}
	for _, f := range forms {
		state, err := h.tracker.Consume(ctx, session, f.kind)
		if err != nil {
			_ = c.Error(err)
			state = models.NewFormState(f.kind)
		}
		*f.dst = state
	}

	c.HTML(http.StatusOK, render.PageTemplate, data)
}

func (h *Handler) SubmitText(c *gin.Context) {
	prompt := c.PostForm("prompt")
	if strings.TrimSpace(prompt) == "" {
		h.reject(c, models.FormText, "Please enter a prompt")
		return
	}
	model := c.PostForm("model")

	h.submit(c, models.FormText, func(ctx context.Context) (services.Outcome, error) {
		result, err := h.text.GenerateText(ctx, prompt, model)
		return services.Outcome{Result: result}, err
	})
}

func (h *Handler) SubmitImage(c *gin.Context) {
	prompt := c.PostForm("prompt")
	if strings.TrimSpace(prompt) == "" {
		h.reject(c, models.FormImage, "Please enter a prompt")
		return
	}
	size, err := services.ParseImageSize(c.PostForm("size"))
	if err != nil {
		h.reject(c, models.FormImage, "Please choose a supported image size")
		return
	}

	h.submit(c, models.FormImage, func(ctx context.Context) (services.Outcome, error) {
		url, err := h.image.GenerateImage(ctx, prompt, size)
		return services.Outcome{Result: url}, err
	})
}

func (h *Handler) SubmitPayment(c *gin.Context) {
	productID := c.PostForm("product_id")
	if _, ok := models.FindProduct(productID); !ok {
		h.reject(c, models.FormPayment, "Please choose a plan")
		return
	}

	h.submit(c, models.FormPayment, func(ctx context.Context) (services.Outcome, error) {
		purchase, err := h.payment.Checkout(ctx, productID)
		if err != nil {
			return services.Outcome{}, err
		}
		return services.Outcome{Result: purchase.Message, Message: purchase.Message}, nil
	})
}

func (h *Handler) submit(c *gin.Context, kind models.FormKind, call services.SubmitFunc) {
	_, err := h.tracker.Submit(c.Request.Context(), middleware.SessionID(c), kind, call)
	if err != nil && !errors.Is(err, services.ErrSubmissionInFlight) {
		// The tracker already recorded the failure notice.
		logger.Log.Warn("Form submission failed", zap.String("form", string(kind)), zap.Error(err))
	}
	redirect(c, kind)
}

func (h *Handler) reject(c *gin.Context, kind models.FormKind, message string) {
	if err := h.tracker.Reject(c.Request.Context(), middleware.SessionID(c), kind, message); err != nil {
		_ = c.Error(err)
	}
	redirect(c, kind)
}

func redirect(c *gin.Context, kind models.FormKind) {
	c.Redirect(http.StatusSeeOther, "/#"+string(kind))
}
