package status

import (
	"net/http"

	"aistudio-backend/config"
	"aistudio-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type StatusResponse struct {
	TextEnabled    bool `json:"text_enabled"`
	ImageEnabled   bool `json:"image_enabled"`
	PaymentEnabled bool `json:"payment_enabled"`
	// PaymentBackendReady is true once the secret key a real checkout
	// backend needs is set. The mocked flow ignores it.
	PaymentBackendReady bool     `json:"payment_backend_ready"`
	Warnings            []string `json:"warnings"`
}

// GetStatus godoc
// @Summary Integration status
// @Description Reports which integrations have credentials configured
// @Tags status
// @Produce json
// @Success 200 {object} utils.Response{data=StatusResponse}
// @Router /status [get]
func GetStatus(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		warnings := cfg.Warnings()
		if warnings == nil {
			warnings = []string{}
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("success", StatusResponse{
			TextEnabled:         cfg.OpenAIConfigured(),
			ImageEnabled:        cfg.OpenAIConfigured(),
			PaymentEnabled:      cfg.StripeConfigured(),
			PaymentBackendReady: cfg.StripeSecretConfigured(),
			Warnings:            warnings,
		}))
	}
}

func RegisterRoutes(r *gin.RouterGroup, cfg *config.Config) {
	r.GET("/status", GetStatus(cfg))
}
