package payment

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	paymentGroup := r.Group("/payment")
	{
		paymentGroup.GET("/products", h.ListProducts)
		paymentGroup.POST("/intents", h.CreateIntent)
		paymentGroup.POST("/checkout", h.Checkout)
	}
}
