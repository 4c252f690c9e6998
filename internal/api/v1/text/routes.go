package text

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	textGroup := router.Group("/text")
	{
		textGroup.POST("/generate", h.GenerateText)
	}
}
