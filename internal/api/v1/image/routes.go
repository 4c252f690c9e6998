package image

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	imageGroup := router.Group("/image")
	{
		imageGroup.POST("/generate", h.GenerateImage)
	}
}
