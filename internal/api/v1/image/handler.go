package image

import (
	"context"
	"net/http"

	"aistudio-backend/internal/api/v1/common"
	"aistudio-backend/internal/middleware"
	"aistudio-backend/internal/models"
	"aistudio-backend/internal/services"
	"aistudio-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Generator is the image adapter the handler forwards to.
type Generator interface {
	GenerateImage(ctx context.Context, prompt string, size services.ImageSize) (string, error)
}

type Handler struct {
	generator Generator
	tracker   *services.SubmissionTracker
}

func NewHandler(generator Generator, tracker *services.SubmissionTracker) *Handler {
	return &Handler{generator: generator, tracker: tracker}
}

// GenerateImage godoc
// @Summary Generate an image
// @Description Forward a prompt to the image generation endpoint and return the first image URL
// @Tags image
// @Accept json
// @Produce json
// @Param X-Form-Session header string false "Form session id"
// @Param request body GenerateImageRequest true "Prompt and size"
// @Success 200 {object} utils.Response{data=GenerateImageResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /image/generate [post]
func (h *Handler) GenerateImage(c *gin.Context) {
	var req GenerateImageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	size, err := services.ParseImageSize(req.Size)
	if err != nil {
		common.RespondError(c, err, services.FailureMessage(models.FormImage))
		return
	}

	state, err := h.tracker.Submit(c.Request.Context(), middleware.SessionID(c), models.FormImage, func(ctx context.Context) (services.Outcome, error) {
		url, err := h.generator.GenerateImage(ctx, req.Prompt, size)
		return services.Outcome{Result: url}, err
	})
	if err != nil {
		common.RespondError(c, err, services.FailureMessage(models.FormImage))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Image generated successfully!", GenerateImageResponse{
		URL:  state.Result,
		Size: string(size),
	}))
}
