package text

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

// Generator is the text adapter the handler forwards to.
type Generator interface {
	GenerateText(ctx context.Context, prompt, model string) (string, error)
	DefaultModel() string
}

type Handler struct {
	generator Generator
	tracker   *services.SubmissionTracker
}

func NewHandler(generator Generator, tracker *services.SubmissionTracker) *Handler {
	return &Handler{generator: generator, tracker: tracker}
}

// GenerateText godoc
// @Summary Generate text
// @Description Forward a prompt to the chat completion endpoint and return the first choice
// @Tags text
// @Accept json
// @Produce json
// @Param X-Form-Session header string false "Form session id"
// @Param request body GenerateTextRequest true "Prompt"
// @Success 200 {object} utils.Response{data=GenerateTextResponse}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Failure 503 {object} utils.Response
// @Router /text/generate [post]
func (h *Handler) GenerateText(c *gin.Context) {
	var req GenerateTextRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	model := req.Model
	if model == "" {
		model = h.generator.DefaultModel()
	}

	state, err := h.tracker.Submit(c.Request.Context(), middleware.SessionID(c), models.FormText, func(ctx context.Context) (services.Outcome, error) {
		result, err := h.generator.GenerateText(ctx, req.Prompt, model)
		return services.Outcome{Result: result}, err
	})
	if err != nil {
		common.RespondError(c, err, services.FailureMessage(models.FormText))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Text generated successfully!", GenerateTextResponse{
		Result: state.Result,
		Model:  model,
	}))
}
