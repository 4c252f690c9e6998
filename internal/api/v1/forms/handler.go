package forms

import (
	"net/http"

	"aistudio-backend/internal/middleware"
	"aistudio-backend/internal/models"
	"aistudio-backend/internal/services"
	"aistudio-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tracker *services.SubmissionTracker
}

func NewHandler(tracker *services.SubmissionTracker) *Handler {
	return &Handler{tracker: tracker}
}

// GetFormState godoc
// @Summary Get form state
// @Description Current status, last result and pending notice of the caller's form. Reading does not clear the notice.
// @Tags forms
// @Produce json
// @Param form path string true "Form kind" Enums(text, image, payment)
// @Param X-Form-Session header string false "Form session id"
// @Success 200 {object} utils.Response{data=models.FormState}
// @Failure 404 {object} utils.Response
// @Router /forms/{form} [get]
func (h *Handler) GetFormState(c *gin.Context) {
	kind := models.FormKind(c.Param("form"))
	if !kind.Valid() {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Form not found"))
		return
	}

	state, err := h.tracker.State(c.Request.Context(), middleware.SessionID(c), kind)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load form state"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("success", state))
}
