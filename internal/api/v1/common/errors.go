package common

import (
	"errors"
	"net/http"

	"aistudio-backend/internal/services"
	"aistudio-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondError maps a service error to its status code. Upstream and
// configuration failures are answered with failureMessage only; the cause
// goes to the request log.
func RespondError(c *gin.Context, err error, failureMessage string) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrEmptyPrompt),
		errors.Is(err, services.ErrInvalidImageSize),
		errors.Is(err, services.ErrInvalidAmount):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrProductNotFound):
		status, message = http.StatusNotFound, "Product not found"
	case errors.Is(err, services.ErrSubmissionInFlight):
		status, message = http.StatusConflict, "A request for this form is already in progress"
	case errors.Is(err, services.ErrConfiguration):
		status, message = http.StatusServiceUnavailable, failureMessage
	case errors.Is(err, services.ErrGeneration):
		status, message = http.StatusBadGateway, failureMessage
	}

	c.JSON(status, utils.NewErrorResponse(status, message))
}
